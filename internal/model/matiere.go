package model

// swagger:model Matiere
type Matiere struct {
	BaseModel
	Nom         string  `gorm:"size:255;not null" json:"nom"`
	Description *string `gorm:"type:text" json:"description"`
	NiveauID    uint    `gorm:"index;not null" json:"niveau_id"`

	Niveau    *Niveau    `gorm:"foreignKey:NiveauID" json:"-"`
	Chapitres []Chapitre `gorm:"foreignKey:MatiereID" json:"-"`
}

func (Matiere) TableName() string {
	return "matiere"
}
