package model

// swagger:model Niveau
type Niveau struct {
	BaseModel
	Nom string `gorm:"size:255;not null" json:"nom"`

	Matieres []Matiere `gorm:"foreignKey:NiveauID" json:"-"`
	Users    []User    `gorm:"foreignKey:NiveauID" json:"-"`
}

func (Niveau) TableName() string {
	return "niveau"
}
