package model

// swagger:model Paragraphe
type Paragraphe struct {
	BaseModel
	Contenu    string `gorm:"type:text;not null" json:"contenu"`
	Ordre      *int   `json:"ordre"`
	ChapitreID uint   `gorm:"index;not null" json:"chapitre_id"`
}

func (Paragraphe) TableName() string {
	return "paragraphe"
}
