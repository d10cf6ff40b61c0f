package model

// swagger:model Exercice
type Exercice struct {
	BaseModel
	Contenu    string `gorm:"type:text;not null" json:"contenu"`
	Ordre      *int   `json:"ordre"`
	ChapitreID uint   `gorm:"index;not null" json:"chapitre_id"`

	QuestionsReponses []QuestionReponse `gorm:"foreignKey:ExerciceID" json:"-"`
}

func (Exercice) TableName() string {
	return "exercice"
}
