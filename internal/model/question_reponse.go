package model

// swagger:model QuestionReponse
type QuestionReponse struct {
	BaseModel
	Contenu    string `gorm:"type:text;not null" json:"contenu"`
	Ordre      *int   `json:"ordre"`
	ExerciceID uint   `gorm:"index;not null" json:"exercice_id"`
}

func (QuestionReponse) TableName() string {
	return "question_reponse"
}
