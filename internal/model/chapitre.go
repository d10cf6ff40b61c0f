package model

// Chapitre owns four independent child collections, all deleted with it.
// swagger:model Chapitre
type Chapitre struct {
	BaseModel
	Titre     string  `gorm:"size:255;not null" json:"titre"`
	Contenu   *string `gorm:"type:text" json:"contenu"`
	Ordre     *int    `json:"ordre"`
	MatiereID uint    `gorm:"index;not null" json:"matiere_id"`

	Matiere           *Matiere           `gorm:"foreignKey:MatiereID" json:"-"`
	Paragraphes       []Paragraphe       `gorm:"foreignKey:ChapitreID" json:"-"`
	ModulesValidation []ModuleValidation `gorm:"foreignKey:ChapitreID" json:"-"`
	MiniJeux          []MiniJeu          `gorm:"foreignKey:ChapitreID" json:"-"`
	Exercices         []Exercice         `gorm:"foreignKey:ChapitreID" json:"-"`
}

func (Chapitre) TableName() string {
	return "chapitre"
}
