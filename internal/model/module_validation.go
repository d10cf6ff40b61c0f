package model

// ModuleValidation is a chapter's assessment bundle: home-made animations
// plus mini-games.
// swagger:model ModuleValidation
type ModuleValidation struct {
	BaseModel
	Contenu    *string `gorm:"type:text" json:"contenu"`
	ChapitreID uint    `gorm:"index;not null" json:"chapitre_id"`

	AnimationsMaison []AnimationMaison `gorm:"foreignKey:ModuleValidationID" json:"-"`
	MiniJeux         []MiniJeu         `gorm:"foreignKey:ModuleValidationID" json:"-"`
}

func (ModuleValidation) TableName() string {
	return "module_validation"
}
