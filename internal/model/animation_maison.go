package model

// swagger:model AnimationMaison
type AnimationMaison struct {
	BaseModel
	Nom                string  `gorm:"size:255;not null" json:"nom"`
	Description        *string `gorm:"type:text" json:"description"`
	URL                *string `gorm:"type:text" json:"url"`
	Ordre              *int    `json:"ordre"`
	ModuleValidationID uint    `gorm:"index;not null" json:"module_validation_id"`
}

func (AnimationMaison) TableName() string {
	return "animation_maison"
}
