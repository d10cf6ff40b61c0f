package repository

import (
	"eduportal_backend/internal/model"

	"gorm.io/gorm"
)

type AnimationMaisonRepository struct {
	DB *gorm.DB
}

func NewAnimationMaisonRepository(db *gorm.DB) *AnimationMaisonRepository {
	return &AnimationMaisonRepository{DB: db}
}

func (r *AnimationMaisonRepository) Create(animation *model.AnimationMaison) error {
	return r.DB.Create(animation).Error
}

func (r *AnimationMaisonRepository) FindAll(moduleID *uint) ([]model.AnimationMaison, error) {
	var animations []model.AnimationMaison
	query := r.DB.Order("ordre ASC")
	if moduleID != nil {
		query = query.Where("module_validation_id = ?", *moduleID)
	}
	err := query.Find(&animations).Error
	return animations, err
}

func (r *AnimationMaisonRepository) FindByID(id uint) (*model.AnimationMaison, error) {
	var animation model.AnimationMaison
	err := r.DB.First(&animation, id).Error
	return &animation, err
}

func (r *AnimationMaisonRepository) Update(animation *model.AnimationMaison) error {
	return r.DB.Save(animation).Error
}

func (r *AnimationMaisonRepository) Delete(id uint) error {
	return r.DB.Delete(&model.AnimationMaison{}, id).Error
}
