package repository

import (
	"eduportal_backend/internal/model"

	"gorm.io/gorm"
)

type ModuleValidationRepository struct {
	DB *gorm.DB
}

func NewModuleValidationRepository(db *gorm.DB) *ModuleValidationRepository {
	return &ModuleValidationRepository{DB: db}
}

func (r *ModuleValidationRepository) Create(module *model.ModuleValidation) error {
	return r.DB.Create(module).Error
}

func (r *ModuleValidationRepository) FindAll(chapitreID *uint) ([]model.ModuleValidation, error) {
	var modules []model.ModuleValidation
	query := r.DB.Preload("AnimationsMaison").Preload("MiniJeux")
	if chapitreID != nil {
		query = query.Where("chapitre_id = ?", *chapitreID)
	}
	err := query.Find(&modules).Error
	return modules, err
}

func (r *ModuleValidationRepository) FindByID(id uint) (*model.ModuleValidation, error) {
	var module model.ModuleValidation
	err := r.DB.Preload("AnimationsMaison").Preload("MiniJeux").First(&module, id).Error
	return &module, err
}

func (r *ModuleValidationRepository) Update(module *model.ModuleValidation) error {
	return r.DB.Save(module).Error
}

// Delete removes the module with its animations and mini-games.
func (r *ModuleValidationRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := deleteModuleChildren(tx, []uint{id}); err != nil {
			return err
		}
		return tx.Delete(&model.ModuleValidation{}, id).Error
	})
}
