package repository

import (
	"eduportal_backend/internal/model"

	"gorm.io/gorm"
)

type MiniJeuRepository struct {
	DB *gorm.DB
}

func NewMiniJeuRepository(db *gorm.DB) *MiniJeuRepository {
	return &MiniJeuRepository{DB: db}
}

func (r *MiniJeuRepository) Create(miniJeu *model.MiniJeu) error {
	return r.DB.Create(miniJeu).Error
}

// FindAll filters by chapter when given, else by validation module; the
// chapter filter wins when both are present, as in the historical API.
func (r *MiniJeuRepository) FindAll(chapitreID, moduleID *uint) ([]model.MiniJeu, error) {
	var miniJeux []model.MiniJeu
	query := r.DB.Order("ordre ASC")
	if chapitreID != nil {
		query = query.Where("chapitre_id = ?", *chapitreID)
	} else if moduleID != nil {
		query = query.Where("module_validation_id = ?", *moduleID)
	}
	err := query.Find(&miniJeux).Error
	return miniJeux, err
}

func (r *MiniJeuRepository) FindByID(id uint) (*model.MiniJeu, error) {
	var miniJeu model.MiniJeu
	err := r.DB.First(&miniJeu, id).Error
	return &miniJeu, err
}

func (r *MiniJeuRepository) Update(miniJeu *model.MiniJeu) error {
	return r.DB.Save(miniJeu).Error
}

func (r *MiniJeuRepository) Delete(id uint) error {
	return r.DB.Delete(&model.MiniJeu{}, id).Error
}
