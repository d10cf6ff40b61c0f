package repository

import (
	"eduportal_backend/internal/model"

	"gorm.io/gorm"
)

type MatiereRepository struct {
	DB *gorm.DB
}

func NewMatiereRepository(db *gorm.DB) *MatiereRepository {
	return &MatiereRepository{DB: db}
}

func (r *MatiereRepository) Create(matiere *model.Matiere) error {
	return r.DB.Create(matiere).Error
}

func (r *MatiereRepository) FindAll(niveauID *uint) ([]model.Matiere, error) {
	var matieres []model.Matiere
	query := r.DB.Preload("Niveau")
	if niveauID != nil {
		query = query.Where("niveau_id = ?", *niveauID)
	}
	err := query.Find(&matieres).Error
	return matieres, err
}

func (r *MatiereRepository) FindByID(id uint) (*model.Matiere, error) {
	var matiere model.Matiere
	err := r.DB.Preload("Niveau").Preload("Chapitres", func(db *gorm.DB) *gorm.DB {
		return db.Order("ordre ASC")
	}).First(&matiere, id).Error
	return &matiere, err
}

func (r *MatiereRepository) Update(matiere *model.Matiere) error {
	return r.DB.Save(matiere).Error
}

func (r *MatiereRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var chapitreIDs []uint
		if err := tx.Model(&model.Chapitre{}).Where("matiere_id = ?", id).Pluck("id", &chapitreIDs).Error; err != nil {
			return err
		}
		if err := deleteChapitreChildren(tx, chapitreIDs); err != nil {
			return err
		}
		if err := tx.Where("matiere_id = ?", id).Delete(&model.Chapitre{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Matiere{}, id).Error
	})
}
