package repository

import (
	"eduportal_backend/internal/model"

	"gorm.io/gorm"
)

type NiveauRepository struct {
	DB *gorm.DB
}

func NewNiveauRepository(db *gorm.DB) *NiveauRepository {
	return &NiveauRepository{DB: db}
}

func (r *NiveauRepository) Create(niveau *model.Niveau) error {
	return r.DB.Create(niveau).Error
}

func (r *NiveauRepository) FindAll() ([]model.Niveau, error) {
	var niveaux []model.Niveau
	err := r.DB.Preload("Matieres").Preload("Users").Find(&niveaux).Error
	return niveaux, err
}

func (r *NiveauRepository) FindByID(id uint) (*model.Niveau, error) {
	var niveau model.Niveau
	err := r.DB.Preload("Matieres").First(&niveau, id).Error
	return &niveau, err
}

func (r *NiveauRepository) Update(niveau *model.Niveau) error {
	return r.DB.Save(niveau).Error
}

// Delete removes the level and every descendant row, and detaches users
// that referenced it.
func (r *NiveauRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var matiereIDs []uint
		if err := tx.Model(&model.Matiere{}).Where("niveau_id = ?", id).Pluck("id", &matiereIDs).Error; err != nil {
			return err
		}
		if len(matiereIDs) > 0 {
			var chapitreIDs []uint
			if err := tx.Model(&model.Chapitre{}).Where("matiere_id IN ?", matiereIDs).Pluck("id", &chapitreIDs).Error; err != nil {
				return err
			}
			if err := deleteChapitreChildren(tx, chapitreIDs); err != nil {
				return err
			}
			if err := tx.Where("matiere_id IN ?", matiereIDs).Delete(&model.Chapitre{}).Error; err != nil {
				return err
			}
			if err := tx.Where("niveau_id = ?", id).Delete(&model.Matiere{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Model(&model.User{}).Where("niveau_id = ?", id).Update("niveau_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Niveau{}, id).Error
	})
}
