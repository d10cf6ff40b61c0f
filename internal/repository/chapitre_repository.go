package repository

import (
	"eduportal_backend/internal/model"

	"gorm.io/gorm"
)

type ChapitreRepository struct {
	DB *gorm.DB
}

func NewChapitreRepository(db *gorm.DB) *ChapitreRepository {
	return &ChapitreRepository{DB: db}
}

func (r *ChapitreRepository) Create(chapitre *model.Chapitre) error {
	return r.DB.Create(chapitre).Error
}

func (r *ChapitreRepository) FindAll(matiereID *uint) ([]model.Chapitre, error) {
	var chapitres []model.Chapitre
	query := r.DB.Preload("Matiere").Order("ordre ASC")
	if matiereID != nil {
		query = query.Where("matiere_id = ?", *matiereID)
	}
	err := query.Find(&chapitres).Error
	return chapitres, err
}

// IDsByNiveau lists the ids of every chapter under a level, across all
// of its subjects. Callers use it to evict cached chapter details before
// the level cascade removes the rows.
func (r *ChapitreRepository) IDsByNiveau(niveauID uint) ([]uint, error) {
	var matiereIDs []uint
	if err := r.DB.Model(&model.Matiere{}).Where("niveau_id = ?", niveauID).Pluck("id", &matiereIDs).Error; err != nil {
		return nil, err
	}
	if len(matiereIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	err := r.DB.Model(&model.Chapitre{}).Where("matiere_id IN ?", matiereIDs).Pluck("id", &ids).Error
	return ids, err
}

func (r *ChapitreRepository) FindByID(id uint) (*model.Chapitre, error) {
	var chapitre model.Chapitre
	err := r.DB.Preload("Matiere").First(&chapitre, id).Error
	return &chapitre, err
}

// FindDetail loads the chapter with its four child collections, each in
// display order, plus the grandchildren the admin editor renders inline.
func (r *ChapitreRepository) FindDetail(id uint) (*model.Chapitre, error) {
	byOrdre := func(db *gorm.DB) *gorm.DB {
		return db.Order("ordre ASC")
	}

	var chapitre model.Chapitre
	err := r.DB.
		Preload("Matiere").
		Preload("Paragraphes", byOrdre).
		Preload("ModulesValidation").
		Preload("ModulesValidation.AnimationsMaison", byOrdre).
		Preload("ModulesValidation.MiniJeux", byOrdre).
		Preload("MiniJeux", byOrdre).
		Preload("Exercices", byOrdre).
		Preload("Exercices.QuestionsReponses", byOrdre).
		First(&chapitre, id).Error
	return &chapitre, err
}

func (r *ChapitreRepository) Update(chapitre *model.Chapitre) error {
	return r.DB.Save(chapitre).Error
}

func (r *ChapitreRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := deleteChapitreChildren(tx, []uint{id}); err != nil {
			return err
		}
		return tx.Delete(&model.Chapitre{}, id).Error
	})
}
