package repository

import (
	"eduportal_backend/internal/model"

	"gorm.io/gorm"
)

type ExerciceRepository struct {
	DB *gorm.DB
}

func NewExerciceRepository(db *gorm.DB) *ExerciceRepository {
	return &ExerciceRepository{DB: db}
}

func (r *ExerciceRepository) Create(exercice *model.Exercice) error {
	return r.DB.Create(exercice).Error
}

func (r *ExerciceRepository) FindAll(chapitreID *uint) ([]model.Exercice, error) {
	var exercices []model.Exercice
	query := r.DB.Preload("QuestionsReponses", func(db *gorm.DB) *gorm.DB {
		return db.Order("ordre ASC")
	}).Order("ordre ASC")
	if chapitreID != nil {
		query = query.Where("chapitre_id = ?", *chapitreID)
	}
	err := query.Find(&exercices).Error
	return exercices, err
}

func (r *ExerciceRepository) FindByID(id uint) (*model.Exercice, error) {
	var exercice model.Exercice
	err := r.DB.Preload("QuestionsReponses", func(db *gorm.DB) *gorm.DB {
		return db.Order("ordre ASC")
	}).First(&exercice, id).Error
	return &exercice, err
}

func (r *ExerciceRepository) Update(exercice *model.Exercice) error {
	return r.DB.Save(exercice).Error
}

// Delete removes the exercise and its question items.
func (r *ExerciceRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("exercice_id = ?", id).Delete(&model.QuestionReponse{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Exercice{}, id).Error
	})
}
