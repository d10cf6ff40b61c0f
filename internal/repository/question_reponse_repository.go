package repository

import (
	"eduportal_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionReponseRepository struct {
	DB *gorm.DB
}

func NewQuestionReponseRepository(db *gorm.DB) *QuestionReponseRepository {
	return &QuestionReponseRepository{DB: db}
}

func (r *QuestionReponseRepository) Create(question *model.QuestionReponse) error {
	return r.DB.Create(question).Error
}

func (r *QuestionReponseRepository) FindAll(exerciceID *uint) ([]model.QuestionReponse, error) {
	var questions []model.QuestionReponse
	query := r.DB.Order("ordre ASC")
	if exerciceID != nil {
		query = query.Where("exercice_id = ?", *exerciceID)
	}
	err := query.Find(&questions).Error
	return questions, err
}

func (r *QuestionReponseRepository) FindByID(id uint) (*model.QuestionReponse, error) {
	var question model.QuestionReponse
	err := r.DB.First(&question, id).Error
	return &question, err
}

func (r *QuestionReponseRepository) Update(question *model.QuestionReponse) error {
	return r.DB.Save(question).Error
}

func (r *QuestionReponseRepository) Delete(id uint) error {
	return r.DB.Delete(&model.QuestionReponse{}, id).Error
}
