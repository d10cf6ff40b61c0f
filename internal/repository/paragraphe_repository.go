package repository

import (
	"eduportal_backend/internal/model"

	"gorm.io/gorm"
)

type ParagrapheRepository struct {
	DB *gorm.DB
}

func NewParagrapheRepository(db *gorm.DB) *ParagrapheRepository {
	return &ParagrapheRepository{DB: db}
}

func (r *ParagrapheRepository) Create(paragraphe *model.Paragraphe) error {
	return r.DB.Create(paragraphe).Error
}

func (r *ParagrapheRepository) FindAll(chapitreID *uint) ([]model.Paragraphe, error) {
	var paragraphes []model.Paragraphe
	query := r.DB.Order("ordre ASC")
	if chapitreID != nil {
		query = query.Where("chapitre_id = ?", *chapitreID)
	}
	err := query.Find(&paragraphes).Error
	return paragraphes, err
}

func (r *ParagrapheRepository) FindByID(id uint) (*model.Paragraphe, error) {
	var paragraphe model.Paragraphe
	err := r.DB.First(&paragraphe, id).Error
	return &paragraphe, err
}

func (r *ParagrapheRepository) Update(paragraphe *model.Paragraphe) error {
	return r.DB.Save(paragraphe).Error
}

func (r *ParagrapheRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Paragraphe{}, id).Error
}
