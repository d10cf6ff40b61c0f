package repository

import (
	"eduportal_backend/internal/model"

	"gorm.io/gorm"
)

// deleteChapitreChildren removes every row owned by the given chapters:
// paragraphs, validation modules (with their animations and mini-games),
// chapter-level mini-games, and exercises with their question items.
// Cascades run child-first inside the caller's transaction so the behavior
// is identical on MySQL and the SQLite used in tests.
func deleteChapitreChildren(tx *gorm.DB, chapitreIDs []uint) error {
	if len(chapitreIDs) == 0 {
		return nil
	}

	if err := tx.Where("chapitre_id IN ?", chapitreIDs).Delete(&model.Paragraphe{}).Error; err != nil {
		return err
	}

	var moduleIDs []uint
	if err := tx.Model(&model.ModuleValidation{}).Where("chapitre_id IN ?", chapitreIDs).Pluck("id", &moduleIDs).Error; err != nil {
		return err
	}
	if err := deleteModuleChildren(tx, moduleIDs); err != nil {
		return err
	}
	if err := tx.Where("chapitre_id IN ?", chapitreIDs).Delete(&model.ModuleValidation{}).Error; err != nil {
		return err
	}

	if err := tx.Where("chapitre_id IN ?", chapitreIDs).Delete(&model.MiniJeu{}).Error; err != nil {
		return err
	}

	var exerciceIDs []uint
	if err := tx.Model(&model.Exercice{}).Where("chapitre_id IN ?", chapitreIDs).Pluck("id", &exerciceIDs).Error; err != nil {
		return err
	}
	if len(exerciceIDs) > 0 {
		if err := tx.Where("exercice_id IN ?", exerciceIDs).Delete(&model.QuestionReponse{}).Error; err != nil {
			return err
		}
	}
	return tx.Where("chapitre_id IN ?", chapitreIDs).Delete(&model.Exercice{}).Error
}

func deleteModuleChildren(tx *gorm.DB, moduleIDs []uint) error {
	if len(moduleIDs) == 0 {
		return nil
	}
	if err := tx.Where("module_validation_id IN ?", moduleIDs).Delete(&model.AnimationMaison{}).Error; err != nil {
		return err
	}
	return tx.Where("module_validation_id IN ?", moduleIDs).Delete(&model.MiniJeu{}).Error
}
