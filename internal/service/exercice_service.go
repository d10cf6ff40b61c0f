package service

import (
	"context"

	"eduportal_backend/internal/model"
	"eduportal_backend/internal/repository"
)

type ExerciceService struct {
	ExerciceRepo *repository.ExerciceRepository
	ChapitreRepo *repository.ChapitreRepository
	Cache        ChapitreCache
}

func NewExerciceService(exerciceRepo *repository.ExerciceRepository, chapitreRepo *repository.ChapitreRepository, cache ChapitreCache) *ExerciceService {
	return &ExerciceService{ExerciceRepo: exerciceRepo, ChapitreRepo: chapitreRepo, Cache: cache}
}

func (s *ExerciceService) List(chapitreID *uint) ([]map[string]any, error) {
	exercices, err := s.ExerciceRepo.FindAll(chapitreID)
	if err != nil {
		return nil, err
	}
	return serializeExercices(exercices), nil
}

func (s *ExerciceService) Create(ctx context.Context, contenu string, ordre *int, chapitreID uint) (map[string]any, error) {
	if _, err := s.ChapitreRepo.FindByID(chapitreID); err != nil {
		return nil, notFound(err)
	}
	exercice := &model.Exercice{Contenu: contenu, Ordre: ordre, ChapitreID: chapitreID}
	if err := s.ExerciceRepo.Create(exercice); err != nil {
		return nil, err
	}
	s.Cache.InvalidateChapitre(ctx, chapitreID)
	exercice.QuestionsReponses = []model.QuestionReponse{}
	return serializeExercice(exercice), nil
}

func (s *ExerciceService) Get(id uint) (map[string]any, error) {
	exercice, err := s.ExerciceRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	return serializeExercice(exercice), nil
}

func (s *ExerciceService) Update(ctx context.Context, id uint, fields map[string]any) (map[string]any, error) {
	exercice, err := s.ExerciceRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	patchName(&exercice.Contenu, fields, "contenu")
	patchIntPtr(&exercice.Ordre, fields, "ordre")
	if err := s.ExerciceRepo.Update(exercice); err != nil {
		return nil, err
	}
	s.Cache.InvalidateChapitre(ctx, exercice.ChapitreID)
	return serializeExercice(exercice), nil
}

func (s *ExerciceService) Delete(ctx context.Context, id uint) error {
	exercice, err := s.ExerciceRepo.FindByID(id)
	if err != nil {
		return notFound(err)
	}
	if err := s.ExerciceRepo.Delete(id); err != nil {
		return err
	}
	s.Cache.InvalidateChapitre(ctx, exercice.ChapitreID)
	return nil
}
