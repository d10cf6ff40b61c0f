package service

import (
	"context"

	"eduportal_backend/internal/model"
	"eduportal_backend/internal/repository"
)

type QuestionReponseService struct {
	QuestionRepo *repository.QuestionReponseRepository
	ExerciceRepo *repository.ExerciceRepository
	Cache        ChapitreCache
}

func NewQuestionReponseService(questionRepo *repository.QuestionReponseRepository, exerciceRepo *repository.ExerciceRepository, cache ChapitreCache) *QuestionReponseService {
	return &QuestionReponseService{QuestionRepo: questionRepo, ExerciceRepo: exerciceRepo, Cache: cache}
}

func (s *QuestionReponseService) List(exerciceID *uint) ([]map[string]any, error) {
	questions, err := s.QuestionRepo.FindAll(exerciceID)
	if err != nil {
		return nil, err
	}
	return serializeQuestionsReponses(questions), nil
}

func (s *QuestionReponseService) Create(ctx context.Context, contenu string, ordre *int, exerciceID uint) (map[string]any, error) {
	exercice, err := s.ExerciceRepo.FindByID(exerciceID)
	if err != nil {
		return nil, notFound(err)
	}
	question := &model.QuestionReponse{Contenu: contenu, Ordre: ordre, ExerciceID: exerciceID}
	if err := s.QuestionRepo.Create(question); err != nil {
		return nil, err
	}
	s.Cache.InvalidateChapitre(ctx, exercice.ChapitreID)
	return serializeQuestionReponse(question), nil
}

func (s *QuestionReponseService) Get(id uint) (map[string]any, error) {
	question, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	return serializeQuestionReponse(question), nil
}

func (s *QuestionReponseService) Update(ctx context.Context, id uint, fields map[string]any) (map[string]any, error) {
	question, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	patchName(&question.Contenu, fields, "contenu")
	patchIntPtr(&question.Ordre, fields, "ordre")
	if err := s.QuestionRepo.Update(question); err != nil {
		return nil, err
	}
	s.invalidateByExercice(ctx, question.ExerciceID)
	return serializeQuestionReponse(question), nil
}

func (s *QuestionReponseService) Delete(ctx context.Context, id uint) error {
	question, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		return notFound(err)
	}
	if err := s.QuestionRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateByExercice(ctx, question.ExerciceID)
	return nil
}

func (s *QuestionReponseService) invalidateByExercice(ctx context.Context, exerciceID uint) {
	exercice, err := s.ExerciceRepo.FindByID(exerciceID)
	if err != nil {
		return
	}
	s.Cache.InvalidateChapitre(ctx, exercice.ChapitreID)
}
