package service

import (
	"context"

	"eduportal_backend/internal/model"
	"eduportal_backend/internal/repository"
)

type ParagrapheService struct {
	ParagrapheRepo *repository.ParagrapheRepository
	ChapitreRepo   *repository.ChapitreRepository
	Cache          ChapitreCache
}

func NewParagrapheService(paragrapheRepo *repository.ParagrapheRepository, chapitreRepo *repository.ChapitreRepository, cache ChapitreCache) *ParagrapheService {
	return &ParagrapheService{ParagrapheRepo: paragrapheRepo, ChapitreRepo: chapitreRepo, Cache: cache}
}

func (s *ParagrapheService) List(chapitreID *uint) ([]map[string]any, error) {
	paragraphes, err := s.ParagrapheRepo.FindAll(chapitreID)
	if err != nil {
		return nil, err
	}
	return serializeParagraphes(paragraphes), nil
}

func (s *ParagrapheService) Create(ctx context.Context, contenu string, ordre *int, chapitreID uint) (map[string]any, error) {
	if _, err := s.ChapitreRepo.FindByID(chapitreID); err != nil {
		return nil, notFound(err)
	}
	paragraphe := &model.Paragraphe{Contenu: contenu, Ordre: ordre, ChapitreID: chapitreID}
	if err := s.ParagrapheRepo.Create(paragraphe); err != nil {
		return nil, err
	}
	s.Cache.InvalidateChapitre(ctx, chapitreID)
	return serializeParagraphe(paragraphe), nil
}

func (s *ParagrapheService) Get(id uint) (map[string]any, error) {
	paragraphe, err := s.ParagrapheRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	return serializeParagraphe(paragraphe), nil
}

func (s *ParagrapheService) Update(ctx context.Context, id uint, fields map[string]any) (map[string]any, error) {
	paragraphe, err := s.ParagrapheRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	patchName(&paragraphe.Contenu, fields, "contenu")
	patchIntPtr(&paragraphe.Ordre, fields, "ordre")
	if err := s.ParagrapheRepo.Update(paragraphe); err != nil {
		return nil, err
	}
	s.Cache.InvalidateChapitre(ctx, paragraphe.ChapitreID)
	return serializeParagraphe(paragraphe), nil
}

func (s *ParagrapheService) Delete(ctx context.Context, id uint) error {
	paragraphe, err := s.ParagrapheRepo.FindByID(id)
	if err != nil {
		return notFound(err)
	}
	if err := s.ParagrapheRepo.Delete(id); err != nil {
		return err
	}
	s.Cache.InvalidateChapitre(ctx, paragraphe.ChapitreID)
	return nil
}
