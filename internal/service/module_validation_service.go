package service

import (
	"context"

	"eduportal_backend/internal/model"
	"eduportal_backend/internal/repository"
)

type ModuleValidationService struct {
	ModuleRepo   *repository.ModuleValidationRepository
	ChapitreRepo *repository.ChapitreRepository
	Cache        ChapitreCache
}

func NewModuleValidationService(moduleRepo *repository.ModuleValidationRepository, chapitreRepo *repository.ChapitreRepository, cache ChapitreCache) *ModuleValidationService {
	return &ModuleValidationService{ModuleRepo: moduleRepo, ChapitreRepo: chapitreRepo, Cache: cache}
}

// List includes per-module child counts so the editor sidebar can badge
// modules without loading their content.
func (s *ModuleValidationService) List(chapitreID *uint) ([]map[string]any, error) {
	modules, err := s.ModuleRepo.FindAll(chapitreID)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(modules))
	for i := range modules {
		m := &modules[i]
		item := serializeModuleValidation(m)
		item["animations_maison_count"] = len(m.AnimationsMaison)
		item["mini_jeux_count"] = len(m.MiniJeux)
		out = append(out, item)
	}
	return out, nil
}

func (s *ModuleValidationService) Create(ctx context.Context, contenu *string, chapitreID uint) (map[string]any, error) {
	if _, err := s.ChapitreRepo.FindByID(chapitreID); err != nil {
		return nil, notFound(err)
	}
	module := &model.ModuleValidation{Contenu: contenu, ChapitreID: chapitreID}
	if err := s.ModuleRepo.Create(module); err != nil {
		return nil, err
	}
	s.Cache.InvalidateChapitre(ctx, chapitreID)
	return serializeModuleValidation(module), nil
}

func (s *ModuleValidationService) Get(id uint) (map[string]any, error) {
	module, err := s.ModuleRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	return serializeModuleValidationDetail(module), nil
}

func (s *ModuleValidationService) Update(ctx context.Context, id uint, fields map[string]any) (map[string]any, error) {
	module, err := s.ModuleRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	patchStringPtr(&module.Contenu, fields, "contenu")
	if err := s.ModuleRepo.Update(module); err != nil {
		return nil, err
	}
	s.Cache.InvalidateChapitre(ctx, module.ChapitreID)
	return serializeModuleValidation(module), nil
}

func (s *ModuleValidationService) Delete(ctx context.Context, id uint) error {
	module, err := s.ModuleRepo.FindByID(id)
	if err != nil {
		return notFound(err)
	}
	if err := s.ModuleRepo.Delete(id); err != nil {
		return err
	}
	s.Cache.InvalidateChapitre(ctx, module.ChapitreID)
	return nil
}
