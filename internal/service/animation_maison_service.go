package service

import (
	"context"

	"eduportal_backend/internal/model"
	"eduportal_backend/internal/repository"
)

type AnimationMaisonService struct {
	AnimationRepo *repository.AnimationMaisonRepository
	ModuleRepo    *repository.ModuleValidationRepository
	Cache         ChapitreCache
}

func NewAnimationMaisonService(animationRepo *repository.AnimationMaisonRepository, moduleRepo *repository.ModuleValidationRepository, cache ChapitreCache) *AnimationMaisonService {
	return &AnimationMaisonService{AnimationRepo: animationRepo, ModuleRepo: moduleRepo, Cache: cache}
}

func (s *AnimationMaisonService) List(moduleID *uint) ([]map[string]any, error) {
	animations, err := s.AnimationRepo.FindAll(moduleID)
	if err != nil {
		return nil, err
	}
	return serializeAnimationsMaison(animations), nil
}

func (s *AnimationMaisonService) Create(ctx context.Context, nom string, description, url *string, ordre *int, moduleID uint) (map[string]any, error) {
	module, err := s.ModuleRepo.FindByID(moduleID)
	if err != nil {
		return nil, notFound(err)
	}
	animation := &model.AnimationMaison{
		Nom:                nom,
		Description:        description,
		URL:                url,
		Ordre:              ordre,
		ModuleValidationID: moduleID,
	}
	if err := s.AnimationRepo.Create(animation); err != nil {
		return nil, err
	}
	s.Cache.InvalidateChapitre(ctx, module.ChapitreID)
	return serializeAnimationMaison(animation), nil
}

func (s *AnimationMaisonService) Get(id uint) (map[string]any, error) {
	animation, err := s.AnimationRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	return serializeAnimationMaison(animation), nil
}

func (s *AnimationMaisonService) Update(ctx context.Context, id uint, fields map[string]any) (map[string]any, error) {
	animation, err := s.AnimationRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	patchName(&animation.Nom, fields, "nom")
	patchStringPtr(&animation.Description, fields, "description")
	patchStringPtr(&animation.URL, fields, "url")
	patchIntPtr(&animation.Ordre, fields, "ordre")
	if err := s.AnimationRepo.Update(animation); err != nil {
		return nil, err
	}
	s.invalidateByModule(ctx, animation.ModuleValidationID)
	return serializeAnimationMaison(animation), nil
}

func (s *AnimationMaisonService) Delete(ctx context.Context, id uint) error {
	animation, err := s.AnimationRepo.FindByID(id)
	if err != nil {
		return notFound(err)
	}
	if err := s.AnimationRepo.Delete(id); err != nil {
		return err
	}
	s.invalidateByModule(ctx, animation.ModuleValidationID)
	return nil
}

func (s *AnimationMaisonService) invalidateByModule(ctx context.Context, moduleID uint) {
	module, err := s.ModuleRepo.FindByID(moduleID)
	if err != nil {
		return
	}
	s.Cache.InvalidateChapitre(ctx, module.ChapitreID)
}
