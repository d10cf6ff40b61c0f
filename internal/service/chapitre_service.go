package service

import (
	"context"

	"eduportal_backend/internal/model"
	"eduportal_backend/internal/repository"
)

type ChapitreService struct {
	ChapitreRepo *repository.ChapitreRepository
	MatiereRepo  *repository.MatiereRepository
	Cache        ChapitreCache
}

func NewChapitreService(chapitreRepo *repository.ChapitreRepository, matiereRepo *repository.MatiereRepository, cache ChapitreCache) *ChapitreService {
	return &ChapitreService{ChapitreRepo: chapitreRepo, MatiereRepo: matiereRepo, Cache: cache}
}

func (s *ChapitreService) List(matiereID *uint) ([]map[string]any, error) {
	chapitres, err := s.ChapitreRepo.FindAll(matiereID)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(chapitres))
	for i := range chapitres {
		out = append(out, serializeChapitre(&chapitres[i]))
	}
	return out, nil
}

func (s *ChapitreService) Create(titre string, contenu *string, ordre *int, matiereID uint) (map[string]any, error) {
	matiere, err := s.MatiereRepo.FindByID(matiereID)
	if err != nil {
		return nil, notFound(err)
	}
	chapitre := &model.Chapitre{Titre: titre, Contenu: contenu, Ordre: ordre, MatiereID: matiereID}
	if err := s.ChapitreRepo.Create(chapitre); err != nil {
		return nil, err
	}
	chapitre.Matiere = matiere
	return serializeChapitre(chapitre), nil
}

// Detail assembles the full editing payload of a chapter: the chapter
// itself plus the four ordered child collections the editor renders.
// The assembled map is cached until a mutation under the chapter lands.
func (s *ChapitreService) Detail(ctx context.Context, id uint) (map[string]any, error) {
	if payload, ok := s.Cache.GetChapitreDetail(ctx, id); ok {
		return payload, nil
	}

	chapitre, err := s.ChapitreRepo.FindDetail(id)
	if err != nil {
		return nil, notFound(err)
	}

	modules := make([]map[string]any, 0, len(chapitre.ModulesValidation))
	for i := range chapitre.ModulesValidation {
		modules = append(modules, serializeModuleValidationDetail(&chapitre.ModulesValidation[i]))
	}

	payload := serializeChapitre(chapitre)
	payload["paragraphes"] = serializeParagraphes(chapitre.Paragraphes)
	payload["modules_validation"] = modules
	payload["mini_jeux"] = serializeMiniJeux(chapitre.MiniJeux)
	payload["exercices"] = serializeExercices(chapitre.Exercices)

	s.Cache.SetChapitreDetail(ctx, id, payload)
	return payload, nil
}

func (s *ChapitreService) Update(ctx context.Context, id uint, fields map[string]any) (map[string]any, error) {
	chapitre, err := s.ChapitreRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	patchName(&chapitre.Titre, fields, "titre")
	patchStringPtr(&chapitre.Contenu, fields, "contenu")
	patchIntPtr(&chapitre.Ordre, fields, "ordre")
	if err := s.ChapitreRepo.Update(chapitre); err != nil {
		return nil, err
	}
	s.Cache.InvalidateChapitre(ctx, id)
	return serializeChapitre(chapitre), nil
}

func (s *ChapitreService) Delete(ctx context.Context, id uint) error {
	if _, err := s.ChapitreRepo.FindByID(id); err != nil {
		return notFound(err)
	}
	if err := s.ChapitreRepo.Delete(id); err != nil {
		return err
	}
	s.Cache.InvalidateChapitre(ctx, id)
	return nil
}
