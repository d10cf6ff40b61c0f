package service

import (
	"context"

	"eduportal_backend/internal/model"
	"eduportal_backend/internal/repository"
)

type NiveauService struct {
	NiveauRepo   *repository.NiveauRepository
	ChapitreRepo *repository.ChapitreRepository
	Cache        ChapitreCache
}

func NewNiveauService(niveauRepo *repository.NiveauRepository, chapitreRepo *repository.ChapitreRepository, cache ChapitreCache) *NiveauService {
	return &NiveauService{NiveauRepo: niveauRepo, ChapitreRepo: chapitreRepo, Cache: cache}
}

// List returns every level with its subject and enrolled-user counts,
// the shape the admin level picker renders.
func (s *NiveauService) List() ([]map[string]any, error) {
	niveaux, err := s.NiveauRepo.FindAll()
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(niveaux))
	for i := range niveaux {
		n := &niveaux[i]
		out = append(out, map[string]any{
			"id":            n.ID,
			"nom":           n.Nom,
			"matieresCount": len(n.Matieres),
			"usersCount":    len(n.Users),
		})
	}
	return out, nil
}

func (s *NiveauService) Create(nom string) (map[string]any, error) {
	niveau := &model.Niveau{Nom: nom}
	if err := s.NiveauRepo.Create(niveau); err != nil {
		return nil, err
	}
	return serializeNiveau(niveau), nil
}

func (s *NiveauService) Get(id uint) (map[string]any, error) {
	niveau, err := s.NiveauRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	matieres := make([]map[string]any, 0, len(niveau.Matieres))
	for i := range niveau.Matieres {
		m := &niveau.Matieres[i]
		matieres = append(matieres, map[string]any{
			"id":          m.ID,
			"nom":         m.Nom,
			"description": m.Description,
		})
	}
	out := serializeNiveau(niveau)
	out["matieres"] = matieres
	return out, nil
}

func (s *NiveauService) Update(id uint, fields map[string]any) (map[string]any, error) {
	niveau, err := s.NiveauRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	patchName(&niveau.Nom, fields, "nom")
	if err := s.NiveauRepo.Update(niveau); err != nil {
		return nil, err
	}
	return serializeNiveau(niveau), nil
}

// Delete cascades through the whole branch. The ids of the descendant
// chapters are collected first: their cached detail payloads must not
// outlive the rows.
func (s *NiveauService) Delete(ctx context.Context, id uint) error {
	if _, err := s.NiveauRepo.FindByID(id); err != nil {
		return notFound(err)
	}
	chapitreIDs, err := s.ChapitreRepo.IDsByNiveau(id)
	if err != nil {
		return err
	}
	if err := s.NiveauRepo.Delete(id); err != nil {
		return err
	}
	for _, chapitreID := range chapitreIDs {
		s.Cache.InvalidateChapitre(ctx, chapitreID)
	}
	return nil
}
