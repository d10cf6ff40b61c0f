package service

import (
	"context"

	"eduportal_backend/internal/model"
	"eduportal_backend/internal/repository"
)

type MatiereService struct {
	MatiereRepo *repository.MatiereRepository
	NiveauRepo  *repository.NiveauRepository
	Cache       ChapitreCache
}

func NewMatiereService(matiereRepo *repository.MatiereRepository, niveauRepo *repository.NiveauRepository, cache ChapitreCache) *MatiereService {
	return &MatiereService{MatiereRepo: matiereRepo, NiveauRepo: niveauRepo, Cache: cache}
}

func (s *MatiereService) List(niveauID *uint) ([]map[string]any, error) {
	matieres, err := s.MatiereRepo.FindAll(niveauID)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(matieres))
	for i := range matieres {
		out = append(out, serializeMatiere(&matieres[i]))
	}
	return out, nil
}

func (s *MatiereService) Create(nom string, description *string, niveauID uint) (map[string]any, error) {
	niveau, err := s.NiveauRepo.FindByID(niveauID)
	if err != nil {
		return nil, notFound(err)
	}
	matiere := &model.Matiere{Nom: nom, Description: description, NiveauID: niveauID}
	if err := s.MatiereRepo.Create(matiere); err != nil {
		return nil, err
	}
	matiere.Niveau = niveau
	return serializeMatiere(matiere), nil
}

func (s *MatiereService) Get(id uint) (map[string]any, error) {
	matiere, err := s.MatiereRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	chapitres := make([]map[string]any, 0, len(matiere.Chapitres))
	for i := range matiere.Chapitres {
		c := &matiere.Chapitres[i]
		chapitres = append(chapitres, map[string]any{
			"id":    c.ID,
			"titre": c.Titre,
			"ordre": c.Ordre,
		})
	}
	out := serializeMatiere(matiere)
	out["chapitres"] = chapitres
	return out, nil
}

// Update patches the subject and evicts its chapters' cached details,
// which embed the subject name.
func (s *MatiereService) Update(ctx context.Context, id uint, fields map[string]any) (map[string]any, error) {
	matiere, err := s.MatiereRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	patchName(&matiere.Nom, fields, "nom")
	patchStringPtr(&matiere.Description, fields, "description")
	if err := s.MatiereRepo.Update(matiere); err != nil {
		return nil, err
	}
	for i := range matiere.Chapitres {
		s.Cache.InvalidateChapitre(ctx, matiere.Chapitres[i].ID)
	}
	return serializeMatiere(matiere), nil
}

func (s *MatiereService) Delete(ctx context.Context, id uint) error {
	matiere, err := s.MatiereRepo.FindByID(id)
	if err != nil {
		return notFound(err)
	}
	if err := s.MatiereRepo.Delete(id); err != nil {
		return err
	}
	for i := range matiere.Chapitres {
		s.Cache.InvalidateChapitre(ctx, matiere.Chapitres[i].ID)
	}
	return nil
}
