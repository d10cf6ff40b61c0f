package service

import (
	"context"
	"errors"

	"eduportal_backend/internal/model"
	"eduportal_backend/internal/repository"
)

// Attachment rule of mini-games: exactly one parent, chapter or
// validation module.
var ErrMiniJeuParent = errors.New("Le mini jeu doit être rattaché soit à un chapitre, soit à un module de validation.")

var ErrGameKindInvalid = errors.New("Le type de mini jeu est invalide.")

// MiniJeuInput carries the common columns of a create request; Fields is
// the raw body so the kind-specific flat keys can be picked out of it.
type MiniJeuInput struct {
	Type               string
	TypeReponses       *string
	Question           string
	ImageQuestion      *string
	Explication        *string
	Ordre              *int
	ChapitreID         *uint
	ModuleValidationID *uint
	Fields             map[string]any
}

type MiniJeuService struct {
	MiniJeuRepo  *repository.MiniJeuRepository
	ChapitreRepo *repository.ChapitreRepository
	ModuleRepo   *repository.ModuleValidationRepository
	Cache        ChapitreCache
}

func NewMiniJeuService(miniJeuRepo *repository.MiniJeuRepository, chapitreRepo *repository.ChapitreRepository, moduleRepo *repository.ModuleValidationRepository, cache ChapitreCache) *MiniJeuService {
	return &MiniJeuService{MiniJeuRepo: miniJeuRepo, ChapitreRepo: chapitreRepo, ModuleRepo: moduleRepo, Cache: cache}
}

func (s *MiniJeuService) List(chapitreID, moduleID *uint) ([]map[string]any, error) {
	miniJeux, err := s.MiniJeuRepo.FindAll(chapitreID, moduleID)
	if err != nil {
		return nil, err
	}
	return serializeMiniJeux(miniJeux), nil
}

func (s *MiniJeuService) Create(ctx context.Context, in MiniJeuInput) (map[string]any, error) {
	kind := model.GameKind(in.Type)
	if !kind.Valid() {
		return nil, ErrGameKindInvalid
	}
	if (in.ChapitreID == nil) == (in.ModuleValidationID == nil) {
		return nil, ErrMiniJeuParent
	}

	var chapitreID uint
	if in.ChapitreID != nil {
		if _, err := s.ChapitreRepo.FindByID(*in.ChapitreID); err != nil {
			return nil, notFound(err)
		}
		chapitreID = *in.ChapitreID
	} else {
		module, err := s.ModuleRepo.FindByID(*in.ModuleValidationID)
		if err != nil {
			return nil, notFound(err)
		}
		chapitreID = module.ChapitreID
	}

	payload, err := model.PayloadFromWire(kind, in.Fields)
	if err != nil {
		return nil, err
	}
	raw, err := model.EncodePayload(payload)
	if err != nil {
		return nil, err
	}

	miniJeu := &model.MiniJeu{
		Type:               kind,
		TypeReponses:       in.TypeReponses,
		Question:           in.Question,
		ImageQuestion:      in.ImageQuestion,
		Explication:        in.Explication,
		Ordre:              in.Ordre,
		ChapitreID:         in.ChapitreID,
		ModuleValidationID: in.ModuleValidationID,
		Payload:            raw,
	}
	if err := s.MiniJeuRepo.Create(miniJeu); err != nil {
		return nil, err
	}
	s.Cache.InvalidateChapitre(ctx, chapitreID)
	return miniJeu.WireMap(), nil
}

func (s *MiniJeuService) Get(id uint) (map[string]any, error) {
	miniJeu, err := s.MiniJeuRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err)
	}
	return miniJeu.WireMap(), nil
}

// Update patches the common columns and merges the kind-specific keys
// present in the body over the stored payload. A type change re-reads the
// merged keys through the new kind, dropping keys it does not carry.
func (s *MiniJeuService) Update(ctx context.Context, id uint, fields map[string]any) (map[string]any, error) {
	miniJeu, err := s.MiniJeuRepo.FindByID(id)
	if err != nil {
		return nil, notFound(err)
	}

	kind := miniJeu.Type
	if v, ok := fields["type"]; ok {
		if s, ok := v.(string); ok && s != "" {
			next := model.GameKind(s)
			if !next.Valid() {
				return nil, ErrGameKindInvalid
			}
			kind = next
		}
	}

	patchStringPtr(&miniJeu.TypeReponses, fields, "type_reponses")
	patchName(&miniJeu.Question, fields, "question")
	patchStringPtr(&miniJeu.ImageQuestion, fields, "image_question")
	patchStringPtr(&miniJeu.Explication, fields, "explication")
	patchIntPtr(&miniJeu.Ordre, fields, "ordre")

	merged, err := s.mergedPayloadFields(miniJeu, fields)
	if err != nil {
		return nil, err
	}
	payload, err := model.PayloadFromWire(kind, merged)
	if err != nil {
		return nil, err
	}
	raw, err := model.EncodePayload(payload)
	if err != nil {
		return nil, err
	}
	miniJeu.Type = kind
	miniJeu.Payload = raw

	if err := s.MiniJeuRepo.Update(miniJeu); err != nil {
		return nil, err
	}
	if chapitreID, ok := s.parentChapitre(miniJeu); ok {
		s.Cache.InvalidateChapitre(ctx, chapitreID)
	}
	return miniJeu.WireMap(), nil
}

func (s *MiniJeuService) Delete(ctx context.Context, id uint) error {
	miniJeu, err := s.MiniJeuRepo.FindByID(id)
	if err != nil {
		return notFound(err)
	}
	if err := s.MiniJeuRepo.Delete(id); err != nil {
		return err
	}
	if chapitreID, ok := s.parentChapitre(miniJeu); ok {
		s.Cache.InvalidateChapitre(ctx, chapitreID)
	}
	return nil
}

// mergedPayloadFields lays the stored payload out as wire keys, then
// overlays the keys present in the request body.
func (s *MiniJeuService) mergedPayloadFields(miniJeu *model.MiniJeu, fields map[string]any) (map[string]any, error) {
	current, _ := model.DecodePayload(miniJeu.Type, miniJeu.Payload)
	merged := make(map[string]any)
	for k, v := range model.WireFields(current) {
		if v != nil {
			merged[k] = *v
		}
	}
	for k, v := range fields {
		if model.IsPayloadKey(k) {
			merged[k] = v
		}
	}
	return merged, nil
}

func (s *MiniJeuService) parentChapitre(miniJeu *model.MiniJeu) (uint, bool) {
	if miniJeu.ChapitreID != nil {
		return *miniJeu.ChapitreID, true
	}
	if miniJeu.ModuleValidationID != nil {
		module, err := s.ModuleRepo.FindByID(*miniJeu.ModuleValidationID)
		if err != nil {
			return 0, false
		}
		return module.ChapitreID, true
	}
	return 0, false
}
