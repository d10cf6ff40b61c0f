package model

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

// GameKind discriminates the eight quiz variants a MiniJeu can hold.
type GameKind string

const (
	GameQCMMulti        GameKind = "QCM_Multi"
	GameQCMUnique       GameKind = "QCM_unique"
	GameQCMCalcul       GameKind = "QCM_calcul"
	GameTexteATrou      GameKind = "Texte_a_trou"
	GameOrdre           GameKind = "Ordre"
	GameOrdreGroupe     GameKind = "Ordre_groupe"
	GameAssocier        GameKind = "Associer"
	GameQuestionOuverte GameKind = "Question_ouverte"
)

func (k GameKind) Valid() bool {
	switch k {
	case GameQCMMulti, GameQCMUnique, GameQCMCalcul, GameTexteATrou,
		GameOrdre, GameOrdreGroupe, GameAssocier, GameQuestionOuverte:
		return true
	}
	return false
}

// Answer display modes (type_reponses).
const (
	ReponseTexte  = "TEXTE"
	ReponseImage  = "IMAGE"
	ReponseGraphe = "graphe"
)

// MiniJeu attaches to either a Chapitre or a ModuleValidation, never both.
// Kind-specific data lives in Payload as one typed variant per GameKind.
// swagger:model MiniJeu
type MiniJeu struct {
	BaseModel
	Type               GameKind       `gorm:"size:50;not null" json:"type"`
	TypeReponses       *string        `gorm:"size:50" json:"type_reponses"`
	Question           string         `gorm:"type:text;not null" json:"question"`
	ImageQuestion      *string        `gorm:"type:text" json:"image_question"`
	Explication        *string        `gorm:"type:text" json:"explication"`
	Ordre              *int           `json:"ordre"`
	ChapitreID         *uint          `gorm:"index" json:"chapitre_id"`
	ModuleValidationID *uint          `gorm:"index" json:"module_validation_id"`
	Payload            datatypes.JSON `gorm:"type:json" json:"-"`
}

func (MiniJeu) TableName() string {
	return "mini_jeu"
}

// GamePayload is the kind-specific slice of a MiniJeu. One struct per game
// kind replaces the original schema's sixteen nullable text columns; the
// flat snake_case keys are kept as JSON tags so the wire format does not
// change.
type GamePayload interface {
	Kind() GameKind
}

// Multiple-choice, several correct answers; answers are semicolon-joined.
type QCMMultiPayload struct {
	BonnesReponses    *string `json:"bonnes_reponses"`
	MauvaisesReponses *string `json:"mauvaises_reponses"`
}

func (QCMMultiPayload) Kind() GameKind { return GameQCMMulti }

// Multiple-choice, single correct answer.
type QCMUniquePayload struct {
	Reponse           *string `json:"reponse"`
	MauvaisesReponses *string `json:"mauvaises_reponses"`
}

func (QCMUniquePayload) Kind() GameKind { return GameQCMUnique }

// Computed question: a formula, a JSON variable map and a wrong-answer
// generator hint.
type QCMCalculPayload struct {
	Formule       *string `json:"formule"`
	TypeVariable  *string `json:"type_variable"`
	FausseReponse *string `json:"fausse_reponse"`
}

func (QCMCalculPayload) Kind() GameKind { return GameQCMCalcul }

// Cloze text plus distractors.
type TexteATrouPayload struct {
	Texte       *string `json:"texte"`
	Distracteur *string `json:"distracteur"`
}

func (TexteATrouPayload) Kind() GameKind { return GameTexteATrou }

// Put items in order.
type OrdrePayload struct {
	Consigne *string `json:"consigne"`
	Liste    *string `json:"liste"`
}

func (OrdrePayload) Kind() GameKind { return GameOrdre }

// Put items in order within groups; groups are a JSON object.
type OrdreGroupePayload struct {
	Consigne       *string `json:"consigne"`
	Liste          *string `json:"liste"`
	ListeParGroupe *string `json:"liste_par_groupe"`
}

func (OrdreGroupePayload) Kind() GameKind { return GameOrdreGroupe }

// Pair matching; propositions is a JSON list of pairs.
type AssocierPayload struct {
	Type1        *string `json:"type_1"`
	Type2        *string `json:"type_2"`
	Propositions *string `json:"propositions"`
}

func (AssocierPayload) Kind() GameKind { return GameAssocier }

// Free-text question with a semicolon-joined list of accepted answers.
type QuestionOuvertePayload struct {
	Reponses    *string `json:"reponses"`
	TypeReponse *string `json:"type_reponse"`
}

func (QuestionOuvertePayload) Kind() GameKind { return GameQuestionOuverte }

// payloadWireKeys is the closed set of flat kind-specific keys the API
// exchanges. Every serialized mini-game carries all of them, null when the
// key does not belong to its kind.
var payloadWireKeys = []string{
	"bonnes_reponses", "mauvaises_reponses", "reponse",
	"formule", "type_variable", "fausse_reponse",
	"texte", "distracteur",
	"consigne", "liste", "liste_par_groupe",
	"type_1", "type_2", "propositions",
	"reponses", "type_reponse",
}

// IsPayloadKey reports whether key is one of the flat kind-specific keys.
func IsPayloadKey(key string) bool {
	for _, k := range payloadWireKeys {
		if k == key {
			return true
		}
	}
	return false
}

func newPayload(kind GameKind) (GamePayload, error) {
	switch kind {
	case GameQCMMulti:
		return &QCMMultiPayload{}, nil
	case GameQCMUnique:
		return &QCMUniquePayload{}, nil
	case GameQCMCalcul:
		return &QCMCalculPayload{}, nil
	case GameTexteATrou:
		return &TexteATrouPayload{}, nil
	case GameOrdre:
		return &OrdrePayload{}, nil
	case GameOrdreGroupe:
		return &OrdreGroupePayload{}, nil
	case GameAssocier:
		return &AssocierPayload{}, nil
	case GameQuestionOuverte:
		return &QuestionOuvertePayload{}, nil
	}
	return nil, fmt.Errorf("type de mini jeu inconnu: %q", kind)
}

// DecodePayload parses the stored JSON column into the typed variant for
// kind. An empty column yields the zero payload.
func DecodePayload(kind GameKind, raw datatypes.JSON) (GamePayload, error) {
	p, err := newPayload(kind)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, err
	}
	return p, nil
}

func EncodePayload(p GamePayload) (datatypes.JSON, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

// PayloadFieldError reports a kind-specific key carrying something other
// than a string or null.
type PayloadFieldError struct {
	Key string
}

func (e *PayloadFieldError) Error() string {
	return fmt.Sprintf("Le champ %s doit être une chaîne.", e.Key)
}

// PayloadFromWire builds the typed payload for kind out of the flat fields
// of an API body. Keys that belong to another kind are dropped; a present
// key with a non-string, non-null value is rejected.
func PayloadFromWire(kind GameKind, fields map[string]any) (GamePayload, error) {
	kv := make(map[string]*string, len(payloadWireKeys))
	for _, key := range payloadWireKeys {
		v, ok := fields[key]
		if !ok {
			continue
		}
		if v == nil {
			kv[key] = nil
			continue
		}
		s, ok := v.(string)
		if !ok {
			return nil, &PayloadFieldError{Key: key}
		}
		kv[key] = &s
	}

	raw, err := json.Marshal(kv)
	if err != nil {
		return nil, err
	}
	p, err := newPayload(kind)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, err
	}
	return p, nil
}

// WireFields flattens a payload back to the full key set, nil for keys the
// kind does not carry.
func WireFields(p GamePayload) map[string]*string {
	out := make(map[string]*string, len(payloadWireKeys))
	for _, key := range payloadWireKeys {
		out[key] = nil
	}
	if p == nil {
		return out
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return out
	}
	var kv map[string]*string
	if err := json.Unmarshal(raw, &kv); err != nil {
		return out
	}
	for k, v := range kv {
		out[k] = v
	}
	return out
}

// WireMap is the flat API shape of the mini-game, common columns plus every
// kind-specific key (null when unset). A payload column that no longer
// decodes degrades to all-null kind keys instead of failing the response.
func (m *MiniJeu) WireMap() map[string]any {
	p, _ := DecodePayload(m.Type, m.Payload)

	out := map[string]any{
		"id":                   m.ID,
		"type":                 m.Type,
		"type_reponses":        m.TypeReponses,
		"question":             m.Question,
		"image_question":       m.ImageQuestion,
		"explication":          m.Explication,
		"ordre":                m.Ordre,
		"chapitre_id":          m.ChapitreID,
		"module_validation_id": m.ModuleValidationID,
	}
	for k, v := range WireFields(p) {
		out[k] = v
	}
	return out
}
