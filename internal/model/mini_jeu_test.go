package model

import (
	"errors"
	"testing"

	"gorm.io/datatypes"
)

func strptr(s string) *string { return &s }

func TestGameKindValid(t *testing.T) {
	for _, k := range []GameKind{
		GameQCMMulti, GameQCMUnique, GameQCMCalcul, GameTexteATrou,
		GameOrdre, GameOrdreGroupe, GameAssocier, GameQuestionOuverte,
	} {
		if !k.Valid() {
			t.Errorf("%s should be valid", k)
		}
	}
	if GameKind("Pendu").Valid() {
		t.Error("unknown kind reported valid")
	}
	if GameKind("").Valid() {
		t.Error("empty kind reported valid")
	}
}

func TestPayloadFromWireKeepsOwnKeysOnly(t *testing.T) {
	p, err := PayloadFromWire(GameQCMUnique, map[string]any{
		"reponse":            "4",
		"mauvaises_reponses": "3;5",
		// Keys of other kinds are silently dropped.
		"formule": "a+b",
		"texte":   "ignoré",
	})
	if err != nil {
		t.Fatalf("PayloadFromWire: %v", err)
	}
	qcm, ok := p.(*QCMUniquePayload)
	if !ok {
		t.Fatalf("payload type = %T", p)
	}
	if qcm.Reponse == nil || *qcm.Reponse != "4" {
		t.Fatalf("reponse = %v", qcm.Reponse)
	}
	if qcm.MauvaisesReponses == nil || *qcm.MauvaisesReponses != "3;5" {
		t.Fatalf("mauvaises_reponses = %v", qcm.MauvaisesReponses)
	}
}

func TestPayloadFromWireExplicitNull(t *testing.T) {
	p, err := PayloadFromWire(GameTexteATrou, map[string]any{
		"texte":       "Le [chat] dort.",
		"distracteur": nil,
	})
	if err != nil {
		t.Fatalf("PayloadFromWire: %v", err)
	}
	trou := p.(*TexteATrouPayload)
	if trou.Texte == nil || *trou.Texte != "Le [chat] dort." {
		t.Fatalf("texte = %v", trou.Texte)
	}
	if trou.Distracteur != nil {
		t.Fatalf("distracteur = %v, want nil", trou.Distracteur)
	}
}

func TestPayloadFromWireRejectsNonString(t *testing.T) {
	_, err := PayloadFromWire(GameOrdre, map[string]any{
		"consigne": "Classer",
		"liste":    float64(42),
	})
	var fieldErr *PayloadFieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("err = %v, want *PayloadFieldError", err)
	}
	if fieldErr.Key != "liste" {
		t.Fatalf("key = %q, want liste", fieldErr.Key)
	}
	if fieldErr.Error() != "Le champ liste doit être une chaîne." {
		t.Fatalf("message = %q", fieldErr.Error())
	}
}

func TestPayloadFromWireUnknownKind(t *testing.T) {
	if _, err := PayloadFromWire(GameKind("Pendu"), nil); err == nil {
		t.Fatal("expected unknown kind to fail")
	}
}

func TestEncodeDecodePayloadRoundTrip(t *testing.T) {
	in := &AssocierPayload{
		Type1:        strptr("TEXTE"),
		Type2:        strptr("IMAGE"),
		Propositions: strptr(`[["chat","cat.png"]]`),
	}
	raw, err := EncodePayload(in)
	if err != nil {
		t.Fatalf("EncodePayload: %v", err)
	}

	out, err := DecodePayload(GameAssocier, raw)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	back := out.(*AssocierPayload)
	if back.Type1 == nil || *back.Type1 != "TEXTE" {
		t.Fatalf("type_1 = %v", back.Type1)
	}
	if back.Propositions == nil || *back.Propositions != `[["chat","cat.png"]]` {
		t.Fatalf("propositions = %v", back.Propositions)
	}
}

func TestDecodePayloadEmptyColumn(t *testing.T) {
	p, err := DecodePayload(GameQCMCalcul, nil)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	calc := p.(*QCMCalculPayload)
	if calc.Formule != nil || calc.TypeVariable != nil || calc.FausseReponse != nil {
		t.Fatalf("empty column should yield the zero payload: %+v", calc)
	}
}

func TestWireFieldsCarriesFullKeySet(t *testing.T) {
	fields := WireFields(&QCMUniquePayload{Reponse: strptr("4")})
	if len(fields) != len(payloadWireKeys) {
		t.Fatalf("fields = %d keys, want %d", len(fields), len(payloadWireKeys))
	}
	if fields["reponse"] == nil || *fields["reponse"] != "4" {
		t.Fatalf("reponse = %v", fields["reponse"])
	}
	// Keys of other kinds are present but null.
	if fields["formule"] != nil {
		t.Fatalf("formule = %v, want nil", fields["formule"])
	}

	for _, key := range payloadWireKeys {
		if _, ok := fields[key]; !ok {
			t.Fatalf("key %s missing from wire fields", key)
		}
	}
}

func TestWireFieldsNilPayload(t *testing.T) {
	fields := WireFields(nil)
	for key, v := range fields {
		if v != nil {
			t.Fatalf("key %s = %v, want nil", key, *v)
		}
	}
}

func TestIsPayloadKey(t *testing.T) {
	if !IsPayloadKey("bonnes_reponses") || !IsPayloadKey("type_reponse") {
		t.Fatal("known payload keys not recognized")
	}
	if IsPayloadKey("question") || IsPayloadKey("type_reponses") || IsPayloadKey("") {
		t.Fatal("common columns must not count as payload keys")
	}
}

func TestWireMap(t *testing.T) {
	ordre := 3
	chapID := uint(12)
	raw, err := EncodePayload(&QCMUniquePayload{Reponse: strptr("4"), MauvaisesReponses: strptr("3;5")})
	if err != nil {
		t.Fatalf("EncodePayload: %v", err)
	}
	m := &MiniJeu{
		Type:       GameQCMUnique,
		Question:   "Combien font 2+2 ?",
		Ordre:      &ordre,
		ChapitreID: &chapID,
		Payload:    raw,
	}
	m.ID = 7

	out := m.WireMap()
	if out["id"] != uint(7) {
		t.Fatalf("id = %v", out["id"])
	}
	if out["type"] != GameQCMUnique {
		t.Fatalf("type = %v", out["type"])
	}
	if out["question"] != "Combien font 2+2 ?" {
		t.Fatalf("question = %v", out["question"])
	}
	rep, ok := out["reponse"].(*string)
	if !ok || rep == nil || *rep != "4" {
		t.Fatalf("reponse = %v", out["reponse"])
	}
	if v := out["module_validation_id"].(*uint); v != nil {
		t.Fatalf("module_validation_id = %v, want nil", *v)
	}
	// Foreign kind keys ride along as nulls.
	if v := out["consigne"].(*string); v != nil {
		t.Fatalf("consigne = %v, want nil", *v)
	}
}

func TestWireMapCorruptPayloadDegrades(t *testing.T) {
	m := &MiniJeu{
		Type:     GameOrdre,
		Question: "Classer les nombres.",
		Payload:  datatypes.JSON(`{"consigne":`),
	}
	out := m.WireMap()
	if out["question"] != "Classer les nombres." {
		t.Fatalf("question = %v", out["question"])
	}
	if v := out["consigne"].(*string); v != nil {
		t.Fatalf("consigne = %v, want nil on corrupt payload", *v)
	}
}
