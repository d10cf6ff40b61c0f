package service

import (
	"context"
	"errors"
	"testing"

	"eduportal_backend/internal/model"
	"eduportal_backend/internal/repository"
	"eduportal_backend/internal/util"

	"gorm.io/gorm"
)

func newChapitreService(db *gorm.DB) *ChapitreService {
	return NewChapitreService(
		repository.NewChapitreRepository(db),
		repository.NewMatiereRepository(db),
		NewCacheService(nil),
	)
}

func TestChapitreCreateUnknownMatiere(t *testing.T) {
	db := openTestDB(t)
	s := newChapitreService(db)
	if _, err := s.Create("Les fractions", nil, nil, 999); !errors.Is(err, util.ErrNotFound) {
		t.Fatalf("err = %v, want util.ErrNotFound", err)
	}
	if n := countRows(t, db, &model.Chapitre{}); n != 0 {
		t.Fatalf("chapitre rows = %d after refused create", n)
	}
}

func TestChapitreDetailFreshChapterHasEmptyCollections(t *testing.T) {
	db := openTestDB(t)
	f := seedTree(t, db)
	s := newChapitreService(db)

	created, err := s.Create("Les décimaux", nil, intptr(2), f.Matiere.ID)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	id := created["id"].(uint)

	detail, err := s.Detail(context.Background(), id)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	for _, key := range []string{"paragraphes", "modules_validation", "mini_jeux", "exercices"} {
		coll, ok := detail[key].([]map[string]any)
		if !ok {
			t.Fatalf("%s type = %T", key, detail[key])
		}
		if len(coll) != 0 {
			t.Fatalf("%s = %d entries on a fresh chapter", key, len(coll))
		}
	}
}

func TestChapitreDetailAssemblesChildren(t *testing.T) {
	db := openTestDB(t)
	f := seedTree(t, db)
	s := newChapitreService(db)

	detail, err := s.Detail(context.Background(), f.Chapitre.ID)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if detail["titre"] != "Les fractions" {
		t.Fatalf("titre = %v", detail["titre"])
	}

	paragraphes := detail["paragraphes"].([]map[string]any)
	if len(paragraphes) != 1 || paragraphes[0]["contenu"] != f.Paragraphe.Contenu {
		t.Fatalf("paragraphes = %+v", paragraphes)
	}

	modules := detail["modules_validation"].([]map[string]any)
	if len(modules) != 1 {
		t.Fatalf("modules_validation = %d entries", len(modules))
	}
	animations := modules[0]["animations_maison"].([]map[string]any)
	if len(animations) != 1 || animations[0]["nom"] != "Découpage de pizza" {
		t.Fatalf("animations_maison = %+v", animations)
	}
	moduleGames := modules[0]["mini_jeux"].([]map[string]any)
	if len(moduleGames) != 1 || moduleGames[0]["question"] != "Classer les fractions." {
		t.Fatalf("module mini_jeux = %+v", moduleGames)
	}

	// Only the chapter-level game sits in the top-level collection.
	games := detail["mini_jeux"].([]map[string]any)
	if len(games) != 1 || games[0]["question"] != "Quelle part est coloriée ?" {
		t.Fatalf("mini_jeux = %+v", games)
	}

	exercices := detail["exercices"].([]map[string]any)
	if len(exercices) != 1 {
		t.Fatalf("exercices = %d entries", len(exercices))
	}
	questions := exercices[0]["questions_reponses"].([]map[string]any)
	if len(questions) != 1 || questions[0]["contenu"] != "4/8 = ?" {
		t.Fatalf("questions_reponses = %+v", questions)
	}
}

func TestChapitreUpdatePartialSemantics(t *testing.T) {
	db := openTestDB(t)
	f := seedTree(t, db)
	s := newChapitreService(db)
	ctx := context.Background()

	// Absent keys leave the stored values untouched.
	out, err := s.Update(ctx, f.Chapitre.ID, map[string]any{"titre": "Fractions et partages"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if out["titre"] != "Fractions et partages" {
		t.Fatalf("titre = %v", out["titre"])
	}
	if out["contenu"].(*string) == nil || *out["contenu"].(*string) != "Introduction" {
		t.Fatalf("contenu changed without being in the body: %v", out["contenu"])
	}

	// An explicit null clears a nullable column.
	out, err = s.Update(ctx, f.Chapitre.ID, map[string]any{"contenu": nil, "ordre": nil})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if out["contenu"].(*string) != nil {
		t.Fatalf("contenu = %v, want nil", out["contenu"])
	}
	if out["ordre"].(*int) != nil {
		t.Fatalf("ordre = %v, want nil", out["ordre"])
	}

	// JSON numbers arrive as float64 and land as ints.
	out, err = s.Update(ctx, f.Chapitre.ID, map[string]any{"ordre": float64(4)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if v := out["ordre"].(*int); v == nil || *v != 4 {
		t.Fatalf("ordre = %v, want 4", out["ordre"])
	}
}

func TestChapitreDeleteCascades(t *testing.T) {
	db := openTestDB(t)
	f := seedTree(t, db)
	s := newChapitreService(db)

	if err := s.Delete(context.Background(), f.Chapitre.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	for _, m := range []any{
		&model.Chapitre{}, &model.Paragraphe{}, &model.ModuleValidation{},
		&model.AnimationMaison{}, &model.MiniJeu{}, &model.Exercice{}, &model.QuestionReponse{},
	} {
		if n := countRows(t, db, m); n != 0 {
			t.Errorf("%T: %d orphan rows after chapter delete", m, n)
		}
	}

	// The parent subject and level are untouched.
	if n := countRows(t, db, &model.Matiere{}); n != 1 {
		t.Fatalf("matiere rows = %d, want 1", n)
	}
	if n := countRows(t, db, &model.Niveau{}); n != 1 {
		t.Fatalf("niveau rows = %d, want 1", n)
	}
}

func TestChapitreListFiltersByMatiere(t *testing.T) {
	db := openTestDB(t)
	f := seedTree(t, db)
	other := model.Matiere{Nom: "Français", NiveauID: f.Niveau.ID}
	mustCreate(t, db, &other)
	mustCreate(t, db, &model.Chapitre{Titre: "La poésie", MatiereID: other.ID})

	s := newChapitreService(db)
	all, err := s.List(nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("chapters = %d, want 2", len(all))
	}

	filtered, err := s.List(uintp(other.ID))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(filtered) != 1 || filtered[0]["titre"] != "La poésie" {
		t.Fatalf("filtered = %+v", filtered)
	}
}
