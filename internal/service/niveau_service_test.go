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

func newNiveauService(db *gorm.DB) *NiveauService {
	return NewNiveauService(repository.NewNiveauRepository(db), repository.NewChapitreRepository(db), NewCacheService(nil))
}

func TestNiveauListCounts(t *testing.T) {
	db := openTestDB(t)
	f := seedTree(t, db)
	mustCreate(t, db, &model.User{Email: "eleve@e.org", Password: "x", FirstName: "E", LastName: "L", NiveauID: &f.Niveau.ID})

	out, err := newNiveauService(db).List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("levels = %d, want 1", len(out))
	}
	if out[0]["nom"] != "Sixième" {
		t.Fatalf("nom = %v", out[0]["nom"])
	}
	if out[0]["matieresCount"] != 1 {
		t.Fatalf("matieresCount = %v, want 1", out[0]["matieresCount"])
	}
	if out[0]["usersCount"] != 1 {
		t.Fatalf("usersCount = %v, want 1", out[0]["usersCount"])
	}
}

func TestNiveauCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	s := newNiveauService(db)

	created, err := s.Create("Cinquième")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	id, ok := created["id"].(uint)
	if !ok || id == 0 {
		t.Fatalf("id = %v", created["id"])
	}

	got, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got["nom"] != "Cinquième" {
		t.Fatalf("nom = %v", got["nom"])
	}
	matieres, ok := got["matieres"].([]map[string]any)
	if !ok {
		t.Fatalf("matieres type = %T", got["matieres"])
	}
	if len(matieres) != 0 {
		t.Fatalf("fresh level should have an empty matieres list, got %d", len(matieres))
	}
}

func TestNiveauGetUnknown(t *testing.T) {
	db := openTestDB(t)
	if _, err := newNiveauService(db).Get(999); !errors.Is(err, util.ErrNotFound) {
		t.Fatalf("err = %v, want util.ErrNotFound", err)
	}
}

func TestNiveauUpdateIgnoresEmptyName(t *testing.T) {
	db := openTestDB(t)
	f := seedTree(t, db)
	s := newNiveauService(db)

	// An empty name present in the body must not clear the stored one.
	out, err := s.Update(f.Niveau.ID, map[string]any{"nom": ""})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if out["nom"] != "Sixième" {
		t.Fatalf("nom = %v, want unchanged", out["nom"])
	}

	out, err = s.Update(f.Niveau.ID, map[string]any{"nom": "Sixième A"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if out["nom"] != "Sixième A" {
		t.Fatalf("nom = %v", out["nom"])
	}
}

func TestNiveauDeleteCascades(t *testing.T) {
	db := openTestDB(t)
	f := seedTree(t, db)
	user := model.User{Email: "eleve@e.org", Password: "x", FirstName: "E", LastName: "L", NiveauID: &f.Niveau.ID}
	mustCreate(t, db, &user)

	if err := newNiveauService(db).Delete(context.Background(), f.Niveau.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// Every descendant table must be emptied, down to the question items
	// and the mini-games hanging off the validation module.
	for _, m := range []any{
		&model.Niveau{}, &model.Matiere{}, &model.Chapitre{},
		&model.Paragraphe{}, &model.ModuleValidation{}, &model.AnimationMaison{},
		&model.MiniJeu{}, &model.Exercice{}, &model.QuestionReponse{},
	} {
		if n := countRows(t, db, m); n != 0 {
			t.Errorf("%T: %d orphan rows after level delete", m, n)
		}
	}

	// Enrolled users survive, detached from the deleted level.
	var kept model.User
	if err := db.First(&kept, user.ID).Error; err != nil {
		t.Fatalf("user gone after level delete: %v", err)
	}
	if kept.NiveauID != nil {
		t.Fatalf("user niveau_id = %v, want nil", *kept.NiveauID)
	}
}

func TestNiveauDeleteUnknown(t *testing.T) {
	db := openTestDB(t)
	if err := newNiveauService(db).Delete(context.Background(), 42); !errors.Is(err, util.ErrNotFound) {
		t.Fatalf("err = %v, want util.ErrNotFound", err)
	}
}

func TestNiveauDeleteEvictsCachedChapterDetails(t *testing.T) {
	db := openTestDB(t)
	f := seedTree(t, db)
	cache := newMapCache()
	chapitres := NewChapitreService(repository.NewChapitreRepository(db), repository.NewMatiereRepository(db), cache)
	niveaux := NewNiveauService(repository.NewNiveauRepository(db), repository.NewChapitreRepository(db), cache)
	ctx := context.Background()

	if _, err := chapitres.Detail(ctx, f.Chapitre.ID); err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if _, ok := cache.GetChapitreDetail(ctx, f.Chapitre.ID); !ok {
		t.Fatal("detail payload was not cached")
	}

	if err := niveaux.Delete(ctx, f.Niveau.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// The cached payload must not outlive the level cascade: a fresh
	// lookup is a miss followed by a not-found, never the stale payload.
	if _, ok := cache.GetChapitreDetail(ctx, f.Chapitre.ID); ok {
		t.Fatal("chapter detail still cached after level delete")
	}
	if _, err := chapitres.Detail(ctx, f.Chapitre.ID); !errors.Is(err, util.ErrNotFound) {
		t.Fatalf("err = %v, want util.ErrNotFound", err)
	}
}
