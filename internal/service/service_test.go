package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"eduportal_backend/internal/model"
	"eduportal_backend/pkg/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq atomic.Int64

// openTestDB gives each test its own in-memory schema. The shared-cache
// DSN keeps the database alive across the pooled connections gorm opens.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:service_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func intptr(n int) *int       { return &n }
func strptr(s string) *string { return &s }
func uintp(n uint) *uint      { return &n }

// mapCache is an in-memory ChapitreCache for observing cache hits and
// evictions without a Redis server.
type mapCache struct {
	entries map[uint]map[string]any
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[uint]map[string]any)}
}

func (c *mapCache) GetChapitreDetail(_ context.Context, id uint) (map[string]any, bool) {
	payload, ok := c.entries[id]
	return payload, ok
}

func (c *mapCache) SetChapitreDetail(_ context.Context, id uint, payload map[string]any) {
	c.entries[id] = payload
}

func (c *mapCache) InvalidateChapitre(_ context.Context, id uint) {
	delete(c.entries, id)
}

// fixture is one fully populated curriculum branch: a level, a subject, a
// chapter and one row in every child table under the chapter.
type fixture struct {
	Niveau     model.Niveau
	Matiere    model.Matiere
	Chapitre   model.Chapitre
	Paragraphe model.Paragraphe
	Module     model.ModuleValidation
	Animation  model.AnimationMaison
	// MiniJeuChapitre hangs off the chapter, MiniJeuModule off the module.
	MiniJeuChapitre model.MiniJeu
	MiniJeuModule   model.MiniJeu
	Exercice        model.Exercice
	Question        model.QuestionReponse
}

func seedTree(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()
	f := &fixture{}

	f.Niveau = model.Niveau{Nom: "Sixième"}
	mustCreate(t, db, &f.Niveau)

	f.Matiere = model.Matiere{Nom: "Mathématiques", Description: strptr("Programme de sixième"), NiveauID: f.Niveau.ID}
	mustCreate(t, db, &f.Matiere)

	f.Chapitre = model.Chapitre{Titre: "Les fractions", Contenu: strptr("Introduction"), Ordre: intptr(1), MatiereID: f.Matiere.ID}
	mustCreate(t, db, &f.Chapitre)

	f.Paragraphe = model.Paragraphe{Contenu: "Une fraction représente une part.", Ordre: intptr(1), ChapitreID: f.Chapitre.ID}
	mustCreate(t, db, &f.Paragraphe)

	f.Module = model.ModuleValidation{Contenu: strptr("Validation du chapitre"), ChapitreID: f.Chapitre.ID}
	mustCreate(t, db, &f.Module)

	f.Animation = model.AnimationMaison{Nom: "Découpage de pizza", URL: strptr("/uploads/pizza.gif"), Ordre: intptr(1), ModuleValidationID: f.Module.ID}
	mustCreate(t, db, &f.Animation)

	payload, err := model.EncodePayload(&model.QCMUniquePayload{Reponse: strptr("1/2"), MauvaisesReponses: strptr("1/3;2/3")})
	if err != nil {
		t.Fatalf("encode payload: %v", err)
	}
	f.MiniJeuChapitre = model.MiniJeu{Type: model.GameQCMUnique, Question: "Quelle part est coloriée ?", Ordre: intptr(1), ChapitreID: &f.Chapitre.ID, Payload: payload}
	mustCreate(t, db, &f.MiniJeuChapitre)

	f.MiniJeuModule = model.MiniJeu{Type: model.GameOrdre, Question: "Classer les fractions.", Ordre: intptr(1), ModuleValidationID: &f.Module.ID}
	mustCreate(t, db, &f.MiniJeuModule)

	f.Exercice = model.Exercice{Contenu: "Simplifier les fractions suivantes.", Ordre: intptr(1), ChapitreID: f.Chapitre.ID}
	mustCreate(t, db, &f.Exercice)

	f.Question = model.QuestionReponse{Contenu: "4/8 = ?", Ordre: intptr(1), ExerciceID: f.Exercice.ID}
	mustCreate(t, db, &f.Question)

	return f
}

func mustCreate(t *testing.T, db *gorm.DB, value any) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("create %T: %v", value, err)
	}
}

func countRows(t *testing.T, db *gorm.DB, m any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(m).Count(&n).Error; err != nil {
		t.Fatalf("count %T: %v", m, err)
	}
	return n
}
