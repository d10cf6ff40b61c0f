package service

import (
	"eduportal_backend/internal/model"
)

// Wire serializers. The API exposes snake_case French keys and always
// materialises child collections, so empty slices serialize as [] and
// never as null.

func serializeNiveauRef(n *model.Niveau) map[string]any {
	if n == nil {
		return nil
	}
	return map[string]any{"id": n.ID, "nom": n.Nom}
}

func serializeMatiereRef(m *model.Matiere) map[string]any {
	if m == nil {
		return nil
	}
	return map[string]any{"id": m.ID, "nom": m.Nom}
}

func serializeNiveau(n *model.Niveau) map[string]any {
	return map[string]any{"id": n.ID, "nom": n.Nom}
}

func serializeMatiere(m *model.Matiere) map[string]any {
	return map[string]any{
		"id":          m.ID,
		"nom":         m.Nom,
		"description": m.Description,
		"niveau":      serializeNiveauRef(m.Niveau),
	}
}

func serializeChapitre(c *model.Chapitre) map[string]any {
	return map[string]any{
		"id":      c.ID,
		"titre":   c.Titre,
		"contenu": c.Contenu,
		"ordre":   c.Ordre,
		"matiere": serializeMatiereRef(c.Matiere),
	}
}

func serializeParagraphe(p *model.Paragraphe) map[string]any {
	return map[string]any{
		"id":          p.ID,
		"contenu":     p.Contenu,
		"ordre":       p.Ordre,
		"chapitre_id": p.ChapitreID,
	}
}

func serializeParagraphes(items []model.Paragraphe) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for i := range items {
		out = append(out, serializeParagraphe(&items[i]))
	}
	return out
}

func serializeModuleValidation(m *model.ModuleValidation) map[string]any {
	return map[string]any{
		"id":          m.ID,
		"contenu":     m.Contenu,
		"chapitre_id": m.ChapitreID,
	}
}

func serializeModuleValidationDetail(m *model.ModuleValidation) map[string]any {
	out := serializeModuleValidation(m)
	out["animations_maison"] = serializeAnimationsMaison(m.AnimationsMaison)
	out["mini_jeux"] = serializeMiniJeux(m.MiniJeux)
	return out
}

func serializeMiniJeux(items []model.MiniJeu) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for i := range items {
		out = append(out, items[i].WireMap())
	}
	return out
}

func serializeExercice(e *model.Exercice) map[string]any {
	return map[string]any{
		"id":                 e.ID,
		"contenu":            e.Contenu,
		"ordre":              e.Ordre,
		"chapitre_id":        e.ChapitreID,
		"questions_reponses": serializeQuestionsReponses(e.QuestionsReponses),
	}
}

func serializeExercices(items []model.Exercice) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for i := range items {
		out = append(out, serializeExercice(&items[i]))
	}
	return out
}

func serializeQuestionReponse(q *model.QuestionReponse) map[string]any {
	return map[string]any{
		"id":          q.ID,
		"contenu":     q.Contenu,
		"ordre":       q.Ordre,
		"exercice_id": q.ExerciceID,
	}
}

func serializeQuestionsReponses(items []model.QuestionReponse) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for i := range items {
		out = append(out, serializeQuestionReponse(&items[i]))
	}
	return out
}

func serializeAnimationMaison(a *model.AnimationMaison) map[string]any {
	return map[string]any{
		"id":                   a.ID,
		"nom":                  a.Nom,
		"description":          a.Description,
		"url":                  a.URL,
		"ordre":                a.Ordre,
		"module_validation_id": a.ModuleValidationID,
	}
}

func serializeAnimationsMaison(items []model.AnimationMaison) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for i := range items {
		out = append(out, serializeAnimationMaison(&items[i]))
	}
	return out
}
