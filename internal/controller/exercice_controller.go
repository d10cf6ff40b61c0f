package controller

import (
	"net/http"

	"eduportal_backend/internal/service"
	"eduportal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExerciceController struct {
	ExerciceService *service.ExerciceService
}

func NewExerciceController(exerciceService *service.ExerciceService) *ExerciceController {
	return &ExerciceController{ExerciceService: exerciceService}
}

// List godoc
// @Summary Liste des exercices
// @Description Chaque exercice porte ses questions-réponses ordonnées
// @Tags exercices
// @Produce json
// @Param chapitre_id query int false "Filtre par chapitre"
// @Success 200 {array} object
// @Security BearerAuth
// @Router /api/exercices [get]
func (c *ExerciceController) List(ctx *gin.Context) {
	exercices, err := c.ExerciceService.List(util.OptionalUint(ctx.Query("chapitre_id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, exercices)
}

// Create godoc
// @Summary Créer un exercice
// @Tags exercices
// @Accept json
// @Produce json
// @Success 201 {object} object
// @Failure 400 {object} object "Champs manquants"
// @Failure 404 {object} object "Chapitre non trouvé"
// @Security BearerAuth
// @Router /api/exercices [post]
func (c *ExerciceController) Create(ctx *gin.Context) {
	fields, ok := bindBody(ctx)
	if !ok {
		return
	}

	var errs []string
	contenu := bodyString(fields, "contenu")
	if contenu == "" {
		errs = append(errs, "Le contenu est obligatoire.")
	}
	chapitreID := bodyUint(fields, "chapitre_id")
	if chapitreID == 0 {
		errs = append(errs, "Le chapitre_id est obligatoire.")
	}
	if len(errs) > 0 {
		util.ValidationErrors(ctx, errs...)
		return
	}

	exercice, err := c.ExerciceService.Create(ctx.Request.Context(), contenu, bodyIntPtr(fields, "ordre"), chapitreID)
	if err != nil {
		handleEntityError(ctx, err, "Chapitre non trouvé.")
		return
	}
	ctx.JSON(http.StatusCreated, exercice)
}

// Get godoc
// @Summary Détail d'un exercice
// @Tags exercices
// @Produce json
// @Success 200 {object} object
// @Failure 404 {object} object "Exercice non trouvé"
// @Security BearerAuth
// @Router /api/exercices/{id} [get]
func (c *ExerciceController) Get(ctx *gin.Context) {
	exercice, err := c.ExerciceService.Get(pathID(ctx))
	if err != nil {
		handleEntityError(ctx, err, "Exercice non trouvé.")
		return
	}
	ctx.JSON(http.StatusOK, exercice)
}

// Update godoc
// @Summary Modifier un exercice
// @Tags exercices
// @Accept json
// @Produce json
// @Success 200 {object} object
// @Failure 404 {object} object "Exercice non trouvé"
// @Security BearerAuth
// @Router /api/exercices/{id} [put]
func (c *ExerciceController) Update(ctx *gin.Context) {
	fields, ok := bindBody(ctx)
	if !ok {
		return
	}
	exercice, err := c.ExerciceService.Update(ctx.Request.Context(), pathID(ctx), fields)
	if err != nil {
		handleEntityError(ctx, err, "Exercice non trouvé.")
		return
	}
	ctx.JSON(http.StatusOK, exercice)
}

// Delete godoc
// @Summary Supprimer un exercice
// @Description Supprime l'exercice et ses questions-réponses
// @Tags exercices
// @Produce json
// @Success 200 {object} object
// @Failure 404 {object} object "Exercice non trouvé"
// @Security BearerAuth
// @Router /api/exercices/{id} [delete]
func (c *ExerciceController) Delete(ctx *gin.Context) {
	if err := c.ExerciceService.Delete(ctx.Request.Context(), pathID(ctx)); err != nil {
		handleEntityError(ctx, err, "Exercice non trouvé.")
		return
	}
	util.Message(ctx, http.StatusOK, "Exercice supprimé avec succès.")
}
