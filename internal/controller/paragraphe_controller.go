package controller

import (
	"net/http"

	"eduportal_backend/internal/service"
	"eduportal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ParagrapheController struct {
	ParagrapheService *service.ParagrapheService
}

func NewParagrapheController(paragrapheService *service.ParagrapheService) *ParagrapheController {
	return &ParagrapheController{ParagrapheService: paragrapheService}
}

// List godoc
// @Summary Liste des paragraphes
// @Tags paragraphes
// @Produce json
// @Param chapitre_id query int false "Filtre par chapitre"
// @Success 200 {array} object
// @Security BearerAuth
// @Router /api/paragraphes [get]
func (c *ParagrapheController) List(ctx *gin.Context) {
	paragraphes, err := c.ParagrapheService.List(util.OptionalUint(ctx.Query("chapitre_id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, paragraphes)
}

// Create godoc
// @Summary Créer un paragraphe
// @Tags paragraphes
// @Accept json
// @Produce json
// @Success 201 {object} object
// @Failure 400 {object} object "Champs manquants"
// @Failure 404 {object} object "Chapitre non trouvé"
// @Security BearerAuth
// @Router /api/paragraphes [post]
func (c *ParagrapheController) Create(ctx *gin.Context) {
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

	paragraphe, err := c.ParagrapheService.Create(ctx.Request.Context(), contenu, bodyIntPtr(fields, "ordre"), chapitreID)
	if err != nil {
		handleEntityError(ctx, err, "Chapitre non trouvé.")
		return
	}
	ctx.JSON(http.StatusCreated, paragraphe)
}

// Get godoc
// @Summary Détail d'un paragraphe
// @Tags paragraphes
// @Produce json
// @Success 200 {object} object
// @Failure 404 {object} object "Paragraphe non trouvé"
// @Security BearerAuth
// @Router /api/paragraphes/{id} [get]
func (c *ParagrapheController) Get(ctx *gin.Context) {
	paragraphe, err := c.ParagrapheService.Get(pathID(ctx))
	if err != nil {
		handleEntityError(ctx, err, "Paragraphe non trouvé.")
		return
	}
	ctx.JSON(http.StatusOK, paragraphe)
}

// Update godoc
// @Summary Modifier un paragraphe
// @Tags paragraphes
// @Accept json
// @Produce json
// @Success 200 {object} object
// @Failure 404 {object} object "Paragraphe non trouvé"
// @Security BearerAuth
// @Router /api/paragraphes/{id} [put]
func (c *ParagrapheController) Update(ctx *gin.Context) {
	fields, ok := bindBody(ctx)
	if !ok {
		return
	}
	paragraphe, err := c.ParagrapheService.Update(ctx.Request.Context(), pathID(ctx), fields)
	if err != nil {
		handleEntityError(ctx, err, "Paragraphe non trouvé.")
		return
	}
	ctx.JSON(http.StatusOK, paragraphe)
}

// Delete godoc
// @Summary Supprimer un paragraphe
// @Tags paragraphes
// @Produce json
// @Success 200 {object} object
// @Failure 404 {object} object "Paragraphe non trouvé"
// @Security BearerAuth
// @Router /api/paragraphes/{id} [delete]
func (c *ParagrapheController) Delete(ctx *gin.Context) {
	if err := c.ParagrapheService.Delete(ctx.Request.Context(), pathID(ctx)); err != nil {
		handleEntityError(ctx, err, "Paragraphe non trouvé.")
		return
	}
	util.Message(ctx, http.StatusOK, "Paragraphe supprimé avec succès.")
}
