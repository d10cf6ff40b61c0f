package controller

import (
	"net/http"

	"eduportal_backend/internal/service"
	"eduportal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnimationMaisonController struct {
	AnimationService *service.AnimationMaisonService
}

func NewAnimationMaisonController(animationService *service.AnimationMaisonService) *AnimationMaisonController {
	return &AnimationMaisonController{AnimationService: animationService}
}

// List godoc
// @Summary Liste des animations maison
// @Tags animations-maison
// @Produce json
// @Param module_validation_id query int false "Filtre par module de validation"
// @Success 200 {array} object
// @Security BearerAuth
// @Router /api/animations-maison [get]
func (c *AnimationMaisonController) List(ctx *gin.Context) {
	animations, err := c.AnimationService.List(util.OptionalUint(ctx.Query("module_validation_id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, animations)
}

// Create godoc
// @Summary Créer une animation maison
// @Tags animations-maison
// @Accept json
// @Produce json
// @Success 201 {object} object
// @Failure 400 {object} object "Champs manquants"
// @Failure 404 {object} object "Module de validation non trouvé"
// @Security BearerAuth
// @Router /api/animations-maison [post]
func (c *AnimationMaisonController) Create(ctx *gin.Context) {
	fields, ok := bindBody(ctx)
	if !ok {
		return
	}

	var errs []string
	nom := bodyString(fields, "nom")
	if nom == "" {
		errs = append(errs, "Le nom est obligatoire.")
	}
	moduleID := bodyUint(fields, "module_validation_id")
	if moduleID == 0 {
		errs = append(errs, "Le module_validation_id est obligatoire.")
	}
	if len(errs) > 0 {
		util.ValidationErrors(ctx, errs...)
		return
	}

	animation, err := c.AnimationService.Create(
		ctx.Request.Context(),
		nom,
		bodyStringPtr(fields, "description"),
		bodyStringPtr(fields, "url"),
		bodyIntPtr(fields, "ordre"),
		moduleID,
	)
	if err != nil {
		handleEntityError(ctx, err, "Module de validation non trouvé.")
		return
	}
	ctx.JSON(http.StatusCreated, animation)
}

// Get godoc
// @Summary Détail d'une animation maison
// @Tags animations-maison
// @Produce json
// @Success 200 {object} object
// @Failure 404 {object} object "Animation maison non trouvée"
// @Security BearerAuth
// @Router /api/animations-maison/{id} [get]
func (c *AnimationMaisonController) Get(ctx *gin.Context) {
	animation, err := c.AnimationService.Get(pathID(ctx))
	if err != nil {
		handleEntityError(ctx, err, "Animation maison non trouvée.")
		return
	}
	ctx.JSON(http.StatusOK, animation)
}

// Update godoc
// @Summary Modifier une animation maison
// @Tags animations-maison
// @Accept json
// @Produce json
// @Success 200 {object} object
// @Failure 404 {object} object "Animation maison non trouvée"
// @Security BearerAuth
// @Router /api/animations-maison/{id} [put]
func (c *AnimationMaisonController) Update(ctx *gin.Context) {
	fields, ok := bindBody(ctx)
	if !ok {
		return
	}
	animation, err := c.AnimationService.Update(ctx.Request.Context(), pathID(ctx), fields)
	if err != nil {
		handleEntityError(ctx, err, "Animation maison non trouvée.")
		return
	}
	ctx.JSON(http.StatusOK, animation)
}

// Delete godoc
// @Summary Supprimer une animation maison
// @Tags animations-maison
// @Produce json
// @Success 200 {object} object
// @Failure 404 {object} object "Animation maison non trouvée"
// @Security BearerAuth
// @Router /api/animations-maison/{id} [delete]
func (c *AnimationMaisonController) Delete(ctx *gin.Context) {
	if err := c.AnimationService.Delete(ctx.Request.Context(), pathID(ctx)); err != nil {
		handleEntityError(ctx, err, "Animation maison non trouvée.")
		return
	}
	util.Message(ctx, http.StatusOK, "Animation maison supprimée avec succès.")
}
