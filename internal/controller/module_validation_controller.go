package controller

import (
	"net/http"

	"eduportal_backend/internal/service"
	"eduportal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ModuleValidationController struct {
	ModuleService *service.ModuleValidationService
}

func NewModuleValidationController(moduleService *service.ModuleValidationService) *ModuleValidationController {
	return &ModuleValidationController{ModuleService: moduleService}
}

// List godoc
// @Summary Liste des modules de validation
// @Description Chaque module porte ses compteurs d'animations et de mini-jeux
// @Tags modules-validation
// @Produce json
// @Param chapitre_id query int false "Filtre par chapitre"
// @Success 200 {array} object
// @Security BearerAuth
// @Router /api/module-validations [get]
func (c *ModuleValidationController) List(ctx *gin.Context) {
	modules, err := c.ModuleService.List(util.OptionalUint(ctx.Query("chapitre_id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, modules)
}

// Create godoc
// @Summary Créer un module de validation
// @Tags modules-validation
// @Accept json
// @Produce json
// @Success 201 {object} object
// @Failure 400 {object} object "Champs manquants"
// @Failure 404 {object} object "Chapitre non trouvé"
// @Security BearerAuth
// @Router /api/module-validations [post]
func (c *ModuleValidationController) Create(ctx *gin.Context) {
	fields, ok := bindBody(ctx)
	if !ok {
		return
	}

	chapitreID := bodyUint(fields, "chapitre_id")
	if chapitreID == 0 {
		util.ValidationErrors(ctx, "Le chapitre_id est obligatoire.")
		return
	}

	module, err := c.ModuleService.Create(ctx.Request.Context(), bodyStringPtr(fields, "contenu"), chapitreID)
	if err != nil {
		handleEntityError(ctx, err, "Chapitre non trouvé.")
		return
	}
	ctx.JSON(http.StatusCreated, module)
}

// Get godoc
// @Summary Détail d'un module de validation
// @Description Retourne le module avec ses animations maison et ses mini-jeux
// @Tags modules-validation
// @Produce json
// @Success 200 {object} object
// @Failure 404 {object} object "Module de validation non trouvé"
// @Security BearerAuth
// @Router /api/module-validations/{id} [get]
func (c *ModuleValidationController) Get(ctx *gin.Context) {
	module, err := c.ModuleService.Get(pathID(ctx))
	if err != nil {
		handleEntityError(ctx, err, "Module de validation non trouvé.")
		return
	}
	ctx.JSON(http.StatusOK, module)
}

// Update godoc
// @Summary Modifier un module de validation
// @Tags modules-validation
// @Accept json
// @Produce json
// @Success 200 {object} object
// @Failure 404 {object} object "Module de validation non trouvé"
// @Security BearerAuth
// @Router /api/module-validations/{id} [put]
func (c *ModuleValidationController) Update(ctx *gin.Context) {
	fields, ok := bindBody(ctx)
	if !ok {
		return
	}
	module, err := c.ModuleService.Update(ctx.Request.Context(), pathID(ctx), fields)
	if err != nil {
		handleEntityError(ctx, err, "Module de validation non trouvé.")
		return
	}
	ctx.JSON(http.StatusOK, module)
}

// Delete godoc
// @Summary Supprimer un module de validation
// @Description Supprime le module avec ses animations et mini-jeux
// @Tags modules-validation
// @Produce json
// @Success 200 {object} object
// @Failure 404 {object} object "Module de validation non trouvé"
// @Security BearerAuth
// @Router /api/module-validations/{id} [delete]
func (c *ModuleValidationController) Delete(ctx *gin.Context) {
	if err := c.ModuleService.Delete(ctx.Request.Context(), pathID(ctx)); err != nil {
		handleEntityError(ctx, err, "Module de validation non trouvé.")
		return
	}
	util.Message(ctx, http.StatusOK, "Module de validation supprimé avec succès.")
}
