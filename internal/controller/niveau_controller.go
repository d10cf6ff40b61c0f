package controller

import (
	"net/http"

	"eduportal_backend/internal/service"
	"eduportal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NiveauController struct {
	NiveauService *service.NiveauService
}

func NewNiveauController(niveauService *service.NiveauService) *NiveauController {
	return &NiveauController{NiveauService: niveauService}
}

// List godoc
// @Summary Liste des niveaux
// @Description Retourne chaque niveau avec ses compteurs de matières et d'élèves
// @Tags niveaux
// @Produce json
// @Success 200 {array} object
// @Security BearerAuth
// @Router /api/niveaux [get]
func (c *NiveauController) List(ctx *gin.Context) {
	niveaux, err := c.NiveauService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, niveaux)
}

// Create godoc
// @Summary Créer un niveau
// @Tags niveaux
// @Accept json
// @Produce json
// @Success 201 {object} object
// @Failure 400 {object} object "Champs manquants"
// @Security BearerAuth
// @Router /api/niveaux [post]
func (c *NiveauController) Create(ctx *gin.Context) {
	fields, ok := bindBody(ctx)
	if !ok {
		return
	}
	nom := bodyString(fields, "nom")
	if nom == "" {
		util.ValidationErrors(ctx, "Le nom est obligatoire.")
		return
	}

	niveau, err := c.NiveauService.Create(nom)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, niveau)
}

// Get godoc
// @Summary Détail d'un niveau
// @Tags niveaux
// @Produce json
// @Success 200 {object} object
// @Failure 404 {object} object "Niveau non trouvé"
// @Security BearerAuth
// @Router /api/niveaux/{id} [get]
func (c *NiveauController) Get(ctx *gin.Context) {
	niveau, err := c.NiveauService.Get(pathID(ctx))
	if err != nil {
		handleEntityError(ctx, err, "Niveau non trouvé.")
		return
	}
	ctx.JSON(http.StatusOK, niveau)
}

// Update godoc
// @Summary Modifier un niveau
// @Tags niveaux
// @Accept json
// @Produce json
// @Success 200 {object} object
// @Failure 404 {object} object "Niveau non trouvé"
// @Security BearerAuth
// @Router /api/niveaux/{id} [put]
func (c *NiveauController) Update(ctx *gin.Context) {
	fields, ok := bindBody(ctx)
	if !ok {
		return
	}
	niveau, err := c.NiveauService.Update(pathID(ctx), fields)
	if err != nil {
		handleEntityError(ctx, err, "Niveau non trouvé.")
		return
	}
	ctx.JSON(http.StatusOK, niveau)
}

// Delete godoc
// @Summary Supprimer un niveau
// @Description Supprime le niveau et toute sa descendance, et détache les élèves
// @Tags niveaux
// @Produce json
// @Success 200 {object} object
// @Failure 404 {object} object "Niveau non trouvé"
// @Security BearerAuth
// @Router /api/niveaux/{id} [delete]
func (c *NiveauController) Delete(ctx *gin.Context) {
	if err := c.NiveauService.Delete(ctx.Request.Context(), pathID(ctx)); err != nil {
		handleEntityError(ctx, err, "Niveau non trouvé.")
		return
	}
	util.Message(ctx, http.StatusOK, "Niveau supprimé avec succès.")
}
