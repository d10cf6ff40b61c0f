package controller

import (
	"net/http"

	"eduportal_backend/internal/service"
	"eduportal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MatiereController struct {
	MatiereService *service.MatiereService
}

func NewMatiereController(matiereService *service.MatiereService) *MatiereController {
	return &MatiereController{MatiereService: matiereService}
}

// List godoc
// @Summary Liste des matières
// @Description Filtrable par niveau via ?niveau_id=
// @Tags matieres
// @Produce json
// @Param niveau_id query int false "Filtre par niveau"
// @Success 200 {array} object
// @Security BearerAuth
// @Router /api/matieres [get]
func (c *MatiereController) List(ctx *gin.Context) {
	matieres, err := c.MatiereService.List(util.OptionalUint(ctx.Query("niveau_id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, matieres)
}

// Create godoc
// @Summary Créer une matière
// @Tags matieres
// @Accept json
// @Produce json
// @Success 201 {object} object
// @Failure 400 {object} object "Champs manquants"
// @Failure 404 {object} object "Niveau non trouvé"
// @Security BearerAuth
// @Router /api/matieres [post]
func (c *MatiereController) Create(ctx *gin.Context) {
	fields, ok := bindBody(ctx)
	if !ok {
		return
	}

	var errs []string
	nom := bodyString(fields, "nom")
	if nom == "" {
		errs = append(errs, "Le nom est obligatoire.")
	}
	niveauID := bodyUint(fields, "niveau_id")
	if niveauID == 0 {
		errs = append(errs, "Le niveau_id est obligatoire.")
	}
	if len(errs) > 0 {
		util.ValidationErrors(ctx, errs...)
		return
	}

	matiere, err := c.MatiereService.Create(nom, bodyStringPtr(fields, "description"), niveauID)
	if err != nil {
		handleEntityError(ctx, err, "Niveau non trouvé.")
		return
	}
	ctx.JSON(http.StatusCreated, matiere)
}

// Get godoc
// @Summary Détail d'une matière
// @Description Retourne la matière avec son niveau et ses chapitres ordonnés
// @Tags matieres
// @Produce json
// @Success 200 {object} object
// @Failure 404 {object} object "Matière non trouvée"
// @Security BearerAuth
// @Router /api/matieres/{id} [get]
func (c *MatiereController) Get(ctx *gin.Context) {
	matiere, err := c.MatiereService.Get(pathID(ctx))
	if err != nil {
		handleEntityError(ctx, err, "Matière non trouvée.")
		return
	}
	ctx.JSON(http.StatusOK, matiere)
}

// Update godoc
// @Summary Modifier une matière
// @Tags matieres
// @Accept json
// @Produce json
// @Success 200 {object} object
// @Failure 404 {object} object "Matière non trouvée"
// @Security BearerAuth
// @Router /api/matieres/{id} [put]
func (c *MatiereController) Update(ctx *gin.Context) {
	fields, ok := bindBody(ctx)
	if !ok {
		return
	}
	matiere, err := c.MatiereService.Update(ctx.Request.Context(), pathID(ctx), fields)
	if err != nil {
		handleEntityError(ctx, err, "Matière non trouvée.")
		return
	}
	ctx.JSON(http.StatusOK, matiere)
}

// Delete godoc
// @Summary Supprimer une matière
// @Description Supprime la matière et tous ses chapitres
// @Tags matieres
// @Produce json
// @Success 200 {object} object
// @Failure 404 {object} object "Matière non trouvée"
// @Security BearerAuth
// @Router /api/matieres/{id} [delete]
func (c *MatiereController) Delete(ctx *gin.Context) {
	if err := c.MatiereService.Delete(ctx.Request.Context(), pathID(ctx)); err != nil {
		handleEntityError(ctx, err, "Matière non trouvée.")
		return
	}
	util.Message(ctx, http.StatusOK, "Matière supprimée avec succès.")
}
