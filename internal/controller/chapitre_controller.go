package controller

import (
	"net/http"

	"eduportal_backend/internal/service"
	"eduportal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChapitreController struct {
	ChapitreService *service.ChapitreService
}

func NewChapitreController(chapitreService *service.ChapitreService) *ChapitreController {
	return &ChapitreController{ChapitreService: chapitreService}
}

// List godoc
// @Summary Liste des chapitres
// @Description Filtrable par matière via ?matiere_id=, triés par ordre
// @Tags chapitres
// @Produce json
// @Param matiere_id query int false "Filtre par matière"
// @Success 200 {array} object
// @Security BearerAuth
// @Router /api/chapitres [get]
func (c *ChapitreController) List(ctx *gin.Context) {
	chapitres, err := c.ChapitreService.List(util.OptionalUint(ctx.Query("matiere_id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, chapitres)
}

// Create godoc
// @Summary Créer un chapitre
// @Tags chapitres
// @Accept json
// @Produce json
// @Success 201 {object} object
// @Failure 400 {object} object "Champs manquants"
// @Failure 404 {object} object "Matière non trouvée"
// @Security BearerAuth
// @Router /api/chapitres [post]
func (c *ChapitreController) Create(ctx *gin.Context) {
	fields, ok := bindBody(ctx)
	if !ok {
		return
	}

	var errs []string
	titre := bodyString(fields, "titre")
	if titre == "" {
		errs = append(errs, "Le titre est obligatoire.")
	}
	matiereID := bodyUint(fields, "matiere_id")
	if matiereID == 0 {
		errs = append(errs, "Le matiere_id est obligatoire.")
	}
	if len(errs) > 0 {
		util.ValidationErrors(ctx, errs...)
		return
	}

	chapitre, err := c.ChapitreService.Create(titre, bodyStringPtr(fields, "contenu"), bodyIntPtr(fields, "ordre"), matiereID)
	if err != nil {
		handleEntityError(ctx, err, "Matière non trouvée.")
		return
	}
	ctx.JSON(http.StatusCreated, chapitre)
}

// Get godoc
// @Summary Détail d'un chapitre
// @Description Retourne le chapitre avec ses paragraphes, modules de validation, mini-jeux et exercices, chaque collection triée par ordre
// @Tags chapitres
// @Produce json
// @Success 200 {object} object
// @Failure 404 {object} object "Chapitre non trouvé"
// @Security BearerAuth
// @Router /api/chapitres/{id} [get]
func (c *ChapitreController) Get(ctx *gin.Context) {
	chapitre, err := c.ChapitreService.Detail(ctx.Request.Context(), pathID(ctx))
	if err != nil {
		handleEntityError(ctx, err, "Chapitre non trouvé.")
		return
	}
	ctx.JSON(http.StatusOK, chapitre)
}

// Update godoc
// @Summary Modifier un chapitre
// @Tags chapitres
// @Accept json
// @Produce json
// @Success 200 {object} object
// @Failure 404 {object} object "Chapitre non trouvé"
// @Security BearerAuth
// @Router /api/chapitres/{id} [put]
func (c *ChapitreController) Update(ctx *gin.Context) {
	fields, ok := bindBody(ctx)
	if !ok {
		return
	}
	chapitre, err := c.ChapitreService.Update(ctx.Request.Context(), pathID(ctx), fields)
	if err != nil {
		handleEntityError(ctx, err, "Chapitre non trouvé.")
		return
	}
	ctx.JSON(http.StatusOK, chapitre)
}

// Delete godoc
// @Summary Supprimer un chapitre
// @Description Supprime le chapitre et tout son contenu pédagogique
// @Tags chapitres
// @Produce json
// @Success 200 {object} object
// @Failure 404 {object} object "Chapitre non trouvé"
// @Security BearerAuth
// @Router /api/chapitres/{id} [delete]
func (c *ChapitreController) Delete(ctx *gin.Context) {
	if err := c.ChapitreService.Delete(ctx.Request.Context(), pathID(ctx)); err != nil {
		handleEntityError(ctx, err, "Chapitre non trouvé.")
		return
	}
	util.Message(ctx, http.StatusOK, "Chapitre supprimé avec succès.")
}
