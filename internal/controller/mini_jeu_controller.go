package controller

import (
	"errors"
	"net/http"

	"eduportal_backend/internal/model"
	"eduportal_backend/internal/service"
	"eduportal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MiniJeuController struct {
	MiniJeuService *service.MiniJeuService
}

func NewMiniJeuController(miniJeuService *service.MiniJeuService) *MiniJeuController {
	return &MiniJeuController{MiniJeuService: miniJeuService}
}

// List godoc
// @Summary Liste des mini-jeux
// @Description Filtrable par chapitre ou module de validation; le filtre chapitre est prioritaire
// @Tags mini-jeux
// @Produce json
// @Param chapitre_id query int false "Filtre par chapitre"
// @Param module_validation_id query int false "Filtre par module de validation"
// @Success 200 {array} object
// @Security BearerAuth
// @Router /api/mini-jeux [get]
func (c *MiniJeuController) List(ctx *gin.Context) {
	miniJeux, err := c.MiniJeuService.List(
		util.OptionalUint(ctx.Query("chapitre_id")),
		util.OptionalUint(ctx.Query("module_validation_id")),
	)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, miniJeux)
}

// Create godoc
// @Summary Créer un mini-jeu
// @Description Le mini-jeu est rattaché soit à un chapitre, soit à un module de validation; les champs spécifiques dépendent du type
// @Tags mini-jeux
// @Accept json
// @Produce json
// @Success 201 {object} object
// @Failure 400 {object} object "Champs manquants ou rattachement invalide"
// @Failure 404 {object} object "Parent non trouvé"
// @Security BearerAuth
// @Router /api/mini-jeux [post]
func (c *MiniJeuController) Create(ctx *gin.Context) {
	fields, ok := bindBody(ctx)
	if !ok {
		return
	}

	var errs []string
	gameType := bodyString(fields, "type")
	if gameType == "" {
		errs = append(errs, "Le type est obligatoire.")
	}
	question := bodyString(fields, "question")
	if question == "" {
		errs = append(errs, "La question est obligatoire.")
	}
	if len(errs) > 0 {
		util.ValidationErrors(ctx, errs...)
		return
	}

	in := service.MiniJeuInput{
		Type:               gameType,
		TypeReponses:       bodyStringPtr(fields, "type_reponses"),
		Question:           question,
		ImageQuestion:      bodyStringPtr(fields, "image_question"),
		Explication:        bodyStringPtr(fields, "explication"),
		Ordre:              bodyIntPtr(fields, "ordre"),
		ChapitreID:         bodyUintPtr(fields, "chapitre_id"),
		ModuleValidationID: bodyUintPtr(fields, "module_validation_id"),
		Fields:             fields,
	}

	miniJeu, err := c.MiniJeuService.Create(ctx.Request.Context(), in)
	if err != nil {
		c.createError(ctx, err, in)
		return
	}
	ctx.JSON(http.StatusCreated, miniJeu)
}

func (c *MiniJeuController) createError(ctx *gin.Context, err error, in service.MiniJeuInput) {
	var fieldErr *model.PayloadFieldError
	switch {
	case errors.Is(err, service.ErrGameKindInvalid), errors.Is(err, service.ErrMiniJeuParent):
		util.ValidationErrors(ctx, err.Error())
	case errors.As(err, &fieldErr):
		util.ValidationErrors(ctx, fieldErr.Error())
	case errors.Is(err, util.ErrNotFound):
		if in.ChapitreID != nil {
			util.NotFound(ctx, "Chapitre non trouvé.")
		} else {
			util.NotFound(ctx, "Module de validation non trouvé.")
		}
	default:
		util.LogInternalError(ctx, err)
	}
}

// Get godoc
// @Summary Détail d'un mini-jeu
// @Tags mini-jeux
// @Produce json
// @Success 200 {object} object
// @Failure 404 {object} object "Mini jeu non trouvé"
// @Security BearerAuth
// @Router /api/mini-jeux/{id} [get]
func (c *MiniJeuController) Get(ctx *gin.Context) {
	miniJeu, err := c.MiniJeuService.Get(pathID(ctx))
	if err != nil {
		handleEntityError(ctx, err, "Mini jeu non trouvé.")
		return
	}
	ctx.JSON(http.StatusOK, miniJeu)
}

// Update godoc
// @Summary Modifier un mini-jeu
// @Description Fusionne les champs spécifiques présents dans le corps avec ceux déjà stockés; un changement de type relit les champs selon le nouveau type
// @Tags mini-jeux
// @Accept json
// @Produce json
// @Success 200 {object} object
// @Failure 400 {object} object "Type invalide"
// @Failure 404 {object} object "Mini jeu non trouvé"
// @Security BearerAuth
// @Router /api/mini-jeux/{id} [put]
func (c *MiniJeuController) Update(ctx *gin.Context) {
	fields, ok := bindBody(ctx)
	if !ok {
		return
	}
	miniJeu, err := c.MiniJeuService.Update(ctx.Request.Context(), pathID(ctx), fields)
	if err != nil {
		var fieldErr *model.PayloadFieldError
		if errors.Is(err, service.ErrGameKindInvalid) || errors.As(err, &fieldErr) {
			util.ValidationErrors(ctx, err.Error())
			return
		}
		handleEntityError(ctx, err, "Mini jeu non trouvé.")
		return
	}
	ctx.JSON(http.StatusOK, miniJeu)
}

// Delete godoc
// @Summary Supprimer un mini-jeu
// @Tags mini-jeux
// @Produce json
// @Success 200 {object} object
// @Failure 404 {object} object "Mini jeu non trouvé"
// @Security BearerAuth
// @Router /api/mini-jeux/{id} [delete]
func (c *MiniJeuController) Delete(ctx *gin.Context) {
	if err := c.MiniJeuService.Delete(ctx.Request.Context(), pathID(ctx)); err != nil {
		handleEntityError(ctx, err, "Mini jeu non trouvé.")
		return
	}
	util.Message(ctx, http.StatusOK, "Mini jeu supprimé avec succès.")
}
