package controller

import (
	"net/http"

	"eduportal_backend/internal/service"
	"eduportal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionReponseController struct {
	QuestionService *service.QuestionReponseService
}

func NewQuestionReponseController(questionService *service.QuestionReponseService) *QuestionReponseController {
	return &QuestionReponseController{QuestionService: questionService}
}

// List godoc
// @Summary Liste des questions-réponses
// @Tags questions-reponses
// @Produce json
// @Param exercice_id query int false "Filtre par exercice"
// @Success 200 {array} object
// @Security BearerAuth
// @Router /api/question-reponses [get]
func (c *QuestionReponseController) List(ctx *gin.Context) {
	questions, err := c.QuestionService.List(util.OptionalUint(ctx.Query("exercice_id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// Create godoc
// @Summary Créer une question-réponse
// @Tags questions-reponses
// @Accept json
// @Produce json
// @Success 201 {object} object
// @Failure 400 {object} object "Champs manquants"
// @Failure 404 {object} object "Exercice non trouvé"
// @Security BearerAuth
// @Router /api/question-reponses [post]
func (c *QuestionReponseController) Create(ctx *gin.Context) {
	fields, ok := bindBody(ctx)
	if !ok {
		return
	}

	var errs []string
	contenu := bodyString(fields, "contenu")
	if contenu == "" {
		errs = append(errs, "Le contenu est obligatoire.")
	}
	exerciceID := bodyUint(fields, "exercice_id")
	if exerciceID == 0 {
		errs = append(errs, "Le exercice_id est obligatoire.")
	}
	if len(errs) > 0 {
		util.ValidationErrors(ctx, errs...)
		return
	}

	question, err := c.QuestionService.Create(ctx.Request.Context(), contenu, bodyIntPtr(fields, "ordre"), exerciceID)
	if err != nil {
		handleEntityError(ctx, err, "Exercice non trouvé.")
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// Get godoc
// @Summary Détail d'une question-réponse
// @Tags questions-reponses
// @Produce json
// @Success 200 {object} object
// @Failure 404 {object} object "Question réponse non trouvée"
// @Security BearerAuth
// @Router /api/question-reponses/{id} [get]
func (c *QuestionReponseController) Get(ctx *gin.Context) {
	question, err := c.QuestionService.Get(pathID(ctx))
	if err != nil {
		handleEntityError(ctx, err, "Question réponse non trouvée.")
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// Update godoc
// @Summary Modifier une question-réponse
// @Tags questions-reponses
// @Accept json
// @Produce json
// @Success 200 {object} object
// @Failure 404 {object} object "Question réponse non trouvée"
// @Security BearerAuth
// @Router /api/question-reponses/{id} [put]
func (c *QuestionReponseController) Update(ctx *gin.Context) {
	fields, ok := bindBody(ctx)
	if !ok {
		return
	}
	question, err := c.QuestionService.Update(ctx.Request.Context(), pathID(ctx), fields)
	if err != nil {
		handleEntityError(ctx, err, "Question réponse non trouvée.")
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// Delete godoc
// @Summary Supprimer une question-réponse
// @Tags questions-reponses
// @Produce json
// @Success 200 {object} object
// @Failure 404 {object} object "Question réponse non trouvée"
// @Security BearerAuth
// @Router /api/question-reponses/{id} [delete]
func (c *QuestionReponseController) Delete(ctx *gin.Context) {
	if err := c.QuestionService.Delete(ctx.Request.Context(), pathID(ctx)); err != nil {
		handleEntityError(ctx, err, "Question réponse non trouvée.")
		return
	}
	util.Message(ctx, http.StatusOK, "Question réponse supprimée avec succès.")
}
