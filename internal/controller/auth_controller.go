package controller

import (
	"errors"
	"net/http"

	"eduportal_backend/internal/model"
	"eduportal_backend/internal/service"
	"eduportal_backend/internal/session"
	"eduportal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Role      string `json:"role" binding:"omitempty,oneof=ROLE_ADMIN ROLE_PROF ROLE_STUDENT"`
}

// Login godoc
// @Summary Connexion
// @Description Vérifie les identifiants et délivre un token signé
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Identifiants"
// @Success 200 {object} object "Profil et token"
// @Failure 401 {object} object "Identifiants invalides"
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationErrors(ctx, "L'email et le mot de passe sont obligatoires.")
		return
	}

	user, token, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Unauthorized(ctx, "Identifiants invalides.")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	state := session.State{
		IsAuthenticated: true,
		Role:            string(user.Role),
		Token:           token,
		User: session.UserInfo{
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
	}
	if err := session.Write(ctx, state); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"email":     user.Email,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"roles":     []string{string(user.Role)},
		"token":     token,
	})
}

// Register godoc
// @Summary Inscription
// @Description Crée un compte avec un mot de passe haché
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Informations du compte"
// @Success 201 {object} object "Compte créé"
// @Failure 400 {object} object "Email déjà utilisé"
// @Router /api/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ValidationErrors(ctx, "L'email, le mot de passe, le prénom et le nom sont obligatoires.")
		return
	}

	role := model.UserRole(req.Role)
	if role == "" {
		role = model.RoleStudent
	}

	user, err := c.AuthService.Register(req.Email, req.Password, req.FirstName, req.LastName, role)
	if err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.ValidationErrors(ctx, "Un utilisateur avec cet email existe déjà.")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"id":        user.ID,
		"email":     user.Email,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"roles":     []string{string(user.Role)},
	})
}

// Logout godoc
// @Summary Déconnexion
// @Description Expire le cookie de session du portail
// @Tags auth
// @Produce json
// @Success 200 {object} object "Session terminée"
// @Router /api/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	session.Clear(ctx)
	ctx.JSON(http.StatusOK, gin.H{"message": "Déconnexion réussie."})
}
