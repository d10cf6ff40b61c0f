package util

import (
	"eduportal_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// The API speaks the portal's historical wire format: bare entities or
// arrays on success, {"message": ...} for 401/404/500 and
// {"errors": [...]} for validation failures.

func Message(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

func ValidationErrors(c *gin.Context, errs ...string) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
}

func Unauthorized(c *gin.Context, message string) {
	Message(c, http.StatusUnauthorized, message)
}

func NotFound(c *gin.Context, message string) {
	Message(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context) {
	Message(c, http.StatusInternalServerError, "Erreur serveur.")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error", zap.Error(err), zap.String("path", c.FullPath()))
	InternalServerError(c)
}
