package middleware

import (
	"eduportal_backend/internal/config"
	"eduportal_backend/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware is the single Bearer verification point for every /api
// route. The verified claims land in the context under "user".
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			util.Unauthorized(c, "Token manquant.")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c, util.TokenErrorMessage(err))
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}
