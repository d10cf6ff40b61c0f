package controller

import (
	"errors"

	"eduportal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// handleEntityError maps a service failure to the wire: a missing entity
// becomes a 404 with the resource's French message, anything else a
// logged 500.
func handleEntityError(ctx *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, util.ErrNotFound) {
		util.NotFound(ctx, notFoundMsg)
		return
	}
	util.LogInternalError(ctx, err)
}

// Create and update bodies are decoded to a map instead of a struct: the
// update semantics distinguish an absent key from an explicit null, and
// binding to a struct would erase that difference.

func bindBody(ctx *gin.Context) (map[string]any, bool) {
	fields := map[string]any{}
	if ctx.Request.Body == nil || ctx.Request.ContentLength == 0 {
		return fields, true
	}
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		util.ValidationErrors(ctx, "Le corps de la requête est invalide.")
		return nil, false
	}
	return fields, true
}

func bodyString(fields map[string]any, key string) string {
	if s, ok := fields[key].(string); ok {
		return s
	}
	return ""
}

func bodyStringPtr(fields map[string]any, key string) *string {
	if s, ok := fields[key].(string); ok {
		return &s
	}
	return nil
}

func bodyIntPtr(fields map[string]any, key string) *int {
	if f, ok := fields[key].(float64); ok {
		n := int(f)
		return &n
	}
	return nil
}

func bodyUint(fields map[string]any, key string) uint {
	if f, ok := fields[key].(float64); ok && f > 0 {
		return uint(f)
	}
	return 0
}

func bodyUintPtr(fields map[string]any, key string) *uint {
	if f, ok := fields[key].(float64); ok && f > 0 {
		n := uint(f)
		return &n
	}
	return nil
}

func pathID(ctx *gin.Context) uint {
	return util.MustParseUint(ctx.Param("id"))
}
