package controller

import (
	"net/http"
	"strings"

	"eduportal_backend/internal/service"
	"eduportal_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// 8 MiB, enough for question illustrations.
const maxImageSize = 8 << 20

type UploadController struct {
	StorageService *service.StorageService
}

func NewUploadController(storageService *service.StorageService) *UploadController {
	return &UploadController{StorageService: storageService}
}

// UploadImage godoc
// @Summary Téléverser une image
// @Description Stocke l'image d'une question ou d'une animation et retourne son URL
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Fichier image"
// @Success 201 {object} object "URL de l'image"
// @Failure 400 {object} object "Fichier manquant ou invalide"
// @Security BearerAuth
// @Router /api/upload/image [post]
func (c *UploadController) UploadImage(ctx *gin.Context) {
	header, err := ctx.FormFile("image")
	if err != nil {
		util.ValidationErrors(ctx, "Le fichier image est obligatoire.")
		return
	}
	if header.Size > maxImageSize {
		util.ValidationErrors(ctx, "Le fichier image est trop volumineux.")
		return
	}
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		util.ValidationErrors(ctx, "Le fichier doit être une image.")
		return
	}

	file, err := header.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	url, err := c.StorageService.UploadImage(ctx.Request.Context(), header.Filename, file, header.Size, contentType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"url": url})
}
