package handlers

import (
	"net/http"

	experienceService "tripdesk/services/experience"
	"tripdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ImageHandler serves experience image endpoints.
type ImageHandler struct {
	Service experienceService.ImageService
}

// UploadImageHandler handles POST /api/experiences/:id/images. The multipart
// form carries the file under "image" and an optional "primary" flag.
func (h *ImageHandler) UploadImageHandler(c *gin.Context) {
	logger := utils.GetLogger()
	experienceID := c.Param("id")

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image file"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Image open failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable image file"})
		return
	}
	defer file.Close()

	makePrimary := c.PostForm("primary") == "true"
	contentType := fileHeader.Header.Get("Content-Type")

	img, err := h.Service.UploadImage(c.Request.Context(), experienceID,
		fileHeader.Filename, contentType, fileHeader.Size, file, makePrimary)
	if err != nil {
		logger.Error("Image upload failed", zap.String("experienceId", experienceID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, img)
}

// SetPrimaryImageHandler handles PUT /api/experiences/:id/images/:imageId/primary.
func (h *ImageHandler) SetPrimaryImageHandler(c *gin.Context) {
	experienceID := c.Param("id")
	imageID := c.Param("imageId")

	if err := h.Service.SetPrimaryImage(experienceID, imageID); err != nil {
		utils.GetLogger().Warn("Primary image change failed",
			zap.String("experienceId", experienceID), zap.String("imageId", imageID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Primary image updated"})
}

// DeleteImageHandler handles DELETE /api/experiences/:id/images/:imageId.
func (h *ImageHandler) DeleteImageHandler(c *gin.Context) {
	experienceID := c.Param("id")
	imageID := c.Param("imageId")

	if err := h.Service.DeleteImage(experienceID, imageID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
}

// ListImagesHandler handles GET /api/experiences/:id/images.
func (h *ImageHandler) ListImagesHandler(c *gin.Context) {
	images, err := h.Service.ListImages(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, images)
}
