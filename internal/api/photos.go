package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutriflow/backend/internal/middleware"
	"github.com/nutriflow/backend/internal/service"
)

type PhotoHandler struct {
	photoService service.IPhotoService
}

func NewPhotoHandler(photoService service.IPhotoService) *PhotoHandler {
	return &PhotoHandler{
		photoService: photoService,
	}
}

func (h *PhotoHandler) RegisterRoutes(router *gin.RouterGroup, validator middleware.TokenValidator) {
	photos := router.Group("/photos")
	photos.Use(middleware.AuthMiddleware(validator))
	{
		photos.POST("", h.Upload)
		photos.GET("/*key", h.GetURL)
	}
}

// Upload accepts a multipart meal photo and returns the stored object key.
func (h *PhotoHandler) Upload(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file required"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	key, err := h.photoService.Upload(c.Request.Context(), userID, file, contentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload photo"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"key": key})
}

// GetURL returns a short-lived presigned URL for a stored photo.
func (h *PhotoHandler) GetURL(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	key := c.Param("key")
	if len(key) > 0 && key[0] == '/' {
		key = key[1:]
	}
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo key required"})
		return
	}

	url, err := h.photoService.URL(c.Request.Context(), key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate photo URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
