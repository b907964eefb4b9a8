package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutriflow/backend/internal/api"
	"github.com/nutriflow/backend/internal/middleware"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth      *api.AuthHandler
	Profile   *api.ProfileHandler
	Diary     *api.DiaryHandler
	Dashboard *api.DashboardHandler
	Metrics   *api.MetricsHandler
	Photos    *api.PhotoHandler
}

// SetupRouter configures the application routes.
func SetupRouter(h Handlers, validator middleware.TokenValidator) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	h.Auth.RegisterRoutes(v1)
	h.Profile.RegisterRoutes(v1, validator)
	h.Diary.RegisterRoutes(v1, validator)
	h.Dashboard.RegisterRoutes(v1, validator)
	h.Metrics.RegisterRoutes(v1, validator)

	// Photo uploads are optional, the handler is nil when S3 is not configured.
	if h.Photos != nil {
		h.Photos.RegisterRoutes(v1, validator)
	}

	return router
}
