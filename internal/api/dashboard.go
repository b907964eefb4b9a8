package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nutriflow/backend/internal/middleware"
	"github.com/nutriflow/backend/internal/service"
)

type DashboardHandler struct {
	dashboardService service.IDashboardService
}

func NewDashboardHandler(dashboardService service.IDashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup, validator middleware.TokenValidator) {
	dashboard := router.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware(validator))
	{
		dashboard.GET("", h.GetDashboard)
	}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	view, err := h.dashboardService.View(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, view)
}
