package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutriflow/backend/internal/calc"
	"github.com/nutriflow/backend/internal/middleware"
	"github.com/nutriflow/backend/internal/service"
	"github.com/nutriflow/backend/internal/types"
)

// MetricsHandler serves the small derived-metric endpoints the app's UI uses
// directly: BMI, ideal weight range and the macro split. All computation is
// delegated to internal/calc over the caller's stored profile.
type MetricsHandler struct {
	profileService service.IProfileService
}

func NewMetricsHandler(profileService service.IProfileService) *MetricsHandler {
	return &MetricsHandler{
		profileService: profileService,
	}
}

func (h *MetricsHandler) RegisterRoutes(router *gin.RouterGroup, validator middleware.TokenValidator) {
	metrics := router.Group("/metrics")
	metrics.Use(middleware.AuthMiddleware(validator))
	{
		metrics.GET("/bmi", h.GetBMI)
		metrics.GET("/ideal-weight", h.GetIdealWeight)
		metrics.POST("/macro-split", h.MacroSplit)
	}
}

func (h *MetricsHandler) GetBMI(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get profile"})
		return
	}
	if profile.HeightCm <= 0 || profile.WeightKg <= 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "height and weight must be set"})
		return
	}

	c.JSON(http.StatusOK, calc.CalculateBMI(profile.WeightKg, profile.HeightCm))
}

func (h *MetricsHandler) GetIdealWeight(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get profile"})
		return
	}
	if profile.HeightCm <= 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "height must be set"})
		return
	}

	c.JSON(http.StatusOK, calc.CalculateIdealWeightRange(profile.HeightCm))
}

func (h *MetricsHandler) MacroSplit(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	var req types.MacroSplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	split := calc.CalculateMacroPercentages(calc.NutritionData{
		Protein: req.Protein,
		Carbs:   req.Carbs,
		Fat:     req.Fat,
	})
	c.JSON(http.StatusOK, split)
}
