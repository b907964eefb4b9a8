package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nutriflow/backend/internal/middleware"
	"github.com/nutriflow/backend/internal/service"
	"github.com/nutriflow/backend/internal/types"
)

type DiaryHandler struct {
	diaryService service.IDiaryService
}

func NewDiaryHandler(diaryService service.IDiaryService) *DiaryHandler {
	return &DiaryHandler{
		diaryService: diaryService,
	}
}

func (h *DiaryHandler) RegisterRoutes(router *gin.RouterGroup, validator middleware.TokenValidator) {
	diary := router.Group("/diary")
	diary.Use(middleware.AuthMiddleware(validator))
	{
		diary.POST("/food", h.LogFood)
		diary.GET("/food", h.ListFood)
		diary.DELETE("/food/:id", h.DeleteFood)
		diary.POST("/exercise", h.LogExercise)
		diary.GET("/exercise", h.ListExercise)
		diary.DELETE("/exercise/:id", h.DeleteExercise)
		diary.POST("/water", h.LogWater)
		diary.PUT("/steps", h.UpdateSteps)
		diary.GET("/summary", h.Summary)
	}
}

// queryDate parses the optional ?date=2006-01-02 query param, defaulting to
// today.
func queryDate(c *gin.Context) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01-02", raw)
}

func (h *DiaryHandler) LogFood(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.LogFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.diaryService.LogFood(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log food"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *DiaryHandler) ListFood(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	date, err := queryDate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	logs, err := h.diaryService.ListFood(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list food"})
		return
	}

	c.JSON(http.StatusOK, logs)
}

func (h *DiaryHandler) DeleteFood(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	if err := h.diaryService.DeleteFood(c.Request.Context(), userID, entryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "entry deleted"})
}

func (h *DiaryHandler) LogExercise(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.LogExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.diaryService.LogExercise(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log exercise"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *DiaryHandler) ListExercise(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	date, err := queryDate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	logs, err := h.diaryService.ListExercise(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list exercise"})
		return
	}

	c.JSON(http.StatusOK, logs)
}

func (h *DiaryHandler) DeleteExercise(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry id"})
		return
	}

	if err := h.diaryService.DeleteExercise(c.Request.Context(), userID, entryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "entry deleted"})
}

func (h *DiaryHandler) LogWater(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.LogWaterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	entry, err := h.diaryService.LogWater(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log water"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}

func (h *DiaryHandler) UpdateSteps(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.UpdateStepsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	record, err := h.diaryService.UpsertSteps(c.Request.Context(), userID, date, req.Steps)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update steps"})
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *DiaryHandler) Summary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	date, err := queryDate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	summary, err := h.diaryService.Summarize(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to summarize day"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
