package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriflow/backend/internal/models"
	"github.com/nutriflow/backend/internal/service"
	"github.com/nutriflow/backend/internal/testhelpers"
)

func diaryRouter(h *DiaryHandler, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	authed := router.Group("/api/v1")
	authed.Use(asUser(userID))
	diary := authed.Group("/diary")
	{
		diary.POST("/food", h.LogFood)
		diary.GET("/food", h.ListFood)
		diary.DELETE("/food/:id", h.DeleteFood)
		diary.POST("/water", h.LogWater)
		diary.PUT("/steps", h.UpdateSteps)
		diary.GET("/summary", h.Summary)
	}
	return router
}

func TestLogAndListFood(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	userID := uuid.New()
	h := NewDiaryHandler(service.NewDiaryService(db))
	router := diaryRouter(h, userID)

	body, _ := json.Marshal(map[string]any{
		"name":     "oatmeal",
		"calories": 350,
		"protein":  12,
		"carbs":    60,
		"fat":      6,
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/diary/food", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.FoodLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "oatmeal", created.Name)
	assert.Equal(t, userID, created.UserID)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/v1/diary/food", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var logs []models.FoodLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	require.Len(t, logs, 1)
	assert.Equal(t, created.ID, logs[0].ID)
}

func TestLogFoodInvalidBody(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	h := NewDiaryHandler(service.NewDiaryService(db))
	router := diaryRouter(h, uuid.New())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/diary/food", bytes.NewReader([]byte(`{"calories": -5}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListFoodBadDate(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	h := NewDiaryHandler(service.NewDiaryService(db))
	router := diaryRouter(h, uuid.New())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/diary/food?date=31-08-2026", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteFoodNotFound(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	h := NewDiaryHandler(service.NewDiaryService(db))
	router := diaryRouter(h, uuid.New())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", fmt.Sprintf("/api/v1/diary/food/%s", uuid.New()), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateStepsAndSummary(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	userID := uuid.New()
	h := NewDiaryHandler(service.NewDiaryService(db))
	router := diaryRouter(h, userID)

	body, _ := json.Marshal(map[string]any{"steps": 8000})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/v1/diary/steps", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	body, _ = json.Marshal(map[string]any{"amount_ml": 500})
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/api/v1/diary/water", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/v1/diary/summary", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var summary service.DaySummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 8000, summary.Steps)
	assert.Equal(t, 500.0, summary.WaterMl)
}
