package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutriflow/backend/internal/service"
	"github.com/nutriflow/backend/internal/testhelpers"
)

func authRouter(h *AuthHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	h := NewAuthHandler(service.NewAuthService(db, "test-secret"))
	router := authRouter(h)

	w := postJSON(t, router, "/api/v1/auth/register", map[string]string{
		"name":     "Jamie",
		"email":    "jamie@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])

	w = postJSON(t, router, "/api/v1/auth/login", map[string]string{
		"email":    "jamie@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	h := NewAuthHandler(service.NewAuthService(db, "test-secret"))
	router := authRouter(h)

	payload := map[string]string{
		"name":     "Jamie",
		"email":    "jamie@example.com",
		"password": "password123",
	}
	require.Equal(t, http.StatusCreated, postJSON(t, router, "/api/v1/auth/register", payload).Code)
	assert.Equal(t, http.StatusConflict, postJSON(t, router, "/api/v1/auth/register", payload).Code)
}

func TestLoginWrongPassword(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	h := NewAuthHandler(service.NewAuthService(db, "test-secret"))
	router := authRouter(h)

	require.Equal(t, http.StatusCreated, postJSON(t, router, "/api/v1/auth/register", map[string]string{
		"name":     "Jamie",
		"email":    "jamie@example.com",
		"password": "password123",
	}).Code)

	w := postJSON(t, router, "/api/v1/auth/login", map[string]string{
		"email":    "jamie@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterInvalidBody(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	h := NewAuthHandler(service.NewAuthService(db, "test-secret"))
	router := authRouter(h)

	w := postJSON(t, router, "/api/v1/auth/register", map[string]string{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
