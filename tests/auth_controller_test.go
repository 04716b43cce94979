package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ClaudiuJitea/nutritionai/internal/controllers"
	"github.com/ClaudiuJitea/nutritionai/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueTokenSuccess(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	controller := controllers.NewAuthController()

	router := setupTestRouter()
	router.POST("/auth/token", controller.IssueToken)

	body, _ := json.Marshal(map[string]string{"device_id": "phone-1"})
	req := httptest.NewRequest(http.MethodPost, "/auth/token", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response.Data.Token)
}

func TestIssueTokenMissingDeviceID(t *testing.T) {
	controller := controllers.NewAuthController()

	router := setupTestRouter()
	router.POST("/auth/token", controller.IssueToken)

	req := httptest.NewRequest(http.MethodPost, "/auth/token", bytes.NewBufferString("{}"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIssuedTokenPassesAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	controller := controllers.NewAuthController()

	router := setupTestRouter()
	router.POST("/auth/token", controller.IssueToken)
	router.GET("/private", middleware.AuthMiddleware(), func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	body, _ := json.Marshal(map[string]string{"device_id": "phone-1"})
	req := httptest.NewRequest(http.MethodPost, "/auth/token", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var issued struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &issued))

	req = httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+issued.Data.Token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var private struct {
		UserID uint `json:"user_id"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &private))
	assert.Equal(t, uint(1), private.UserID)
}

func TestAuthMiddlewareRejectsMissingAndMalformedHeaders(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	router := setupTestRouter()
	router.GET("/private", middleware.AuthMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"garbage token", "Bearer not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
