package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ClaudiuJitea/nutritionai/internal/controllers"
	"github.com/ClaudiuJitea/nutritionai/internal/models"
	"github.com/ClaudiuJitea/nutritionai/internal/openai"
	"github.com/ClaudiuJitea/nutritionai/tests/mocks"

	"github.com/stretchr/testify/assert"
)

const analysisPayload = `{
	"food_description": "Grilled chicken salad",
	"estimated_serving": "1 bowl (350g)",
	"food_category": "protein",
	"calories": 420,
	"protein": 38,
	"carbs": 12,
	"fat": 24,
	"confidence": "high"
}`

func completionResponse(content string) string {
	body := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]interface{}{"content": content}},
		},
	}
	data, _ := json.Marshal(body)
	return string(data)
}

func setupAnalysisController(t *testing.T, providerURL, apiKey string) (*controllers.AnalysisController, *mocks.MockSettingRepository, *mocks.MockSecretStore) {
	t.Setenv("OPENAI_BASE_URL", providerURL)
	t.Setenv("OPENAI_MODEL", "")

	mockSettings := new(mocks.MockSettingRepository)
	mockSecrets := new(mocks.MockSecretStore)
	mockSecrets.On("APIKey").Return(apiKey, nil)

	controller := controllers.NewAnalysisController(openai.NewClient(), mockSecrets, mockSettings, nil)
	return controller, mockSettings, mockSecrets
}

func TestAnalyzeFoodEndpointSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Write([]byte(completionResponse(analysisPayload)))
	}))
	defer server.Close()

	controller, mockSettings, _ := setupAnalysisController(t, server.URL, "test-key")
	mockSettings.On("Get", uint(1), "preferred_model").Return(nil, nil)

	router := setupTestRouter()
	router.POST("/analysis/food", addUserAuthMiddleware(1), controller.AnalyzeFood)

	body, _ := json.Marshal(map[string]string{"image": "aW1hZ2U="})
	req := httptest.NewRequest(http.MethodPost, "/analysis/food", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data openai.NutritionAnalysis `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Grilled chicken salad", response.Data.FoodDescription)
	assert.Equal(t, 420.0, response.Data.Calories)
	mockSettings.AssertExpectations(t)
}

func TestAnalyzeFoodEndpointUsesPreferredModel(t *testing.T) {
	var gotModel string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Model string `json:"model"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		gotModel = req.Model
		w.Write([]byte(completionResponse(analysisPayload)))
	}))
	defer server.Close()

	controller, mockSettings, _ := setupAnalysisController(t, server.URL, "test-key")
	mockSettings.On("Get", uint(1), "preferred_model").Return(&models.Setting{
		UserID: 1, Key: "preferred_model", Value: "gpt-4o",
	}, nil)

	router := setupTestRouter()
	router.POST("/analysis/food", addUserAuthMiddleware(1), controller.AnalyzeFood)

	body, _ := json.Marshal(map[string]string{"image": "aW1hZ2U="})
	req := httptest.NewRequest(http.MethodPost, "/analysis/food", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gpt-4o", gotModel)
}

func TestAnalyzeFoodEndpointMissingKey(t *testing.T) {
	controller, mockSettings, _ := setupAnalysisController(t, "http://127.0.0.1:0", "")
	mockSettings.On("Get", uint(1), "preferred_model").Return(nil, nil)

	router := setupTestRouter()
	router.POST("/analysis/food", addUserAuthMiddleware(1), controller.AnalyzeFood)

	body, _ := json.Marshal(map[string]string{"image": "aW1hZ2U="})
	req := httptest.NewRequest(http.MethodPost, "/analysis/food", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeFoodEndpointUnparsableResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(completionResponse("I cannot identify the food.")))
	}))
	defer server.Close()

	controller, mockSettings, _ := setupAnalysisController(t, server.URL, "test-key")
	mockSettings.On("Get", uint(1), "preferred_model").Return(nil, nil)

	router := setupTestRouter()
	router.POST("/analysis/food", addUserAuthMiddleware(1), controller.AnalyzeFood)

	body, _ := json.Marshal(map[string]string{"image": "aW1hZ2U="})
	req := httptest.NewRequest(http.MethodPost, "/analysis/food", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetTipFallsBackWhenProviderDown(t *testing.T) {
	controller, mockSettings, _ := setupAnalysisController(t, "http://127.0.0.1:0", "test-key")
	mockSettings.On("Get", uint(1), "preferred_model").Return(nil, nil)

	router := setupTestRouter()
	router.GET("/analysis/tip", addUserAuthMiddleware(1), controller.GetTip)

	req := httptest.NewRequest(http.MethodGet, "/analysis/tip", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data struct {
			Tip string `json:"tip"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response.Data.Tip)
}

func TestSetAndDeleteAPIKey(t *testing.T) {
	mockSecrets := new(mocks.MockSecretStore)
	mockSecrets.On("SetAPIKey", "sk-new").Return(nil)
	mockSecrets.On("ClearAPIKey").Return(nil)

	controller := controllers.NewAnalysisController(openai.NewClient(), mockSecrets, new(mocks.MockSettingRepository), nil)

	router := setupTestRouter()
	router.PUT("/analysis/key", addUserAuthMiddleware(1), controller.SetAPIKey)
	router.DELETE("/analysis/key", addUserAuthMiddleware(1), controller.DeleteAPIKey)

	body, _ := json.Marshal(map[string]string{"api_key": "sk-new"})
	req := httptest.NewRequest(http.MethodPut, "/analysis/key", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodDelete, "/analysis/key", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	mockSecrets.AssertExpectations(t)
}
