package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ClaudiuJitea/nutritionai/internal/controllers"
	"github.com/ClaudiuJitea/nutritionai/internal/models"
	"github.com/ClaudiuJitea/nutritionai/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupUserController() (*controllers.UserController, *mocks.MockUserRepository) {
	mockRepo := new(mocks.MockUserRepository)
	controller := controllers.NewUserController(mockRepo)
	return controller, mockRepo
}

func TestGetCurrentUser(t *testing.T) {
	controller, mockRepo := setupUserController()
	mockRepo.On("FindByID", uint(1)).Return(&models.User{
		ID:          1,
		Name:        "User",
		CalorieGoal: 2000,
		WaterGoal:   2500,
	}, nil)

	router := setupTestRouter()
	router.GET("/users/me", addUserAuthMiddleware(1), controller.GetCurrentUser)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data models.User `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2000, response.Data.CalorieGoal)
	assert.Equal(t, 2500, response.Data.WaterGoal)
	mockRepo.AssertExpectations(t)
}

func TestUpdateGoalsSuccess(t *testing.T) {
	controller, mockRepo := setupUserController()
	mockRepo.On("UpdateGoals", uint(1), 1800, 3000).Return(nil)

	router := setupTestRouter()
	router.PUT("/users/me/goals", addUserAuthMiddleware(1), controller.UpdateGoals)

	body, _ := json.Marshal(map[string]interface{}{"calorie_goal": 1800, "water_goal": 3000})
	req := httptest.NewRequest(http.MethodPut, "/users/me/goals", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestUpdateGoalsMissingField(t *testing.T) {
	controller, mockRepo := setupUserController()

	router := setupTestRouter()
	router.PUT("/users/me/goals", addUserAuthMiddleware(1), controller.UpdateGoals)

	body, _ := json.Marshal(map[string]interface{}{"calorie_goal": 1800})
	req := httptest.NewRequest(http.MethodPut, "/users/me/goals", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRepo.AssertNotCalled(t, "UpdateGoals")
}

func TestUpdateName(t *testing.T) {
	controller, mockRepo := setupUserController()
	mockRepo.On("UpdateName", uint(1), "Alex").Return(nil)

	router := setupTestRouter()
	router.PUT("/users/me/name", addUserAuthMiddleware(1), controller.UpdateName)

	body, _ := json.Marshal(map[string]string{"name": "Alex"})
	req := httptest.NewRequest(http.MethodPut, "/users/me/name", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestUpdateProfileDerivesGoals(t *testing.T) {
	controller, mockRepo := setupUserController()
	mockRepo.On("UpdateProfile", uint(1), mock.MatchedBy(func(p models.UserProfile) bool {
		return p.Weight == 70 && p.Age == 30 && p.CalorieGoal == nil && p.WaterGoal == nil
	})).Return(&models.User{
		ID:             1,
		Name:           "Alex",
		CalorieGoal:    2141,
		WaterGoal:      2450,
		SetupCompleted: true,
	}, nil)

	router := setupTestRouter()
	router.PUT("/users/me/profile", addUserAuthMiddleware(1), controller.UpdateProfile)

	body, _ := json.Marshal(map[string]interface{}{
		"name":           "Alex",
		"weight":         70,
		"age":            30,
		"activity_level": "moderate",
		"weight_goal":    "lose_steady",
	})
	req := httptest.NewRequest(http.MethodPut, "/users/me/profile", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data models.User `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2141, response.Data.CalorieGoal)
	assert.True(t, response.Data.SetupCompleted)
	mockRepo.AssertExpectations(t)
}

func TestUpdateProfileIncomplete(t *testing.T) {
	controller, mockRepo := setupUserController()

	router := setupTestRouter()
	router.PUT("/users/me/profile", addUserAuthMiddleware(1), controller.UpdateProfile)

	body, _ := json.Marshal(map[string]interface{}{"name": "Alex", "weight": 70})
	req := httptest.NewRequest(http.MethodPut, "/users/me/profile", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRepo.AssertNotCalled(t, "UpdateProfile")
}
