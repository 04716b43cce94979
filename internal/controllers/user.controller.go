package controllers

import (
	"net/http"

	"github.com/ClaudiuJitea/nutritionai/internal/models"
	"github.com/ClaudiuJitea/nutritionai/internal/repository"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	repo repository.UserRepository
}

func NewUserController(repo repository.UserRepository) *UserController {
	return &UserController{repo: repo}
}

// GetCurrentUser godoc
// @Summary Get the current profile
// @Description Retrieve the profile with goals and setup state
// @Tags user
// @Produce json
// @Success 200 {object} map[string]interface{} "User retrieved successfully"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /users/me [get]
func (uc *UserController) GetCurrentUser(c *gin.Context) {
	user, err := uc.repo.FindByID(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User retrieved successfully",
		"data":    user,
	})
}

// UpdateGoals godoc
// @Summary Update calorie and water goals
// @Tags user
// @Accept json
// @Produce json
// @Param goals body object true "Goal values"
// @Success 200 {object} map[string]interface{} "Goals updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to update goals"
// @Router /users/me/goals [put]
func (uc *UserController) UpdateGoals(c *gin.Context) {
	var goals struct {
		CalorieGoal *int `json:"calorie_goal" binding:"required"`
		WaterGoal   *int `json:"water_goal" binding:"required"`
	}

	if err := c.ShouldBindJSON(&goals); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := uc.repo.UpdateGoals(currentUserID(c), *goals.CalorieGoal, *goals.WaterGoal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update goals",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Goals updated successfully",
	})
}

// UpdateName godoc
// @Summary Update the profile name
// @Tags user
// @Accept json
// @Produce json
// @Param name body object true "New name"
// @Success 200 {object} map[string]interface{} "Name updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to update name"
// @Router /users/me/name [put]
func (uc *UserController) UpdateName(c *gin.Context) {
	var body struct {
		Name string `json:"name" binding:"required"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := uc.repo.UpdateName(currentUserID(c), body.Name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update name",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Name updated successfully",
	})
}

// UpdateProfile godoc
// @Summary Complete onboarding with a full profile
// @Description Save the profile; calorie and water goals are derived when omitted
// @Tags user
// @Accept json
// @Produce json
// @Param profile body models.UserProfile true "Profile data"
// @Success 200 {object} map[string]interface{} "Profile updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to update profile"
// @Router /users/me/profile [put]
func (uc *UserController) UpdateProfile(c *gin.Context) {
	var profile models.UserProfile

	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user, err := uc.repo.UpdateProfile(currentUserID(c), profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile updated successfully",
		"data":    user,
	})
}
