package controllers

import (
	"net/http"

	"github.com/ClaudiuJitea/nutritionai/internal/repository"

	"github.com/gin-gonic/gin"
)

type SettingController struct {
	repo repository.SettingRepository
}

func NewSettingController(repo repository.SettingRepository) *SettingController {
	return &SettingController{repo: repo}
}

// GetSetting godoc
// @Summary Read a setting
// @Description Returns a null value when the key has never been written
// @Tags settings
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} map[string]interface{} "Setting retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve setting"
// @Router /settings/{key} [get]
func (sc *SettingController) GetSetting(c *gin.Context) {
	key := c.Param("key")

	setting, err := sc.repo.Get(currentUserID(c), key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve setting",
			"error":   err.Error(),
		})
		return
	}

	var value interface{}
	if setting != nil {
		value = setting.Value
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Setting retrieved successfully",
		"data":    gin.H{"key": key, "value": value},
	})
}

// SetSetting godoc
// @Summary Write a setting
// @Description Insert-or-replace on (user, key)
// @Tags settings
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Param value body object true "Setting value"
// @Success 200 {object} map[string]interface{} "Setting saved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to save setting"
// @Router /settings/{key} [put]
func (sc *SettingController) SetSetting(c *gin.Context) {
	key := c.Param("key")

	var body struct {
		Value *string `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := sc.repo.Set(currentUserID(c), key, *body.Value); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save setting",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Setting saved successfully",
	})
}
