package controllers

import (
	"net/http"
	"strconv"

	"github.com/ClaudiuJitea/nutritionai/internal/models"
	"github.com/ClaudiuJitea/nutritionai/internal/repository"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	repo repository.FoodEntryRepository
}

func NewFoodController(repo repository.FoodEntryRepository) *FoodController {
	return &FoodController{repo: repo}
}

// CreateFoodEntry godoc
// @Summary Log a food entry
// @Description Insert one meal or item; macro values are stored as supplied
// @Tags food
// @Accept json
// @Produce json
// @Param entry body models.FoodEntry true "Food entry data"
// @Success 201 {object} map[string]interface{} "Food entry created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to create food entry"
// @Router /food/entries [post]
func (fc *FoodController) CreateFoodEntry(c *gin.Context) {
	var entry models.FoodEntry

	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	entry.ID = 0
	entry.UserID = currentUserID(c)
	if entry.LoggedDate == "" {
		entry.LoggedDate = today()
	}
	if !isValidDate(entry.LoggedDate) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "logged_date must be yyyy-MM-dd",
		})
		return
	}

	if err := fc.repo.Create(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create food entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Food entry created successfully",
		"data":    entry,
	})
}

// GetFoodEntriesByDate godoc
// @Summary List food entries for a date
// @Description Entries for the given date, newest created first
// @Tags food
// @Produce json
// @Param date query string true "Date (yyyy-MM-dd)"
// @Success 200 {object} map[string]interface{} "Food entries retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve food entries"
// @Router /food/entries [get]
func (fc *FoodController) GetFoodEntriesByDate(c *gin.Context) {
	date := c.DefaultQuery("date", today())
	if !isValidDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid date",
			"error":   "date must be yyyy-MM-dd",
		})
		return
	}

	entries, err := fc.repo.FindByUserAndDate(currentUserID(c), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve food entries",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food entries retrieved successfully",
		"data":    entries,
	})
}

// PatchFoodEntry godoc
// @Summary Partially update a food entry
// @Description Only supplied fields are written; an empty body is a no-op
// @Tags food
// @Accept json
// @Produce json
// @Param id path int true "Food entry ID"
// @Param patch body models.FoodEntryPatch true "Fields to update"
// @Success 200 {object} map[string]interface{} "Food entry updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 500 {object} map[string]interface{} "Failed to update food entry"
// @Router /food/entries/{id} [patch]
func (fc *FoodController) PatchFoodEntry(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid food entry ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var patch models.FoodEntryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if patch.LoggedDate != nil && !isValidDate(*patch.LoggedDate) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "logged_date must be yyyy-MM-dd",
		})
		return
	}

	if err := fc.repo.Patch(uint(id), patch); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update food entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food entry updated successfully",
	})
}

// DeleteFoodEntry godoc
// @Summary Delete a food entry
// @Description Unconditional delete; a missing id is not an error
// @Tags food
// @Produce json
// @Param id path int true "Food entry ID"
// @Success 200 {object} map[string]interface{} "Food entry deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid food entry ID"
// @Failure 500 {object} map[string]interface{} "Failed to delete food entry"
// @Router /food/entries/{id} [delete]
func (fc *FoodController) DeleteFoodEntry(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid food entry ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if err := fc.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete food entry",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Food entry deleted successfully",
	})
}
