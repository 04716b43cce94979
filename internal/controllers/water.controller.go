package controllers

import (
	"net/http"

	"github.com/ClaudiuJitea/nutritionai/internal/models"
	"github.com/ClaudiuJitea/nutritionai/internal/repository"

	"github.com/gin-gonic/gin"
)

type WaterController struct {
	repo repository.WaterIntakeRepository
}

func NewWaterController(repo repository.WaterIntakeRepository) *WaterController {
	return &WaterController{repo: repo}
}

// AddWaterIntake godoc
// @Summary Log a water delta
// @Description Append a signed ml delta to the hydration ledger; removal is a negative amount
// @Tags water
// @Accept json
// @Produce json
// @Param intake body object true "Amount in ml and optional date"
// @Success 201 {object} map[string]interface{} "Water intake logged successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to log water intake"
// @Router /water [post]
func (wc *WaterController) AddWaterIntake(c *gin.Context) {
	var body struct {
		Amount *int   `json:"amount" binding:"required"`
		Date   string `json:"date"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if body.Date == "" {
		body.Date = today()
	}
	if !isValidDate(body.Date) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "date must be yyyy-MM-dd",
		})
		return
	}

	intake := models.WaterIntake{
		UserID:     currentUserID(c),
		Amount:     *body.Amount,
		LoggedDate: body.Date,
	}

	if err := wc.repo.Create(&intake); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to log water intake",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Water intake logged successfully",
		"data":    intake,
	})
}

// GetWaterByDate godoc
// @Summary Get the water total for a date
// @Description Sum of all ledger deltas for the date; can be negative, no floor is applied
// @Tags water
// @Produce json
// @Param date query string true "Date (yyyy-MM-dd)"
// @Success 200 {object} map[string]interface{} "Water total retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve water total"
// @Router /water [get]
func (wc *WaterController) GetWaterByDate(c *gin.Context) {
	date := c.DefaultQuery("date", today())
	if !isValidDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid date",
			"error":   "date must be yyyy-MM-dd",
		})
		return
	}

	total, err := wc.repo.TotalByDate(currentUserID(c), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve water total",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Water total retrieved successfully",
		"data":    gin.H{"date": date, "total": total},
	})
}
