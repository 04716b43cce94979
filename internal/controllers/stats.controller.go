package controllers

import (
	"net/http"

	"github.com/ClaudiuJitea/nutritionai/internal/models"
	"github.com/ClaudiuJitea/nutritionai/internal/repository"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	foodRepo  repository.FoodEntryRepository
	waterRepo repository.WaterIntakeRepository
}

func NewStatsController(foodRepo repository.FoodEntryRepository, waterRepo repository.WaterIntakeRepository) *StatsController {
	return &StatsController{foodRepo: foodRepo, waterRepo: waterRepo}
}

// GetDailyTotals godoc
// @Summary Daily nutrition totals
// @Description Macro sums plus the water total for one date; all zeroes when nothing was logged
// @Tags stats
// @Produce json
// @Param date query string true "Date (yyyy-MM-dd)"
// @Success 200 {object} map[string]interface{} "Daily totals retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid date"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve daily totals"
// @Router /stats/daily [get]
func (sc *StatsController) GetDailyTotals(c *gin.Context) {
	date := c.DefaultQuery("date", today())
	if !isValidDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid date",
			"error":   "date must be yyyy-MM-dd",
		})
		return
	}

	userID := currentUserID(c)

	macros, err := sc.foodRepo.DailyTotals(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve daily totals",
			"error":   err.Error(),
		})
		return
	}

	water, err := sc.waterRepo.TotalByDate(userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve daily totals",
			"error":   err.Error(),
		})
		return
	}

	totals := models.DailyNutrition{
		Date:     date,
		Calories: macros.Calories,
		Protein:  macros.Protein,
		Carbs:    macros.Carbs,
		Fat:      macros.Fat,
		Water:    water,
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Daily totals retrieved successfully",
		"data":    totals,
	})
}

// GetWeeklyStats godoc
// @Summary Range nutrition stats
// @Description One aggregate row per distinct logged date, ascending; dates without entries are absent
// @Tags stats
// @Produce json
// @Param start query string true "Start date (yyyy-MM-dd, inclusive)"
// @Param end query string true "End date (yyyy-MM-dd, inclusive)"
// @Success 200 {object} map[string]interface{} "Range stats retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid range"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve range stats"
// @Router /stats/weekly [get]
func (sc *StatsController) GetWeeklyStats(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if !isValidDate(start) || !isValidDate(end) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid range",
			"error":   "start and end must be yyyy-MM-dd",
		})
		return
	}

	rows, err := sc.foodRepo.RangeStats(currentUserID(c), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve range stats",
			"error":   err.Error(),
		})
		return
	}
	if rows == nil {
		rows = []models.DailyMacros{}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Range stats retrieved successfully",
		"data":    rows,
	})
}

// GetConsistencyDays godoc
// @Summary Logging consistency
// @Description Count of distinct dates with at least one food entry in the inclusive range
// @Tags stats
// @Produce json
// @Param start query string true "Start date (yyyy-MM-dd, inclusive)"
// @Param end query string true "End date (yyyy-MM-dd, inclusive)"
// @Success 200 {object} map[string]interface{} "Consistency retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid range"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve consistency"
// @Router /stats/consistency [get]
func (sc *StatsController) GetConsistencyDays(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")
	if !isValidDate(start) || !isValidDate(end) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid range",
			"error":   "start and end must be yyyy-MM-dd",
		})
		return
	}

	days, err := sc.foodRepo.ConsistencyDays(currentUserID(c), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve consistency",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Consistency retrieved successfully",
		"data":    gin.H{"start": start, "end": end, "days": days},
	})
}
