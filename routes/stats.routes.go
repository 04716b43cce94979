package routes

import (
	"github.com/ClaudiuJitea/nutritionai/internal/controllers"
	"github.com/ClaudiuJitea/nutritionai/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterStatsRoutes(router *gin.Engine, statsController *controllers.StatsController) {
	statsRoutes := router.Group("/stats")
	statsRoutes.Use(middleware.AuthMiddleware())
	{
		statsRoutes.GET("/daily", statsController.GetDailyTotals)
		statsRoutes.GET("/weekly", statsController.GetWeeklyStats)
		statsRoutes.GET("/consistency", statsController.GetConsistencyDays)
	}
}
