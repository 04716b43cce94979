package routes

import (
	"github.com/ClaudiuJitea/nutritionai/internal/controllers"
	"github.com/ClaudiuJitea/nutritionai/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterWaterRoutes(router *gin.Engine, waterController *controllers.WaterController) {
	waterRoutes := router.Group("/water")
	waterRoutes.Use(middleware.AuthMiddleware())
	{
		waterRoutes.POST("", waterController.AddWaterIntake)
		waterRoutes.GET("", waterController.GetWaterByDate)
	}
}
