package routes

import (
	"github.com/ClaudiuJitea/nutritionai/internal/controllers"
	"github.com/ClaudiuJitea/nutritionai/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterFoodRoutes(router *gin.Engine, foodController *controllers.FoodController) {
	foodRoutes := router.Group("/food")
	foodRoutes.Use(middleware.AuthMiddleware())
	{
		foodRoutes.POST("/entries", foodController.CreateFoodEntry)
		foodRoutes.GET("/entries", foodController.GetFoodEntriesByDate)
		foodRoutes.PATCH("/entries/:id", foodController.PatchFoodEntry)
		foodRoutes.DELETE("/entries/:id", foodController.DeleteFoodEntry)
	}
}
