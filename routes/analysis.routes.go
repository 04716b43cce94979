package routes

import (
	"github.com/ClaudiuJitea/nutritionai/internal/controllers"
	"github.com/ClaudiuJitea/nutritionai/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAnalysisRoutes(router *gin.Engine, analysisController *controllers.AnalysisController) {
	analysisRoutes := router.Group("/analysis")
	analysisRoutes.Use(middleware.AuthMiddleware())
	{
		analysisRoutes.POST("/food", analysisController.AnalyzeFood)
		analysisRoutes.GET("/status", analysisController.GetStatus)
		analysisRoutes.GET("/tip", analysisController.GetTip)
		analysisRoutes.GET("/models", analysisController.GetModels)
		analysisRoutes.PUT("/key", analysisController.SetAPIKey)
		analysisRoutes.DELETE("/key", analysisController.DeleteAPIKey)
	}
}
