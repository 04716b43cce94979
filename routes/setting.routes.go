package routes

import (
	"github.com/ClaudiuJitea/nutritionai/internal/controllers"
	"github.com/ClaudiuJitea/nutritionai/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterSettingRoutes(router *gin.Engine, settingController *controllers.SettingController) {
	settingRoutes := router.Group("/settings")
	settingRoutes.Use(middleware.AuthMiddleware())
	{
		settingRoutes.GET("/:key", settingController.GetSetting)
		settingRoutes.PUT("/:key", settingController.SetSetting)
	}
}
