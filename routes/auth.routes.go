package routes

import (
	"github.com/ClaudiuJitea/nutritionai/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(router *gin.Engine, authController *controllers.AuthController) {
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/token", authController.IssueToken)
	}
}
