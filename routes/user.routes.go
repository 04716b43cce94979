package routes

import (
	"github.com/ClaudiuJitea/nutritionai/internal/controllers"
	"github.com/ClaudiuJitea/nutritionai/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.Engine, userController *controllers.UserController) {
	userRoutes := router.Group("/users")
	userRoutes.Use(middleware.AuthMiddleware())
	{
		userRoutes.GET("/me", userController.GetCurrentUser)
		userRoutes.PUT("/me/goals", userController.UpdateGoals)
		userRoutes.PUT("/me/name", userController.UpdateName)
		userRoutes.PUT("/me/profile", userController.UpdateProfile)
	}
}
