package main

import (
	"os"

	"github.com/ClaudiuJitea/nutritionai/database"
	"github.com/ClaudiuJitea/nutritionai/docs"
	"github.com/ClaudiuJitea/nutritionai/internal/cache"
	"github.com/ClaudiuJitea/nutritionai/internal/controllers"
	"github.com/ClaudiuJitea/nutritionai/internal/openai"
	"github.com/ClaudiuJitea/nutritionai/internal/repository"
	"github.com/ClaudiuJitea/nutritionai/internal/secrets"
	"github.com/ClaudiuJitea/nutritionai/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using process environment")
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "NutritionAI API"
	docs.SwaggerInfo.Description = "Nutrition logging backend with AI photo analysis."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	// Connect to the local store and migrate
	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.WithError(err).Fatal("Failed to run database migrations")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	foodRepo := repository.NewFoodEntryRepository(database.DB)
	waterRepo := repository.NewWaterIntakeRepository(database.DB)
	settingRepo := repository.NewSettingRepository(database.DB)

	// Secret store for the provider API key
	secretStore, err := secrets.NewFileStore("")
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize secret store")
	}

	// Optional redis cache for the auxiliary analysis calls
	var redisCache *cache.RedisClient
	if rc, err := cache.NewRedisClient(); err != nil {
		log.WithError(err).Warn("Running without redis cache")
	} else {
		redisCache = rc
		defer redisCache.Close()
		log.Info("Redis cache connected")
	}

	analysisClient := openai.NewClient()

	// Initialize controllers
	authController := controllers.NewAuthController()
	userController := controllers.NewUserController(userRepo)
	foodController := controllers.NewFoodController(foodRepo)
	waterController := controllers.NewWaterController(waterRepo)
	statsController := controllers.NewStatsController(foodRepo, waterRepo)
	settingController := controllers.NewSettingController(settingRepo)
	analysisController := controllers.NewAnalysisController(analysisClient, secretStore, settingRepo, redisCache)

	router := gin.Default()

	routes.RegisterAuthRoutes(router, authController)
	routes.RegisterUserRoutes(router, userController)
	routes.RegisterFoodRoutes(router, foodController)
	routes.RegisterWaterRoutes(router, waterController)
	routes.RegisterStatsRoutes(router, statsController)
	routes.RegisterSettingRoutes(router, settingController)
	routes.RegisterAnalysisRoutes(router, analysisController)
	routes.RegisterSwaggerRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.WithField("port", port).Info("Starting server")
	if err := router.Run(":" + port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
