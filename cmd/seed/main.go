package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/ClaudiuJitea/nutritionai/database"
	"github.com/ClaudiuJitea/nutritionai/internal/models"
	"github.com/ClaudiuJitea/nutritionai/internal/repository"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func init() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Warnf("No .env file found: %v", err)
		}
	}
}

var sampleMeals = []struct {
	description string
	mealType    string
	category    string
	calories    float64
	protein     float64
	carbs       float64
	fat         float64
}{
	{"Oatmeal with berries", models.MealTypeBreakfast, "grains", 320, 12, 54, 7},
	{"Scrambled eggs on toast", models.MealTypeBreakfast, "protein", 380, 22, 28, 18},
	{"Grilled chicken salad", models.MealTypeLunch, "protein", 420, 35, 18, 22},
	{"Vegetable stir fry with rice", models.MealTypeLunch, "vegetables", 510, 14, 72, 16},
	{"Salmon with roasted potatoes", models.MealTypeDinner, "protein", 620, 38, 44, 30},
	{"Pasta with tomato sauce", models.MealTypeDinner, "grains", 560, 18, 88, 12},
	{"Greek yogurt", models.MealTypeSnack, "dairy", 150, 15, 9, 5},
	{"Apple with peanut butter", models.MealTypeSnack, "fruits", 270, 7, 29, 16},
}

func main() {
	days := flag.Int("days", 14, "Number of past days to fill with demo entries")
	skipChance := flag.Float64("skip", 0.2, "Probability a day is left unlogged")
	flag.Parse()

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.WithError(err).Fatal("Failed to migrate database")
	}

	foodRepo := repository.NewFoodEntryRepository(database.DB)
	waterRepo := repository.NewWaterIntakeRepository(database.DB)

	created := 0
	for i := 0; i < *days; i++ {
		date := time.Now().AddDate(0, 0, -i).Format("2006-01-02")
		if rand.Float64() < *skipChance {
			continue
		}

		mealCount := 2 + rand.Intn(3)
		for j := 0; j < mealCount; j++ {
			meal := sampleMeals[rand.Intn(len(sampleMeals))]
			entry := models.FoodEntry{
				UserID:      models.DefaultUserID,
				Description: meal.description,
				Quantity:    1,
				Unit:        "serving",
				MealType:    meal.mealType,
				Category:    meal.category,
				Calories:    meal.calories,
				Protein:     meal.protein,
				Carbs:       meal.carbs,
				Fat:         meal.fat,
				LoggedDate:  date,
			}
			if err := foodRepo.Create(&entry); err != nil {
				log.WithError(err).Fatal("Failed to create food entry")
			}
			created++
		}

		glasses := 4 + rand.Intn(6)
		for j := 0; j < glasses; j++ {
			intake := models.WaterIntake{
				UserID:     models.DefaultUserID,
				Amount:     250,
				LoggedDate: date,
			}
			if err := waterRepo.Create(&intake); err != nil {
				log.WithError(err).Fatal("Failed to create water intake")
			}
		}
	}

	fmt.Printf("Seeded %d food entries across %d days\n", created, *days)
}
