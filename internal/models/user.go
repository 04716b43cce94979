package models

import "time"

// DefaultUserID is the singleton profile row guaranteed present after
// database initialization.
const DefaultUserID uint = 1

const (
	DefaultCalorieGoal = 2000
	DefaultWaterGoal   = 2500
)

// Weight goal values accepted on the user profile.
const (
	WeightGoalMaintain       = "maintain"
	WeightGoalLoseSteady     = "lose_steady"
	WeightGoalLoseAggressive = "lose_aggressive"
)

type User struct {
	ID             uint      `gorm:"primaryKey" json:"id" example:"1"`
	Name           string    `json:"name" example:"Claudiu"`
	Weight         float64   `json:"weight" example:"70"`
	Age            int       `json:"age" example:"30"`
	ActivityLevel  string    `json:"activity_level" example:"moderate"`
	WeightGoal     string    `json:"weight_goal" example:"lose_steady"`
	CalorieGoal    int       `json:"calorie_goal" example:"2000"`
	WaterGoal      int       `json:"water_goal" example:"2500"`
	SetupCompleted bool      `gorm:"default:false" json:"setup_completed"`
	CreatedAt      time.Time `json:"created_at"`
}

// UserProfile is the onboarding payload. CalorieGoal and WaterGoal are
// optional; when nil the store derives them from weight, age, activity level
// and weight goal before saving.
type UserProfile struct {
	Name          string  `json:"name" binding:"required"`
	Weight        float64 `json:"weight" binding:"required"`
	Age           int     `json:"age" binding:"required"`
	ActivityLevel string  `json:"activity_level" binding:"required"`
	WeightGoal    string  `json:"weight_goal" binding:"required"`
	CalorieGoal   *int    `json:"calorie_goal"`
	WaterGoal     *int    `json:"water_goal"`
}
