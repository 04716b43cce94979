package repository

import (
	"github.com/ClaudiuJitea/nutritionai/internal/models"
	"github.com/ClaudiuJitea/nutritionai/internal/nutrition"

	"gorm.io/gorm"
)

type UserRepository interface {
	FindByID(id uint) (*models.User, error)
	UpdateGoals(userID uint, calorieGoal, waterGoal int) error
	UpdateName(userID uint, name string) error
	UpdateProfile(userID uint, profile models.UserProfile) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateGoals(userID uint, calorieGoal, waterGoal int) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"calorie_goal": calorieGoal,
			"water_goal":   waterGoal,
		}).Error
}

func (r *userRepository) UpdateName(userID uint, name string) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).
		Update("name", name).Error
}

// UpdateProfile saves the onboarding profile. Goals the caller omits are
// derived from the profile; setup_completed is always set.
func (r *userRepository) UpdateProfile(userID uint, profile models.UserProfile) (*models.User, error) {
	calorieGoal := nutrition.CalorieGoal(profile.Weight, profile.Age, profile.ActivityLevel, profile.WeightGoal)
	if profile.CalorieGoal != nil {
		calorieGoal = *profile.CalorieGoal
	}
	waterGoal := nutrition.WaterGoal(profile.Weight, profile.Age)
	if profile.WaterGoal != nil {
		waterGoal = *profile.WaterGoal
	}

	err := r.db.Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"name":            profile.Name,
			"weight":          profile.Weight,
			"age":             profile.Age,
			"activity_level":  profile.ActivityLevel,
			"weight_goal":     profile.WeightGoal,
			"calorie_goal":    calorieGoal,
			"water_goal":      waterGoal,
			"setup_completed": true,
		}).Error
	if err != nil {
		return nil, err
	}

	return r.FindByID(userID)
}
