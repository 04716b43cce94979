package repository

import (
	"github.com/ClaudiuJitea/nutritionai/internal/models"

	"gorm.io/gorm"
)

type WaterIntakeRepository interface {
	Create(intake *models.WaterIntake) error
	TotalByDate(userID uint, date string) (int, error)
}

type waterIntakeRepository struct {
	db *gorm.DB
}

func NewWaterIntakeRepository(db *gorm.DB) WaterIntakeRepository {
	return &waterIntakeRepository{db}
}

// Create appends one signed delta to the ledger. Removal is a negative
// amount; prior rows are never touched.
func (r *waterIntakeRepository) Create(intake *models.WaterIntake) error {
	return r.db.Create(intake).Error
}

// TotalByDate sums all deltas for the date. No rows yields 0. The total can
// be negative when removals exceed additions; the ledger is not floored here.
func (r *waterIntakeRepository) TotalByDate(userID uint, date string) (int, error) {
	var total int
	err := r.db.Model(&models.WaterIntake{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND logged_date = ?", userID, date).
		Scan(&total).Error
	return total, err
}
