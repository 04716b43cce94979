package repository

import (
	"github.com/ClaudiuJitea/nutritionai/internal/models"

	"gorm.io/gorm"
)

type FoodEntryRepository interface {
	Create(entry *models.FoodEntry) error
	FindByID(id uint) (*models.FoodEntry, error)
	FindByUserAndDate(userID uint, date string) ([]models.FoodEntry, error)
	Patch(id uint, patch models.FoodEntryPatch) error
	Delete(id uint) error
	DailyTotals(userID uint, date string) (*models.DailyMacros, error)
	RangeStats(userID uint, startDate, endDate string) ([]models.DailyMacros, error)
	ConsistencyDays(userID uint, startDate, endDate string) (int64, error)
}

type foodEntryRepository struct {
	db *gorm.DB
}

func NewFoodEntryRepository(db *gorm.DB) FoodEntryRepository {
	return &foodEntryRepository{db}
}

func (r *foodEntryRepository) Create(entry *models.FoodEntry) error {
	return r.db.Create(entry).Error
}

func (r *foodEntryRepository) FindByID(id uint) (*models.FoodEntry, error) {
	var entry models.FoodEntry
	err := r.db.First(&entry, id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *foodEntryRepository) FindByUserAndDate(userID uint, date string) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	err := r.db.Where("user_id = ? AND logged_date = ?", userID, date).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

// Patch writes only the fields present in the typed patch. An empty patch is
// a deliberate no-op, not an error.
func (r *foodEntryRepository) Patch(id uint, patch models.FoodEntryPatch) error {
	fields := patch.Fields()
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(&models.FoodEntry{}).Where("id = ?", id).Updates(fields).Error
}

func (r *foodEntryRepository) Delete(id uint) error {
	return r.db.Delete(&models.FoodEntry{}, id).Error
}

// DailyTotals sums macros across one date's entries. COALESCE guarantees
// zero-valued fields when no rows exist.
func (r *foodEntryRepository) DailyTotals(userID uint, date string) (*models.DailyMacros, error) {
	var totals models.DailyMacros
	err := r.db.Model(&models.FoodEntry{}).
		Select("COALESCE(SUM(calories), 0) AS calories, COALESCE(SUM(protein), 0) AS protein, COALESCE(SUM(carbs), 0) AS carbs, COALESCE(SUM(fat), 0) AS fat").
		Where("user_id = ? AND logged_date = ?", userID, date).
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	totals.Date = date
	return &totals, nil
}

// RangeStats returns one aggregate row per distinct logged date in the
// inclusive range, ascending. Dates with no entries are simply absent.
func (r *foodEntryRepository) RangeStats(userID uint, startDate, endDate string) ([]models.DailyMacros, error) {
	var rows []models.DailyMacros
	err := r.db.Model(&models.FoodEntry{}).
		Select("logged_date AS date, SUM(calories) AS calories, SUM(protein) AS protein, SUM(carbs) AS carbs, SUM(fat) AS fat").
		Where("user_id = ? AND logged_date BETWEEN ? AND ?", userID, startDate, endDate).
		Group("logged_date").
		Order("logged_date ASC").
		Scan(&rows).Error
	return rows, err
}

// ConsistencyDays counts distinct dates with at least one entry in the
// inclusive range.
func (r *foodEntryRepository) ConsistencyDays(userID uint, startDate, endDate string) (int64, error) {
	var count int64
	err := r.db.Model(&models.FoodEntry{}).
		Where("user_id = ? AND logged_date BETWEEN ? AND ?", userID, startDate, endDate).
		Distinct("logged_date").
		Count(&count).Error
	return count, err
}
