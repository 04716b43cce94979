package repository

import (
	"errors"

	"github.com/ClaudiuJitea/nutritionai/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository interface {
	Get(userID uint, key string) (*models.Setting, error)
	Set(userID uint, key, value string) error
}

type settingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db}
}

// Get returns nil, nil when the key has never been written for this user.
func (r *settingRepository) Get(userID uint, key string) (*models.Setting, error) {
	var setting models.Setting
	err := r.db.Where("user_id = ? AND key = ?", userID, key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// Set upserts on (user_id, key).
func (r *settingRepository) Set(userID uint, key, value string) error {
	setting := models.Setting{UserID: userID, Key: key, Value: value}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}
