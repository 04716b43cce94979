package database

import (
	"github.com/ClaudiuJitea/nutritionai/internal/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MigrateDatabase creates the four tables if absent and then applies the
// additive user-table migration. Column additions that fail (typically
// because a partially upgraded schema already has them) are logged and
// swallowed so an upgrade can never brick startup.
func MigrateDatabase() error {
	log.Info("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.FoodEntry{},
		&models.WaterIntake{},
		&models.Setting{},
	)
	if err != nil {
		log.WithError(err).Error("Error during migration")
		return err
	}

	migrateUserColumns(DB)

	if err := EnsureDefaultUser(DB); err != nil {
		log.WithError(err).Error("Error ensuring default user")
		return err
	}

	log.Info("Database migrations completed")
	return nil
}

// migrateUserColumns adds profile columns introduced after the first release.
// AutoMigrate covers fresh installs; this pass covers databases created
// before the columns existed. Errors are never propagated.
func migrateUserColumns(db *gorm.DB) {
	newer := []string{"activity_level", "weight_goal", "setup_completed"}
	for _, column := range newer {
		if db.Migrator().HasColumn(&models.User{}, column) {
			continue
		}
		if err := db.Migrator().AddColumn(&models.User{}, column); err != nil {
			log.WithError(err).WithField("column", column).Warn("Skipping user column migration")
		}
	}
}

// EnsureDefaultUser lazily creates the singleton profile (id = 1) with
// baseline goals on first run. Idempotent.
func EnsureDefaultUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("id = ?", models.DefaultUserID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	user := models.User{
		ID:             models.DefaultUserID,
		Name:           "User",
		CalorieGoal:    models.DefaultCalorieGoal,
		WaterGoal:      models.DefaultWaterGoal,
		SetupCompleted: false,
	}
	return db.Create(&user).Error
}
