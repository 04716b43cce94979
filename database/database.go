package database

import (
	"os"
	"time"

	"github.com/glebarez/sqlite"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// ConnectDatabase opens the local sqlite store with write-ahead logging and
// foreign-key enforcement enabled. The path comes from DB_PATH and defaults
// to a file next to the binary.
func ConnectDatabase() {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "nutritionai.db"
	}

	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

	gormLogger := logger.Default.LogMode(logger.Warn)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to open database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Fatal("Failed to get database connection")
	}

	// sqlite serializes writes at the engine level; a single connection
	// avoids SQLITE_BUSY churn under the write-ahead log.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		log.WithError(err).Fatal("Failed to ping database")
	}

	log.WithField("path", path).Info("Connected to database")

	DB = db
}
