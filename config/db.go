package config

import (
	"log"
	"os"
	"time"

	"movie-booking/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultDatabasePath is where the sqlite file lives, relative to the
// process working directory.
const DefaultDatabasePath = "bookings.db"

// Connect opens (creating if absent) the sqlite database at path and
// ensures the booking schema exists. Safe to call against an already
// migrated file: AutoMigrate no-ops on an up-to-date schema.
func Connect(path string) (*gorm.DB, error) {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.Booking{}); err != nil {
		return nil, err
	}

	return db, nil
}
