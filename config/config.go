package config

import (
	"log"

	"github.com/ghada1234/nutritrack/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB opens the in-memory ledger store. The shared-cache DSN keeps a
// single database alive for the process lifetime; nothing is written to
// disk and a restart discards every session's entries.
func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, relying on environment")
	}

	var err error
	DB, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open ledger store: %v", err)
	}

	err = DB.AutoMigrate(
		&models.FoodLogEntry{},
		&models.ExerciseLogEntry{},
		&models.DailyGoal{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}
