package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/diploma-nedashkivska/pet-care-service/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file, using process environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	DB = db

	if err := Migrate(DB); err != nil {
		slog.Error("AutoMigrate failed", "error", err)
		os.Exit(1)
	}
}

// Migrate is split out so tests can run the same schema against sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Pet{},
		&models.CalendarEvent{},
		&models.JournalEntry{},
		&models.ForumPost{},
		&models.ForumComment{},
		&models.ForumLike{},
		&models.SitePartner{},
		&models.WatchlistEntry{},
		&models.RevokedToken{},
	)
}
