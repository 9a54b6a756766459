package database

import (
	"strings"

	"github.com/sparkquest/sparkquest-api/internal/config"
	"github.com/sparkquest/sparkquest-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var dialector gorm.Dialector

	// Use PostgreSQL if URL starts with postgres, otherwise SQLite
	if strings.HasPrefix(cfg.DatabaseURL, "postgres") {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.DatabaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// Duplicate-key races must surface as gorm.ErrDuplicatedKey so the
		// services can treat them as conflicts instead of opaque failures.
		TranslateError: true,
	})
	if err != nil {
		return err
	}

	DB = db
	return nil
}

func Migrate() error {
	return DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Quest{},
		&models.UserQuest{},
		&models.Reward{},
		&models.UserReward{},
		&models.Activity{},
	)
}
