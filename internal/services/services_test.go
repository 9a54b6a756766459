package services

import (
	"testing"

	"github.com/sparkquest/sparkquest-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory SQLite database. The pool is capped at
// one connection so every query sees the same memory database; single-statement
// writes skip the wrapping transaction so interleaving callbacks can issue
// their own writes on that connection mid-operation.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		TranslateError:         true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Quest{},
		&models.UserQuest{},
		&models.Reward{},
		&models.UserReward{},
		&models.Activity{},
	))
	return db
}

func createQuest(t *testing.T, db *gorm.DB, id string, points int) models.Quest {
	t.Helper()
	quest := models.Quest{
		ID:           id,
		Title:        "Test Quest " + id,
		Category:     "Personal Growth",
		Difficulty:   models.DifficultyMedium,
		PointsReward: points,
		Instructions: datatypes.JSONSlice[string]{"Do the thing", "Reflect on it"},
	}
	require.NoError(t, db.Create(&quest).Error)
	return quest
}

func createReward(t *testing.T, db *gorm.DB, id string, cost, minBalance int, available bool) models.Reward {
	t.Helper()
	reward := models.Reward{
		ID:         id,
		Title:      "Test Reward " + id,
		Cost:       cost,
		Category:   models.RewardSpecialFeatures,
		Available:  available,
		MinBalance: minBalance,
	}
	require.NoError(t, db.Create(&reward).Error)
	return reward
}

func balance(t *testing.T, db *gorm.DB, userID interface{}) int {
	t.Helper()
	var profile models.Profile
	require.NoError(t, db.First(&profile, "id = ?", userID).Error)
	return profile.SparkPoints
}
