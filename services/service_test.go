package services

import (
	"fmt"
	"testing"
	"time"

	"task-tracking-system/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// openTestDB spins up an isolated in-memory database per test.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.DailyRecord{},
		&models.Task{},
		&models.UserBadge{},
		&models.LeaderboardEntry{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, userID, username string) *models.User {
	t.Helper()
	user := &models.User{
		ID:                     uuid.NewString(),
		UserID:                 userID,
		Username:               username,
		Email:                  username + "@example.com",
		DailyCompletionSummary: models.DailySummary{},
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func reloadUser(t *testing.T, db *gorm.DB, userID string) *models.User {
	t.Helper()
	var user models.User
	require.NoError(t, db.Where("user_id = ?", userID).First(&user).Error)
	return &user
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}
