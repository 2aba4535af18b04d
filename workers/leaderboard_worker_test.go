package workers

import (
	"context"
	"fmt"
	"testing"

	"task-tracking-system/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.LeaderboardEntry{}))
	return db
}

func seedScoredUser(t *testing.T, db *gorm.DB, userID, username string, points int) *models.User {
	t.Helper()
	user := &models.User{
		ID:                     uuid.NewString(),
		UserID:                 userID,
		Username:               username,
		Email:                  username + "@example.com",
		TotalPoints:            points,
		DailyCompletionSummary: models.DailySummary{},
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func snapshotEntries(t *testing.T, db *gorm.DB) []models.LeaderboardEntry {
	t.Helper()
	var entries []models.LeaderboardEntry
	require.NoError(t, db.Order("rank ASC").Find(&entries).Error)
	return entries
}

func TestRefreshSnapshot_RanksByPoints(t *testing.T) {
	db := openTestDB(t)
	seedScoredUser(t, db, "u1", "Alice Smith", 150)
	seedScoredUser(t, db, "u2", "bob", 300)
	seedScoredUser(t, db, "u3", "carol", 50)

	client := NewLeaderboardClient(db)
	require.NoError(t, client.RefreshSnapshot(context.Background()))

	entries := snapshotEntries(t, db)
	require.Len(t, entries, 3)
	assert.Equal(t, "u2", entries[0].UserID)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "u1", entries[1].UserID)
	assert.Equal(t, "u3", entries[2].UserID)
	assert.Equal(t, "alice-smith", entries[1].Handle)
}

func TestRefreshSnapshot_ExcludesBannedAndDeleted(t *testing.T) {
	db := openTestDB(t)
	seedScoredUser(t, db, "u1", "alice", 150)
	banned := seedScoredUser(t, db, "u2", "bob", 900)
	banned.IsBanned = true
	require.NoError(t, db.Save(banned).Error)
	gone := seedScoredUser(t, db, "u3", "carol", 800)
	gone.IsDeleted = true
	require.NoError(t, db.Save(gone).Error)

	client := NewLeaderboardClient(db)
	require.NoError(t, client.RefreshSnapshot(context.Background()))

	entries := snapshotEntries(t, db)
	require.Len(t, entries, 1)
	assert.Equal(t, "u1", entries[0].UserID)
}

func TestRefreshSnapshot_PrunesStaleRows(t *testing.T) {
	db := openTestDB(t)
	seedScoredUser(t, db, "u1", "alice", 150)
	faded := seedScoredUser(t, db, "u2", "bob", 300)

	client := NewLeaderboardClient(db)
	require.NoError(t, client.RefreshSnapshot(context.Background()))
	require.Len(t, snapshotEntries(t, db), 2)

	faded.IsBanned = true
	require.NoError(t, db.Save(faded).Error)
	require.NoError(t, client.RefreshSnapshot(context.Background()))

	entries := snapshotEntries(t, db)
	require.Len(t, entries, 1)
	assert.Equal(t, "u1", entries[0].UserID)
}

func TestRefreshSnapshot_RespectsSizeLimit(t *testing.T) {
	db := openTestDB(t)
	for i := 0; i < 5; i++ {
		seedScoredUser(t, db, fmt.Sprintf("u%d", i), fmt.Sprintf("user%d", i), i*10)
	}

	client := NewLeaderboardClient(db)
	client.Size = 3
	require.NoError(t, client.RefreshSnapshot(context.Background()))

	assert.Len(t, snapshotEntries(t, db), 3)
}
