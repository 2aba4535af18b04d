package services

import (
	"strconv"
	"testing"
	"time"

	"task-tracking-system/models"
	"task-tracking-system/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserStats(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "u1", "alice")
	user.TotalPoints = 2450
	user.TotalTasksCompleted = 320
	user.TotalTasksCreated = 350
	user.CurrentStreak = 7
	user.HighestStreak = 15
	user.DailyCompletionSummary = models.DailySummary{
		"2025-10-10": 4,
		"2025-11-30": 6,
	}
	require.NoError(t, db.Save(user).Error)

	stats, err := NewStatsService(db).GetUserStats("u1")
	require.NoError(t, err)

	assert.Equal(t, "alice", stats.Username)
	assert.Equal(t, 320, stats.TotalTasksCompleted)
	assert.Equal(t, 350, stats.TotalTasksStarted)
	assert.Equal(t, 30, stats.TasksMissed)
	assert.Equal(t, 2450, stats.TotalPoints)
	assert.Equal(t, 7, stats.CurrentStreak)
	assert.Equal(t, 15, stats.HighestStreak)

	require.Len(t, stats.CalendarHeatmapData, 2)
	key, err := utils.HeatmapKey("2025-11-30")
	require.NoError(t, err)
	assert.Equal(t, 6, stats.CalendarHeatmapData[strconv.FormatInt(key, 10)])

	// A display layer converting the key back must land on the same local
	// calendar date, whatever the host's UTC offset.
	assert.Equal(t, "2025-11-30", time.Unix(key, 0).In(time.Local).Format(utils.DateLayout))
}

func TestGetUserStats_MissedNeverNegative(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "u1", "alice")
	user.TotalTasksCompleted = 10
	user.TotalTasksCreated = 4 // more completions than creations after deletions
	require.NoError(t, db.Save(user).Error)

	stats, err := NewStatsService(db).GetUserStats("u1")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TasksMissed)
}

func TestGetUserStats_SkipsMalformedHistogramDates(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "u1", "alice")
	user.DailyCompletionSummary = models.DailySummary{
		"2025-10-10": 2,
		"not-a-date": 9,
		"2025-13-40": 1,
	}
	require.NoError(t, db.Save(user).Error)

	stats, err := NewStatsService(db).GetUserStats("u1")
	require.NoError(t, err)
	assert.Len(t, stats.CalendarHeatmapData, 1)
}

func TestGetUserStats_UnknownUser(t *testing.T) {
	db := openTestDB(t)
	_, err := NewStatsService(db).GetUserStats("ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecomputeAverages(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "u1", "alice")
	user.DailyCompletionSummary = models.DailySummary{
		"2025-10-10": 4,
		"2025-10-11": 6,
		"2025-10-12": 2,
	}
	require.NoError(t, db.Save(user).Error)
	seedUser(t, db, "u2", "bob") // empty histogram stays at 0

	require.NoError(t, NewStatsService(db).RecomputeAverages())

	assert.InDelta(t, 4.0, reloadUser(t, db, "u1").AverageTasksPerDay, 0.001)
	assert.Equal(t, 0.0, reloadUser(t, db, "u2").AverageTasksPerDay)
}
