package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoAwardBadges_Thresholds(t *testing.T) {
	db := openTestDB(t)
	svc := NewBadgeService(db)
	user := seedUser(t, db, "u1", "alice")
	user.TotalTasksCompleted = 1
	require.NoError(t, db.Save(user).Error)

	require.NoError(t, svc.AutoAwardBadges("u1"))

	badges, err := svc.ListBadges("u1")
	require.NoError(t, err)
	require.Len(t, badges, 1)
	assert.Equal(t, "FIRST_TASK", badges[0].Code)
}

func TestAutoAwardBadges_MultipleAtOnce(t *testing.T) {
	db := openTestDB(t)
	svc := NewBadgeService(db)
	user := seedUser(t, db, "u1", "alice")
	user.TotalTasksCompleted = 120
	user.TotalPoints = 1500
	user.HighestStreak = 10
	require.NoError(t, db.Save(user).Error)

	require.NoError(t, svc.AutoAwardBadges("u1"))

	badges, err := svc.ListBadges("u1")
	require.NoError(t, err)
	codes := make(map[string]bool, len(badges))
	for _, b := range badges {
		codes[b.Code] = true
	}
	assert.True(t, codes["FIRST_TASK"])
	assert.True(t, codes["CENTURION"])
	assert.True(t, codes["POINT_COLLECTOR"])
	assert.True(t, codes["WEEK_STREAK"])
	assert.False(t, codes["MONTH_STREAK"])
}

func TestAutoAwardBadges_NoDoubleAward(t *testing.T) {
	db := openTestDB(t)
	svc := NewBadgeService(db)
	user := seedUser(t, db, "u1", "alice")
	user.TotalTasksCompleted = 5
	require.NoError(t, db.Save(user).Error)

	require.NoError(t, svc.AutoAwardBadges("u1"))
	require.NoError(t, svc.AutoAwardBadges("u1"))

	badges, err := svc.ListBadges("u1")
	require.NoError(t, err)
	assert.Len(t, badges, 1)
}

func TestAutoAwardBadges_UnknownUser(t *testing.T) {
	db := openTestDB(t)
	svc := NewBadgeService(db)

	assert.ErrorIs(t, svc.AutoAwardBadges("ghost"), ErrNotFound)
}
