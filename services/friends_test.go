package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedScoredUser(t *testing.T, db *gorm.DB, userID, username string, points int) {
	t.Helper()
	user := seedUser(t, db, userID, username)
	user.TotalPoints = points
	require.NoError(t, db.Save(user).Error)
}

func TestAddAndListFriends(t *testing.T) {
	db := openTestDB(t)
	svc := NewFriendService(db)
	seedScoredUser(t, db, "u1", "alice", 100)
	seedScoredUser(t, db, "u2", "bob", 200)

	require.NoError(t, svc.AddFriend("u1", "bob"))
	require.NoError(t, svc.AddFriend("u1", "bob")) // repeat add is a no-op

	friends, err := svc.ListFriends("u1")
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, "bob", friends[0].Username)
	assert.Equal(t, 200, friends[0].TotalPoints)
}

func TestAddFriend_Validation(t *testing.T) {
	db := openTestDB(t)
	svc := NewFriendService(db)
	seedUser(t, db, "u1", "alice")

	assert.ErrorIs(t, svc.AddFriend("u1", ""), ErrInvalidInput)
	assert.ErrorIs(t, svc.AddFriend("u1", "alice"), ErrInvalidInput)
	assert.ErrorIs(t, svc.AddFriend("u1", "nobody"), ErrNotFound)
}

func TestRemoveFriend(t *testing.T) {
	db := openTestDB(t)
	svc := NewFriendService(db)
	seedUser(t, db, "u1", "alice")
	seedUser(t, db, "u2", "bob")

	require.NoError(t, svc.AddFriend("u1", "bob"))
	require.NoError(t, svc.RemoveFriend("u1", "bob"))
	assert.ErrorIs(t, svc.RemoveFriend("u1", "bob"), ErrNotFound)

	friends, err := svc.ListFriends("u1")
	require.NoError(t, err)
	assert.Empty(t, friends)
}

func TestLeaderboard_RanksSelfAndFriendsByPoints(t *testing.T) {
	db := openTestDB(t)
	svc := NewFriendService(db)
	seedScoredUser(t, db, "u1", "alice", 150)
	seedScoredUser(t, db, "u2", "bob", 300)
	seedScoredUser(t, db, "u3", "carol", 50)
	seedScoredUser(t, db, "u4", "dave", 999) // not a friend, must not appear

	require.NoError(t, svc.AddFriend("u1", "bob"))
	require.NoError(t, svc.AddFriend("u1", "carol"))

	rows, err := svc.Leaderboard("u1")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "bob", rows[0].Username)
	assert.Equal(t, "alice", rows[1].Username)
	assert.Equal(t, "carol", rows[2].Username)
}

func TestLeaderboard_ExcludesBannedFriends(t *testing.T) {
	db := openTestDB(t)
	svc := NewFriendService(db)
	seedScoredUser(t, db, "u1", "alice", 150)
	seedScoredUser(t, db, "u2", "bob", 300)

	require.NoError(t, svc.AddFriend("u1", "bob"))

	banned := reloadUser(t, db, "u2")
	banned.IsBanned = true
	require.NoError(t, db.Save(banned).Error)

	rows, err := svc.Leaderboard("u1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "alice", rows[0].Username)
}
