package models

import "time"

// LeaderboardEntry is a ranked snapshot row refreshed by the leaderboard
// worker. Reads never touch the users table directly.
type LeaderboardEntry struct {
	UserID        string    `gorm:"primaryKey" json:"user_id"`
	Rank          int       `gorm:"index" json:"rank"`
	Username      string    `json:"username"`
	Handle        string    `json:"handle"` // url-safe slug of the username
	TotalPoints   int       `json:"total_points"`
	CurrentStreak int       `json:"current_streak"`
	HighestStreak int       `json:"highest_streak"`
	SnapshotAt    time.Time `json:"snapshot_at"`
}
