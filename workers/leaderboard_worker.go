package workers

import (
	"context"
	"log"
	"time"

	"task-tracking-system/models"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LeaderboardClient refreshes the ranked snapshot served by the public
// leaderboard endpoint, so reads never scan the users table.
type LeaderboardClient struct {
	DB   *gorm.DB
	Size int // how many ranked rows to keep
}

func NewLeaderboardClient(db *gorm.DB) *LeaderboardClient {
	return &LeaderboardClient{DB: db, Size: 100}
}

// RefreshSnapshot ranks active users by total points, upserts the snapshot
// rows and prunes anyone who fell off since the previous pass.
func (c *LeaderboardClient) RefreshSnapshot(ctx context.Context) error {
	started := time.Now()

	var users []models.User
	err := c.DB.WithContext(ctx).
		Where("is_banned = ? AND is_deleted = ?", false, false).
		Order("total_points DESC").
		Limit(c.Size).
		Find(&users).Error
	if err != nil {
		return err
	}
	if len(users) == 0 {
		return nil
	}

	entries := make([]models.LeaderboardEntry, len(users))
	for i, u := range users {
		entries[i] = models.LeaderboardEntry{
			UserID:        u.UserID,
			Rank:          i + 1,
			Username:      u.Username,
			Handle:        slug.Make(u.Username),
			TotalPoints:   u.TotalPoints,
			CurrentStreak: u.CurrentStreak,
			HighestStreak: u.HighestStreak,
			SnapshotAt:    started,
		}
	}

	return c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).Create(&entries).Error; err != nil {
			return err
		}
		// Rows not touched this pass are stale.
		return tx.Where("snapshot_at < ?", started).
			Delete(&models.LeaderboardEntry{}).Error
	})
}

// PollLeaderboard refreshes the snapshot on an interval until ctx is done.
func PollLeaderboard(ctx context.Context, client *LeaderboardClient, interval time.Duration) {
	if err := client.RefreshSnapshot(ctx); err != nil {
		log.Printf("❌ [LEADERBOARD] initial refresh failed: %v", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Leaderboard worker stopping")
			return
		case <-ticker.C:
			if err := client.RefreshSnapshot(ctx); err != nil {
				log.Printf("❌ [LEADERBOARD] refresh failed: %v", err)
			}
		}
	}
}
