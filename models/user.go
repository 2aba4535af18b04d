package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// DailySummary maps a calendar date (YYYY-MM-DD) to the number of tasks the
// user completed on that date. Stored as a single jsonb column; the rollover
// engine reads it and completion toggles write it.
type DailySummary map[string]int

func (s DailySummary) Value() (driver.Value, error) {
	if s == nil {
		s = DailySummary{}
	}
	return json.Marshal(s)
}

func (s *DailySummary) Scan(value interface{}) error {
	if value == nil {
		*s = DailySummary{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported column type for daily summary: %T", value)
	}
}

// FriendList holds the usernames a user has befriended.
type FriendList []string

func (f FriendList) Value() (driver.Value, error) {
	if f == nil {
		f = FriendList{}
	}
	return json.Marshal(f)
}

func (f *FriendList) Scan(value interface{}) error {
	if value == nil {
		*f = FriendList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	default:
		return fmt.Errorf("unsupported column type for friend list: %T", value)
	}
}

// User is the per-user profile aggregate. It is the single source of truth
// for cross-date cumulative statistics; daily records only report per-date
// facts that feed into it.
type User struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID string `gorm:"uniqueIndex;not null" json:"user_id"` // stable identity from the auth gateway

	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`

	JoinDate       string  `json:"join_date"`
	Timezone       string  `json:"timezone"`
	PreferredTheme string  `gorm:"type:varchar(16);default:'light'" json:"preferred_theme"`
	AvatarURL      *string `json:"avatar_url,omitempty"`

	// Running aggregates maintained incrementally by task mutations.
	TotalPoints         int     `json:"total_points" gorm:"default:0"`
	TotalTasksCompleted int     `json:"total_tasks_completed" gorm:"default:0"`
	TotalTasksCreated   int     `json:"total_tasks_created" gorm:"default:0"`
	AverageTasksPerDay  float64 `json:"average_tasks_per_day" gorm:"default:0"`

	// Streak state, owned by the rollover engine.
	CurrentStreak    int     `json:"current_streak" gorm:"default:0"`
	HighestStreak    int     `json:"highest_streak" gorm:"default:0"`
	LastRolloverDate *string `json:"last_rollover_date,omitempty"`

	DailyCompletionSummary DailySummary `gorm:"type:jsonb" json:"daily_completion_summary"`

	Friends FriendList `gorm:"type:jsonb" json:"friends"`

	// Moderation
	AdminLevel int  `json:"admin_level" gorm:"default:0"`
	IsBanned   bool `json:"is_banned" gorm:"default:false"`
	WarnCount  int  `json:"warn_count" gorm:"default:0"`
	IsDeleted  bool `json:"is_deleted" gorm:"default:false"`

	Timestamps
}

// CompletedOn returns how many tasks the user completed on the given date.
func (u *User) CompletedOn(date string) int {
	if u.DailyCompletionSummary == nil {
		return 0
	}
	return u.DailyCompletionSummary[date]
}

// Timestamps adds GORM auto-times
type Timestamps struct {
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
