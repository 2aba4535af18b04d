package models

// UserBadge: awarded instance, one row per (user, badge code).
type UserBadge struct {
	ID       string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID   string `gorm:"index;not null" json:"user_id"`
	Code     string `gorm:"index;not null" json:"code"`
	Name     string `json:"name"`
	EarnedOn string `json:"earned_on"` // calendar date YYYY-MM-DD
}

// BadgeSpec: static badge definition with its award threshold.
type BadgeSpec struct {
	Code        string
	Name        string
	Description string
	Rarity      string         // common, rare, epic, legendary
	Threshold   map[string]int // e.g. {"total_tasks_completed": 100}
}

// BadgeCatalog lists every badge the service can award, checked after each
// aggregate update.
var BadgeCatalog = []BadgeSpec{
	{
		Code:        "FIRST_TASK",
		Name:        "Getting Started",
		Description: "Completed your first task",
		Rarity:      "common",
		Threshold:   map[string]int{"total_tasks_completed": 1},
	},
	{
		Code:        "CENTURION",
		Name:        "Centurion",
		Description: "Completed 100 tasks",
		Rarity:      "rare",
		Threshold:   map[string]int{"total_tasks_completed": 100},
	},
	{
		Code:        "POINT_COLLECTOR",
		Name:        "Point Collector",
		Description: "Earned 1000 lifetime points",
		Rarity:      "rare",
		Threshold:   map[string]int{"total_points": 1000},
	},
	{
		Code:        "WEEK_STREAK",
		Name:        "Seven Days Strong",
		Description: "Held a 7-day completion streak",
		Rarity:      "epic",
		Threshold:   map[string]int{"highest_streak": 7},
	},
	{
		Code:        "MONTH_STREAK",
		Name:        "Iron Month",
		Description: "Held a 30-day completion streak",
		Rarity:      "legendary",
		Threshold:   map[string]int{"highest_streak": 30},
	},
}
