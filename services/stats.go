package services

import (
	"log"
	"strconv"

	"task-tracking-system/utils"

	"gorm.io/gorm"
)

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

// UserStats is the display-facing stats payload. Heatmap keys are epoch
// seconds (as strings) at local midnight of each histogram date.
type UserStats struct {
	Username            string         `json:"username"`
	TotalTasksCompleted int            `json:"total_tasks_completed"`
	TotalTasksStarted   int            `json:"total_tasks_started"`
	TasksMissed         int            `json:"tasks_missed"`
	TotalPoints         int            `json:"total_points"`
	CurrentStreak       int            `json:"current_streak"`
	HighestStreak       int            `json:"highest_streak"`
	CalendarHeatmapData map[string]int `json:"calendar_heatmap_data"`
}

// GetUserStats assembles the stats view from the profile aggregate.
func (s *StatsService) GetUserStats(userID string) (*UserStats, error) {
	user, err := findUser(s.DB, userID)
	if err != nil {
		return nil, err
	}

	heatmap := make(map[string]int, len(user.DailyCompletionSummary))
	for date, count := range user.DailyCompletionSummary {
		key, err := utils.HeatmapKey(date)
		if err != nil {
			log.Printf("⚠️ [STATS] invalid date %q in completion summary for %s", date, userID)
			continue
		}
		heatmap[strconv.FormatInt(key, 10)] = count
	}

	return &UserStats{
		Username:            user.Username,
		TotalTasksCompleted: user.TotalTasksCompleted,
		TotalTasksStarted:   user.TotalTasksCreated,
		TasksMissed:         floorZero(user.TotalTasksCreated - user.TotalTasksCompleted),
		TotalPoints:         user.TotalPoints,
		CurrentStreak:       user.CurrentStreak,
		HighestStreak:       user.HighestStreak,
		CalendarHeatmapData: heatmap,
	}, nil
}
