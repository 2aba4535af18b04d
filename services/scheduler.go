// services/scheduler.go
package services

import (
	"log"

	"task-tracking-system/models"

	"github.com/go-co-op/gocron/v2"
)

// StartAveragesScheduler refreshes average_tasks_per_day nightly, shortly
// after local midnight. Streak and rollover state are never touched here;
// rollover stays demand-driven.
func (s *StatsService) StartAveragesScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 30, 0))),
		gocron.NewTask(func() {
			if err := s.RecomputeAverages(); err != nil {
				log.Printf("[Scheduler] averages refresh failed: %v", err)
			}
		}),
	)
}

// RecomputeAverages derives each user's average completed tasks per active
// day from the completion histogram.
func (s *StatsService) RecomputeAverages() error {
	var users []models.User
	if err := s.DB.Where("is_deleted = ?", false).Find(&users).Error; err != nil {
		return err
	}

	for _, u := range users {
		avg := 0.0
		if len(u.DailyCompletionSummary) > 0 {
			total := 0
			for _, n := range u.DailyCompletionSummary {
				total += n
			}
			avg = float64(total) / float64(len(u.DailyCompletionSummary))
		}
		if err := s.DB.Model(&models.User{}).
			Where("id = ?", u.ID).
			Update("average_tasks_per_day", avg).Error; err != nil {
			log.Printf("[Scheduler] failed to update average for %s: %v", u.UserID, err)
		}
	}
	return nil
}
