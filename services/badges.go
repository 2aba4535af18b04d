package services

import (
	"log"

	"task-tracking-system/models"
	"task-tracking-system/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BadgeService struct {
	DB *gorm.DB
}

func NewBadgeService(db *gorm.DB) *BadgeService {
	return &BadgeService{DB: db}
}

// AutoAwardBadges checks the whole catalog against a user's aggregate and
// awards anything newly earned. Called after every aggregate update.
func (s *BadgeService) AutoAwardBadges(userID string) error {
	user, err := findUser(s.DB, userID)
	if err != nil {
		return err
	}

	for _, spec := range models.BadgeCatalog {
		if !s.meetsThreshold(user, spec.Threshold) {
			continue
		}
		var count int64
		s.DB.Model(&models.UserBadge{}).
			Where("user_id = ? AND code = ?", userID, spec.Code).
			Count(&count)
		if count > 0 {
			continue
		}
		badge := models.UserBadge{
			ID:       uuid.NewString(),
			UserID:   userID,
			Code:     spec.Code,
			Name:     spec.Name,
			EarnedOn: utils.TodayString(),
		}
		if err := s.DB.Create(&badge).Error; err != nil {
			return err
		}
		log.Printf("🎖️ Badge awarded: %s → %s", spec.Name, userID)
	}
	return nil
}

// ListBadges returns the user's earned badges, newest first.
func (s *BadgeService) ListBadges(userID string) ([]models.UserBadge, error) {
	var badges []models.UserBadge
	err := s.DB.Where("user_id = ?", userID).
		Order("earned_on DESC").
		Find(&badges).Error
	return badges, err
}

func (s *BadgeService) meetsThreshold(user *models.User, req map[string]int) bool {
	for key, required := range req {
		switch key {
		case "total_points":
			if user.TotalPoints < required {
				return false
			}
		case "total_tasks_completed":
			if user.TotalTasksCompleted < required {
				return false
			}
		case "current_streak":
			if user.CurrentStreak < required {
				return false
			}
		case "highest_streak":
			if user.HighestStreak < required {
				return false
			}
		}
	}
	return true
}
