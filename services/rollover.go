package services

import (
	"errors"
	"log"
	"time"

	"task-tracking-system/models"
	"task-tracking-system/utils"

	"gorm.io/gorm"
)

// RolloverService performs the once-per-day streak transition on a user's
// first interaction of a new calendar day. There is no timer; the rollover
// middleware invokes it ahead of every user-scoped request.
type RolloverService struct {
	DB    *gorm.DB
	Locks *UserLocks

	now func() time.Time
}

func NewRolloverService(db *gorm.DB, locks *UserLocks) *RolloverService {
	return &RolloverService{DB: db, Locks: locks, now: time.Now}
}

// ProcessRollover evaluates yesterday's completion count and advances or
// resets the streak, exactly once per local calendar day. Every failure is
// logged and swallowed: a broken rollover must never block the request that
// triggered it.
func (s *RolloverService) ProcessRollover(userID string) {
	mu := s.Locks.ForUser(userID)
	mu.Lock()
	defer mu.Unlock()

	var user models.User
	if err := s.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("⚠️ [ROLLOVER] no profile for user %s, skipping", userID)
		} else {
			log.Printf("❌ [ROLLOVER] failed to load user %s: %v", userID, err)
		}
		return
	}

	today := utils.DateStringAt(s.now())
	yesterday := utils.DateStringAt(s.now().AddDate(0, 0, -1))

	// Already settled for today.
	if user.LastRolloverDate != nil && *user.LastRolloverDate == today {
		return
	}

	if user.CompletedOn(yesterday) > 0 {
		user.CurrentStreak++
	} else {
		user.CurrentStreak = 0
	}
	if user.CurrentStreak > user.HighestStreak {
		user.HighestStreak = user.CurrentStreak
	}
	user.LastRolloverDate = &today

	if err := s.DB.Save(&user).Error; err != nil {
		log.Printf("❌ [ROLLOVER] failed to save user %s: %v", userID, err)
		return
	}

	log.Printf("🔄 [ROLLOVER] %s → streak=%d highest=%d (yesterday=%d)",
		userID, user.CurrentStreak, user.HighestStreak, user.CompletedOn(yesterday))
}
