package services

import (
	"fmt"
	"log"

	"task-tracking-system/models"

	"gorm.io/gorm"
)

// Warnings before moderation auto-bans an account.
const MaxWarnings = 5

type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

// ListUsers returns current standard accounts (not deleted, not admins).
func (s *AdminService) ListUsers() ([]models.User, error) {
	var users []models.User
	err := s.DB.Where("is_deleted = ? AND admin_level = ?", false, 0).
		Order("username ASC").
		Find(&users).Error
	return users, err
}

// ListDeletedUsers returns soft-deleted accounts.
func (s *AdminService) ListDeletedUsers() ([]models.User, error) {
	var users []models.User
	err := s.DB.Where("is_deleted = ?", true).Find(&users).Error
	return users, err
}

// ListAdmins returns accounts holding any admin level.
func (s *AdminService) ListAdmins() ([]models.User, error) {
	var users []models.User
	err := s.DB.Where("admin_level > ?", 0).Find(&users).Error
	return users, err
}

// ToggleBan flips the ban flag on a user.
func (s *AdminService) ToggleBan(userID string) (*models.User, error) {
	user, err := findUser(s.DB, userID)
	if err != nil {
		return nil, err
	}
	user.IsBanned = !user.IsBanned
	if err := s.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// WarnUser increments the warning counter and auto-bans once it reaches
// MaxWarnings.
func (s *AdminService) WarnUser(userID string) (*models.User, error) {
	user, err := findUser(s.DB, userID)
	if err != nil {
		return nil, err
	}
	user.WarnCount++
	if user.WarnCount >= MaxWarnings {
		user.IsBanned = true
		log.Printf("🚫 [ADMIN] user %s auto-banned after %d warnings", userID, user.WarnCount)
	}
	if err := s.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// SoftDeleteUser flags the account as deleted without touching its history.
func (s *AdminService) SoftDeleteUser(userID string) (*models.User, error) {
	user, err := findUser(s.DB, userID)
	if err != nil {
		return nil, err
	}
	user.IsDeleted = true
	if err := s.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser hard-deletes the account and cascades to its daily records,
// tasks, badges and leaderboard row.
func (s *AdminService) DeleteUser(userID string) error {
	user, err := findUser(s.DB, userID)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var records []models.DailyRecord
		if err := tx.Where("user_id = ?", userID).Find(&records).Error; err != nil {
			return err
		}
		for _, r := range records {
			if err := tx.Where("daily_record_id = ?", r.ID).Delete(&models.Task{}).Error; err != nil {
				return fmt.Errorf("failed to delete tasks for record %s: %w", r.ID, err)
			}
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.DailyRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserBadge{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.LeaderboardEntry{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(user).Error
	})
}
