package services

import (
	"errors"
	"fmt"
	"strings"

	"task-tracking-system/models"

	"gorm.io/gorm"
)

type FriendService struct {
	DB *gorm.DB
}

func NewFriendService(db *gorm.DB) *FriendService {
	return &FriendService{DB: db}
}

// FriendSummary is the trimmed-down view of another user.
type FriendSummary struct {
	Username      string `json:"username"`
	TotalPoints   int    `json:"total_points"`
	CurrentStreak int    `json:"current_streak"`
	HighestStreak int    `json:"highest_streak"`
}

// AddFriend links another user by username. Banned and deleted users cannot
// be befriended.
func (s *FriendService) AddFriend(userID, friendUsername string) error {
	friendUsername = strings.TrimSpace(friendUsername)
	if friendUsername == "" {
		return fmt.Errorf("%w: username required", ErrInvalidInput)
	}

	user, err := findUser(s.DB, userID)
	if err != nil {
		return err
	}
	if user.Username == friendUsername {
		return fmt.Errorf("%w: cannot befriend yourself", ErrInvalidInput)
	}

	var friend models.User
	err = s.DB.Where("username = ? AND is_banned = ? AND is_deleted = ?", friendUsername, false, false).
		First(&friend).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user %s", ErrNotFound, friendUsername)
		}
		return err
	}

	for _, name := range user.Friends {
		if name == friendUsername {
			return nil // already friends
		}
	}
	user.Friends = append(user.Friends, friendUsername)
	return s.DB.Save(user).Error
}

// RemoveFriend unlinks a username from the user's friend list.
func (s *FriendService) RemoveFriend(userID, friendUsername string) error {
	user, err := findUser(s.DB, userID)
	if err != nil {
		return err
	}

	kept := user.Friends[:0]
	removed := false
	for _, name := range user.Friends {
		if name == friendUsername {
			removed = true
			continue
		}
		kept = append(kept, name)
	}
	if !removed {
		return fmt.Errorf("%w: %s is not a friend", ErrNotFound, friendUsername)
	}
	user.Friends = kept
	return s.DB.Save(user).Error
}

// ListFriends returns summaries for the user's friends, skipping any that
// were banned or deleted since being added.
func (s *FriendService) ListFriends(userID string) ([]FriendSummary, error) {
	user, err := findUser(s.DB, userID)
	if err != nil {
		return nil, err
	}
	if len(user.Friends) == 0 {
		return []FriendSummary{}, nil
	}
	return s.summaries([]string(user.Friends))
}

// Leaderboard ranks the user together with their friends by total points,
// highest first. Banned users are filtered out.
func (s *FriendService) Leaderboard(userID string) ([]FriendSummary, error) {
	user, err := findUser(s.DB, userID)
	if err != nil {
		return nil, err
	}
	usernames := append([]string{user.Username}, user.Friends...)
	return s.summaries(usernames)
}

func (s *FriendService) summaries(usernames []string) ([]FriendSummary, error) {
	var rows []FriendSummary
	err := s.DB.Model(&models.User{}).
		Select("username", "total_points", "current_streak", "highest_streak").
		Where("username IN ? AND is_banned = ? AND is_deleted = ?", usernames, false, false).
		Order("total_points DESC").
		Scan(&rows).Error
	if rows == nil {
		rows = []FriendSummary{}
	}
	return rows, err
}
