package services

import (
	"fmt"

	"task-tracking-system/models"

	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// GetProfile returns the user's own profile row.
func (s *UserService) GetProfile(userID string) (*models.User, error) {
	return findUser(s.DB, userID)
}

// ProfileUpdate carries the fields a user may change on their own profile.
// Nil means leave as-is.
type ProfileUpdate struct {
	PreferredTheme *string `json:"preferred_theme"`
	Timezone       *string `json:"timezone"`
}

// UpdateProfile applies theme/timezone changes.
func (s *UserService) UpdateProfile(userID string, update ProfileUpdate) (*models.User, error) {
	user, err := findUser(s.DB, userID)
	if err != nil {
		return nil, err
	}

	if update.PreferredTheme != nil {
		theme := *update.PreferredTheme
		if theme != "light" && theme != "dark" {
			return nil, fmt.Errorf("%w: theme must be light or dark", ErrInvalidInput)
		}
		user.PreferredTheme = theme
	}
	if update.Timezone != nil {
		user.Timezone = *update.Timezone
	}

	if err := s.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// SetAvatarURL stores the public URL of an uploaded avatar.
func (s *UserService) SetAvatarURL(userID, url string) (*models.User, error) {
	user, err := findUser(s.DB, userID)
	if err != nil {
		return nil, err
	}
	user.AvatarURL = &url
	if err := s.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
