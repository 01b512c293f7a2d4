package db

import (
	"time"

	"gorm.io/gorm/clause"
)

// EnsureUser inserts a user row on first contact. Re-inserting an
// existing user is a no-op and keeps their saved city and settings.
func EnsureUser(userID int64, username, firstName string) error {
	user := User{
		UserID:               userID,
		Username:             username,
		FirstName:            firstName,
		Timezone:             "Asia/Almaty",
		NotificationsEnabled: true,
		Language:             "ru",
		LastActive:           time.Now().UTC(),
	}
	return DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&user).Error
}

func GetUser(userID int64) (*User, error) {
	var user User
	if err := DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UpdateUserCity(userID int64, city, country string) error {
	return DB.Model(&User{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"city":        city,
			"country":     country,
			"last_active": time.Now().UTC(),
		}).Error
}

// ToggleNotifications flips the user's notification preference and
// returns the new state.
func ToggleNotifications(userID int64) (bool, error) {
	user, err := GetUser(userID)
	if err != nil {
		return false, err
	}
	newState := !user.NotificationsEnabled
	if err := DB.Model(&User{}).
		Where("user_id = ?", userID).
		Update("notifications_enabled", newState).Error; err != nil {
		return false, err
	}
	return newState, nil
}

func TouchLastActive(userID int64) error {
	return DB.Model(&User{}).
		Where("user_id = ?", userID).
		Update("last_active", time.Now().UTC()).Error
}

func UserCount() (int64, error) {
	var count int64
	err := DB.Model(&User{}).Count(&count).Error
	return count, err
}
