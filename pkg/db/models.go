// pkg/db/models.go
package db

import (
	"time"

	"gorm.io/datatypes"
)

// User is created on first interaction and never deleted by the bot.
type User struct {
	UserID               int64  `gorm:"primaryKey"`
	Username             string `gorm:"size:255"`
	FirstName            string `gorm:"size:255"`
	City                 string `gorm:"size:255"`
	Country              string `gorm:"size:255"`
	Timezone             string `gorm:"size:64;not null;default:'Asia/Almaty'"`
	NotificationsEnabled bool   `gorm:"not null;default:true"`
	Language             string `gorm:"size:8;not null;default:'ru'"`
	CreatedAt            time.Time
	LastActive           time.Time
}

// PrayerCompletion records one prayer marked done on one calendar day.
// Re-marking the same (user, prayer, date) is an upsert, never an error.
type PrayerCompletion struct {
	ID          uint           `gorm:"primaryKey"`
	UserID      int64          `gorm:"not null;index;uniqueIndex:idx_user_prayer_date"`
	PrayerName  string         `gorm:"not null;uniqueIndex:idx_user_prayer_date"`
	PrayerDate  datatypes.Date `gorm:"not null;uniqueIndex:idx_user_prayer_date"`
	Completed   bool           `gorm:"not null;default:false"`
	CompletedAt *time.Time
}
