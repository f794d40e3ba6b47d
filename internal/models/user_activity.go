package models

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MaxActivityPathLength      = 255
	MaxActivityUserAgentLength = 500
)

// UserActivity is one row per handled HTTP request.
type UserActivity struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index:idx_user_activities_user_time" json:"user_id,omitempty"`
	Path      string     `gorm:"type:varchar(255);not null" json:"path"`
	Method    string     `gorm:"type:varchar(10);not null" json:"method"`
	IP        string     `gorm:"type:varchar(45)" json:"ip"`
	UserAgent string     `gorm:"type:text" json:"user_agent"`
	Timestamp time.Time  `gorm:"not null;index:idx_user_activities_user_time" json:"timestamp"`
}

func (ua *UserActivity) BeforeCreate(tx *gorm.DB) error {
	if ua.ID == uuid.Nil {
		ua.ID = uuid.New()
	}
	if ua.Timestamp.IsZero() {
		ua.Timestamp = time.Now().UTC()
	}
	ua.Path = truncate(ua.Path, MaxActivityPathLength)
	ua.UserAgent = truncate(ua.UserAgent, MaxActivityUserAgentLength)
	return nil
}

func (ua *UserActivity) TableName() string {
	return "user_activities"
}

// truncate keeps at most n runes of s, so multi-byte characters are never split.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
