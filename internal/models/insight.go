package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	InsightSeverityInfo     = "info"
	InsightSeverityWarn     = "warn"
	InsightSeverityCritical = "critical"
)

type Insight struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Title        string    `gorm:"type:varchar(200);not null" json:"title"`
	Body         string    `gorm:"type:text;not null" json:"body"`
	Severity     string    `gorm:"type:varchar(20)" json:"severity"`
	Metadata     JSONBMap  `gorm:"type:text" json:"metadata"`
	GeneratedAt  time.Time `gorm:"not null;index" json:"generated_at"`
	Acknowledged bool      `gorm:"not null" json:"acknowledged"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

func (i *Insight) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}

	now := time.Now().UTC()
	if i.GeneratedAt.IsZero() {
		i.GeneratedAt = now
	}
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	if i.UpdatedAt.IsZero() {
		i.UpdatedAt = now
	}
	return nil
}

func (i *Insight) TableName() string {
	return "insights"
}
