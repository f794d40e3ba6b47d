package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	GoalStatusActive    = "active"
	GoalStatusPaused    = "paused"
	GoalStatusCompleted = "completed"
	GoalStatusCanceled  = "canceled"
)

var (
	ErrInvalidGoalStatus     = errors.New("invalid goal status")
	ErrGoalTargetNotPositive = errors.New("target must be greater than 0")
	ErrGoalNameRequired      = errors.New("goal name is required")
	ErrContributionAmount    = errors.New("amount must be greater than 0")
	ErrGoalClosed            = errors.New("cannot contribute to a canceled or completed goal")
)

type Goal struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	Name         string          `gorm:"type:varchar(120);not null" json:"name"`
	TargetAmount decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"target_amount"`
	Deadline     *time.Time      `gorm:"type:date" json:"deadline"`
	Status       string          `gorm:"type:varchar(12);not null;default:'active'" json:"status"`
	Notes        string          `gorm:"type:text" json:"notes"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}

	if g.Status == "" {
		g.Status = GoalStatusActive
	}

	now := time.Now().UTC()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	if g.UpdatedAt.IsZero() {
		g.UpdatedAt = now
	}

	return g.Validate()
}

func (g *Goal) BeforeUpdate(tx *gorm.DB) error {
	if isColumnUpdate(tx) {
		return nil
	}
	g.UpdatedAt = time.Now().UTC()
	return g.Validate()
}

func (g *Goal) Validate() error {
	if g.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if strings.TrimSpace(g.Name) == "" {
		return ErrGoalNameRequired
	}

	if !g.TargetAmount.IsPositive() {
		return ErrGoalTargetNotPositive
	}

	if !IsValidGoalStatus(g.Status) {
		return ErrInvalidGoalStatus
	}

	return nil
}

// AcceptsContributions is false once a goal is completed or canceled.
func (g *Goal) AcceptsContributions() bool {
	return g.Status != GoalStatusCompleted && g.Status != GoalStatusCanceled
}

func (g *Goal) TableName() string {
	return "goals"
}

func IsValidGoalStatus(status string) bool {
	switch status {
	case GoalStatusActive, GoalStatusPaused, GoalStatusCompleted, GoalStatusCanceled:
		return true
	}
	return false
}

// GoalContribution records money set aside for a goal. It does not move any
// account balance.
type GoalContribution struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	GoalID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"goal_id"`
	Amount          decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	ContributedAt   time.Time       `gorm:"not null;index" json:"contributed_at"`
	SourceAccountID *uuid.UUID      `gorm:"type:uuid;index" json:"source_account_id"`
	Note            string          `gorm:"type:varchar(255)" json:"note"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`
}

func (gc *GoalContribution) BeforeCreate(tx *gorm.DB) error {
	if gc.ID == uuid.Nil {
		gc.ID = uuid.New()
	}

	now := time.Now().UTC()
	if gc.ContributedAt.IsZero() {
		gc.ContributedAt = now
	}
	if gc.CreatedAt.IsZero() {
		gc.CreatedAt = now
	}
	if gc.UpdatedAt.IsZero() {
		gc.UpdatedAt = now
	}

	if !gc.Amount.IsPositive() {
		return ErrContributionAmount
	}
	return nil
}

func (gc *GoalContribution) TableName() string {
	return "goal_contributions"
}
