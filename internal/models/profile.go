package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrNegativeMonthlyIncome = errors.New("monthly income cannot be negative")

// Profile carries per-user settings. Exactly one exists per user; it is
// created lazily on first access.
type Profile struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"-"`
	FirebaseUID        string          `gorm:"type:varchar(128);index" json:"firebase_uid"`
	Currency           string          `gorm:"type:varchar(8);not null;default:'USD'" json:"currency"`
	MonthlyIncome      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"monthly_income"`
	Preferences        JSONBMap        `gorm:"type:text" json:"preferences"`
	FinancialGoalsNote string          `gorm:"type:text" json:"financial_goals_note"`
	CreatedAt          time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"not null" json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	if p.Currency == "" {
		p.Currency = DefaultCurrency
	}

	if p.Preferences == nil {
		p.Preferences = JSONBMap{}
	}

	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	return p.Validate()
}

func (p *Profile) BeforeUpdate(tx *gorm.DB) error {
	if isColumnUpdate(tx) {
		return nil
	}
	p.UpdatedAt = time.Now().UTC()
	return p.Validate()
}

func (p *Profile) Validate() error {
	if p.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if !IsValidCurrencyCode(p.Currency) {
		return ErrInvalidCurrencyCode
	}

	if p.MonthlyIncome.IsNegative() {
		return ErrNegativeMonthlyIncome
	}

	return nil
}

func (p *Profile) TableName() string {
	return "profiles"
}
