package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	BudgetPeriodMonthly = "monthly"
	BudgetPeriodWeekly  = "weekly"
	BudgetPeriodYearly  = "yearly"
	BudgetPeriodCustom  = "custom"

	DateLayout = "2006-01-02"
)

var (
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")
	ErrBudgetDateRange     = errors.New("end date must be on or after start date")
	ErrNegativeLimit       = errors.New("limit amount cannot be negative")
)

// Budget caps spending in one expense category over an inclusive date range.
type Budget struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_unique_window" json:"-"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_budgets_unique_window" json:"category_id"`
	Period      string          `gorm:"type:varchar(10);not null;uniqueIndex:idx_budgets_unique_window" json:"period"`
	StartDate   time.Time       `gorm:"type:date;not null;uniqueIndex:idx_budgets_unique_window" json:"start_date"`
	EndDate     time.Time       `gorm:"type:date;not null;uniqueIndex:idx_budgets_unique_window" json:"end_date"`
	LimitAmount decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"limit_amount"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}

	now := time.Now().UTC()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	return b.Validate()
}

func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	if isColumnUpdate(tx) {
		return nil
	}
	b.UpdatedAt = time.Now().UTC()
	return b.Validate()
}

func (b *Budget) Validate() error {
	if b.UserID == uuid.Nil || b.CategoryID == uuid.Nil {
		return errors.New("user ID and category ID are required")
	}

	if !IsValidBudgetPeriod(b.Period) {
		return ErrInvalidBudgetPeriod
	}

	if b.EndDate.Before(b.StartDate) {
		return ErrBudgetDateRange
	}

	if b.LimitAmount.IsNegative() {
		return ErrNegativeLimit
	}

	return nil
}

// Window returns the half-open instant range [start 00:00, end+1 00:00) in UTC
// covering every transaction dated inside the budget.
func (b *Budget) Window() (time.Time, time.Time) {
	return DayStart(b.StartDate), DayStart(b.EndDate).AddDate(0, 0, 1)
}

func (b *Budget) TableName() string {
	return "budgets"
}

func IsValidBudgetPeriod(period string) bool {
	switch period {
	case BudgetPeriodMonthly, BudgetPeriodWeekly, BudgetPeriodYearly, BudgetPeriodCustom:
		return true
	}
	return false
}

// DayStart truncates t to midnight UTC of its calendar date.
func DayStart(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date as midnight UTC.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.UTC)
}
