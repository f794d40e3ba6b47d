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
	CategoryTypeExpense = "expense"
	CategoryTypeIncome  = "income"
)

var (
	ErrInvalidCategoryType  = errors.New("invalid category type")
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrNegativeBudgetLimit  = errors.New("default budget limit cannot be negative")
)

type Category struct {
	ID                 uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID             uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_categories_user_name_type" json:"-"`
	Name               string           `gorm:"type:varchar(80);not null;uniqueIndex:idx_categories_user_name_type" json:"name"`
	Type               string           `gorm:"type:varchar(10);not null;uniqueIndex:idx_categories_user_name_type" json:"type"`
	Icon               string           `gorm:"type:varchar(64)" json:"icon"`
	Color              string           `gorm:"type:varchar(16)" json:"color"`
	DefaultBudgetLimit *decimal.Decimal `gorm:"type:decimal(14,2)" json:"default_budget_limit"`
	IsCustom           bool             `gorm:"not null" json:"is_custom"`
	CreatedAt          time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time        `gorm:"not null" json:"updated_at"`
}

// DefaultCategory describes one of the categories seeded for new users.
type DefaultCategory struct {
	Name string
	Type string
}

func DefaultCategories() []DefaultCategory {
	return []DefaultCategory{
		{Name: "Groceries", Type: CategoryTypeExpense},
		{Name: "Transport", Type: CategoryTypeExpense},
		{Name: "Salary", Type: CategoryTypeIncome},
	}
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	if isColumnUpdate(tx) {
		return nil
	}
	c.UpdatedAt = time.Now().UTC()
	return c.Validate()
}

func (c *Category) Validate() error {
	if c.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if strings.TrimSpace(c.Name) == "" {
		return ErrCategoryNameRequired
	}

	if !IsValidCategoryType(c.Type) {
		return ErrInvalidCategoryType
	}

	if c.DefaultBudgetLimit != nil && c.DefaultBudgetLimit.IsNegative() {
		return ErrNegativeBudgetLimit
	}

	return nil
}

// Matches reports whether a transaction with the given direction may use
// this category. Transfers accept any category.
func (c *Category) Matches(direction string) bool {
	switch direction {
	case DirectionTransfer:
		return true
	case DirectionExpense:
		return c.Type == CategoryTypeExpense
	case DirectionIncome:
		return c.Type == CategoryTypeIncome
	}
	return false
}

func (c *Category) TableName() string {
	return "categories"
}

func IsValidCategoryType(categoryType string) bool {
	return categoryType == CategoryTypeExpense || categoryType == CategoryTypeIncome
}
