package models

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AccountTypeChecking   = "checking"
	AccountTypeSavings    = "savings"
	AccountTypeCredit     = "credit"
	AccountTypeInvestment = "investment"
	AccountTypeCash       = "cash"
	AccountTypeOther      = "other"

	DefaultCurrency = "USD"

	DefaultAccountName  = "Checking"
	FallbackAccountName = "Default Account"
)

var (
	ErrInvalidAccountType  = errors.New("invalid account type")
	ErrInvalidCurrencyCode = errors.New("invalid currency code")
	ErrAccountNameRequired = errors.New("account name is required")

	currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)
)

// Account holds a cached balance that must equal the sum of the effects of
// its transactions. The balance is only ever changed through atomic deltas,
// never through Save or Updates.
type Account struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_accounts_user_name" json:"-"`
	Name        string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_accounts_user_name" json:"name"`
	Type        string          `gorm:"type:varchar(20);not null;default:'checking'" json:"type"`
	Institution string          `gorm:"type:varchar(120)" json:"institution"`
	Balance     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"balance"`
	Currency    string          `gorm:"type:varchar(8);not null;default:'USD'" json:"currency"`
	IsActive    bool            `gorm:"not null" json:"is_active"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.Type == "" {
		a.Type = AccountTypeChecking
	}

	if a.Currency == "" {
		a.Currency = DefaultCurrency
	}

	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	if isColumnUpdate(tx) {
		return nil
	}
	a.UpdatedAt = time.Now().UTC()
	return a.Validate()
}

// Validate checks descriptive fields only. Balances may legitimately be
// negative (credit accounts, transient reversal states).
func (a *Account) Validate() error {
	if a.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if strings.TrimSpace(a.Name) == "" {
		return ErrAccountNameRequired
	}

	if !IsValidAccountType(a.Type) {
		return ErrInvalidAccountType
	}

	if !IsValidCurrencyCode(a.Currency) {
		return ErrInvalidCurrencyCode
	}

	return nil
}

func (a *Account) TableName() string {
	return "accounts"
}

func AccountTypes() []string {
	return []string{
		AccountTypeChecking,
		AccountTypeSavings,
		AccountTypeCredit,
		AccountTypeInvestment,
		AccountTypeCash,
		AccountTypeOther,
	}
}

func IsValidAccountType(accountType string) bool {
	for _, t := range AccountTypes() {
		if t == accountType {
			return true
		}
	}
	return false
}

func IsValidCurrencyCode(code string) bool {
	return currencyCodeRegex.MatchString(code)
}
