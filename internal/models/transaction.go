package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	DirectionExpense  = "expense"
	DirectionIncome   = "income"
	DirectionTransfer = "transfer"

	// AmountScale is the number of decimal places stored for money columns.
	AmountScale = 2
)

// EffectSign selects whether a transaction's effect is applied or reversed.
type EffectSign int

const (
	EffectApply   EffectSign = 1
	EffectReverse EffectSign = -1
)

var (
	ErrInvalidDirection   = errors.New("invalid transaction direction")
	ErrNonPositiveAmount  = errors.New("transaction amount must be greater than zero")
	ErrAmountPrecision    = errors.New("transaction amount must have at most two decimal places")
	ErrTxnTimeRequired    = errors.New("transaction time is required")
	ErrTransactionAccount = errors.New("account ID is required")
)

// Transaction is a single movement against one account. Amount is always
// positive; Direction carries the sign.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	AccountID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index" json:"category_id"`
	Direction   string          `gorm:"type:varchar(10);not null;index" json:"direction"`
	Amount      decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	Currency    string          `gorm:"type:varchar(8);not null;default:'USD'" json:"currency"`
	Description string          `gorm:"type:varchar(255)" json:"description"`
	TxnTime     time.Time       `gorm:"not null;index" json:"txn_time"`
	Merchant    string          `gorm:"type:varchar(120)" json:"merchant"`
	IsPending   bool            `gorm:"not null;default:false" json:"is_pending"`
	ExternalID  string          `gorm:"type:varchar(128);index" json:"external_id"`
	CreatedAt   time.Time       `gorm:"not null;index" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now().UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	if isColumnUpdate(tx) {
		return nil
	}
	t.UpdatedAt = time.Now().UTC()
	return t.Validate()
}

// Validate checks the fields that do not depend on other rows. Ownership,
// currency and category checks need the account and category and live in
// the service layer.
func (t *Transaction) Validate() error {
	if t.AccountID == uuid.Nil {
		return ErrTransactionAccount
	}

	if !IsValidDirection(t.Direction) {
		return ErrInvalidDirection
	}

	if err := ValidateAmount(t.Amount); err != nil {
		return err
	}

	if !IsValidCurrencyCode(t.Currency) {
		return ErrInvalidCurrencyCode
	}

	if t.TxnTime.IsZero() {
		return ErrTxnTimeRequired
	}

	return nil
}

// Effect is the signed delta this transaction contributes to its account
// balance when applied (EffectApply) or reversed (EffectReverse).
func (t *Transaction) Effect(sign EffectSign) decimal.Decimal {
	s := decimal.NewFromInt(int64(sign))
	switch t.Direction {
	case DirectionIncome:
		return s.Mul(t.Amount)
	case DirectionExpense:
		return s.Neg().Mul(t.Amount)
	default:
		return decimal.Zero
	}
}

// Snapshot captures every field except the identifier for the audit trail.
func (t *Transaction) Snapshot() JSONBMap {
	var category interface{}
	if t.CategoryID != nil {
		category = t.CategoryID.String()
	}

	return JSONBMap{
		"user":        t.UserID.String(),
		"account":     t.AccountID.String(),
		"category":    category,
		"direction":   t.Direction,
		"amount":      t.Amount.StringFixed(AmountScale),
		"currency":    t.Currency,
		"description": t.Description,
		"txn_time":    t.TxnTime.UTC().Format(time.RFC3339),
		"merchant":    t.Merchant,
		"is_pending":  t.IsPending,
		"external_id": t.ExternalID,
	}
}

func (t *Transaction) TableName() string {
	return "transactions"
}

func Directions() []string {
	return []string{DirectionExpense, DirectionIncome, DirectionTransfer}
}

func IsValidDirection(direction string) bool {
	switch direction {
	case DirectionExpense, DirectionIncome, DirectionTransfer:
		return true
	}
	return false
}

// ValidateAmount enforces a strictly positive amount with at most two decimal places.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrNonPositiveAmount
	}
	if !amount.Equal(amount.Truncate(AmountScale)) {
		return ErrAmountPrecision
	}
	return nil
}
