package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionFilters contains filtering options for transaction queries.
// Date bounds are calendar dates and inclusive.
type TransactionFilters struct {
	Direction  string
	Date       *time.Time
	DateFrom   *time.Time
	DateTo     *time.Time
	Amount     *decimal.Decimal
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	AccountID  *uuid.UUID
	CategoryID *uuid.UUID
	IsPending  *bool
	Search     string
	Ordering   string
	Page
}

var TransactionOrderings = map[string]string{
	"txn_time":   "txn_time",
	"amount":     "amount",
	"created_at": "created_at",
}
