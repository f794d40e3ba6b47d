package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRequest is the full representation used by POST and PUT.
// Amount, ownership, currency and category direction are checked by the
// transaction service so every violation is reported together.
type TransactionRequest struct {
	AccountID   *uuid.UUID      `json:"account_id"`
	CategoryID  *uuid.UUID      `json:"category_id"`
	Direction   string          `json:"direction" validate:"required,direction"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency" validate:"omitempty,currency_code"`
	Description string          `json:"description" validate:"max=255"`
	TxnTime     *time.Time      `json:"txn_time"`
	Merchant    string          `json:"merchant" validate:"max=120"`
	IsPending   bool            `json:"is_pending"`
	ExternalID  string          `json:"external_id" validate:"max=128"`
}

// TransactionPatchRequest carries only the fields present in a PATCH body.
// CategoryID distinguishes an absent key from an explicit null.
type TransactionPatchRequest struct {
	AccountID   *uuid.UUID       `json:"account_id"`
	CategoryID  NullableUUID     `json:"category_id"`
	Direction   *string          `json:"direction" validate:"omitempty,direction"`
	Amount      *decimal.Decimal `json:"amount"`
	Currency    *string          `json:"currency" validate:"omitempty,currency_code"`
	Description *string          `json:"description" validate:"omitempty,max=255"`
	TxnTime     *time.Time       `json:"txn_time"`
	Merchant    *string          `json:"merchant" validate:"omitempty,max=120"`
	IsPending   *bool            `json:"is_pending"`
	ExternalID  *string          `json:"external_id" validate:"omitempty,max=128"`
}

// NullableUUID records whether a JSON key was present. Set with a nil Value
// means the client sent null.
type NullableUUID struct {
	Set   bool
	Value *uuid.UUID
}

func (n *NullableUUID) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}

	var id uuid.UUID
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	n.Value = &id
	return nil
}

func (n NullableUUID) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}
