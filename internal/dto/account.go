package dto

// Account Request DTOs

// AccountRequest is the full representation used by POST and PUT. The
// balance is derived from transactions and is never accepted from clients.
type AccountRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Type        string `json:"type" validate:"omitempty,account_type"`
	Institution string `json:"institution" validate:"max=120"`
	Currency    string `json:"currency" validate:"omitempty,currency_code"`
	IsActive    *bool  `json:"is_active"`
}

// AccountPatchRequest carries only the fields present in a PATCH body
type AccountPatchRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Type        *string `json:"type" validate:"omitempty,account_type"`
	Institution *string `json:"institution" validate:"omitempty,max=120"`
	Currency    *string `json:"currency" validate:"omitempty,currency_code"`
	IsActive    *bool   `json:"is_active"`
}

// PaginatedResponse is the envelope for every list endpoint
type PaginatedResponse[T any] struct {
	Results []T   `json:"results"`
	Total   int64 `json:"total"`
	Offset  int   `json:"offset"`
	Limit   int   `json:"limit"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
