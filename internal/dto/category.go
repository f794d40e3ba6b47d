package dto

import "github.com/shopspring/decimal"

// CategoryRequest is the full representation used by POST and PUT
type CategoryRequest struct {
	Name               string           `json:"name" validate:"required,min=1,max=80"`
	Type               string           `json:"type" validate:"required,category_type"`
	Icon               string           `json:"icon" validate:"max=64"`
	Color              string           `json:"color" validate:"max=16"`
	DefaultBudgetLimit *decimal.Decimal `json:"default_budget_limit"`
	IsCustom           *bool            `json:"is_custom"`
}

// CategoryPatchRequest carries only the fields present in a PATCH body
type CategoryPatchRequest struct {
	Name               *string          `json:"name" validate:"omitempty,min=1,max=80"`
	Type               *string          `json:"type" validate:"omitempty,category_type"`
	Icon               *string          `json:"icon" validate:"omitempty,max=64"`
	Color              *string          `json:"color" validate:"omitempty,max=16"`
	DefaultBudgetLimit *decimal.Decimal `json:"default_budget_limit"`
	IsCustom           *bool            `json:"is_custom"`
}
