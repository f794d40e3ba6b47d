package dto

import (
	"budgetbuddy/internal/models"

	"github.com/shopspring/decimal"
)

// ProfileUpdateRequest is used by both PUT and PATCH; absent fields keep
// their stored value.
type ProfileUpdateRequest struct {
	Currency           *string          `json:"currency" validate:"omitempty,currency_code"`
	MonthlyIncome      *decimal.Decimal `json:"monthly_income"`
	FinancialGoalsNote *string          `json:"financial_goals_note"`
}

// PreferencesRequest replaces the stored preferences. The value must be a
// JSON object; anything else is rejected by the profile service.
type PreferencesRequest struct {
	Preferences interface{} `json:"preferences" validate:"required"`
}

type PreferencesResponse struct {
	Preferences models.JSONBMap `json:"preferences"`
}
