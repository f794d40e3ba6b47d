package dto

import (
	"time"

	"budgetbuddy/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetRequest is the full representation used by POST and PUT. Dates are
// calendar dates in YYYY-MM-DD form.
type BudgetRequest struct {
	CategoryID  uuid.UUID       `json:"category_id" validate:"required"`
	Period      string          `json:"period" validate:"required,budget_period"`
	StartDate   string          `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string          `json:"end_date" validate:"required,datetime=2006-01-02"`
	LimitAmount decimal.Decimal `json:"limit_amount"`
}

// BudgetPatchRequest carries only the fields present in a PATCH body
type BudgetPatchRequest struct {
	CategoryID  *uuid.UUID       `json:"category_id"`
	Period      *string          `json:"period" validate:"omitempty,budget_period"`
	StartDate   *string          `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     *string          `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	LimitAmount *decimal.Decimal `json:"limit_amount"`
}

type BudgetResponse struct {
	ID          uuid.UUID       `json:"id"`
	CategoryID  uuid.UUID       `json:"category_id"`
	Period      string          `json:"period"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	LimitAmount decimal.Decimal `json:"limit_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func NewBudgetResponse(budget *models.Budget) BudgetResponse {
	return BudgetResponse{
		ID:          budget.ID,
		CategoryID:  budget.CategoryID,
		Period:      budget.Period,
		StartDate:   budget.StartDate.UTC().Format(models.DateLayout),
		EndDate:     budget.EndDate.UTC().Format(models.DateLayout),
		LimitAmount: budget.LimitAmount,
		CreatedAt:   budget.CreatedAt,
		UpdatedAt:   budget.UpdatedAt,
	}
}

func NewBudgetResponses(budgets []models.Budget) []BudgetResponse {
	responses := make([]BudgetResponse, 0, len(budgets))
	for i := range budgets {
		responses = append(responses, NewBudgetResponse(&budgets[i]))
	}
	return responses
}
