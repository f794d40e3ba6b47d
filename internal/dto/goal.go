package dto

import (
	"time"

	"budgetbuddy/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalRequest is the full representation used by POST and PUT
type GoalRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=120"`
	TargetAmount decimal.Decimal `json:"target_amount" validate:"money"`
	Deadline     *string         `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	Status       string          `json:"status" validate:"omitempty,goal_status"`
	Notes        string          `json:"notes"`
}

// GoalPatchRequest carries only the fields present in a PATCH body
type GoalPatchRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=120"`
	TargetAmount *decimal.Decimal `json:"target_amount" validate:"omitempty,money"`
	Deadline     *string          `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
	Status       *string          `json:"status" validate:"omitempty,goal_status"`
	Notes        *string          `json:"notes"`
}

// ContributionRequest records money set aside for a goal. The amount is
// checked by the goal service.
type ContributionRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	ContributedAt   *time.Time      `json:"contributed_at"`
	SourceAccountID *uuid.UUID      `json:"source_account_id"`
	Note            string          `json:"note" validate:"max=255"`
}

// GoalResponse embeds the goal and adds its progress
type GoalResponse struct {
	*models.Goal
	Progress models.GoalProgress `json:"progress"`
}

type GoalDetailResponse struct {
	GoalResponse
	Contributions []models.GoalContribution `json:"contributions"`
}
