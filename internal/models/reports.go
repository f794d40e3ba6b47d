package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Summary aggregates every account and transaction of one user.
type Summary struct {
	TotalBalance decimal.Decimal `json:"total_balance"`
	IncomeTotal  decimal.Decimal `json:"income_total"`
	ExpenseTotal decimal.Decimal `json:"expense_total"`
	NetCashflow  decimal.Decimal `json:"net_cashflow"`
}

// CategorySpending is one row of the expense-by-category report. A nil
// CategoryID groups uncategorized expenses.
type CategorySpending struct {
	CategoryID   *uuid.UUID      `json:"category_id"`
	CategoryName *string         `json:"category_name"`
	Total        decimal.Decimal `json:"total"`
}

type BudgetProgress struct {
	BudgetID    uuid.UUID       `json:"budget_id"`
	CategoryID  uuid.UUID       `json:"category_id"`
	Category    string          `json:"category"`
	Period      string          `json:"period"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	LimitAmount decimal.Decimal `json:"limit_amount"`
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"`
	Variance    decimal.Decimal `json:"variance"`
}

// BalanceCheck compares an account's cached balance with the balance
// recomputed from its transactions.
type BalanceCheck struct {
	AccountID        uuid.UUID       `json:"account_id"`
	CachedBalance    decimal.Decimal `json:"cached_balance"`
	ComputedBalance  decimal.Decimal `json:"computed_balance"`
	Drift            decimal.Decimal `json:"drift"`
	TransactionCount int64           `json:"transaction_count"`
	Consistent       bool            `json:"consistent"`
	CheckedAt        time.Time       `json:"checked_at"`
}

type GoalProgress struct {
	Contributed decimal.Decimal `json:"contributed"`
	Remaining   decimal.Decimal `json:"remaining"`
	Percent     decimal.Decimal `json:"percent"`
}

// NewGoalProgress derives remaining and percent from the target and the sum
// of contributions. Remaining never drops below zero.
func NewGoalProgress(target, contributed decimal.Decimal) GoalProgress {
	remaining := target.Sub(contributed)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	percent := decimal.Zero
	if target.IsPositive() {
		percent = contributed.Div(target).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return GoalProgress{
		Contributed: contributed,
		Remaining:   remaining,
		Percent:     percent,
	}
}
