package dto

import "budgetbuddy/internal/models"

// ExportResponse is written as the budgetbuddy_export.json attachment
type ExportResponse struct {
	Profile           *models.Profile           `json:"profile"`
	Accounts          []models.Account          `json:"accounts"`
	Categories        []models.Category         `json:"categories"`
	Budgets           []BudgetResponse          `json:"budgets"`
	Transactions      []models.Transaction      `json:"transactions"`
	Goals             []models.Goal             `json:"goals"`
	GoalContributions []models.GoalContribution `json:"goal_contributions"`
	Insights          []models.Insight          `json:"insights"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
