package services

import (
	"fmt"
	"time"

	"budgetbuddy/internal/models"
	"budgetbuddy/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type reportService struct {
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
}

func NewReportService(
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
) ReportServiceInterface {
	return &reportService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		budgetRepo:      budgetRepo,
	}
}

// GetSummary totals cached account balances and transaction amounts by
// direction. Transfers count toward neither income nor expense.
func (s *reportService) GetSummary(userID uuid.UUID) (*models.Summary, error) {
	totalBalance, err := s.accountRepo.TotalBalance(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to total balances: %w", err)
	}

	income, expense, err := s.transactionRepo.TotalsByDirection(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to total transactions: %w", err)
	}

	return &models.Summary{
		TotalBalance: totalBalance,
		IncomeTotal:  income,
		ExpenseTotal: expense,
		NetCashflow:  income.Sub(expense),
	}, nil
}

func (s *reportService) GetCategorySpending(userID uuid.UUID, from, to *time.Time) ([]models.CategorySpending, error) {
	rows, err := s.transactionRepo.SpendingByCategory(userID, from, to)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []models.CategorySpending{}
	}
	return rows, nil
}

// GetBudgetProgress filters by overlap only when both bounds are given.
// Spending is always measured over each budget's own dates.
func (s *reportService) GetBudgetProgress(userID uuid.UUID, from, to *time.Time) ([]models.BudgetProgress, error) {
	if from == nil || to == nil {
		from, to = nil, nil
	}

	budgets, err := s.budgetRepo.ListOverlapping(userID, from, to)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.ListAllByUserID(userID)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(categories))
	for _, category := range categories {
		names[category.ID] = category.Name
	}

	progress := make([]models.BudgetProgress, 0, len(budgets))
	for i := range budgets {
		budget := &budgets[i]
		windowStart, windowEnd := budget.Window()

		spent, err := s.transactionRepo.SumExpenses(userID, budget.CategoryID, windowStart, windowEnd)
		if err != nil {
			return nil, err
		}

		variance := budget.LimitAmount.Sub(spent)
		remaining := variance
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}

		progress = append(progress, models.BudgetProgress{
			BudgetID:    budget.ID,
			CategoryID:  budget.CategoryID,
			Category:    names[budget.CategoryID],
			Period:      budget.Period,
			StartDate:   budget.StartDate.UTC().Format(models.DateLayout),
			EndDate:     budget.EndDate.UTC().Format(models.DateLayout),
			LimitAmount: budget.LimitAmount,
			Spent:       spent,
			Remaining:   remaining,
			Variance:    variance,
		})
	}

	return progress, nil
}
