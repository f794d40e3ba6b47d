package repositories

import (
	"testing"

	"budgetbuddy/internal/database"
	"budgetbuddy/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestBudgetRepository(t *testing.T) {
	suite.Run(t, new(BudgetRepositorySuite))
}

type BudgetRepositorySuite struct {
	suite.Suite
	db        *database.DB
	repo      BudgetRepositoryInterface
	user      *models.User
	groceries *models.Category
	dining    *models.Category
}

func (s *BudgetRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewBudgetRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db.DB, "budgets@example.com")
	s.groceries = database.CreateTestCategory(s.T(), s.db.DB, s.user.ID, "Groceries", models.CategoryTypeExpense)
	s.dining = database.CreateTestCategory(s.T(), s.db.DB, s.user.ID, "Dining", models.CategoryTypeExpense)
}

func (s *BudgetRepositorySuite) newBudget(category *models.Category, period, start, end, limit string) *models.Budget {
	budget := &models.Budget{
		UserID:      s.user.ID,
		CategoryID:  category.ID,
		Period:      period,
		StartDate:   day(start),
		EndDate:     day(end),
		LimitAmount: decimal.RequireFromString(limit),
	}
	s.Require().NoError(s.repo.Create(budget))
	return budget
}

func (s *BudgetRepositorySuite) TestCreate_Validation() {
	err := s.repo.Create(&models.Budget{
		UserID:      s.user.ID,
		CategoryID:  s.groceries.ID,
		Period:      models.BudgetPeriodMonthly,
		StartDate:   day("2024-03-31"),
		EndDate:     day("2024-03-01"),
		LimitAmount: decimal.NewFromInt(100),
	})
	s.ErrorIs(err, models.ErrBudgetDateRange)

	err = s.repo.Create(&models.Budget{
		UserID:      s.user.ID,
		CategoryID:  s.groceries.ID,
		Period:      "daily",
		StartDate:   day("2024-03-01"),
		EndDate:     day("2024-03-01"),
		LimitAmount: decimal.NewFromInt(100),
	})
	s.ErrorIs(err, models.ErrInvalidBudgetPeriod)
}

func (s *BudgetRepositorySuite) TestCreate_DuplicateWindow() {
	s.newBudget(s.groceries, models.BudgetPeriodMonthly, "2024-03-01", "2024-03-31", "400")

	err := s.repo.Create(&models.Budget{
		UserID:      s.user.ID,
		CategoryID:  s.groceries.ID,
		Period:      models.BudgetPeriodMonthly,
		StartDate:   day("2024-03-01"),
		EndDate:     day("2024-03-31"),
		LimitAmount: decimal.NewFromInt(500),
	})
	s.ErrorIs(err, ErrBudgetDuplicate)
}

func (s *BudgetRepositorySuite) TestListAndOverlapping() {
	march := s.newBudget(s.groceries, models.BudgetPeriodMonthly, "2024-03-01", "2024-03-31", "400")
	april := s.newBudget(s.groceries, models.BudgetPeriodMonthly, "2024-04-01", "2024-04-30", "400")
	week := s.newBudget(s.dining, models.BudgetPeriodWeekly, "2024-03-25", "2024-03-31", "60")

	budgets, total, err := s.repo.List(s.user.ID, models.BudgetFilters{})
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Equal(april.ID, budgets[0].ID)

	budgets, total, err = s.repo.List(s.user.ID, models.BudgetFilters{Period: models.BudgetPeriodWeekly})
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Equal(week.ID, budgets[0].ID)

	budgets, _, err = s.repo.List(s.user.ID, models.BudgetFilters{CategoryID: &s.groceries.ID, Ordering: "start_date"})
	s.NoError(err)
	s.Require().Len(budgets, 2)
	s.Equal(march.ID, budgets[0].ID)

	from, to := day("2024-03-28"), day("2024-04-02")
	overlapping, err := s.repo.ListOverlapping(s.user.ID, &from, &to)
	s.NoError(err)
	s.Len(overlapping, 3)

	from, to = day("2024-04-15"), day("2024-05-01")
	overlapping, err = s.repo.ListOverlapping(s.user.ID, &from, &to)
	s.NoError(err)
	s.Require().Len(overlapping, 1)
	s.Equal(april.ID, overlapping[0].ID)

	all, err := s.repo.ListOverlapping(s.user.ID, nil, nil)
	s.NoError(err)
	s.Len(all, 3)
}

func (s *BudgetRepositorySuite) TestUpdateAndDelete() {
	budget := s.newBudget(s.groceries, models.BudgetPeriodMonthly, "2024-03-01", "2024-03-31", "400")

	budget.LimitAmount = decimal.RequireFromString("450.75")
	s.NoError(s.repo.Update(budget))

	found, err := s.repo.GetByIDForUser(budget.ID, s.user.ID)
	s.NoError(err)
	s.True(decimal.RequireFromString("450.75").Equal(found.LimitAmount))
	s.Equal("2024-03-01", found.StartDate.Format(models.DateLayout))

	s.newBudget(s.dining, models.BudgetPeriodMonthly, "2024-03-01", "2024-03-31", "100")
	s.NoError(s.repo.DeleteByCategoryID(s.groceries.ID))

	_, err = s.repo.GetByIDForUser(budget.ID, s.user.ID)
	s.ErrorIs(err, ErrBudgetNotFound)

	all, err := s.repo.ListAllByUserID(s.user.ID)
	s.NoError(err)
	s.Require().Len(all, 1)

	s.NoError(s.repo.Delete(all[0].ID))
	s.ErrorIs(s.repo.Delete(all[0].ID), ErrBudgetNotFound)
}
