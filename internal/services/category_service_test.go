package services

import (
	"context"
	"log/slog"
	"testing"

	"budgetbuddy/internal/database"
	"budgetbuddy/internal/dto"
	"budgetbuddy/internal/models"
	"budgetbuddy/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestCategoryService(t *testing.T) {
	suite.Run(t, new(CategoryServiceSuite))
}

type CategoryServiceSuite struct {
	suite.Suite
	db      *database.DB
	service CategoryServiceInterface
	user    *models.User
}

func (s *CategoryServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.service = NewCategoryService(
		repositories.NewUnitOfWork(s.db.DB),
		repositories.NewCategoryRepository(s.db.DB),
		slog.New(slog.DiscardHandler),
	)
	s.user = database.CreateTestUser(s.T(), s.db.DB, "categories@example.com")
}

func (s *CategoryServiceSuite) TestListSeedsDefaults() {
	categories, total, err := s.service.ListCategories(context.Background(), s.user.ID, models.CategoryFilters{})
	s.Require().NoError(err)
	s.Equal(int64(len(models.DefaultCategories())), total)

	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, category.Name)
		s.False(category.IsCustom)
	}
	s.ElementsMatch([]string{"Groceries", "Transport", "Salary"}, names)

	_, total, err = s.service.ListCategories(context.Background(), s.user.ID, models.CategoryFilters{})
	s.Require().NoError(err)
	s.Equal(int64(3), total)
}

func (s *CategoryServiceSuite) TestListDoesNotSeedWhenCategoriesExist() {
	database.CreateTestCategory(s.T(), s.db.DB, s.user.ID, "Rent", models.CategoryTypeExpense)

	categories, total, err := s.service.ListCategories(context.Background(), s.user.ID, models.CategoryFilters{})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Equal("Rent", categories[0].Name)
}

func (s *CategoryServiceSuite) TestCreateDefaultsToCustom() {
	limit := decimal.RequireFromString("250.00")
	category, err := s.service.CreateCategory(s.user.ID, &dto.CategoryRequest{
		Name:               " Dining ",
		Type:               models.CategoryTypeExpense,
		DefaultBudgetLimit: &limit,
	})
	s.Require().NoError(err)
	s.Equal("Dining", category.Name)
	s.True(category.IsCustom)
	s.Equal("250.00", category.DefaultBudgetLimit.StringFixed(2))
}

func (s *CategoryServiceSuite) TestDuplicateNameAndType() {
	_, err := s.service.CreateCategory(s.user.ID, &dto.CategoryRequest{Name: "Gifts", Type: models.CategoryTypeExpense})
	s.Require().NoError(err)

	_, err = s.service.CreateCategory(s.user.ID, &dto.CategoryRequest{Name: "Gifts", Type: models.CategoryTypeExpense})
	s.ErrorIs(err, ErrCategoryDuplicate)

	_, err = s.service.CreateCategory(s.user.ID, &dto.CategoryRequest{Name: "Gifts", Type: models.CategoryTypeIncome})
	s.NoError(err)
}

func (s *CategoryServiceSuite) TestPatchAndReplace() {
	category, err := s.service.CreateCategory(s.user.ID, &dto.CategoryRequest{Name: "Fun", Type: models.CategoryTypeExpense, Icon: "star"})
	s.Require().NoError(err)

	color := "#00ff00"
	patched, err := s.service.PatchCategory(s.user.ID, category.ID, &dto.CategoryPatchRequest{Color: &color})
	s.Require().NoError(err)
	s.Equal("star", patched.Icon)
	s.Equal(color, patched.Color)

	replaced, err := s.service.ReplaceCategory(s.user.ID, category.ID, &dto.CategoryRequest{Name: "Bonus", Type: models.CategoryTypeIncome})
	s.Require().NoError(err)
	s.Equal("Bonus", replaced.Name)
	s.Empty(replaced.Icon)
	s.Nil(replaced.DefaultBudgetLimit)

	_, err = s.service.PatchCategory(uuid.New(), category.ID, &dto.CategoryPatchRequest{Color: &color})
	s.ErrorIs(err, ErrCategoryNotFound)
}

func (s *CategoryServiceSuite) TestDeleteUncategorizesAndDropsBudgets() {
	account := database.CreateTestAccount(s.T(), s.db.DB, s.user.ID, "Checking", "USD")
	category := database.CreateTestCategory(s.T(), s.db.DB, s.user.ID, "Coffee", models.CategoryTypeExpense)

	transactions := repositories.NewTransactionRepository(s.db.DB)
	txn := database.CreateTestTransaction(s.T(), s.db.DB, account, &category.ID, models.DirectionExpense, "3.50")

	budgets := repositories.NewBudgetRepository(s.db.DB)
	budget := &models.Budget{
		UserID:      s.user.ID,
		CategoryID:  category.ID,
		Period:      models.BudgetPeriodMonthly,
		StartDate:   mustDate("2024-01-01"),
		EndDate:     mustDate("2024-01-31"),
		LimitAmount: decimal.NewFromInt(50),
	}
	s.Require().NoError(budgets.Create(budget))

	s.Require().NoError(s.service.DeleteCategory(context.Background(), s.user.ID, category.ID))

	stored, err := transactions.GetByID(txn.ID)
	s.Require().NoError(err)
	s.Nil(stored.CategoryID)
	s.Equal("3.50", stored.Amount.StringFixed(2))

	_, err = budgets.GetByIDForUser(budget.ID, s.user.ID)
	s.ErrorIs(err, repositories.ErrBudgetNotFound)

	_, err = s.service.GetCategory(s.user.ID, category.ID)
	s.ErrorIs(err, ErrCategoryNotFound)
}
