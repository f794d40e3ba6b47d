package repositories

import (
	"testing"

	"budgetbuddy/internal/database"
	"budgetbuddy/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestCategoryRepository(t *testing.T) {
	suite.Run(t, new(CategoryRepositorySuite))
}

type CategoryRepositorySuite struct {
	suite.Suite
	db      *database.DB
	repo    CategoryRepositoryInterface
	budgets BudgetRepositoryInterface
	user    *models.User
}

func (s *CategoryRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCategoryRepository(s.db.DB)
	s.budgets = NewBudgetRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db.DB, "categories@example.com")
}

func (s *CategoryRepositorySuite) TestCreate_UniquePerNameAndType() {
	s.Require().NoError(s.repo.Create(&models.Category{UserID: s.user.ID, Name: "Gifts", Type: models.CategoryTypeExpense}))

	err := s.repo.Create(&models.Category{UserID: s.user.ID, Name: "Gifts", Type: models.CategoryTypeExpense})
	s.ErrorIs(err, ErrCategoryDuplicate)

	// same name with the other type is a distinct category
	s.NoError(s.repo.Create(&models.Category{UserID: s.user.ID, Name: "Gifts", Type: models.CategoryTypeIncome}))
}

func (s *CategoryRepositorySuite) TestCreate_Invalid() {
	negative := decimal.NewFromInt(-5)

	s.ErrorIs(s.repo.Create(&models.Category{UserID: s.user.ID, Name: "X", Type: "other"}), models.ErrInvalidCategoryType)
	s.ErrorIs(s.repo.Create(&models.Category{UserID: s.user.ID, Name: "  ", Type: models.CategoryTypeExpense}), models.ErrCategoryNameRequired)
	s.ErrorIs(s.repo.Create(&models.Category{
		UserID:             s.user.ID,
		Name:               "Rent",
		Type:               models.CategoryTypeExpense,
		DefaultBudgetLimit: &negative,
	}), models.ErrNegativeBudgetLimit)
}

func (s *CategoryRepositorySuite) TestListFiltersAndOrdering() {
	for _, c := range []struct{ name, kind string }{
		{"Rent", models.CategoryTypeExpense},
		{"Groceries", models.CategoryTypeExpense},
		{"Salary", models.CategoryTypeIncome},
		{"Bonus", models.CategoryTypeIncome},
	} {
		database.CreateTestCategory(s.T(), s.db.DB, s.user.ID, c.name, c.kind)
	}

	categories, total, err := s.repo.List(s.user.ID, models.CategoryFilters{})
	s.NoError(err)
	s.Equal(int64(4), total)
	s.Equal([]string{"Groceries", "Rent", "Bonus", "Salary"}, categoryNames(categories))

	categories, total, err = s.repo.List(s.user.ID, models.CategoryFilters{Type: models.CategoryTypeIncome, Ordering: "-name"})
	s.NoError(err)
	s.Equal(int64(2), total)
	s.Equal([]string{"Salary", "Bonus"}, categoryNames(categories))

	categories, _, err = s.repo.List(s.user.ID, models.CategoryFilters{Search: "RE"})
	s.NoError(err)
	s.Equal([]string{"Rent"}, categoryNames(categories))

	_, _, err = s.repo.List(s.user.ID, models.CategoryFilters{Ordering: "type"})
	s.ErrorIs(err, ErrInvalidOrdering)
}

func (s *CategoryRepositorySuite) TestGetUpdateDelete() {
	category := database.CreateTestCategory(s.T(), s.db.DB, s.user.ID, "Fun", models.CategoryTypeExpense)
	other := database.CreateTestUser(s.T(), s.db.DB, "other@example.com")

	_, err := s.repo.GetByIDForUser(category.ID, other.ID)
	s.ErrorIs(err, ErrCategoryNotFound)

	category.Name = "Entertainment"
	category.Color = "#ff0000"
	s.NoError(s.repo.Update(category))

	found, err := s.repo.GetByID(category.ID)
	s.NoError(err)
	s.Equal("Entertainment", found.Name)
	s.Equal("#ff0000", found.Color)

	count, err := s.repo.CountByUserID(s.user.ID)
	s.NoError(err)
	s.Equal(int64(1), count)

	s.NoError(s.repo.Delete(category.ID))
	s.ErrorIs(s.repo.Delete(category.ID), ErrCategoryNotFound)
	_, err = s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrCategoryNotFound)
}

func (s *CategoryRepositorySuite) TestUpdate_Duplicate() {
	database.CreateTestCategory(s.T(), s.db.DB, s.user.ID, "Rent", models.CategoryTypeExpense)
	category := database.CreateTestCategory(s.T(), s.db.DB, s.user.ID, "Housing", models.CategoryTypeExpense)

	category.Name = "Rent"
	s.ErrorIs(s.repo.Update(category), ErrCategoryDuplicate)
}

func categoryNames(categories []models.Category) []string {
	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, category.Name)
	}
	return names
}
