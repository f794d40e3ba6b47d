package repositories

import (
	"testing"

	"budgetbuddy/internal/database"
	"budgetbuddy/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestAccountRepository(t *testing.T) {
	suite.Run(t, new(AccountRepositorySuite))
}

type AccountRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo AccountRepositoryInterface
	user *models.User
}

func (s *AccountRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAccountRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db.DB, "accounts@example.com")
}

func (s *AccountRepositorySuite) newAccount(name, accountType, institution, currency string, active bool) *models.Account {
	account := &models.Account{
		UserID:      s.user.ID,
		Name:        name,
		Type:        accountType,
		Institution: institution,
		Currency:    currency,
		IsActive:    active,
	}
	s.Require().NoError(s.repo.Create(account))
	return account
}

func (s *AccountRepositorySuite) TestCreate() {
	account := s.newAccount("Everyday", models.AccountTypeChecking, "First Bank", "USD", true)

	s.NotEqual(uuid.Nil, account.ID)
	s.True(account.Balance.IsZero())

	found, err := s.repo.GetByIDForUser(account.ID, s.user.ID)
	s.NoError(err)
	s.Equal("Everyday", found.Name)
	s.True(found.IsActive)
}

func (s *AccountRepositorySuite) TestCreate_DuplicateName() {
	s.newAccount("Everyday", models.AccountTypeChecking, "", "USD", true)

	err := s.repo.Create(&models.Account{
		UserID:   s.user.ID,
		Name:     "Everyday",
		Type:     models.AccountTypeSavings,
		Currency: "USD",
	})
	s.ErrorIs(err, ErrAccountNameExists)

	other := database.CreateTestUser(s.T(), s.db.DB, "other@example.com")
	s.NoError(s.repo.Create(&models.Account{UserID: other.ID, Name: "Everyday", Currency: "USD"}))
}

func (s *AccountRepositorySuite) TestGetByIDForUser_OtherOwner() {
	account := s.newAccount("Everyday", models.AccountTypeChecking, "", "USD", true)
	other := database.CreateTestUser(s.T(), s.db.DB, "other@example.com")

	_, err := s.repo.GetByIDForUser(account.ID, other.ID)
	s.ErrorIs(err, ErrAccountNotFound)

	found, err := s.repo.GetByID(account.ID)
	s.NoError(err)
	s.Equal(s.user.ID, found.UserID)
}

func (s *AccountRepositorySuite) TestApplyBalanceDelta() {
	account := s.newAccount("Everyday", models.AccountTypeChecking, "", "USD", true)

	balance, err := s.repo.ApplyBalanceDelta(account.ID, decimal.RequireFromString("100.10"))
	s.NoError(err)
	s.True(decimal.RequireFromString("100.10").Equal(balance), balance.String())

	balance, err = s.repo.ApplyBalanceDelta(account.ID, decimal.RequireFromString("-30.05"))
	s.NoError(err)
	s.True(decimal.RequireFromString("70.05").Equal(balance), balance.String())

	found, err := s.repo.GetByID(account.ID)
	s.NoError(err)
	s.True(decimal.RequireFromString("70.05").Equal(found.Balance))
}

func (s *AccountRepositorySuite) TestApplyBalanceDelta_StaleReference() {
	_, err := s.repo.ApplyBalanceDelta(uuid.New(), decimal.NewFromInt(1))
	s.ErrorIs(err, ErrStaleAccountReference)
}

func (s *AccountRepositorySuite) TestUpdate_NeverWritesBalance() {
	account := s.newAccount("Everyday", models.AccountTypeChecking, "", "USD", true)
	_, err := s.repo.ApplyBalanceDelta(account.ID, decimal.NewFromInt(50))
	s.Require().NoError(err)

	// account still carries the stale zero balance loaded before the delta
	account.Name = "Daily"
	account.IsActive = false
	account.Institution = "Credit Union"
	s.NoError(s.repo.Update(account))

	found, err := s.repo.GetByID(account.ID)
	s.NoError(err)
	s.Equal("Daily", found.Name)
	s.False(found.IsActive)
	s.Equal("Credit Union", found.Institution)
	s.True(decimal.NewFromInt(50).Equal(found.Balance), found.Balance.String())
}

func (s *AccountRepositorySuite) TestUpdate_Missing() {
	err := s.repo.Update(&models.Account{
		ID:       uuid.New(),
		UserID:   s.user.ID,
		Name:     "Ghost",
		Type:     models.AccountTypeChecking,
		Currency: "USD",
	})
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *AccountRepositorySuite) TestList_Filters() {
	s.newAccount("Everyday", models.AccountTypeChecking, "First Bank", "USD", true)
	s.newAccount("Rainy Day", models.AccountTypeSavings, "First Bank", "USD", true)
	s.newAccount("Euro Trip", models.AccountTypeSavings, "Euro Bank", "EUR", false)
	s.newAccount("100%_Cash", models.AccountTypeCash, "", "USD", true)

	active := true
	inactive := false

	cases := []struct {
		name    string
		filters models.AccountFilters
		want    []string
	}{
		{"no filters", models.AccountFilters{}, []string{"Everyday", "Rainy Day", "Euro Trip", "100%_Cash"}},
		{"type", models.AccountFilters{Type: models.AccountTypeSavings}, []string{"Rainy Day", "Euro Trip"}},
		{"active", models.AccountFilters{IsActive: &active}, []string{"Everyday", "Rainy Day", "100%_Cash"}},
		{"inactive", models.AccountFilters{IsActive: &inactive}, []string{"Euro Trip"}},
		{"currency", models.AccountFilters{Currency: "EUR"}, []string{"Euro Trip"}},
		{"search institution", models.AccountFilters{Search: "first"}, []string{"Everyday", "Rainy Day"}},
		{"search escapes wildcards", models.AccountFilters{Search: "%_"}, []string{"100%_Cash"}},
		{"ordering by name", models.AccountFilters{Ordering: "name"}, []string{"100%_Cash", "Euro Trip", "Everyday", "Rainy Day"}},
		{"ordering by name desc", models.AccountFilters{Ordering: "-name"}, []string{"Rainy Day", "Everyday", "Euro Trip", "100%_Cash"}},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			accounts, total, err := s.repo.List(s.user.ID, tc.filters)
			s.Require().NoError(err)
			s.Equal(int64(len(tc.want)), total)

			names := make([]string, 0, len(accounts))
			for _, account := range accounts {
				names = append(names, account.Name)
			}
			if tc.filters.Ordering == "" {
				s.ElementsMatch(tc.want, names)
			} else {
				s.Equal(tc.want, names)
			}
		})
	}
}

func (s *AccountRepositorySuite) TestList_Pagination() {
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		s.newAccount(name, models.AccountTypeChecking, "", "USD", true)
	}

	accounts, total, err := s.repo.List(s.user.ID, models.AccountFilters{
		Ordering: "name",
		Page:     models.Page{Limit: 2, Offset: 2},
	})
	s.NoError(err)
	s.Equal(int64(5), total)
	s.Require().Len(accounts, 2)
	s.Equal("C", accounts[0].Name)
	s.Equal("D", accounts[1].Name)
}

func (s *AccountRepositorySuite) TestList_InvalidOrdering() {
	_, _, err := s.repo.List(s.user.ID, models.AccountFilters{Ordering: "password"})
	s.ErrorIs(err, ErrInvalidOrdering)
}

func (s *AccountRepositorySuite) TestFirstActiveAndCount() {
	_, err := s.repo.FirstActive(s.user.ID)
	s.ErrorIs(err, ErrAccountNotFound)

	s.newAccount("Closed", models.AccountTypeChecking, "", "USD", false)
	open := s.newAccount("Open", models.AccountTypeChecking, "", "USD", true)
	s.newAccount("Later", models.AccountTypeChecking, "", "USD", true)

	first, err := s.repo.FirstActive(s.user.ID)
	s.NoError(err)
	s.Equal(open.ID, first.ID)

	count, err := s.repo.CountByUserID(s.user.ID)
	s.NoError(err)
	s.Equal(int64(3), count)
}

func (s *AccountRepositorySuite) TestTotalBalance() {
	total, err := s.repo.TotalBalance(s.user.ID)
	s.NoError(err)
	s.True(total.IsZero())

	a := s.newAccount("A", models.AccountTypeChecking, "", "USD", true)
	b := s.newAccount("B", models.AccountTypeSavings, "", "USD", true)
	_, err = s.repo.ApplyBalanceDelta(a.ID, decimal.RequireFromString("0.10"))
	s.Require().NoError(err)
	_, err = s.repo.ApplyBalanceDelta(b.ID, decimal.RequireFromString("0.20"))
	s.Require().NoError(err)

	total, err = s.repo.TotalBalance(s.user.ID)
	s.NoError(err)
	s.True(decimal.RequireFromString("0.30").Equal(total), total.String())
}

func (s *AccountRepositorySuite) TestDelete() {
	account := s.newAccount("Everyday", models.AccountTypeChecking, "", "USD", true)

	s.NoError(s.repo.Delete(account.ID))
	s.ErrorIs(s.repo.Delete(account.ID), ErrAccountNotFound)

	s.newAccount("One", models.AccountTypeChecking, "", "USD", true)
	s.newAccount("Two", models.AccountTypeChecking, "", "USD", true)
	s.NoError(s.repo.DeleteByUserID(s.user.ID))

	all, err := s.repo.ListAllByUserID(s.user.ID)
	s.NoError(err)
	s.Empty(all)
}
