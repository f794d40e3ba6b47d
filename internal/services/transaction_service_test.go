package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"budgetbuddy/internal/database"
	"budgetbuddy/internal/dto"
	"budgetbuddy/internal/models"
	"budgetbuddy/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceSuite))
}

type TransactionServiceSuite struct {
	suite.Suite
	db         *database.DB
	uow        repositories.UnitOfWorkInterface
	accounts   repositories.AccountRepositoryInterface
	audits     repositories.AuditLogRepositoryInterface
	reconciler BalanceReconcilerInterface
	service    TransactionServiceInterface
	user       *models.User
	checking   *models.Account
	savings    *models.Account
	groceries  *models.Category
	salary     *models.Category
}

func (s *TransactionServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.uow = repositories.NewUnitOfWork(s.db.DB)
	s.accounts = repositories.NewAccountRepository(s.db.DB)
	s.audits = repositories.NewAuditLogRepository(s.db.DB)

	logger := slog.New(slog.DiscardHandler)
	s.reconciler = NewBalanceReconciler(s.uow, NewAuditLogger(logger), NoopMetrics{}, logger)
	s.service = s.newService(s.uow)

	s.user = database.CreateTestUser(s.T(), s.db.DB, "ledger@example.com")
	s.checking = database.CreateTestAccount(s.T(), s.db.DB, s.user.ID, "Checking", "USD")
	s.savings = database.CreateTestAccount(s.T(), s.db.DB, s.user.ID, "Savings", "USD")
	s.groceries = database.CreateTestCategory(s.T(), s.db.DB, s.user.ID, "Groceries", models.CategoryTypeExpense)
	s.salary = database.CreateTestCategory(s.T(), s.db.DB, s.user.ID, "Salary", models.CategoryTypeIncome)
}

func (s *TransactionServiceSuite) newService(uow repositories.UnitOfWorkInterface) TransactionServiceInterface {
	logger := slog.New(slog.DiscardHandler)
	return NewTransactionService(
		uow,
		repositories.NewTransactionRepository(s.db.DB),
		s.audits,
		s.reconciler,
		NewAuditLogger(logger),
		NoopMetrics{},
		logger,
	)
}

func (s *TransactionServiceSuite) balance(account *models.Account) string {
	stored, err := s.accounts.GetByID(account.ID)
	s.Require().NoError(err)
	return stored.Balance.StringFixed(models.AmountScale)
}

func (s *TransactionServiceSuite) create(account *models.Account, direction, amount string) *models.Transaction {
	txn, err := s.service.CreateTransaction(context.Background(), s.user.ID, &dto.TransactionRequest{
		AccountID:   &account.ID,
		Direction:   direction,
		Amount:      decimal.RequireFromString(amount),
		Description: gofakeit.Sentence(4),
	}, "127.0.0.1", "test")
	s.Require().NoError(err)
	return txn
}

func (s *TransactionServiceSuite) patch(txn *models.Transaction, req *dto.TransactionPatchRequest) *models.Transaction {
	updated, err := s.service.PatchTransaction(context.Background(), s.user.ID, txn.ID, req, "127.0.0.1", "test")
	s.Require().NoError(err)
	return updated
}

func (s *TransactionServiceSuite) assertConsistent(account *models.Account) {
	check, err := s.reconciler.VerifyBalance(context.Background(), s.user.ID, account.ID)
	s.Require().NoError(err)
	s.True(check.Consistent, "cached %s computed %s", check.CachedBalance, check.ComputedBalance)
}

func decimalPtr(value string) *decimal.Decimal {
	d := decimal.RequireFromString(value)
	return &d
}

func stringPtr(value string) *string {
	return &value
}

func (s *TransactionServiceSuite) TestCreateIncomeThenDelete() {
	txn := s.create(s.checking, models.DirectionIncome, "100.00")
	s.Equal("100.00", s.balance(s.checking))
	s.Equal("USD", txn.Currency)

	err := s.service.DeleteTransaction(context.Background(), s.user.ID, txn.ID, "127.0.0.1", "test")
	s.Require().NoError(err)
	s.Equal("0.00", s.balance(s.checking))

	_, err = s.service.GetTransaction(s.user.ID, txn.ID)
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionServiceSuite) TestCreateExpenseAndTransfer() {
	s.create(s.checking, models.DirectionExpense, "40.00")
	s.Equal("-40.00", s.balance(s.checking))

	s.create(s.checking, models.DirectionTransfer, "500.00")
	s.Equal("-40.00", s.balance(s.checking))
	s.assertConsistent(s.checking)
}

func (s *TransactionServiceSuite) TestAmendAmount() {
	s.create(s.checking, models.DirectionIncome, "100.00")
	expense := s.create(s.checking, models.DirectionExpense, "30.00")
	s.Equal("70.00", s.balance(s.checking))

	updated := s.patch(expense, &dto.TransactionPatchRequest{Amount: decimalPtr("50.00")})
	s.Equal("50.00", updated.Amount.StringFixed(2))
	s.Equal("50.00", s.balance(s.checking))
	s.assertConsistent(s.checking)
}

func (s *TransactionServiceSuite) TestMoveBetweenAccounts() {
	s.create(s.checking, models.DirectionIncome, "150.00")
	moving := s.create(s.checking, models.DirectionIncome, "50.00")
	s.create(s.savings, models.DirectionIncome, "100.00")
	s.Equal("200.00", s.balance(s.checking))
	s.Equal("100.00", s.balance(s.savings))

	s.patch(moving, &dto.TransactionPatchRequest{AccountID: &s.savings.ID})
	s.Equal("150.00", s.balance(s.checking))
	s.Equal("150.00", s.balance(s.savings))

	s.patch(moving, &dto.TransactionPatchRequest{
		AccountID: &s.checking.ID,
		Direction: stringPtr(models.DirectionExpense),
	})
	s.Equal("100.00", s.balance(s.checking))
	s.Equal("100.00", s.balance(s.savings))

	s.assertConsistent(s.checking)
	s.assertConsistent(s.savings)
}

func (s *TransactionServiceSuite) TestNeutralUpdateLeavesBalance() {
	txn := s.create(s.checking, models.DirectionExpense, "12.34")

	s.patch(txn, &dto.TransactionPatchRequest{Description: stringPtr("coffee")})
	s.Equal("-12.34", s.balance(s.checking))

	s.patch(txn, &dto.TransactionPatchRequest{Amount: decimalPtr("13.34")})
	s.patch(txn, &dto.TransactionPatchRequest{Amount: decimalPtr("12.34")})
	s.Equal("-12.34", s.balance(s.checking))
	s.assertConsistent(s.checking)
}

func (s *TransactionServiceSuite) TestDirectionChangeFlipsSign() {
	txn := s.create(s.checking, models.DirectionIncome, "25.00")

	s.patch(txn, &dto.TransactionPatchRequest{Direction: stringPtr(models.DirectionTransfer)})
	s.Equal("0.00", s.balance(s.checking))

	s.patch(txn, &dto.TransactionPatchRequest{Direction: stringPtr(models.DirectionExpense)})
	s.Equal("-25.00", s.balance(s.checking))
}

func (s *TransactionServiceSuite) TestReplaceKeepsAccountAndTime() {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	txn, err := s.service.CreateTransaction(context.Background(), s.user.ID, &dto.TransactionRequest{
		AccountID: &s.savings.ID,
		Direction: models.DirectionIncome,
		Amount:    decimal.RequireFromString("10.00"),
		TxnTime:   &at,
	}, "", "")
	s.Require().NoError(err)

	replaced, err := s.service.ReplaceTransaction(context.Background(), s.user.ID, txn.ID, &dto.TransactionRequest{
		Direction:  models.DirectionExpense,
		Amount:     decimal.RequireFromString("4.00"),
		CategoryID: &s.groceries.ID,
	}, "", "")
	s.Require().NoError(err)

	s.Equal(s.savings.ID, replaced.AccountID)
	s.True(at.Equal(replaced.TxnTime))
	s.Equal("-4.00", s.balance(s.savings))
}

func (s *TransactionServiceSuite) TestSequenceStaysConsistent() {
	var created []*models.Transaction
	for i := 0; i < 10; i++ {
		direction := models.DirectionIncome
		if i%3 == 0 {
			direction = models.DirectionExpense
		}
		amount := decimal.NewFromFloat(gofakeit.Float64Range(1, 500)).Round(2)
		created = append(created, s.create(s.checking, direction, amount.StringFixed(2)))
	}

	s.patch(created[1], &dto.TransactionPatchRequest{AccountID: &s.savings.ID})
	s.patch(created[2], &dto.TransactionPatchRequest{Amount: decimalPtr("0.01")})
	s.Require().NoError(s.service.DeleteTransaction(context.Background(), s.user.ID, created[3].ID, "", ""))

	s.assertConsistent(s.checking)
	s.assertConsistent(s.savings)
}

// TestConcurrentCreates checks that goroutines sharing one service each get
// their effect applied exactly once. The test database is pinned to a single
// connection, so units of work are sequenced rather than contended; row-level
// contention is only exercised against postgres.
func (s *TransactionServiceSuite) TestConcurrentCreates() {
	const workers = 20

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.service.CreateTransaction(context.Background(), s.user.ID, &dto.TransactionRequest{
				AccountID: &s.checking.ID,
				Direction: models.DirectionIncome,
				Amount:    decimal.RequireFromString("1.00"),
			}, "", "")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.NoError(err)
	}
	s.Equal("20.00", s.balance(s.checking))
	s.assertConsistent(s.checking)
}

func (s *TransactionServiceSuite) TestValidationCollectsEveryField() {
	_, err := s.service.CreateTransaction(context.Background(), s.user.ID, &dto.TransactionRequest{
		AccountID:  &s.checking.ID,
		CategoryID: &s.salary.ID,
		Direction:  models.DirectionExpense,
		Amount:     decimal.RequireFromString("-5"),
		Currency:   "EUR",
	}, "", "")
	s.Require().Error(err)

	var verr *TransactionValidationError
	s.Require().True(errors.As(err, &verr))
	fields := verr.FieldMessages()
	s.Contains(fields, "amount")
	s.Contains(fields, "currency")
	s.Contains(fields, "category_id")
	s.ErrorIs(err, ErrCurrencyMismatch)
	s.ErrorIs(err, ErrCategoryDirectionMismatch)
	s.ErrorIs(err, ErrInvalidAmount)

	s.Equal("0.00", s.balance(s.checking))
}

func (s *TransactionServiceSuite) TestRejectedUpdateKeepsState() {
	txn := s.create(s.checking, models.DirectionIncome, "10.00")

	_, err := s.service.PatchTransaction(context.Background(), s.user.ID, txn.ID, &dto.TransactionPatchRequest{
		Amount: decimalPtr("0"),
	}, "", "")
	s.ErrorIs(err, ErrInvalidAmount)

	stored, err := s.service.GetTransaction(s.user.ID, txn.ID)
	s.Require().NoError(err)
	s.Equal("10.00", stored.Amount.StringFixed(2))
	s.Equal("10.00", s.balance(s.checking))
}

func (s *TransactionServiceSuite) TestCrossOwnershipRejected() {
	other := database.CreateTestUser(s.T(), s.db.DB, "other@example.com")
	foreign := database.CreateTestAccount(s.T(), s.db.DB, other.ID, "Theirs", "USD")
	foreignCategory := database.CreateTestCategory(s.T(), s.db.DB, other.ID, "Rent", models.CategoryTypeExpense)

	_, err := s.service.CreateTransaction(context.Background(), s.user.ID, &dto.TransactionRequest{
		AccountID:  &foreign.ID,
		CategoryID: &foreignCategory.ID,
		Direction:  models.DirectionExpense,
		Amount:     decimal.RequireFromString("5.00"),
	}, "", "")
	s.ErrorIs(err, ErrCrossOwnership)
	s.Equal("0.00", s.balance(foreign))

	txn := s.create(s.checking, models.DirectionExpense, "5.00")
	_, err = s.service.PatchTransaction(context.Background(), other.ID, txn.ID, &dto.TransactionPatchRequest{
		Amount: decimalPtr("6.00"),
	}, "", "")
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionServiceSuite) TestUnknownReference() {
	missing := uuid.New()
	_, err := s.service.CreateTransaction(context.Background(), s.user.ID, &dto.TransactionRequest{
		AccountID: &missing,
		Direction: models.DirectionIncome,
		Amount:    decimal.RequireFromString("5.00"),
	}, "", "")
	s.ErrorIs(err, ErrReferenceNotFound)
}

func (s *TransactionServiceSuite) TestDefaultAccountCreatedWhenMissing() {
	fresh := database.CreateTestUser(s.T(), s.db.DB, "fresh@example.com")

	txn, err := s.service.CreateTransaction(context.Background(), fresh.ID, &dto.TransactionRequest{
		Direction: models.DirectionIncome,
		Amount:    decimal.RequireFromString("9.99"),
		Currency:  "eur",
	}, "", "")
	s.Require().NoError(err)

	account, err := s.accounts.GetByID(txn.AccountID)
	s.Require().NoError(err)
	s.Equal(models.FallbackAccountName, account.Name)
	s.Equal("EUR", account.Currency)
	s.Equal("9.99", account.Balance.StringFixed(2))
}

func (s *TransactionServiceSuite) TestHistoryRecordsSnapshots() {
	txn := s.create(s.checking, models.DirectionIncome, "10.00")
	s.patch(txn, &dto.TransactionPatchRequest{Amount: decimalPtr("11.00")})
	s.Require().NoError(s.service.DeleteTransaction(context.Background(), s.user.ID, txn.ID, "", ""))

	history, err := s.service.GetTransactionHistory(s.user.ID, txn.ID)
	s.Require().NoError(err)
	s.Require().Len(history, 3)
	s.Equal(models.AuditActionCreate, history[0].Action)
	s.Equal(models.AuditActionUpdate, history[1].Action)
	s.Equal(models.AuditActionDelete, history[2].Action)
	s.Empty(history[2].Changes)

	other := database.CreateTestUser(s.T(), s.db.DB, "snoop@example.com")
	_, err = s.service.GetTransactionHistory(other.ID, txn.ID)
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionServiceSuite) TestAuditFailureDoesNotAbortMutation() {
	service := s.newService(failingAuditUnitOfWork{inner: s.uow})

	txn, err := service.CreateTransaction(context.Background(), s.user.ID, &dto.TransactionRequest{
		AccountID: &s.checking.ID,
		Direction: models.DirectionIncome,
		Amount:    decimal.RequireFromString("42.00"),
	}, "", "")
	s.Require().NoError(err)
	s.Equal("42.00", s.balance(s.checking))

	logs, err := s.audits.GetByResource(models.AuditResourceTransaction, txn.ID.String())
	s.Require().NoError(err)
	s.Empty(logs)
}

func (s *TransactionServiceSuite) TestDeletedAccountReference() {
	txn := s.create(s.checking, models.DirectionIncome, "10.00")
	s.Require().NoError(s.db.DB.Exec("DELETE FROM accounts WHERE id = ?", s.checking.ID).Error)

	err := s.service.DeleteTransaction(context.Background(), s.user.ID, txn.ID, "", "")
	s.ErrorIs(err, ErrStaleAccountReference)

	_, err = s.service.GetTransaction(s.user.ID, txn.ID)
	s.NoError(err)
}

// failingAuditUnitOfWork swaps the audit repository of every unit of work for
// one that always fails.
type failingAuditUnitOfWork struct {
	inner repositories.UnitOfWorkInterface
}

func (u failingAuditUnitOfWork) Do(ctx context.Context, fn func(repos *repositories.TxRepositories) error) error {
	return u.inner.Do(ctx, func(repos *repositories.TxRepositories) error {
		repos.AuditLogs = failingAuditRepository{}
		return fn(repos)
	})
}

type failingAuditRepository struct{}

var errAuditUnavailable = errors.New("audit store unavailable")

func (failingAuditRepository) Create(*models.AuditLog) error { return errAuditUnavailable }

func (failingAuditRepository) GetByResource(string, string) ([]*models.AuditLog, error) {
	return nil, errAuditUnavailable
}

func (failingAuditRepository) GetByUserID(uuid.UUID, int, int) ([]*models.AuditLog, int64, error) {
	return nil, 0, errAuditUnavailable
}

