package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"budgetbuddy/internal/dto"
	"budgetbuddy/internal/models"
	"budgetbuddy/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrTransactionNotFound       = errors.New("transaction not found")
	ErrCrossOwnership            = errors.New("referenced account or category belongs to another user")
	ErrCurrencyMismatch          = errors.New("transaction currency must match the account currency")
	ErrCategoryDirectionMismatch = errors.New("category type does not match the transaction direction")
	ErrInvalidAmount             = errors.New("invalid amount")
	ErrReferenceNotFound         = errors.New("referenced object does not exist")
)

// FieldError is one rejected field of a request
type FieldError struct {
	Field string
	Err   error
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// TransactionValidationError collects every violation found for one request
// so they can be returned together. errors.Is matches any of them.
type TransactionValidationError struct {
	Fields []FieldError
}

func (e *TransactionValidationError) Error() string {
	messages := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		messages = append(messages, field.Error())
	}
	return "transaction validation failed: " + strings.Join(messages, "; ")
}

func (e *TransactionValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Fields))
	for _, field := range e.Fields {
		errs = append(errs, field)
	}
	return errs
}

// FieldMessages returns field name to message, suitable for error details
func (e *TransactionValidationError) FieldMessages() map[string]string {
	messages := make(map[string]string, len(e.Fields))
	for _, field := range e.Fields {
		messages[field.Field] = field.Err.Error()
	}
	return messages
}

func (e *TransactionValidationError) add(field string, err error) {
	e.Fields = append(e.Fields, FieldError{Field: field, Err: err})
}

func (e *TransactionValidationError) errOrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

type transactionService struct {
	uow             repositories.UnitOfWorkInterface
	transactionRepo repositories.TransactionRepositoryInterface
	auditRepo       repositories.AuditLogRepositoryInterface
	reconciler      BalanceReconcilerInterface
	auditLogger     AuditLoggerInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

func NewTransactionService(
	uow repositories.UnitOfWorkInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	auditRepo repositories.AuditLogRepositoryInterface,
	reconciler BalanceReconcilerInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransactionServiceInterface {
	return &transactionService{
		uow:             uow,
		transactionRepo: transactionRepo,
		auditRepo:       auditRepo,
		reconciler:      reconciler,
		auditLogger:     auditLogger,
		metrics:         metrics,
		logger:          logger,
	}
}

// CreateTransaction persists the row, applies its effect once and records a
// full snapshot in the audit trail, all in one unit of work.
func (s *transactionService) CreateTransaction(ctx context.Context, userID uuid.UUID, req *dto.TransactionRequest, ipAddress, userAgent string) (*models.Transaction, error) {
	start := time.Now()
	var created *models.Transaction

	err := s.uow.Do(ctx, func(repos *repositories.TxRepositories) error {
		txn := &models.Transaction{
			UserID:      userID,
			CategoryID:  req.CategoryID,
			Direction:   req.Direction,
			Amount:      req.Amount,
			Currency:    strings.ToUpper(strings.TrimSpace(req.Currency)),
			Description: req.Description,
			TxnTime:     resolveTxnTime(req.TxnTime, time.Time{}),
			Merchant:    req.Merchant,
			IsPending:   req.IsPending,
			ExternalID:  req.ExternalID,
		}

		if req.AccountID != nil {
			txn.AccountID = *req.AccountID
		} else {
			account, err := s.defaultAccount(repos, userID, txn.Currency)
			if err != nil {
				return err
			}
			txn.AccountID = account.ID
		}

		if err := s.validate(repos, userID, txn); err != nil {
			return err
		}

		if err := repos.Transactions.Create(txn); err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}

		if _, err := s.reconciler.ApplyEffect(ctx, repos.Accounts, txn.AccountID, txn, models.EffectApply); err != nil {
			return err
		}

		s.appendAudit(repos, userID, models.AuditActionCreate, txn.ID, txn.Snapshot(), ipAddress, userAgent)
		created = txn
		return nil
	})
	if err != nil {
		s.recordRejection(models.AuditActionCreate, err)
		return nil, err
	}

	s.recordMutation(ctx, models.AuditActionCreate, created.ID, userID, start)
	return created, nil
}

// ReplaceTransaction applies a full PUT body. An omitted account keeps the
// current one and an omitted txn_time keeps the stored time.
func (s *transactionService) ReplaceTransaction(ctx context.Context, userID, transactionID uuid.UUID, req *dto.TransactionRequest, ipAddress, userAgent string) (*models.Transaction, error) {
	return s.update(ctx, userID, transactionID, ipAddress, userAgent, func(txn *models.Transaction) {
		if req.AccountID != nil {
			txn.AccountID = *req.AccountID
		}
		txn.CategoryID = req.CategoryID
		txn.Direction = req.Direction
		txn.Amount = req.Amount
		txn.Currency = strings.ToUpper(strings.TrimSpace(req.Currency))
		txn.Description = req.Description
		txn.TxnTime = resolveTxnTime(req.TxnTime, txn.TxnTime)
		txn.Merchant = req.Merchant
		txn.IsPending = req.IsPending
		txn.ExternalID = req.ExternalID
	})
}

func (s *transactionService) PatchTransaction(ctx context.Context, userID, transactionID uuid.UUID, req *dto.TransactionPatchRequest, ipAddress, userAgent string) (*models.Transaction, error) {
	return s.update(ctx, userID, transactionID, ipAddress, userAgent, func(txn *models.Transaction) {
		if req.AccountID != nil {
			txn.AccountID = *req.AccountID
		}
		if req.CategoryID.Set {
			txn.CategoryID = req.CategoryID.Value
		}
		if req.Direction != nil {
			txn.Direction = *req.Direction
		}
		if req.Amount != nil {
			txn.Amount = *req.Amount
		}
		if req.Currency != nil {
			txn.Currency = strings.ToUpper(strings.TrimSpace(*req.Currency))
		}
		if req.Description != nil {
			txn.Description = *req.Description
		}
		if req.TxnTime != nil {
			txn.TxnTime = req.TxnTime.UTC()
		}
		if req.Merchant != nil {
			txn.Merchant = *req.Merchant
		}
		if req.IsPending != nil {
			txn.IsPending = *req.IsPending
		}
		if req.ExternalID != nil {
			txn.ExternalID = *req.ExternalID
		}
	})
}

// update captures the pre-image under a row lock before any write, persists
// the new state, then reverses the old effect and applies the new one.
func (s *transactionService) update(ctx context.Context, userID, transactionID uuid.UUID, ipAddress, userAgent string, mutate func(txn *models.Transaction)) (*models.Transaction, error) {
	start := time.Now()
	var updated *models.Transaction

	err := s.uow.Do(ctx, func(repos *repositories.TxRepositories) error {
		current, err := repos.Transactions.GetForUpdate(transactionID, userID)
		if err != nil {
			if errors.Is(err, repositories.ErrTransactionNotFound) {
				return ErrTransactionNotFound
			}
			return fmt.Errorf("failed to load transaction: %w", err)
		}

		before := *current
		if current.CategoryID != nil {
			categoryID := *current.CategoryID
			before.CategoryID = &categoryID
		}

		mutate(current)

		if err := s.validate(repos, userID, current); err != nil {
			return err
		}

		if err := repos.Transactions.Update(current); err != nil {
			if errors.Is(err, repositories.ErrTransactionNotFound) {
				return ErrTransactionNotFound
			}
			return fmt.Errorf("failed to update transaction: %w", err)
		}

		if err := s.moveEffect(ctx, repos, &before, current); err != nil {
			return err
		}

		s.appendAudit(repos, userID, models.AuditActionUpdate, current.ID, current.Snapshot(), ipAddress, userAgent)
		updated = current
		return nil
	})
	if err != nil {
		s.recordRejection(models.AuditActionUpdate, err)
		return nil, err
	}

	s.recordMutation(ctx, models.AuditActionUpdate, updated.ID, userID, start)
	return updated, nil
}

// moveEffect reverses before and applies after. When the accounts differ the
// two balance updates run in ascending account-id order so concurrent moves
// lock rows in one global order.
func (s *transactionService) moveEffect(ctx context.Context, repos *repositories.TxRepositories, before, after *models.Transaction) error {
	type step struct {
		txn  *models.Transaction
		sign models.EffectSign
	}

	steps := []step{
		{txn: before, sign: models.EffectReverse},
		{txn: after, sign: models.EffectApply},
	}
	if bytes.Compare(after.AccountID[:], before.AccountID[:]) < 0 {
		steps[0], steps[1] = steps[1], steps[0]
	}

	for _, st := range steps {
		if _, err := s.reconciler.ApplyEffect(ctx, repos.Accounts, st.txn.AccountID, st.txn, st.sign); err != nil {
			return err
		}
	}
	return nil
}

// DeleteTransaction hard-deletes the row, reverses its effect once and
// records an empty snapshot.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID, ipAddress, userAgent string) error {
	start := time.Now()

	err := s.uow.Do(ctx, func(repos *repositories.TxRepositories) error {
		txn, err := repos.Transactions.GetForUpdate(transactionID, userID)
		if err != nil {
			if errors.Is(err, repositories.ErrTransactionNotFound) {
				return ErrTransactionNotFound
			}
			return fmt.Errorf("failed to load transaction: %w", err)
		}

		if err := repos.Transactions.Delete(txn.ID); err != nil {
			if errors.Is(err, repositories.ErrTransactionNotFound) {
				return ErrTransactionNotFound
			}
			return fmt.Errorf("failed to delete transaction: %w", err)
		}

		if _, err := s.reconciler.ApplyEffect(ctx, repos.Accounts, txn.AccountID, txn, models.EffectReverse); err != nil {
			return err
		}

		s.appendAudit(repos, userID, models.AuditActionDelete, txn.ID, models.JSONBMap{}, ipAddress, userAgent)
		return nil
	})
	if err != nil {
		s.recordRejection(models.AuditActionDelete, err)
		return err
	}

	s.recordMutation(ctx, models.AuditActionDelete, transactionID, userID, start)
	return nil
}

func (s *transactionService) GetTransaction(userID, transactionID uuid.UUID) (*models.Transaction, error) {
	txn, err := s.transactionRepo.GetByIDForUser(transactionID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(userID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	transactions, total, err := s.transactionRepo.List(userID, filters)
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidOrdering) {
			return nil, 0, ErrInvalidOrdering
		}
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, total, nil
}

// GetTransactionHistory returns the audit entries of a transaction the user
// owns. Entries outlive the row, so the owner is checked on the entries.
func (s *transactionService) GetTransactionHistory(userID, transactionID uuid.UUID) ([]*models.AuditLog, error) {
	logs, err := s.auditRepo.GetByResource(models.AuditResourceTransaction, transactionID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction history: %w", err)
	}

	owned := make([]*models.AuditLog, 0, len(logs))
	for _, log := range logs {
		if log.UserID != nil && *log.UserID == userID {
			owned = append(owned, log)
		}
	}
	if len(owned) == 0 {
		return nil, ErrTransactionNotFound
	}
	return owned, nil
}

// defaultAccount picks the user's first active account, creating a
// "Default Account" inside the same unit of work when there is none.
func (s *transactionService) defaultAccount(repos *repositories.TxRepositories, userID uuid.UUID, currency string) (*models.Account, error) {
	account, err := repos.Accounts.FirstActive(userID)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, repositories.ErrAccountNotFound) {
		return nil, fmt.Errorf("failed to find default account: %w", err)
	}

	if currency == "" {
		currency = models.DefaultCurrency
	}
	account = &models.Account{
		UserID:   userID,
		Name:     models.FallbackAccountName,
		Type:     models.AccountTypeChecking,
		Currency: currency,
		IsActive: true,
	}
	if err := repos.Accounts.Create(account); err != nil {
		if errors.Is(err, repositories.ErrAccountNameExists) {
			return nil, ErrAccountNameExists
		}
		return nil, fmt.Errorf("failed to create default account: %w", err)
	}

	s.logger.Info("created fallback account", "user_id", userID, "account_id", account.ID)
	return account, nil
}

// validate checks every cross-row rule and reports all violations together.
// An empty currency is filled from the account.
func (s *transactionService) validate(repos *repositories.TxRepositories, userID uuid.UUID, txn *models.Transaction) error {
	verr := &TransactionValidationError{}

	var account *models.Account
	found, err := repos.Accounts.GetByID(txn.AccountID)
	switch {
	case errors.Is(err, repositories.ErrAccountNotFound):
		verr.add("account_id", ErrReferenceNotFound)
	case err != nil:
		return fmt.Errorf("failed to load account: %w", err)
	case found.UserID != userID:
		verr.add("account_id", ErrCrossOwnership)
	default:
		account = found
	}

	if !models.IsValidDirection(txn.Direction) {
		verr.add("direction", models.ErrInvalidDirection)
	}

	if txn.CategoryID != nil {
		category, err := repos.Categories.GetByID(*txn.CategoryID)
		switch {
		case errors.Is(err, repositories.ErrCategoryNotFound):
			verr.add("category_id", ErrReferenceNotFound)
		case err != nil:
			return fmt.Errorf("failed to load category: %w", err)
		case category.UserID != userID:
			verr.add("category_id", ErrCrossOwnership)
		case models.IsValidDirection(txn.Direction) && !category.Matches(txn.Direction):
			verr.add("category_id", ErrCategoryDirectionMismatch)
		}
	}

	if err := models.ValidateAmount(txn.Amount); err != nil {
		verr.add("amount", fmt.Errorf("%w: %w", ErrInvalidAmount, err))
	}

	if account != nil {
		if txn.Currency == "" {
			txn.Currency = account.Currency
		}
		if txn.Currency != account.Currency {
			verr.add("currency", ErrCurrencyMismatch)
		}
	}

	return verr.errOrNil()
}

// appendAudit writes the audit entry in a savepoint. A failure is logged and
// never aborts the surrounding unit of work.
func (s *transactionService) appendAudit(repos *repositories.TxRepositories, userID uuid.UUID, action string, transactionID uuid.UUID, changes models.JSONBMap, ipAddress, userAgent string) {
	log := &models.AuditLog{
		UserID:     &userID,
		Action:     action,
		Resource:   models.AuditResourceTransaction,
		ResourceID: transactionID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Changes:    changes,
	}

	if err := repos.AuditLogs.Create(log); err != nil {
		s.logger.Error("failed to create audit log",
			"error", err,
			"action", action,
			"resource", models.AuditResourceTransaction,
			"resource_id", transactionID)
	}
}

func (s *transactionService) recordMutation(ctx context.Context, action string, transactionID, userID uuid.UUID, start time.Time) {
	s.auditLogger.LogTransactionMutation(ctx, action, transactionID, userID)
	s.metrics.IncrementCounter(MetricTransactionMutation, map[string]string{"operation": action})
	s.metrics.RecordProcessingTime("transaction_"+action, time.Since(start))
}

func (s *transactionService) recordRejection(action string, err error) {
	s.metrics.IncrementCounter(MetricTransactionRejected, map[string]string{
		"operation": action,
		"reason":    rejectionReason(err),
	})
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrCrossOwnership):
		return "cross_ownership"
	case errors.Is(err, ErrCurrencyMismatch):
		return "currency_mismatch"
	case errors.Is(err, ErrCategoryDirectionMismatch):
		return "category_direction"
	case errors.Is(err, ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, ErrStaleAccountReference):
		return "stale_account"
	case errors.Is(err, ErrTransactionNotFound):
		return "not_found"
	default:
		return "other"
	}
}

func resolveTxnTime(requested *time.Time, fallback time.Time) time.Time {
	if requested != nil && !requested.IsZero() {
		return requested.UTC()
	}
	if !fallback.IsZero() {
		return fallback
	}
	return time.Now().UTC()
}
