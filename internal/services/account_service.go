package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"budgetbuddy/internal/dto"
	"budgetbuddy/internal/models"
	"budgetbuddy/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountNameExists = errors.New("an account with this name already exists")
	ErrCurrencyLocked    = errors.New("currency cannot change once the account has transactions")
	ErrInvalidOrdering   = errors.New("unsupported ordering")
)

// accountService implements AccountServiceInterface
type accountService struct {
	uow         repositories.UnitOfWorkInterface
	accountRepo repositories.AccountRepositoryInterface
	reconciler  BalanceReconcilerInterface
	logger      *slog.Logger
}

func NewAccountService(
	uow repositories.UnitOfWorkInterface,
	accountRepo repositories.AccountRepositoryInterface,
	reconciler BalanceReconcilerInterface,
	logger *slog.Logger,
) AccountServiceInterface {
	return &accountService{
		uow:         uow,
		accountRepo: accountRepo,
		reconciler:  reconciler,
		logger:      logger,
	}
}

// ListAccounts seeds a Checking account for users that have none, then lists
func (s *accountService) ListAccounts(ctx context.Context, userID uuid.UUID, filters models.AccountFilters) ([]models.Account, int64, error) {
	if err := s.uow.Do(ctx, func(repos *repositories.TxRepositories) error {
		return seedDefaultAccount(repos, userID)
	}); err != nil {
		return nil, 0, err
	}

	accounts, total, err := s.accountRepo.List(userID, filters)
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidOrdering) {
			return nil, 0, ErrInvalidOrdering
		}
		return nil, 0, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, total, nil
}

func (s *accountService) CreateAccount(userID uuid.UUID, req *dto.AccountRequest) (*models.Account, error) {
	account := &models.Account{
		UserID:      userID,
		Name:        strings.TrimSpace(req.Name),
		Type:        req.Type,
		Institution: req.Institution,
		Currency:    strings.ToUpper(req.Currency),
		IsActive:    true,
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}

	if err := s.accountRepo.Create(account); err != nil {
		return nil, mapAccountError(err)
	}
	return account, nil
}

func (s *accountService) GetAccount(userID, accountID uuid.UUID) (*models.Account, error) {
	account, err := s.accountRepo.GetByIDForUser(accountID, userID)
	if err != nil {
		return nil, mapAccountError(err)
	}
	return account, nil
}

// ReplaceAccount applies a PUT body. Omitted type, currency and is_active
// keep their stored values.
func (s *accountService) ReplaceAccount(ctx context.Context, userID, accountID uuid.UUID, req *dto.AccountRequest) (*models.Account, error) {
	return s.update(ctx, userID, accountID, func(account *models.Account) {
		account.Name = strings.TrimSpace(req.Name)
		account.Institution = req.Institution
		if req.Type != "" {
			account.Type = req.Type
		}
		if req.Currency != "" {
			account.Currency = strings.ToUpper(req.Currency)
		}
		if req.IsActive != nil {
			account.IsActive = *req.IsActive
		}
	})
}

func (s *accountService) PatchAccount(ctx context.Context, userID, accountID uuid.UUID, req *dto.AccountPatchRequest) (*models.Account, error) {
	return s.update(ctx, userID, accountID, func(account *models.Account) {
		if req.Name != nil {
			account.Name = strings.TrimSpace(*req.Name)
		}
		if req.Type != nil {
			account.Type = *req.Type
		}
		if req.Institution != nil {
			account.Institution = *req.Institution
		}
		if req.Currency != nil {
			account.Currency = strings.ToUpper(*req.Currency)
		}
		if req.IsActive != nil {
			account.IsActive = *req.IsActive
		}
	})
}

// update never touches the balance; the repository excludes that column
func (s *accountService) update(ctx context.Context, userID, accountID uuid.UUID, mutate func(account *models.Account)) (*models.Account, error) {
	var updated *models.Account

	err := s.uow.Do(ctx, func(repos *repositories.TxRepositories) error {
		account, err := repos.Accounts.GetByIDForUser(accountID, userID)
		if err != nil {
			return mapAccountError(err)
		}

		previousCurrency := account.Currency
		mutate(account)

		if account.Currency != previousCurrency {
			count, err := repos.Transactions.CountByAccountID(account.ID)
			if err != nil {
				return fmt.Errorf("failed to count account transactions: %w", err)
			}
			if count > 0 {
				return ErrCurrencyLocked
			}
		}

		if err := repos.Accounts.Update(account); err != nil {
			return mapAccountError(err)
		}
		updated = account
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteAccount removes the account together with its transactions and
// detaches goal contributions that were funded from it.
func (s *accountService) DeleteAccount(ctx context.Context, userID, accountID uuid.UUID) error {
	return s.uow.Do(ctx, func(repos *repositories.TxRepositories) error {
		account, err := repos.Accounts.GetByIDForUser(accountID, userID)
		if err != nil {
			return mapAccountError(err)
		}

		removed, err := repos.Transactions.DeleteByAccountID(account.ID)
		if err != nil {
			return fmt.Errorf("failed to delete account transactions: %w", err)
		}

		if _, err := repos.Goals.ClearSourceAccount(account.ID); err != nil {
			return fmt.Errorf("failed to detach goal contributions: %w", err)
		}

		if err := repos.Accounts.Delete(account.ID); err != nil {
			return mapAccountError(err)
		}

		s.logger.Info("account deleted",
			"user_id", userID,
			"account_id", account.ID,
			"transactions_removed", removed)
		return nil
	})
}

func (s *accountService) ReconcileAccount(ctx context.Context, userID, accountID uuid.UUID) (*models.BalanceCheck, error) {
	return s.reconciler.VerifyBalance(ctx, userID, accountID)
}

// seedDefaultAccount creates the Checking account for a user without any
// accounts. It must run inside a unit of work.
func seedDefaultAccount(repos *repositories.TxRepositories, userID uuid.UUID) error {
	count, err := repos.Accounts.CountByUserID(userID)
	if err != nil {
		return fmt.Errorf("failed to count accounts: %w", err)
	}
	if count > 0 {
		return nil
	}

	account := &models.Account{
		UserID:   userID,
		Name:     models.DefaultAccountName,
		Type:     models.AccountTypeChecking,
		Currency: models.DefaultCurrency,
		IsActive: true,
	}
	if err := repos.Accounts.Create(account); err != nil && !errors.Is(err, repositories.ErrAccountNameExists) {
		return fmt.Errorf("failed to seed default account: %w", err)
	}
	return nil
}

func mapAccountError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrAccountNotFound):
		return ErrAccountNotFound
	case errors.Is(err, repositories.ErrAccountNameExists):
		return ErrAccountNameExists
	default:
		return err
	}
}
