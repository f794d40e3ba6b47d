package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"budgetbuddy/internal/models"
	"budgetbuddy/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrStaleAccountReference = errors.New("account referenced by the transaction no longer exists")

type balanceReconciler struct {
	uow         repositories.UnitOfWorkInterface
	auditLogger AuditLoggerInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

func NewBalanceReconciler(
	uow repositories.UnitOfWorkInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) BalanceReconcilerInterface {
	return &balanceReconciler{
		uow:         uow,
		auditLogger: auditLogger,
		metrics:     metrics,
		logger:      logger,
	}
}

// ApplyEffect adds the transaction's signed effect to the account balance.
// The account is never validated here: a reversal may legitimately leave a
// negative intermediate balance. The returned balance is the value visible
// inside the caller's unit of work.
func (r *balanceReconciler) ApplyEffect(
	ctx context.Context,
	accounts repositories.AccountRepositoryInterface,
	accountID uuid.UUID,
	txn *models.Transaction,
	sign models.EffectSign,
) (decimal.Decimal, error) {
	delta := txn.Effect(sign)

	balance, err := accounts.ApplyBalanceDelta(accountID, delta)
	if err != nil {
		if errors.Is(err, repositories.ErrStaleAccountReference) {
			r.auditLogger.LogStaleAccountReference(ctx, accountID, txn.ID)
			return decimal.Zero, ErrStaleAccountReference
		}
		return decimal.Zero, fmt.Errorf("failed to apply balance delta: %w", err)
	}

	r.auditLogger.LogBalanceUpdate(ctx, accountID, delta.StringFixed(models.AmountScale), balance.StringFixed(models.AmountScale), txn.ID)
	r.metrics.RecordGauge(MetricBalanceDelta, delta.InexactFloat64(), map[string]string{"direction": txn.Direction})

	return balance, nil
}

// VerifyBalance recomputes the balance from stored transactions and compares
// it with the cached value. Both reads share one datastore transaction.
func (r *balanceReconciler) VerifyBalance(ctx context.Context, userID, accountID uuid.UUID) (*models.BalanceCheck, error) {
	start := time.Now()
	defer func() {
		r.metrics.RecordProcessingTime(MetricReconciliation, time.Since(start))
	}()

	var check *models.BalanceCheck
	err := r.uow.Do(ctx, func(repos *repositories.TxRepositories) error {
		account, err := repos.Accounts.GetByIDForUser(accountID, userID)
		if err != nil {
			if errors.Is(err, repositories.ErrAccountNotFound) {
				return ErrAccountNotFound
			}
			return fmt.Errorf("failed to get account: %w", err)
		}

		computed, count, err := repos.Transactions.SumEffectsByAccountID(account.ID)
		if err != nil {
			return fmt.Errorf("failed to recompute balance: %w", err)
		}

		drift := account.Balance.Sub(computed)
		check = &models.BalanceCheck{
			AccountID:        account.ID,
			CachedBalance:    account.Balance,
			ComputedBalance:  computed,
			Drift:            drift,
			TransactionCount: count,
			Consistent:       drift.IsZero(),
			CheckedAt:        time.Now().UTC(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !check.Consistent {
		r.auditLogger.LogBalanceDrift(ctx, check.AccountID,
			check.CachedBalance.StringFixed(models.AmountScale),
			check.ComputedBalance.StringFixed(models.AmountScale))
		r.metrics.IncrementCounter(MetricBalanceDrift, nil)
	}

	return check, nil
}
