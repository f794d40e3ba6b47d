package repositories

import (
	"context"

	"gorm.io/gorm"
)

// TxRepositories is the set of repositories bound to one open transaction.
type TxRepositories struct {
	Users        UserRepositoryInterface
	Profiles     ProfileRepositoryInterface
	Accounts     AccountRepositoryInterface
	Transactions TransactionRepositoryInterface
	Categories   CategoryRepositoryInterface
	Budgets      BudgetRepositoryInterface
	Goals        GoalRepositoryInterface
	Insights     InsightRepositoryInterface
	AuditLogs    AuditLogRepositoryInterface
	Activities   UserActivityRepositoryInterface
}

func newTxRepositories(tx *gorm.DB) *TxRepositories {
	return &TxRepositories{
		Users:        NewUserRepository(tx),
		Profiles:     NewProfileRepository(tx),
		Accounts:     NewAccountRepository(tx),
		Transactions: NewTransactionRepository(tx),
		Categories:   NewCategoryRepository(tx),
		Budgets:      NewBudgetRepository(tx),
		Goals:        NewGoalRepository(tx),
		Insights:     NewInsightRepository(tx),
		AuditLogs:    NewAuditLogRepository(tx),
		Activities:   NewUserActivityRepository(tx),
	}
}

type unitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWorkInterface {
	return &unitOfWork{db: db}
}

// Do commits when fn returns nil and rolls back otherwise, returning fn's
// error unchanged so callers can match sentinels with errors.Is.
func (u *unitOfWork) Do(ctx context.Context, fn func(repos *TxRepositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newTxRepositories(tx))
	})
}
