package repositories

import (
	"context"
	"time"

	"budgetbuddy/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	EmailExists(email string) (bool, error)
	UpdateFailedLoginAttempts(user *models.User) error
	UpdateLastLogin(user *models.User) error
}

// ProfileRepositoryInterface defines the contract for profile repository operations
type ProfileRepositoryInterface interface {
	Create(profile *models.Profile) error
	GetByUserID(userID uuid.UUID) (*models.Profile, error)
	GetByFirebaseUID(uid string) (*models.Profile, error)
	Update(profile *models.Profile) error
	UpdatePreferences(userID uuid.UUID, preferences models.JSONBMap) error
	DeleteByUserID(userID uuid.UUID) error
}

// AccountRepositoryInterface defines the contract for account repository operations.
// The balance column is only written by ApplyBalanceDelta.
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	GetByIDForUser(id, userID uuid.UUID) (*models.Account, error)
	List(userID uuid.UUID, filters models.AccountFilters) ([]models.Account, int64, error)
	ListAllByUserID(userID uuid.UUID) ([]models.Account, error)
	FirstActive(userID uuid.UUID) (*models.Account, error)
	CountByUserID(userID uuid.UUID) (int64, error)
	Update(account *models.Account) error
	Delete(id uuid.UUID) error
	DeleteByUserID(userID uuid.UUID) error
	ApplyBalanceDelta(id uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error)
	TotalBalance(userID uuid.UUID) (decimal.Decimal, error)
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetByIDForUser(id, userID uuid.UUID) (*models.Transaction, error)
	GetForUpdate(id, userID uuid.UUID) (*models.Transaction, error)
	Update(transaction *models.Transaction) error
	Delete(id uuid.UUID) error
	List(userID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, int64, error)
	ListAllByUserID(userID uuid.UUID) ([]models.Transaction, error)
	CountByAccountID(accountID uuid.UUID) (int64, error)
	SumEffectsByAccountID(accountID uuid.UUID) (decimal.Decimal, int64, error)
	DeleteByAccountID(accountID uuid.UUID) (int64, error)
	DeleteByUserID(userID uuid.UUID) error
	ClearCategory(categoryID uuid.UUID) (int64, error)
	TotalsByDirection(userID uuid.UUID) (income, expense decimal.Decimal, err error)
	SpendingByCategory(userID uuid.UUID, from, to *time.Time) ([]models.CategorySpending, error)
	SumExpenses(userID, categoryID uuid.UUID, from, to time.Time) (decimal.Decimal, error)
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	GetByIDForUser(id, userID uuid.UUID) (*models.Category, error)
	List(userID uuid.UUID, filters models.CategoryFilters) ([]models.Category, int64, error)
	ListAllByUserID(userID uuid.UUID) ([]models.Category, error)
	CountByUserID(userID uuid.UUID) (int64, error)
	Update(category *models.Category) error
	Delete(id uuid.UUID) error
	DeleteByUserID(userID uuid.UUID) error
}

// BudgetRepositoryInterface defines the contract for budget repository operations
type BudgetRepositoryInterface interface {
	Create(budget *models.Budget) error
	GetByIDForUser(id, userID uuid.UUID) (*models.Budget, error)
	List(userID uuid.UUID, filters models.BudgetFilters) ([]models.Budget, int64, error)
	ListOverlapping(userID uuid.UUID, from, to *time.Time) ([]models.Budget, error)
	ListAllByUserID(userID uuid.UUID) ([]models.Budget, error)
	Update(budget *models.Budget) error
	Delete(id uuid.UUID) error
	DeleteByCategoryID(categoryID uuid.UUID) error
	DeleteByUserID(userID uuid.UUID) error
}

// GoalRepositoryInterface defines the contract for goal and contribution operations
type GoalRepositoryInterface interface {
	Create(goal *models.Goal) error
	GetByIDForUser(id, userID uuid.UUID) (*models.Goal, error)
	List(userID uuid.UUID, filters models.GoalFilters) ([]models.Goal, int64, error)
	ListAllByUserID(userID uuid.UUID) ([]models.Goal, error)
	Update(goal *models.Goal) error
	Delete(id uuid.UUID) error
	DeleteByUserID(userID uuid.UUID) error

	CreateContribution(contribution *models.GoalContribution) error
	GetContribution(id, goalID uuid.UUID) (*models.GoalContribution, error)
	ListContributions(goalID uuid.UUID) ([]models.GoalContribution, error)
	ListContributionsByUserID(userID uuid.UUID) ([]models.GoalContribution, error)
	SumContributions(goalID uuid.UUID) (decimal.Decimal, error)
	DeleteContribution(id uuid.UUID) error
	ClearSourceAccount(accountID uuid.UUID) (int64, error)
}

// InsightRepositoryInterface defines the contract for insight repository operations
type InsightRepositoryInterface interface {
	Create(insight *models.Insight) error
	GetByIDForUser(id, userID uuid.UUID) (*models.Insight, error)
	List(userID uuid.UUID, filters models.InsightFilters) ([]models.Insight, int64, error)
	ListAllByUserID(userID uuid.UUID) ([]models.Insight, error)
	Acknowledge(id uuid.UUID) error
	DeleteByUserID(userID uuid.UUID) error
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	GetByResource(resource, resourceID string) ([]*models.AuditLog, error)
	GetByUserID(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
}

// UserActivityRepositoryInterface defines the contract for request activity rows
type UserActivityRepositoryInterface interface {
	Create(activity *models.UserActivity) error
	GetByUserID(userID uuid.UUID, offset, limit int) ([]models.UserActivity, int64, error)
	DeleteByUserID(userID uuid.UUID) error
}

type RefreshTokenRepositoryInterface interface {
	Create(token *models.RefreshToken) error
	GetByTokenHash(tokenHash string) (*models.RefreshToken, error)
	Revoke(tokenID uuid.UUID) error
	RevokeAllForUser(userID uuid.UUID) error
	DeleteExpired() (int64, error)
}

// BlacklistedTokenRepositoryInterface defines the contract for blacklisted token repository operations
type BlacklistedTokenRepositoryInterface interface {
	Create(token *models.BlacklistedToken) error
	IsBlacklisted(jti string) (bool, error)
	DeleteExpired() (int64, error)
}

// UnitOfWorkInterface runs fn inside one database transaction. Every
// repository in TxRepositories is bound to that transaction.
type UnitOfWorkInterface interface {
	Do(ctx context.Context, fn func(repos *TxRepositories) error) error
}
