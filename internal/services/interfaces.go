package services

import (
	"context"
	"io"
	"time"

	"budgetbuddy/internal/dto"
	"budgetbuddy/internal/models"
	"budgetbuddy/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceReconcilerInterface owns the rule that turns a transaction into a
// signed balance delta and the check that recomputes a balance from history.
type BalanceReconcilerInterface interface {
	// ApplyEffect must be called with repositories bound to the caller's unit of work
	ApplyEffect(ctx context.Context, accounts repositories.AccountRepositoryInterface, accountID uuid.UUID, txn *models.Transaction, sign models.EffectSign) (decimal.Decimal, error)
	VerifyBalance(ctx context.Context, userID, accountID uuid.UUID) (*models.BalanceCheck, error)
}

type TransactionServiceInterface interface {
	CreateTransaction(ctx context.Context, userID uuid.UUID, req *dto.TransactionRequest, ipAddress, userAgent string) (*models.Transaction, error)
	ReplaceTransaction(ctx context.Context, userID, transactionID uuid.UUID, req *dto.TransactionRequest, ipAddress, userAgent string) (*models.Transaction, error)
	PatchTransaction(ctx context.Context, userID, transactionID uuid.UUID, req *dto.TransactionPatchRequest, ipAddress, userAgent string) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID, ipAddress, userAgent string) error
	GetTransaction(userID, transactionID uuid.UUID) (*models.Transaction, error)
	ListTransactions(userID uuid.UUID, filters models.TransactionFilters) ([]models.Transaction, int64, error)
	GetTransactionHistory(userID, transactionID uuid.UUID) ([]*models.AuditLog, error)
}

// AccountServiceInterface defines account-related business operations
type AccountServiceInterface interface {
	ListAccounts(ctx context.Context, userID uuid.UUID, filters models.AccountFilters) ([]models.Account, int64, error)
	CreateAccount(userID uuid.UUID, req *dto.AccountRequest) (*models.Account, error)
	GetAccount(userID, accountID uuid.UUID) (*models.Account, error)
	ReplaceAccount(ctx context.Context, userID, accountID uuid.UUID, req *dto.AccountRequest) (*models.Account, error)
	PatchAccount(ctx context.Context, userID, accountID uuid.UUID, req *dto.AccountPatchRequest) (*models.Account, error)
	DeleteAccount(ctx context.Context, userID, accountID uuid.UUID) error
	ReconcileAccount(ctx context.Context, userID, accountID uuid.UUID) (*models.BalanceCheck, error)
}

type CategoryServiceInterface interface {
	ListCategories(ctx context.Context, userID uuid.UUID, filters models.CategoryFilters) ([]models.Category, int64, error)
	CreateCategory(userID uuid.UUID, req *dto.CategoryRequest) (*models.Category, error)
	GetCategory(userID, categoryID uuid.UUID) (*models.Category, error)
	ReplaceCategory(userID, categoryID uuid.UUID, req *dto.CategoryRequest) (*models.Category, error)
	PatchCategory(userID, categoryID uuid.UUID, req *dto.CategoryPatchRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID uuid.UUID) error
}

type BudgetServiceInterface interface {
	ListBudgets(userID uuid.UUID, filters models.BudgetFilters) ([]models.Budget, int64, error)
	CreateBudget(userID uuid.UUID, req *dto.BudgetRequest) (*models.Budget, error)
	GetBudget(userID, budgetID uuid.UUID) (*models.Budget, error)
	ReplaceBudget(userID, budgetID uuid.UUID, req *dto.BudgetRequest) (*models.Budget, error)
	PatchBudget(userID, budgetID uuid.UUID, req *dto.BudgetPatchRequest) (*models.Budget, error)
	DeleteBudget(userID, budgetID uuid.UUID) error
}

type GoalServiceInterface interface {
	ListGoals(userID uuid.UUID, filters models.GoalFilters) ([]dto.GoalResponse, int64, error)
	CreateGoal(userID uuid.UUID, req *dto.GoalRequest) (*dto.GoalResponse, error)
	GetGoal(userID, goalID uuid.UUID) (*dto.GoalDetailResponse, error)
	ReplaceGoal(userID, goalID uuid.UUID, req *dto.GoalRequest) (*dto.GoalResponse, error)
	PatchGoal(userID, goalID uuid.UUID, req *dto.GoalPatchRequest) (*dto.GoalResponse, error)
	DeleteGoal(userID, goalID uuid.UUID) error
	AddContribution(userID, goalID uuid.UUID, req *dto.ContributionRequest) (*models.GoalContribution, error)
	DeleteContribution(userID, goalID, contributionID uuid.UUID) error
}

type InsightServiceInterface interface {
	ListInsights(userID uuid.UUID, filters models.InsightFilters) ([]models.Insight, int64, error)
	AcknowledgeInsight(userID, insightID uuid.UUID) (*models.Insight, error)
}

type ProfileServiceInterface interface {
	GetProfile(userID uuid.UUID) (*models.Profile, error)
	UpdateProfile(userID uuid.UUID, req *dto.ProfileUpdateRequest) (*models.Profile, error)
	GetPreferences(userID uuid.UUID) (models.JSONBMap, error)
	ReplacePreferences(userID uuid.UUID, preferences interface{}) (models.JSONBMap, error)
}

type ReportServiceInterface interface {
	GetSummary(userID uuid.UUID) (*models.Summary, error)
	GetCategorySpending(userID uuid.UUID, from, to *time.Time) ([]models.CategorySpending, error)
	GetBudgetProgress(userID uuid.UUID, from, to *time.Time) ([]models.BudgetProgress, error)
}

// ChartRendererInterface draws report data as images
type ChartRendererInterface interface {
	RenderCategorySpending(w io.Writer, rows []models.CategorySpending) error
}

type ExportServiceInterface interface {
	ExportUserData(ctx context.Context, userID uuid.UUID) (*dto.ExportResponse, error)
	DeleteUserData(ctx context.Context, userID uuid.UUID, ipAddress, userAgent string) error
}

type AuditServiceInterface interface {
	RecordActivity(activity *models.UserActivity) error
	GetUserAuditTrail(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
}

type AuthServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest, ipAddress, userAgent string) (*dto.RegisterResponse, error)
	Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error)
	RefreshTokens(refreshToken, ipAddress, userAgent string) (*dto.TokenResponse, error)
	ExchangeFirebaseToken(ctx context.Context, idToken, ipAddress, userAgent string) (*dto.TokenResponse, error)
	ResolveFirebaseUser(ctx context.Context, idToken string) (*models.User, error)
	Logout(accessToken, ipAddress, userAgent string) error
	IsTokenRevoked(jti string) (bool, error)
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ValidateRefreshToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetJTI(tokenString string) (string, error)
	GetTokenExpiry(tokenString string) (time.Time, error)
}

// IdentityVerifierInterface verifies ID tokens issued by an external identity provider
type IdentityVerifierInterface interface {
	Verify(ctx context.Context, idToken string) (*models.IdentityClaims, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
	PasswordStrength(password string) int
}

type AuditLoggerInterface interface {
	LogBalanceUpdate(ctx context.Context, accountID uuid.UUID, delta, newBalance string, transactionID uuid.UUID)
	LogTransactionMutation(ctx context.Context, action string, transactionID, userID uuid.UUID)
	LogStaleAccountReference(ctx context.Context, accountID, transactionID uuid.UUID)
	LogBalanceDrift(ctx context.Context, accountID uuid.UUID, cached, computed string)
	LogAuthenticationEvent(ctx context.Context, eventType string, userID *uuid.UUID, reason string)
	LogUserDataDeleted(ctx context.Context, userID uuid.UUID)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
