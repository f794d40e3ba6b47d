package server

import (
	"log/slog"
	"net/http"

	"budgetbuddy/internal/config"
	"budgetbuddy/internal/handlers"
	"budgetbuddy/internal/middleware"
	"budgetbuddy/internal/repositories"
	"budgetbuddy/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// App is the wired HTTP application
type App struct {
	Echo        *echo.Echo
	RateLimiter *middleware.IPRateLimiter
	Janitor     *services.SessionJanitor
}

// Build wires repositories, services and handlers on top of db
func Build(cfg *config.Config, db *gorm.DB, registry *prometheus.Registry, logger *slog.Logger) *App {
	uow := repositories.NewUnitOfWork(db)
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	accountRepo := repositories.NewAccountRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	budgetRepo := repositories.NewBudgetRepository(db)
	goalRepo := repositories.NewGoalRepository(db)
	insightRepo := repositories.NewInsightRepository(db)
	auditRepo := repositories.NewAuditLogRepository(db)
	activityRepo := repositories.NewUserActivityRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	blacklistedTokenRepo := repositories.NewBlacklistedTokenRepository(db)

	metrics := services.NewPrometheusMetrics(registry)
	auditLogger := services.NewAuditLogger(logger)
	auditService := services.NewAuditService(auditRepo, activityRepo)
	tokenService := services.NewTokenService(&cfg.JWT)

	var identityVerifier services.IdentityVerifierInterface
	if cfg.FirebaseEnabled() {
		identityVerifier = services.NewFirebaseVerifier(cfg.Firebase, &http.Client{Timeout: cfg.Server.ReadTimeout}, logger)
	}

	authService := services.NewAuthService(services.AuthDependencies{
		UnitOfWork:           uow,
		UserRepo:             userRepo,
		RefreshTokenRepo:     refreshTokenRepo,
		AuditRepo:            auditRepo,
		BlacklistedTokenRepo: blacklistedTokenRepo,
		PasswordService:      services.NewPasswordService(cfg.Security),
		TokenService:         tokenService,
		IdentityVerifier:     identityVerifier,
		AuditLogger:          auditLogger,
		Metrics:              metrics,
		MaxFailedAttempts:    cfg.Security.MaxFailedAttempts,
		Logger:               logger,
	})

	reconciler := services.NewBalanceReconciler(uow, auditLogger, metrics, logger)
	accountService := services.NewAccountService(uow, accountRepo, reconciler, logger)
	transactionService := services.NewTransactionService(uow, transactionRepo, auditRepo, reconciler, auditLogger, metrics, logger)
	categoryService := services.NewCategoryService(uow, categoryRepo, logger)
	profileService := services.NewProfileService(profileRepo, logger)
	exportService := services.NewExportService(uow, services.ExportRepositories{
		Profiles:     profileRepo,
		Accounts:     accountRepo,
		Categories:   categoryRepo,
		Budgets:      budgetRepo,
		Transactions: transactionRepo,
		Goals:        goalRepo,
		Insights:     insightRepo,
	}, profileService, auditLogger, metrics, logger)

	h := Handlers{
		Auth:        handlers.NewAuthHandler(authService),
		Profile:     handlers.NewProfileHandler(profileService, auditService),
		Account:     handlers.NewAccountHandler(accountService),
		Transaction: handlers.NewTransactionHandler(transactionService),
		Category:    handlers.NewCategoryHandler(categoryService),
		Budget:      handlers.NewBudgetHandler(services.NewBudgetService(budgetRepo, categoryRepo, logger)),
		Goal:        handlers.NewGoalHandler(services.NewGoalService(goalRepo, accountRepo, logger)),
		Insight:     handlers.NewInsightHandler(services.NewInsightService(insightRepo)),
		Report:      handlers.NewReportHandler(services.NewReportService(accountRepo, transactionRepo, categoryRepo, budgetRepo), services.NewChartRenderer()),
		Export:      handlers.NewExportHandler(exportService),
		Health:      handlers.NewHealthHandler(db),
	}
	if cfg.IsDevelopment() {
		h.Dev = handlers.NewDevHandler(accountService, categoryService, transactionService, logger)
	}

	rateLimiter := middleware.NewIPRateLimiter(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst)
	e := New(Dependencies{
		Config:       cfg,
		Logger:       logger,
		Registry:     registry,
		Metrics:      metrics,
		RateLimiter:  rateLimiter,
		TokenService: tokenService,
		AuthService:  authService,
		AuditService: auditService,
	}, h)

	return &App{
		Echo:        e,
		RateLimiter: rateLimiter,
		Janitor:     services.NewSessionJanitor(refreshTokenRepo, blacklistedTokenRepo, services.DefaultSessionSweepInterval, logger),
	}
}
