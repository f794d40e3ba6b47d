package server

import (
	"log/slog"

	"budgetbuddy/internal/config"
	"budgetbuddy/internal/handlers"
	"budgetbuddy/internal/middleware"
	"budgetbuddy/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups the HTTP handlers mounted under /api/v1. Dev is optional
// and only mounted in development.
type Handlers struct {
	Auth        *handlers.AuthHandler
	Profile     *handlers.ProfileHandler
	Account     *handlers.AccountHandler
	Transaction *handlers.TransactionHandler
	Category    *handlers.CategoryHandler
	Budget      *handlers.BudgetHandler
	Goal        *handlers.GoalHandler
	Insight     *handlers.InsightHandler
	Report      *handlers.ReportHandler
	Export      *handlers.ExportHandler
	Health      *handlers.HealthHandler
	Dev         *handlers.DevHandler
}

// Dependencies are the collaborators of the middleware chain
type Dependencies struct {
	Config       *config.Config
	Logger       *slog.Logger
	Registry     *prometheus.Registry
	Metrics      services.MetricsRecorderInterface
	RateLimiter  *middleware.IPRateLimiter
	TokenService services.TokenServiceInterface
	AuthService  services.AuthServiceInterface
	AuditService services.AuditServiceInterface
}

// New builds the Echo instance with the full middleware chain and routes
func New(deps Dependencies, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(deps.Metrics, deps.Logger)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(deps.Logger))
	e.Use(requestLogger(deps.Logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: deps.Config.Server.CORSAllowOrigins,
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
			middleware.MobileAPIKeyHeader,
			middleware.TraceIDHeader,
		},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit(deps.Config.Server.BodyLimit))
	e.Use(deps.RateLimiter.Middleware())
	e.Use(middleware.ActivityLogger(deps.AuditService, deps.Logger))

	RegisterRoutes(e, deps, h)
	return e
}

// RegisterRoutes mounts health, metrics and the /api/v1 API
func RegisterRoutes(e *echo.Echo, deps Dependencies, h Handlers) {
	e.GET("/health", h.Health.Check)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))

	api := e.Group("/api/v1", middleware.RequireMobileAPIKey(deps.Config.Security.MobileAPIKey))

	auth := api.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/token", h.Auth.Login)
	auth.POST("/token/refresh", h.Auth.RefreshToken)
	auth.POST("/firebase", h.Auth.FirebaseLogin)

	protected := api.Group("", middleware.RequireAuth(deps.TokenService, deps.AuthService))
	// The empty-prefix group above claimed /api/v1/* for its not-found route,
	// which would answer unknown paths with 401. Hand it back to api.
	api.RouteNotFound("/*", echo.NotFoundHandler)
	protected.POST("/auth/logout", h.Auth.Logout)

	protected.GET("/profile", h.Profile.GetProfile)
	protected.PUT("/profile", h.Profile.UpdateProfile)
	protected.PATCH("/profile", h.Profile.UpdateProfile)
	protected.GET("/profile/audit", h.Profile.AuditTrail)
	protected.GET("/preferences", h.Profile.GetPreferences)
	protected.PUT("/preferences", h.Profile.ReplacePreferences)

	accounts := protected.Group("/accounts")
	accounts.GET("", h.Account.ListAccounts)
	accounts.POST("", h.Account.CreateAccount)
	accounts.GET("/:id", h.Account.GetAccount)
	accounts.PUT("/:id", h.Account.ReplaceAccount)
	accounts.PATCH("/:id", h.Account.PatchAccount)
	accounts.DELETE("/:id", h.Account.DeleteAccount)
	accounts.GET("/:id/reconciliation", h.Account.Reconcile)

	transactions := protected.Group("/transactions")
	transactions.GET("", h.Transaction.ListTransactions)
	transactions.POST("", h.Transaction.CreateTransaction)
	transactions.GET("/:id", h.Transaction.GetTransaction)
	transactions.PUT("/:id", h.Transaction.ReplaceTransaction)
	transactions.PATCH("/:id", h.Transaction.PatchTransaction)
	transactions.DELETE("/:id", h.Transaction.DeleteTransaction)
	transactions.GET("/:id/history", h.Transaction.GetTransactionHistory)

	categories := protected.Group("/categories")
	categories.GET("", h.Category.ListCategories)
	categories.POST("", h.Category.CreateCategory)
	categories.GET("/:id", h.Category.GetCategory)
	categories.PUT("/:id", h.Category.ReplaceCategory)
	categories.PATCH("/:id", h.Category.PatchCategory)
	categories.DELETE("/:id", h.Category.DeleteCategory)

	budgets := protected.Group("/budgets")
	budgets.GET("", h.Budget.ListBudgets)
	budgets.POST("", h.Budget.CreateBudget)
	budgets.GET("/:id", h.Budget.GetBudget)
	budgets.PUT("/:id", h.Budget.ReplaceBudget)
	budgets.PATCH("/:id", h.Budget.PatchBudget)
	budgets.DELETE("/:id", h.Budget.DeleteBudget)

	goals := protected.Group("/goals")
	goals.GET("", h.Goal.ListGoals)
	goals.POST("", h.Goal.CreateGoal)
	goals.GET("/:id", h.Goal.GetGoal)
	goals.PUT("/:id", h.Goal.ReplaceGoal)
	goals.PATCH("/:id", h.Goal.PatchGoal)
	goals.DELETE("/:id", h.Goal.DeleteGoal)
	goals.POST("/:id/contributions", h.Goal.AddContribution)
	goals.DELETE("/:id/contributions/:contributionId", h.Goal.DeleteContribution)

	protected.GET("/insights", h.Insight.ListInsights)
	protected.POST("/insights/:id/acknowledge", h.Insight.AcknowledgeInsight)

	protected.GET("/summary", h.Report.GetSummary)
	protected.GET("/reports/category-spending", h.Report.GetCategorySpending)
	protected.GET("/reports/category-spending/chart", h.Report.GetCategorySpendingChart)
	protected.GET("/reports/budget-progress", h.Report.GetBudgetProgress)

	protected.GET("/export", h.Export.Export)
	protected.DELETE("/delete-account", h.Export.DeleteAccount)

	if h.Dev != nil && deps.Config.IsDevelopment() {
		protected.POST("/dev/accounts/:id/sample-data", h.Dev.GenerateSampleData)
	}
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
				slog.String("trace_id", middleware.GetTraceID(c)),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				logger.LogAttrs(c.Request().Context(), slog.LevelWarn, "request failed", attrs...)
				return nil
			}
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request", attrs...)
			return nil
		},
	})
}
