package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"budgetbuddy/internal/errors"
	"budgetbuddy/internal/models"
	"budgetbuddy/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultSampleCount = 100
	maxSampleCount     = 1000
	defaultSampleDays  = 30
	maxSampleDays      = 365
)

// DevHandler handles development-only endpoints. Routes are registered only
// when the environment is development.
type DevHandler struct {
	accountService     services.AccountServiceInterface
	categoryService    services.CategoryServiceInterface
	transactionService services.TransactionServiceInterface
	logger             *slog.Logger
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	accountService services.AccountServiceInterface,
	categoryService services.CategoryServiceInterface,
	transactionService services.TransactionServiceInterface,
	logger *slog.Logger,
) *DevHandler {
	return &DevHandler{
		accountService:     accountService,
		categoryService:    categoryService,
		transactionService: transactionService,
		logger:             logger,
	}
}

// GenerateSampleData fills an account with a realistic transaction history.
// Each transaction goes through the transaction service, so the account
// balance is maintained the same way as for user-entered data.
//
// Method: POST /api/v1/dev/accounts/:id/sample-data
//
// Query parameters:
//   - count: Number of transactions to generate (default: 100, max: 1000)
//   - days: Number of days of history to generate (default: 30, max: 365)
func (h *DevHandler) GenerateSampleData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	q := newQueryParser(c)
	count := clamp(q.int("count", defaultSampleCount), 1, maxSampleCount)
	days := clamp(q.int("days", defaultSampleDays), 1, maxSampleDays)
	if !q.valid() {
		return q.respond()
	}

	account, err := h.accountService.GetAccount(userID, accountID)
	if err != nil {
		return SendServiceError(c, err)
	}

	ctx := requestContext(c)
	categories, _, err := h.categoryService.ListCategories(ctx, userID, models.CategoryFilters{
		Page: models.Page{Limit: models.MaxPageLimit},
	})
	if err != nil {
		return SendServiceError(c, err)
	}

	categoryIDs := make(map[string]uuid.UUID, len(categories))
	for _, category := range categories {
		categoryIDs[category.Name] = category.ID
	}

	endDate := time.Now().UTC()
	startDate := endDate.AddDate(0, 0, -days)
	requests := services.NewSampleDataGenerator(endDate.UnixNano()).
		Generate(account, categoryIDs, startDate, endDate, count)

	created := 0
	for i := range requests {
		if _, err := h.transactionService.CreateTransaction(ctx, userID, &requests[i], getClientIP(c), c.Request().UserAgent()); err != nil {
			h.logger.WarnContext(ctx, "sample transaction rejected",
				"error", err,
				"account_id", accountID)
			continue
		}
		created++
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":              "sample data generated successfully",
		"transactions_created": created,
		"account_id":           accountID,
		"date_range": map[string]string{
			"start": startDate.Format(models.DateLayout),
			"end":   endDate.Format(models.DateLayout),
		},
	})
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
