package handlers

import (
	"net/http"

	"budgetbuddy/internal/dto"
	"budgetbuddy/internal/errors"
	"budgetbuddy/internal/models"
	"budgetbuddy/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler is the request layer of the balance engine. Every
// mutation goes through TransactionService so balances stay consistent.
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// ListTransactions lists the user's transactions with filters
// @Summary List transactions
// @Description Filter by direction, date range, amount range, account, category and pending flag
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param direction query string false "income, expense or transfer"
// @Param date query string false "Exact date (YYYY-MM-DD)"
// @Param date_gte query string false "Start date, inclusive (YYYY-MM-DD)"
// @Param date_lte query string false "End date, inclusive (YYYY-MM-DD)"
// @Param amount query string false "Exact amount"
// @Param amount_gte query string false "Minimum amount"
// @Param amount_lte query string false "Maximum amount"
// @Param account query string false "Account ID"
// @Param category query string false "Category ID"
// @Param is_pending query bool false "Pending flag"
// @Param search query string false "Matches description, merchant and external_id"
// @Param ordering query string false "txn_time, amount or created_at; prefix with - to sort descending"
// @Param limit query int false "Page size (default 50, max 200)"
// @Param offset query int false "Offset"
// @Success 200 {object} dto.PaginatedResponse[models.Transaction]
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_007 - Invalid query parameter"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	filters, q := parseTransactionFilters(c)
	if !q.valid() {
		return q.respond()
	}

	transactions, total, err := h.transactionService.ListTransactions(userID, filters)
	if err != nil {
		return SendServiceError(c, err)
	}

	return sendList(c, transactions, total, filters.Offset, filters.Limit)
}

func parseTransactionFilters(c echo.Context) (models.TransactionFilters, *queryParser) {
	q := newQueryParser(c)
	filters := models.TransactionFilters{
		Direction:  q.oneOf("direction", models.Directions()),
		Date:       q.date("date"),
		DateFrom:   q.date("date_gte"),
		DateTo:     q.date("date_lte"),
		Amount:     q.decimal("amount"),
		MinAmount:  q.decimal("amount_gte"),
		MaxAmount:  q.decimal("amount_lte"),
		AccountID:  q.uuid("account"),
		CategoryID: q.uuid("category"),
		IsPending:  q.bool("is_pending"),
		Search:     q.string("search"),
		Ordering:   q.string("ordering"),
		Page:       q.page(),
	}

	if filters.DateFrom != nil && filters.DateTo != nil && filters.DateTo.Before(*filters.DateFrom) {
		q.fail("date_lte", "Must not be before date_gte.")
	}
	return filters, q
}

// CreateTransaction records a transaction and applies its effect to the account balance
// @Summary Create a transaction
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.TransactionRequest true "Transaction"
// @Success 201 {object} models.Transaction
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 422 {object} errors.ErrorResponse "TRANSACTION_002..007 - Rejected by validation"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.TransactionRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	txn, err := h.transactionService.CreateTransaction(requestContext(c), userID, &req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, txn)
}

// GetTransaction retrieves a single transaction
// @Summary Get transaction by ID
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} models.Transaction
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	txn, err := h.transactionService.GetTransaction(userID, transactionID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, txn)
}

// ReplaceTransaction is a full update. The account and timestamp are kept
// when the body omits them.
// @Router /transactions/{id} [put]
func (h *TransactionHandler) ReplaceTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	var req dto.TransactionRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	txn, err := h.transactionService.ReplaceTransaction(requestContext(c), userID, transactionID, &req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, txn)
}

// @Router /transactions/{id} [patch]
func (h *TransactionHandler) PatchTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	var req dto.TransactionPatchRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	txn, err := h.transactionService.PatchTransaction(requestContext(c), userID, transactionID, &req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, txn)
}

// DeleteTransaction removes the transaction and reverses its balance effect
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	if err := h.transactionService.DeleteTransaction(requestContext(c), userID, transactionID, getClientIP(c), c.Request().UserAgent()); err != nil {
		return SendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetTransactionHistory returns the audit entries of one transaction, oldest first
// @Summary Transaction audit trail
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {array} models.AuditLog
// @Router /transactions/{id}/history [get]
func (h *TransactionHandler) GetTransactionHistory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	history, err := h.transactionService.GetTransactionHistory(userID, transactionID)
	if err != nil {
		return SendServiceError(c, err)
	}
	if history == nil {
		history = []*models.AuditLog{}
	}

	return c.JSON(http.StatusOK, history)
}
