package handlers

import (
	"net/http"

	"budgetbuddy/internal/dto"
	"budgetbuddy/internal/errors"
	"budgetbuddy/internal/models"
	"budgetbuddy/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type AccountHandler struct {
	accountService services.AccountServiceInterface
}

func NewAccountHandler(accountService services.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// accountRef is the caller plus the account named by the :id path parameter.
type accountRef struct {
	user    uuid.UUID
	account uuid.UUID
}

// resolveAccount reads the caller and the :id parameter. When handled is true
// the error response has already been written.
func resolveAccount(c echo.Context) (ref accountRef, handled bool, err error) {
	if ref.user, err = getUserIDFromContext(c); err != nil {
		return ref, true, SendError(c, errors.AuthMissingToken)
	}
	if ref.account, err = parseIDParam(c, "id"); err != nil {
		return ref, true, SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}
	return ref, false, nil
}

// ListAccounts lists the user's accounts, seeding the default one when none exist
// @Summary List accounts
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param type query string false "Account type"
// @Param is_active query bool false "Active flag"
// @Param currency query string false "ISO currency code"
// @Param search query string false "Matches name and institution"
// @Param ordering query string false "name, updated_at or balance; prefix with - to sort descending"
// @Param limit query int false "Page size (default 50, max 200)"
// @Param offset query int false "Offset"
// @Success 200 {object} dto.PaginatedResponse[models.Account]
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_007 - Invalid query parameter"
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	q := newQueryParser(c)
	filters := models.AccountFilters{
		Type:     q.oneOf("type", models.AccountTypes()),
		IsActive: q.bool("is_active"),
		Currency: q.string("currency"),
		Search:   q.string("search"),
		Ordering: q.string("ordering"),
		Page:     q.page(),
	}
	if !q.valid() {
		return q.respond()
	}

	accounts, total, err := h.accountService.ListAccounts(requestContext(c), userID, filters)
	if err != nil {
		return SendServiceError(c, err)
	}

	return sendList(c, accounts, total, filters.Page.Offset, filters.Page.Limit)
}

// CreateAccount creates an account with a zero balance
// @Summary Create an account
// @Tags Accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AccountRequest true "Account details"
// @Success 201 {object} models.Account
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 409 {object} errors.ErrorResponse "ACCOUNT_002 - Duplicate name"
// @Router /accounts [post]
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.AccountRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	account, err := h.accountService.CreateAccount(userID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, account)
}

// GetAccount retrieves a specific account by ID
// @Summary Get account by ID
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Account ID (UUID)"
// @Success 200 {object} models.Account
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid account ID format"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{id} [get]
func (h *AccountHandler) GetAccount(c echo.Context) error {
	ref, handled, err := resolveAccount(c)
	if handled {
		return err
	}

	account, err := h.accountService.GetAccount(ref.user, ref.account)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, account)
}

// ReplaceAccount is the PUT form of an update
// @Summary Replace an account
// @Tags Accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Account ID (UUID)"
// @Param request body dto.AccountRequest true "Account details"
// @Success 200 {object} models.Account
// @Failure 422 {object} errors.ErrorResponse "ACCOUNT_004 - Currency cannot change once transactions exist"
// @Router /accounts/{id} [put]
func (h *AccountHandler) ReplaceAccount(c echo.Context) error {
	ref, handled, err := resolveAccount(c)
	if handled {
		return err
	}

	var req dto.AccountRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	account, err := h.accountService.ReplaceAccount(requestContext(c), ref.user, ref.account, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, account)
}

// PatchAccount updates only the fields present in the body
// @Router /accounts/{id} [patch]
func (h *AccountHandler) PatchAccount(c echo.Context) error {
	ref, handled, err := resolveAccount(c)
	if handled {
		return err
	}

	var req dto.AccountPatchRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	account, err := h.accountService.PatchAccount(requestContext(c), ref.user, ref.account, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, account)
}

// DeleteAccount removes the account together with its transactions
// @Summary Delete an account
// @Tags Accounts
// @Security BearerAuth
// @Param id path string true "Account ID (UUID)"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	ref, handled, err := resolveAccount(c)
	if handled {
		return err
	}

	if err := h.accountService.DeleteAccount(requestContext(c), ref.user, ref.account); err != nil {
		return SendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Reconcile recomputes the balance from the transaction history and
// compares it with the stored value
// @Summary Verify an account balance
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Account ID (UUID)"
// @Success 200 {object} models.BalanceCheck
// @Router /accounts/{id}/reconciliation [get]
func (h *AccountHandler) Reconcile(c echo.Context) error {
	ref, handled, err := resolveAccount(c)
	if handled {
		return err
	}

	check, err := h.accountService.ReconcileAccount(requestContext(c), ref.user, ref.account)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, check)
}
