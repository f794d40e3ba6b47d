package handlers

import (
	"net/http"

	"budgetbuddy/internal/dto"
	"budgetbuddy/internal/errors"
	"budgetbuddy/internal/models"
	"budgetbuddy/internal/services"

	"github.com/labstack/echo/v4"
)

// BudgetHandler serves budgets. Dates are rendered as YYYY-MM-DD through
// dto.BudgetResponse.
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
}

func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// ListBudgets lists budgets with optional period and category filters
// @Summary List budgets
// @Tags Budgets
// @Security BearerAuth
// @Param period query string false "monthly, weekly, yearly or custom"
// @Param category query string false "Category ID"
// @Param ordering query string false "start_date, end_date or updated_at"
// @Success 200 {object} dto.PaginatedResponse[dto.BudgetResponse]
// @Router /budgets [get]
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	q := newQueryParser(c)
	filters := models.BudgetFilters{
		Period: q.oneOf("period", []string{
			models.BudgetPeriodMonthly,
			models.BudgetPeriodWeekly,
			models.BudgetPeriodYearly,
			models.BudgetPeriodCustom,
		}),
		CategoryID: q.uuid("category"),
		Ordering:   q.string("ordering"),
		Page:       q.page(),
	}
	if !q.valid() {
		return q.respond()
	}

	budgets, total, err := h.budgetService.ListBudgets(userID, filters)
	if err != nil {
		return SendServiceError(c, err)
	}

	return sendList(c, dto.NewBudgetResponses(budgets), total, filters.Offset, filters.Limit)
}

func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.BudgetRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	budget, err := h.budgetService.CreateBudget(userID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewBudgetResponse(budget))
}

func (h *BudgetHandler) GetBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgetID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid budget ID"))
	}

	budget, err := h.budgetService.GetBudget(userID, budgetID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewBudgetResponse(budget))
}

func (h *BudgetHandler) ReplaceBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgetID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid budget ID"))
	}

	var req dto.BudgetRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	budget, err := h.budgetService.ReplaceBudget(userID, budgetID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewBudgetResponse(budget))
}

func (h *BudgetHandler) PatchBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgetID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid budget ID"))
	}

	var req dto.BudgetPatchRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	budget, err := h.budgetService.PatchBudget(userID, budgetID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewBudgetResponse(budget))
}

func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgetID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid budget ID"))
	}

	if err := h.budgetService.DeleteBudget(userID, budgetID); err != nil {
		return SendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
