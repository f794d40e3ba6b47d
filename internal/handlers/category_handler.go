package handlers

import (
	"net/http"

	"budgetbuddy/internal/dto"
	"budgetbuddy/internal/errors"
	"budgetbuddy/internal/models"
	"budgetbuddy/internal/services"

	"github.com/labstack/echo/v4"
)

type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories seeds the default categories for users that have none
// @Summary List categories
// @Tags Categories
// @Security BearerAuth
// @Param type query string false "expense or income"
// @Param search query string false "Matches name"
// @Param ordering query string false "name or updated_at"
// @Success 200 {object} dto.PaginatedResponse[models.Category]
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	q := newQueryParser(c)
	filters := models.CategoryFilters{
		Type:     q.oneOf("type", []string{models.CategoryTypeExpense, models.CategoryTypeIncome}),
		Search:   q.string("search"),
		Ordering: q.string("ordering"),
		Page:     q.page(),
	}
	if !q.valid() {
		return q.respond()
	}

	categories, total, err := h.categoryService.ListCategories(requestContext(c), userID, filters)
	if err != nil {
		return SendServiceError(c, err)
	}

	return sendList(c, categories, total, filters.Offset, filters.Limit)
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CategoryRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	category, err := h.categoryService.CreateCategory(userID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) GetCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categoryID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category ID"))
	}

	category, err := h.categoryService.GetCategory(userID, categoryID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) ReplaceCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categoryID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category ID"))
	}

	var req dto.CategoryRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	category, err := h.categoryService.ReplaceCategory(userID, categoryID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) PatchCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categoryID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category ID"))
	}

	var req dto.CategoryPatchRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	category, err := h.categoryService.PatchCategory(userID, categoryID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, category)
}

// DeleteCategory detaches the category from its transactions before removing it
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categoryID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid category ID"))
	}

	if err := h.categoryService.DeleteCategory(requestContext(c), userID, categoryID); err != nil {
		return SendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
