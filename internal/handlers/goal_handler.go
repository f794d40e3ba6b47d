package handlers

import (
	"net/http"

	"budgetbuddy/internal/dto"
	"budgetbuddy/internal/errors"
	"budgetbuddy/internal/models"
	"budgetbuddy/internal/services"

	"github.com/labstack/echo/v4"
)

// GoalHandler serves savings goals and their contributions. Contributions
// are bookkeeping only and never touch account balances.
type GoalHandler struct {
	goalService services.GoalServiceInterface
}

func NewGoalHandler(goalService services.GoalServiceInterface) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

func (h *GoalHandler) ListGoals(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	q := newQueryParser(c)
	filters := models.GoalFilters{
		Status: q.oneOf("status", []string{
			models.GoalStatusActive,
			models.GoalStatusPaused,
			models.GoalStatusCompleted,
			models.GoalStatusCanceled,
		}),
		Page: q.page(),
	}
	if !q.valid() {
		return q.respond()
	}

	goals, total, err := h.goalService.ListGoals(userID, filters)
	if err != nil {
		return SendServiceError(c, err)
	}

	return sendList(c, goals, total, filters.Offset, filters.Limit)
}

func (h *GoalHandler) CreateGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.GoalRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	goal, err := h.goalService.CreateGoal(userID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, goal)
}

// GetGoal returns the goal with its progress and contributions
// @Summary Get goal by ID
// @Tags Goals
// @Security BearerAuth
// @Param id path string true "Goal ID (UUID)"
// @Success 200 {object} dto.GoalDetailResponse
// @Failure 404 {object} errors.ErrorResponse "GOAL_001 - Goal not found"
// @Router /goals/{id} [get]
func (h *GoalHandler) GetGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goalID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid goal ID"))
	}

	goal, err := h.goalService.GetGoal(userID, goalID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, goal)
}

func (h *GoalHandler) ReplaceGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goalID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid goal ID"))
	}

	var req dto.GoalRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	goal, err := h.goalService.ReplaceGoal(userID, goalID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, goal)
}

func (h *GoalHandler) PatchGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goalID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid goal ID"))
	}

	var req dto.GoalPatchRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	goal, err := h.goalService.PatchGoal(userID, goalID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, goal)
}

func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goalID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid goal ID"))
	}

	if err := h.goalService.DeleteGoal(userID, goalID); err != nil {
		return SendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AddContribution records money set aside for an open goal
// @Summary Add a contribution
// @Tags Goals
// @Security BearerAuth
// @Param id path string true "Goal ID (UUID)"
// @Param request body dto.ContributionRequest true "Contribution"
// @Success 201 {object} models.GoalContribution
// @Failure 409 {object} errors.ErrorResponse "GOAL_002 - Goal is completed or canceled"
// @Router /goals/{id}/contributions [post]
func (h *GoalHandler) AddContribution(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goalID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid goal ID"))
	}

	var req dto.ContributionRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	contribution, err := h.goalService.AddContribution(userID, goalID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, contribution)
}

func (h *GoalHandler) DeleteContribution(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goalID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid goal ID"))
	}

	contributionID, err := parseIDParam(c, "contributionId")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid contribution ID"))
	}

	if err := h.goalService.DeleteContribution(userID, goalID, contributionID); err != nil {
		return SendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
