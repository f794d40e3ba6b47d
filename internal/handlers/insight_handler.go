package handlers

import (
	"net/http"

	"budgetbuddy/internal/errors"
	"budgetbuddy/internal/models"
	"budgetbuddy/internal/services"

	"github.com/labstack/echo/v4"
)

type InsightHandler struct {
	insightService services.InsightServiceInterface
}

func NewInsightHandler(insightService services.InsightServiceInterface) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

// ListInsights lists insights newest first
// @Summary List insights
// @Tags Insights
// @Security BearerAuth
// @Param acknowledged query bool false "Acknowledged flag"
// @Success 200 {object} dto.PaginatedResponse[models.Insight]
// @Router /insights [get]
func (h *InsightHandler) ListInsights(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	q := newQueryParser(c)
	filters := models.InsightFilters{
		Acknowledged: q.bool("acknowledged"),
		Page:         q.page(),
	}
	if !q.valid() {
		return q.respond()
	}

	insights, total, err := h.insightService.ListInsights(userID, filters)
	if err != nil {
		return SendServiceError(c, err)
	}

	return sendList(c, insights, total, filters.Offset, filters.Limit)
}

// @Router /insights/{id}/acknowledge [post]
func (h *InsightHandler) AcknowledgeInsight(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	insightID, err := parseIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid insight ID"))
	}

	insight, err := h.insightService.AcknowledgeInsight(userID, insightID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, insight)
}
