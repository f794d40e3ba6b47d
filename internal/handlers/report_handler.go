package handlers

import (
	"bytes"
	"net/http"

	"budgetbuddy/internal/errors"
	"budgetbuddy/internal/models"
	"budgetbuddy/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandler serves the read-only aggregates
type ReportHandler struct {
	reportService services.ReportServiceInterface
	chartRenderer services.ChartRendererInterface
}

func NewReportHandler(reportService services.ReportServiceInterface, chartRenderer services.ChartRendererInterface) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		chartRenderer: chartRenderer,
	}
}

// GetSummary returns balance and cash flow totals
// @Summary Financial summary
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Summary
// @Router /summary [get]
func (h *ReportHandler) GetSummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	summary, err := h.reportService.GetSummary(userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

// GetCategorySpending returns expense totals per category, largest first
// @Summary Spending by category
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param start query string false "Start date, inclusive (YYYY-MM-DD)"
// @Param end query string false "End date, inclusive (YYYY-MM-DD)"
// @Success 200 {array} models.CategorySpending
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_007 - Invalid date"
// @Router /reports/category-spending [get]
func (h *ReportHandler) GetCategorySpending(c echo.Context) error {
	rows, handled, err := h.categorySpending(c)
	if handled {
		return err
	}

	return c.JSON(http.StatusOK, rows)
}

// GetCategorySpendingChart renders the category spending report as a PNG pie chart
// @Summary Spending by category chart
// @Tags Reports
// @Security BearerAuth
// @Produce png
// @Param start query string false "Start date, inclusive (YYYY-MM-DD)"
// @Param end query string false "End date, inclusive (YYYY-MM-DD)"
// @Success 200 {file} binary
// @Router /reports/category-spending/chart [get]
func (h *ReportHandler) GetCategorySpendingChart(c echo.Context) error {
	rows, handled, err := h.categorySpending(c)
	if handled {
		return err
	}

	var buf bytes.Buffer
	if err := h.chartRenderer.RenderCategorySpending(&buf, rows); err != nil {
		return SendSystemError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

func (h *ReportHandler) categorySpending(c echo.Context) ([]models.CategorySpending, bool, error) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return nil, true, SendError(c, errors.AuthMissingToken)
	}

	q := newQueryParser(c)
	from, to := q.date("start"), q.date("end")
	if !q.valid() {
		return nil, true, q.respond()
	}

	rows, err := h.reportService.GetCategorySpending(userID, from, to)
	if err != nil {
		return nil, true, SendServiceError(c, err)
	}
	if rows == nil {
		rows = []models.CategorySpending{}
	}
	return rows, false, nil
}

// GetBudgetProgress compares each budget overlapping the range with what was spent
// @Summary Budget progress
// @Tags Reports
// @Security BearerAuth
// @Produce json
// @Param start query string false "Start date, inclusive (YYYY-MM-DD)"
// @Param end query string false "End date, inclusive (YYYY-MM-DD)"
// @Success 200 {array} models.BudgetProgress
// @Router /reports/budget-progress [get]
func (h *ReportHandler) GetBudgetProgress(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	q := newQueryParser(c)
	from, to := q.date("start"), q.date("end")
	if !q.valid() {
		return q.respond()
	}

	progress, err := h.reportService.GetBudgetProgress(userID, from, to)
	if err != nil {
		return SendServiceError(c, err)
	}
	if progress == nil {
		progress = []models.BudgetProgress{}
	}

	return c.JSON(http.StatusOK, progress)
}
