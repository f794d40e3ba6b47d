package handlers

import (
	"net/http"

	"budgetbuddy/internal/errors"
	"budgetbuddy/internal/services"

	"github.com/labstack/echo/v4"
)

const exportFilename = "budgetbuddy_export.json"

// ExportHandler serves the user data export and the account deletion endpoint
type ExportHandler struct {
	exportService services.ExportServiceInterface
}

func NewExportHandler(exportService services.ExportServiceInterface) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Export returns every record the user owns as a JSON attachment
// @Summary Export user data
// @Tags Account
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ExportResponse
// @Router /export [get]
func (h *ExportHandler) Export(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	export, err := h.exportService.ExportUserData(requestContext(c), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+exportFilename+`"`)
	return c.JSON(http.StatusOK, export)
}

// DeleteAccount removes all of the user's data. The user record itself is kept.
// @Summary Delete user data
// @Tags Account
// @Security BearerAuth
// @Success 204
// @Router /delete-account [delete]
func (h *ExportHandler) DeleteAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	if err := h.exportService.DeleteUserData(requestContext(c), userID, getClientIP(c), c.Request().UserAgent()); err != nil {
		return SendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
