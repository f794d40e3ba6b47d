package handlers

import (
	"net/http"

	"budgetbuddy/internal/dto"
	"budgetbuddy/internal/errors"
	"budgetbuddy/internal/services"

	"github.com/labstack/echo/v4"
)

// ProfileHandler serves the profile, its free-form preferences and the
// caller's own audit trail
type ProfileHandler struct {
	profileService services.ProfileServiceInterface
	auditService   services.AuditServiceInterface
}

func NewProfileHandler(profileService services.ProfileServiceInterface, auditService services.AuditServiceInterface) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, auditService: auditService}
}

// GetProfile returns the profile, creating it with defaults on first access
// @Summary Get profile
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Profile
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	profile, err := h.profileService.GetProfile(userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile serves both PUT and PATCH; absent fields are left unchanged
// @Summary Update profile
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ProfileUpdateRequest true "Profile fields"
// @Success 200 {object} models.Profile
// @Router /profile [put]
// @Router /profile [patch]
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.ProfileUpdateRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	profile, err := h.profileService.UpdateProfile(userID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetPreferences(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	preferences, err := h.profileService.GetPreferences(userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.PreferencesResponse{Preferences: preferences})
}

// ReplacePreferences overwrites the stored preferences with a JSON object
func (h *ProfileHandler) ReplacePreferences(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.PreferencesRequest
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	preferences, err := h.profileService.ReplacePreferences(userID, req.Preferences)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.PreferencesResponse{Preferences: preferences})
}

// AuditTrail lists audit entries recorded against the caller, newest first
// @Summary List my audit trail
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Param offset query int false "Offset"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} dto.PaginatedResponse[models.AuditLog]
// @Router /profile/audit [get]
func (h *ProfileHandler) AuditTrail(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	q := newQueryParser(c)
	page := q.page()
	if !q.valid() {
		return q.respond()
	}

	entries, total, err := h.auditService.GetUserAuditTrail(userID, page.Offset, page.Limit)
	if err != nil {
		return SendServiceError(c, err)
	}

	return sendList(c, entries, total, page.Offset, page.Limit)
}
