package handlers

import (
	"net/http"

	"budgetbuddy/internal/dto"
	"budgetbuddy/internal/errors"
	"budgetbuddy/internal/services"

	"github.com/labstack/echo/v4"
)

// AccessTokenContextKey holds the raw bearer token accepted by RequireAuth
const AccessTokenContextKey = "access_token"

type AuthHandler struct {
	authService services.AuthServiceInterface
}

func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// exchange binds and validates a Req, hands it to call together with the
// caller's IP and user agent, and writes the result with status.
func exchange[Req, Resp any](c echo.Context, status int, call func(req *Req, ip, userAgent string) (Resp, error)) error {
	var req Req
	if handled, err := bindAndValidate(c, &req); handled {
		return err
	}

	resp, err := call(&req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(status, resp)
}

// Register
// @Summary Register a new user
// @Description Creates the user with a profile, the default account and the default categories
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or AUTH_011"
// @Failure 409 {object} errors.ErrorResponse "AUTH_007"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	return exchange(c, http.StatusCreated, func(req *dto.RegisterRequest, ip, ua string) (*dto.RegisterResponse, error) {
		return h.authService.Register(requestContext(c), req, ip, ua)
	})
}

// Login
// @Summary Obtain a token pair with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_001"
// @Failure 403 {object} errors.ErrorResponse "AUTH_006"
// @Router /auth/token [post]
func (h *AuthHandler) Login(c echo.Context) error {
	return exchange(c, http.StatusOK, h.authService.Login)
}

// RefreshToken
// @Summary Rotate a refresh token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_010"
// @Router /auth/token/refresh [post]
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	return exchange(c, http.StatusOK, func(req *dto.RefreshTokenRequest, ip, ua string) (*dto.TokenResponse, error) {
		return h.authService.RefreshTokens(req.Refresh, ip, ua)
	})
}

// FirebaseLogin
// @Summary Exchange a Firebase ID token for an app token pair
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.FirebaseLoginRequest true "Firebase ID token"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_004"
// @Failure 503 {object} errors.ErrorResponse "AUTH_008"
// @Router /auth/firebase [post]
func (h *AuthHandler) FirebaseLogin(c echo.Context) error {
	return exchange(c, http.StatusOK, func(req *dto.FirebaseLoginRequest, ip, ua string) (*dto.TokenResponse, error) {
		return h.authService.ExchangeFirebaseToken(requestContext(c), req.IDToken, ip, ua)
	})
}

// Logout blacklists the presented access token and revokes the refresh tokens
// @Summary Logout
// @Tags Authentication
// @Security BearerAuth
// @Success 200 {object} dto.MessageResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token, _ := c.Get(AccessTokenContextKey).(string)
	if token == "" {
		return SendError(c, errors.AuthMissingToken)
	}

	if err := h.authService.Logout(token, getClientIP(c), c.Request().UserAgent()); err != nil {
		return SendServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Successfully logged out"})
}
