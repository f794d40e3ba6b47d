package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"budgetbuddy/internal/dto"
	"budgetbuddy/internal/errors"
	"budgetbuddy/internal/services"
	"budgetbuddy/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockAuthServiceInterface
	handler     *AuthHandler
	echo        *echo.Echo
}

func (s *AuthHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockAuthServiceInterface(s.ctrl)
	s.handler = NewAuthHandler(s.mockService)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

func (s *AuthHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerSuite))
}

func (s *AuthHandlerSuite) tokens() *dto.TokenResponse {
	return &dto.TokenResponse{
		Access:    gofakeit.UUID(),
		Refresh:   gofakeit.UUID(),
		TokenType: "Bearer",
		ExpiresAt: time.Now().Add(15 * time.Minute),
	}
}

func (s *AuthHandlerSuite) TestRegister() {
	email := gofakeit.Email()
	s.mockService.EXPECT().
		Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *dto.RegisterRequest, _, _ string) (*dto.RegisterResponse, error) {
			s.Equal(email, req.Email)
			return &dto.RegisterResponse{TokenResponse: *s.tokens()}, nil
		})

	c, rec := newTestContext(s.echo, http.MethodPost, "/auth/register", map[string]string{
		"email":    email,
		"password": "Sup3r-secret!",
	}, nil)

	s.Require().NoError(s.handler.Register(c))
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.RegisterResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.NotEmpty(resp.Access)
}

func (s *AuthHandlerSuite) TestRegister_InvalidEmail() {
	c, rec := newTestContext(s.echo, http.MethodPost, "/auth/register", map[string]string{
		"email":    "not-an-email",
		"password": "Sup3r-secret!",
	}, nil)

	s.Require().NoError(s.handler.Register(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(decodeError(&s.Suite, rec).Details, "email: Enter a valid email address.")
}

func (s *AuthHandlerSuite) TestRegister_ServiceErrors() {
	tests := []struct {
		err    error
		status int
		code   errors.ErrorCode
	}{
		{services.ErrUserAlreadyExists, http.StatusConflict, errors.AuthEmailAlreadyRegistered},
		{fmt.Errorf("%w: needs a digit", services.ErrWeakPassword), http.StatusBadRequest, errors.AuthWeakPassword},
		{fmt.Errorf("database gone"), http.StatusInternalServerError, errors.SystemInternalError},
	}

	for _, tt := range tests {
		s.Run(tt.err.Error(), func() {
			s.mockService.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			c, rec := newTestContext(s.echo, http.MethodPost, "/auth/register", map[string]string{
				"email":    gofakeit.Email(),
				"password": "whatever",
			}, nil)

			s.Require().NoError(s.handler.Register(c))
			s.Equal(tt.status, rec.Code)
			s.Equal(string(tt.code), decodeError(&s.Suite, rec).Code)
		})
	}
}

func (s *AuthHandlerSuite) TestLogin() {
	tokens := s.tokens()
	s.mockService.EXPECT().
		Login(&dto.LoginRequest{Username: "user@example.com", Password: "secret"}, gomock.Any(), gomock.Any()).
		Return(tokens, nil)

	c, rec := newTestContext(s.echo, http.MethodPost, "/auth/token", map[string]string{
		"username": "user@example.com",
		"password": "secret",
	}, nil)

	s.Require().NoError(s.handler.Login(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.TokenResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(tokens.Access, resp.Access)
}

func (s *AuthHandlerSuite) TestLogin_Failures() {
	tests := []struct {
		err    error
		status int
		code   errors.ErrorCode
	}{
		{services.ErrInvalidCredentials, http.StatusUnauthorized, errors.AuthInvalidCredentials},
		{services.ErrAccountLocked, http.StatusForbidden, errors.AuthAccountLocked},
	}

	for _, tt := range tests {
		s.Run(tt.err.Error(), func() {
			s.mockService.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			c, rec := newTestContext(s.echo, http.MethodPost, "/auth/token", map[string]string{
				"username": "user@example.com",
				"password": "wrong",
			}, nil)

			s.Require().NoError(s.handler.Login(c))
			s.Equal(tt.status, rec.Code)
			s.Equal(string(tt.code), decodeError(&s.Suite, rec).Code)
		})
	}
}

func (s *AuthHandlerSuite) TestRefreshToken() {
	s.mockService.EXPECT().RefreshTokens("old-refresh", gomock.Any(), gomock.Any()).Return(s.tokens(), nil)

	c, rec := newTestContext(s.echo, http.MethodPost, "/auth/token/refresh", map[string]string{"refresh": "old-refresh"}, nil)

	s.Require().NoError(s.handler.RefreshToken(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AuthHandlerSuite) TestRefreshToken_Reused() {
	s.mockService.EXPECT().RefreshTokens("used", gomock.Any(), gomock.Any()).Return(nil, services.ErrInvalidRefreshToken)

	c, rec := newTestContext(s.echo, http.MethodPost, "/auth/token/refresh", map[string]string{"refresh": "used"}, nil)

	s.Require().NoError(s.handler.RefreshToken(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthInvalidRefreshToken), decodeError(&s.Suite, rec).Code)
}

func (s *AuthHandlerSuite) TestFirebaseLogin_ProviderDown() {
	s.mockService.EXPECT().
		ExchangeFirebaseToken(gomock.Any(), "id-token", gomock.Any(), gomock.Any()).
		Return(nil, services.ErrIdentityProviderUnavailable)

	c, rec := newTestContext(s.echo, http.MethodPost, "/auth/firebase", map[string]string{"id_token": "id-token"}, nil)

	s.Require().NoError(s.handler.FirebaseLogin(c))
	s.Equal(http.StatusServiceUnavailable, rec.Code)
}

func (s *AuthHandlerSuite) TestLogout() {
	s.mockService.EXPECT().Logout("raw-access", gomock.Any(), gomock.Any()).Return(nil)

	c, rec := newTestContext(s.echo, http.MethodPost, "/auth/logout", nil, nil)
	c.Set(AccessTokenContextKey, "raw-access")

	s.Require().NoError(s.handler.Logout(c))
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"message":"Successfully logged out"}`, rec.Body.String())
}

func (s *AuthHandlerSuite) TestLogout_WithoutToken() {
	c, rec := newTestContext(s.echo, http.MethodPost, "/auth/logout", nil, nil)

	s.Require().NoError(s.handler.Logout(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}
