package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"budgetbuddy/internal/config"
	"budgetbuddy/internal/database"
	"budgetbuddy/internal/dto"
	"budgetbuddy/internal/models"
	"budgetbuddy/internal/repositories"
	"budgetbuddy/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const testPassword = "SecurePass123!"

type AuthServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	db            *database.DB
	verifier      *service_mocks.MockIdentityVerifierInterface
	tokenService  TokenServiceInterface
	users         repositories.UserRepositoryInterface
	refreshTokens repositories.RefreshTokenRepositoryInterface
	audits        repositories.AuditLogRepositoryInterface
	metrics       *countingMetrics
	authService   AuthServiceInterface
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.db = database.SetupTestDB(s.T())
	logger := slog.New(slog.DiscardHandler)

	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)
	s.tokenService = NewTokenService(&config.JWTConfig{
		PrivateKey:           privateKey,
		PublicKey:            publicKey,
		Issuer:               "budgetbuddy-test",
		AccessTokenDuration:  15 * time.Minute,
		RefreshTokenDuration: 24 * time.Hour,
	})

	s.verifier = service_mocks.NewMockIdentityVerifierInterface(s.ctrl)
	s.users = repositories.NewUserRepository(s.db.DB)
	s.refreshTokens = repositories.NewRefreshTokenRepository(s.db.DB)
	s.audits = repositories.NewAuditLogRepository(s.db.DB)
	s.metrics = &countingMetrics{}

	s.authService = NewAuthService(AuthDependencies{
		UnitOfWork:           repositories.NewUnitOfWork(s.db.DB),
		UserRepo:             s.users,
		RefreshTokenRepo:     s.refreshTokens,
		AuditRepo:            s.audits,
		BlacklistedTokenRepo: repositories.NewBlacklistedTokenRepository(s.db.DB),
		PasswordService:      NewPasswordService(strictPolicy()),
		TokenService:         s.tokenService,
		IdentityVerifier:     s.verifier,
		AuditLogger:          NewAuditLogger(logger),
		Metrics:              s.metrics,
		MaxFailedAttempts:    3,
		Logger:               logger,
	})
}

func (s *AuthServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) register(email string) *dto.RegisterResponse {
	resp, err := s.authService.Register(context.Background(), &dto.RegisterRequest{
		Email:    email,
		Password: testPassword,
	}, "127.0.0.1", "test")
	s.Require().NoError(err)
	return resp
}

func (s *AuthServiceTestSuite) TestRegister_SeedsDefaults() {
	income := decimal.RequireFromString("3500.00")
	resp, err := s.authService.Register(context.Background(), &dto.RegisterRequest{
		Email:         "  New.User@Example.com ",
		Password:      testPassword,
		MonthlyIncome: &income,
		Currency:      "eur",
		Preferences:   models.JSONBMap{"theme": "dark"},
	}, "127.0.0.1", "test")
	s.Require().NoError(err)

	s.NotEmpty(resp.Access)
	s.NotEmpty(resp.Refresh)
	s.Equal("Bearer", resp.TokenType)
	s.Equal("EUR", resp.Profile.Currency)
	s.Equal("3500.00", resp.Profile.MonthlyIncome.StringFixed(2))

	claims, err := s.tokenService.ValidateAccessToken(resp.Access)
	s.Require().NoError(err)
	s.Equal("new.user@example.com", claims.Email)

	userID := uuid.MustParse(claims.UserID)
	accounts, err := repositories.NewAccountRepository(s.db.DB).ListAllByUserID(userID)
	s.Require().NoError(err)
	s.Require().Len(accounts, 1)
	s.Equal(models.DefaultAccountName, accounts[0].Name)

	categories, err := repositories.NewCategoryRepository(s.db.DB).ListAllByUserID(userID)
	s.Require().NoError(err)
	s.Len(categories, len(models.DefaultCategories()))

	s.Equal(1, s.metrics.counters[MetricAuthenticationEvent])
}

func (s *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	s.register("dup@example.com")

	_, err := s.authService.Register(context.Background(), &dto.RegisterRequest{
		Email:    "DUP@example.com",
		Password: testPassword,
	}, "", "")
	s.ErrorIs(err, ErrUserAlreadyExists)
}

func (s *AuthServiceTestSuite) TestRegister_WeakPassword() {
	_, err := s.authService.Register(context.Background(), &dto.RegisterRequest{
		Email:    gofakeit.Email(),
		Password: "password",
	}, "", "")
	s.ErrorIs(err, ErrWeakPassword)
	s.ErrorIs(err, ErrPasswordNoUppercase)
}

func (s *AuthServiceTestSuite) TestLogin_Success() {
	s.register("login@example.com")

	tokens, err := s.authService.Login(&dto.LoginRequest{Username: "Login@Example.com", Password: testPassword}, "", "")
	s.Require().NoError(err)
	s.NotEmpty(tokens.Access)

	user, err := s.users.GetByEmail("login@example.com")
	s.Require().NoError(err)
	s.NotNil(user.LastLoginAt)
	s.Zero(user.FailedLoginAttempts)
}

func (s *AuthServiceTestSuite) TestLogin_UnknownUser() {
	_, err := s.authService.Login(&dto.LoginRequest{Username: "ghost@example.com", Password: testPassword}, "", "")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestLogin_LocksAfterMaxFailures() {
	s.register("locked@example.com")

	for i := 0; i < 3; i++ {
		_, err := s.authService.Login(&dto.LoginRequest{Username: "locked@example.com", Password: "WrongPass123!"}, "", "")
		s.ErrorIs(err, ErrInvalidCredentials)
	}

	_, err := s.authService.Login(&dto.LoginRequest{Username: "locked@example.com", Password: testPassword}, "", "")
	s.ErrorIs(err, ErrAccountLocked)

	user, err := s.users.GetByEmail("locked@example.com")
	s.Require().NoError(err)
	s.True(user.IsLocked())

	logs, err := s.audits.GetByResource(models.AuditResourceUser, user.ID.String())
	s.Require().NoError(err)
	actions := make([]string, 0, len(logs))
	for _, log := range logs {
		actions = append(actions, log.Action)
	}
	s.Contains(actions, models.AuditActionLocked)
}

func (s *AuthServiceTestSuite) TestRefreshTokens_Rotates() {
	resp := s.register("rotate@example.com")

	rotated, err := s.authService.RefreshTokens(resp.Refresh, "", "")
	s.Require().NoError(err)
	s.NotEqual(resp.Refresh, rotated.Refresh)

	_, err = s.authService.RefreshTokens(resp.Refresh, "", "")
	s.ErrorIs(err, ErrInvalidRefreshToken)

	_, err = s.authService.RefreshTokens(rotated.Refresh, "", "")
	s.NoError(err)
}

func (s *AuthServiceTestSuite) TestRefreshTokens_RejectsAccessToken() {
	resp := s.register("wrongtype@example.com")

	_, err := s.authService.RefreshTokens(resp.Access, "", "")
	s.ErrorIs(err, ErrInvalidRefreshToken)
}

func (s *AuthServiceTestSuite) TestLogout_RevokesEverything() {
	resp := s.register("logout@example.com")

	s.Require().NoError(s.authService.Logout(resp.Access, "", ""))

	jti, err := s.tokenService.GetJTI(resp.Access)
	s.Require().NoError(err)
	revoked, err := s.authService.IsTokenRevoked(jti)
	s.Require().NoError(err)
	s.True(revoked)

	_, err = s.authService.RefreshTokens(resp.Refresh, "", "")
	s.ErrorIs(err, ErrInvalidRefreshToken)
}

func (s *AuthServiceTestSuite) TestIsTokenRevoked_EmptyJTI() {
	revoked, err := s.authService.IsTokenRevoked("")
	s.NoError(err)
	s.False(revoked)
}

func (s *AuthServiceTestSuite) TestExchangeFirebaseToken_CreatesUserOnce() {
	s.verifier.EXPECT().
		Verify(gomock.Any(), "id-token").
		Return(&models.IdentityClaims{UID: "FirebaseUID42", Email: "fb@example.com", EmailVerified: true}, nil).
		Times(2)

	first, err := s.authService.ExchangeFirebaseToken(context.Background(), "id-token", "", "")
	s.Require().NoError(err)
	second, err := s.authService.ExchangeFirebaseToken(context.Background(), "id-token", "", "")
	s.Require().NoError(err)

	firstClaims, err := s.tokenService.ValidateAccessToken(first.Access)
	s.Require().NoError(err)
	secondClaims, err := s.tokenService.ValidateAccessToken(second.Access)
	s.Require().NoError(err)
	s.Equal(firstClaims.UserID, secondClaims.UserID)

	user, err := s.users.GetByUsername("FirebaseUID42")
	s.Require().NoError(err)
	s.False(user.HasUsablePassword())

	profile, err := repositories.NewProfileRepository(s.db.DB).GetByFirebaseUID("FirebaseUID42")
	s.Require().NoError(err)
	s.Equal(user.ID, profile.UserID)
}

func (s *AuthServiceTestSuite) TestResolveFirebaseUser_SyntheticEmail() {
	s.verifier.EXPECT().
		Verify(gomock.Any(), "anon").
		Return(&models.IdentityClaims{UID: "AnonUser"}, nil)

	user, err := s.authService.ResolveFirebaseUser(context.Background(), "anon")
	s.Require().NoError(err)
	s.Equal("anonuser@"+models.FirebaseEmailDomain, user.Email)
}

func (s *AuthServiceTestSuite) TestResolveFirebaseUser_VerifierError() {
	s.verifier.EXPECT().
		Verify(gomock.Any(), "bad").
		Return(nil, ErrInvalidIdentityToken)

	_, err := s.authService.ResolveFirebaseUser(context.Background(), "bad")
	s.ErrorIs(err, ErrInvalidIdentityToken)
}

func (s *AuthServiceTestSuite) TestFirebaseDisabled() {
	service := NewAuthService(AuthDependencies{Logger: slog.New(slog.DiscardHandler)})

	_, err := service.ResolveFirebaseUser(context.Background(), "anything")
	s.ErrorIs(err, ErrFirebaseDisabled)
}

func (s *AuthServiceTestSuite) TestFirebaseUserCannotUsePasswordLogin() {
	s.verifier.EXPECT().
		Verify(gomock.Any(), "fb").
		Return(&models.IdentityClaims{UID: "uid-1", Email: "social@example.com"}, nil)

	_, err := s.authService.ResolveFirebaseUser(context.Background(), "fb")
	s.Require().NoError(err)

	_, err = s.authService.Login(&dto.LoginRequest{Username: "social@example.com", Password: testPassword}, "", "")
	s.ErrorIs(err, ErrInvalidCredentials)
}
