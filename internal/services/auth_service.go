package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"budgetbuddy/internal/dto"
	"budgetbuddy/internal/models"
	"budgetbuddy/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAccountLocked       = errors.New("account is locked due to too many failed attempts")
	ErrUserAlreadyExists   = errors.New("user with this email already exists")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrWeakPassword        = errors.New("password does not meet the password policy")
	ErrFirebaseDisabled    = errors.New("firebase authentication is not configured")
)

// AuthService owns sign-up, sign-in and the session lifecycle. Password and
// Firebase users share the same token pair and the same onboarding.
type AuthService struct {
	uow           repositories.UnitOfWorkInterface
	users         repositories.UserRepositoryInterface
	refreshTokens repositories.RefreshTokenRepositoryInterface
	blacklist     repositories.BlacklistedTokenRepositoryInterface
	audits        repositories.AuditLogRepositoryInterface
	passwords     PasswordServiceInterface
	tokens        TokenServiceInterface
	identity      IdentityVerifierInterface
	events        AuditLoggerInterface
	metrics       MetricsRecorderInterface
	maxFailures   int
	logger        *slog.Logger
}

// AuthDependencies collects the collaborators of AuthService. IdentityVerifier
// may be nil when Firebase is not configured.
type AuthDependencies struct {
	UnitOfWork           repositories.UnitOfWorkInterface
	UserRepo             repositories.UserRepositoryInterface
	RefreshTokenRepo     repositories.RefreshTokenRepositoryInterface
	AuditRepo            repositories.AuditLogRepositoryInterface
	BlacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface
	PasswordService      PasswordServiceInterface
	TokenService         TokenServiceInterface
	IdentityVerifier     IdentityVerifierInterface
	AuditLogger          AuditLoggerInterface
	Metrics              MetricsRecorderInterface
	MaxFailedAttempts    int
	Logger               *slog.Logger
}

func NewAuthService(deps AuthDependencies) AuthServiceInterface {
	return &AuthService{
		uow:           deps.UnitOfWork,
		users:         deps.UserRepo,
		refreshTokens: deps.RefreshTokenRepo,
		blacklist:     deps.BlacklistedTokenRepo,
		audits:        deps.AuditRepo,
		passwords:     deps.PasswordService,
		tokens:        deps.TokenService,
		identity:      deps.IdentityVerifier,
		events:        deps.AuditLogger,
		metrics:       deps.Metrics,
		maxFailures:   deps.MaxFailedAttempts,
		logger:        deps.Logger,
	}
}

// client is the request metadata stamped on every audit row.
type client struct {
	ip        string
	userAgent string
}

// Register creates a password user with a profile, the default account and
// the default categories in one unit of work, then issues a token pair.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest, ipAddress, userAgent string) (*dto.RegisterResponse, error) {
	from := client{ipAddress, userAgent}
	email := models.NormalizeEmail(req.Email)

	taken, err := s.users.EmailExists(email)
	if err != nil {
		return nil, fmt.Errorf("check email availability: %w", err)
	}
	if taken {
		s.audit(from, rejected(models.AuditActionRegister, email, "email_already_exists"))
		return nil, ErrUserAlreadyExists
	}

	if err := s.passwords.ValidatePassword(req.Password); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWeakPassword, err)
	}
	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{Username: email, Email: email, PasswordHash: hash}
	profile := &models.Profile{
		Currency:    strings.ToUpper(req.Currency),
		Preferences: req.Preferences,
	}
	if req.MonthlyIncome != nil {
		profile.MonthlyIncome = *req.MonthlyIncome
	}

	err = s.uow.Do(ctx, func(repos *repositories.TxRepositories) error {
		if err := onboard(repos, user); err != nil {
			return err
		}
		profile.UserID = user.ID
		return repos.Profiles.Create(profile)
	})
	if err != nil {
		return nil, err
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	s.audit(from, accepted(models.AuditActionRegister, user.ID))
	s.recordAuthEvent(ctx, models.AuditActionRegister, &user.ID, "")

	return &dto.RegisterResponse{TokenResponse: *pair, Profile: profile}, nil
}

// Login authenticates by email and password. Every failed password attempt
// is counted and the user is locked once the configured maximum is reached.
func (s *AuthService) Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error) {
	from := client{ipAddress, userAgent}
	email := models.NormalizeEmail(req.Username)

	user, err := s.users.GetByEmail(email)
	switch {
	case errors.Is(err, repositories.ErrUserNotFound):
		s.audit(from, rejected(models.AuditActionFailedLogin, email, "user_not_found"))
		return nil, ErrInvalidCredentials
	case err != nil:
		return nil, fmt.Errorf("load user: %w", err)
	case user.IsLocked():
		s.audit(from, rejected(models.AuditActionFailedLogin, email, "account_locked"))
		return nil, ErrAccountLocked
	}

	if !user.HasUsablePassword() || !s.passwords.ComparePassword(req.Password, user.PasswordHash) {
		s.countFailure(user, from)
		s.audit(from, rejected(models.AuditActionFailedLogin, email, "invalid_password"))
		s.recordAuthEvent(context.Background(), models.AuditActionFailedLogin, &user.ID, "invalid_password")
		return nil, ErrInvalidCredentials
	}

	user.UpdateLastLogin()
	if err := s.users.UpdateLastLogin(user); err != nil {
		s.logger.Warn("last login not recorded", "error", err, "user_id", user.ID)
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	s.audit(from, accepted(models.AuditActionLogin, user.ID))
	s.recordAuthEvent(context.Background(), models.AuditActionLogin, &user.ID, "")
	return pair, nil
}

// countFailure bumps the failed-attempt counter and audits the lock when this
// attempt reached the maximum.
func (s *AuthService) countFailure(user *models.User, from client) {
	user.IncrementFailedAttempts(s.maxFailures)
	if err := s.users.UpdateFailedLoginAttempts(user); err != nil {
		s.logger.Error("failed attempt not recorded", "error", err, "user_id", user.ID)
	}
	if !user.IsLocked() {
		return
	}
	s.audit(from, accepted(models.AuditActionLocked, user.ID))
	s.recordAuthEvent(context.Background(), models.AuditActionLocked, &user.ID, "max_failed_attempts")
}

// ExchangeFirebaseToken trades a verified Firebase ID token for an app token pair
func (s *AuthService) ExchangeFirebaseToken(ctx context.Context, idToken, ipAddress, userAgent string) (*dto.TokenResponse, error) {
	user, err := s.ResolveFirebaseUser(ctx, idToken)
	if err != nil {
		s.recordAuthEvent(ctx, "firebase_exchange_failed", nil, err.Error())
		return nil, err
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	entry := accepted(models.AuditActionLogin, user.ID)
	entry.Changes = models.JSONBMap{"provider": "firebase"}
	s.audit(client{ipAddress, userAgent}, entry)
	s.recordAuthEvent(ctx, "firebase_exchange", &user.ID, "")
	return pair, nil
}

// ResolveFirebaseUser verifies the ID token and get-or-creates the user keyed
// by the Firebase uid. New users are onboarded like password users.
func (s *AuthService) ResolveFirebaseUser(ctx context.Context, idToken string) (*models.User, error) {
	if s.identity == nil {
		return nil, ErrFirebaseDisabled
	}

	claims, err := s.identity.Verify(ctx, idToken)
	if err != nil {
		return nil, err
	}

	email := models.NormalizeEmail(claims.Email)
	if email == "" {
		email = strings.ToLower(claims.UID) + "@" + models.FirebaseEmailDomain
	}

	var user *models.User
	err = s.uow.Do(ctx, func(repos *repositories.TxRepositories) error {
		found, err := repos.Users.GetByUsername(claims.UID)
		if errors.Is(err, repositories.ErrUserNotFound) {
			found = &models.User{Username: claims.UID, Email: email}
			err = onboard(repos, found)
		}
		if err != nil {
			return err
		}
		user = found
		return linkFirebaseProfile(repos, found.ID, claims.UID)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// onboard inserts the user with its default account and categories. It must
// run inside a unit of work.
func onboard(repos *repositories.TxRepositories, user *models.User) error {
	if err := repos.Users.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	if err := seedDefaultAccount(repos, user.ID); err != nil {
		return err
	}
	return seedDefaultCategories(repos, user.ID)
}

// linkFirebaseProfile get-or-creates the profile and stores the uid on it
func linkFirebaseProfile(repos *repositories.TxRepositories, userID uuid.UUID, uid string) error {
	profile, err := repos.Profiles.GetByUserID(userID)
	if errors.Is(err, repositories.ErrProfileNotFound) {
		return repos.Profiles.Create(&models.Profile{UserID: userID, FirebaseUID: uid})
	}
	if err != nil || profile.FirebaseUID == uid {
		return err
	}
	profile.FirebaseUID = uid
	return repos.Profiles.Update(profile)
}

// accepted is an audit row about a known user.
func accepted(action string, userID uuid.UUID) models.AuditLog {
	return models.AuditLog{
		UserID:     &userID,
		Action:     action,
		Resource:   models.AuditResourceUser,
		ResourceID: userID.String(),
	}
}

// rejected is an audit row for an attempt that never reached a user.
func rejected(action, email, reason string) models.AuditLog {
	return models.AuditLog{
		Action:   action,
		Resource: models.AuditResourceUser,
		Changes:  models.JSONBMap{"email": email, "reason": reason},
	}
}

// audit stores entry stamped with the client metadata. Storage errors are
// logged and swallowed.
func (s *AuthService) audit(from client, entry models.AuditLog) {
	entry.IPAddress = from.ip
	entry.UserAgent = from.userAgent
	if err := s.audits.Create(&entry); err != nil {
		s.logger.Error("audit log not stored",
			"error", err,
			"action", entry.Action,
			"resource", entry.Resource,
			"resource_id", entry.ResourceID)
	}
}

func (s *AuthService) recordAuthEvent(ctx context.Context, eventType string, userID *uuid.UUID, reason string) {
	s.events.LogAuthenticationEvent(ctx, eventType, userID, reason)
	s.metrics.IncrementCounter(MetricAuthenticationEvent, map[string]string{"event_type": eventType})
}
