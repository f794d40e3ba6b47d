package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"budgetbuddy/internal/dto"
	"budgetbuddy/internal/models"
	"budgetbuddy/internal/repositories"

	"github.com/google/uuid"
)

// expiredTokenBlacklistTTL bounds how long the JTI of an already expired
// access token stays blacklisted after logout.
const expiredTokenBlacklistTTL = 24 * time.Hour

// RefreshTokens rotates a refresh token. The presented token is revoked
// before the new pair is issued, so replaying it fails.
func (s *AuthService) RefreshTokens(refreshToken, ipAddress, userAgent string) (*dto.TokenResponse, error) {
	from := client{ipAddress, userAgent}

	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		s.audit(from, refreshRejected(nil, "invalid_token"))
		return nil, ErrInvalidRefreshToken
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	stored, err := s.refreshTokens.GetByTokenHash(fingerprint(refreshToken))
	switch {
	case err != nil:
		s.audit(from, refreshRejected(&userID, "token_not_found"))
		return nil, ErrInvalidRefreshToken
	case !stored.IsValid() || stored.UserID != userID:
		s.audit(from, refreshRejected(&userID, "token_expired_or_revoked"))
		return nil, ErrInvalidRefreshToken
	}

	// Revoke reports not-found when a concurrent rotation won the race.
	if err := s.refreshTokens.Revoke(stored.ID); err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			s.audit(from, refreshRejected(&userID, "token_replayed"))
			return nil, ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("revoke refresh token: %w", err)
	}

	user, err := s.users.GetByID(userID)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return nil, ErrInvalidRefreshToken
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	s.audit(from, accepted(models.AuditActionTokenRefresh, user.ID))
	s.recordAuthEvent(context.Background(), models.AuditActionTokenRefresh, &user.ID, "")
	return pair, nil
}

// Logout blacklists the access token's JTI and revokes every refresh token
// of the user. An expired access token is still blacklisted; logout itself
// never fails for token reasons.
func (s *AuthService) Logout(accessToken, ipAddress, userAgent string) error {
	claims, err := s.tokens.ValidateAccessToken(accessToken)
	if err != nil {
		if jti, _ := s.tokens.GetJTI(accessToken); jti != "" {
			s.revokeJTI(jti, uuid.Nil, time.Now().Add(expiredTokenBlacklistTTL))
		}
		return nil
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return ErrInvalidToken
	}

	expiry, _ := s.tokens.GetTokenExpiry(accessToken)
	s.revokeJTI(claims.ID, userID, expiry)

	if err := s.refreshTokens.RevokeAllForUser(userID); err != nil {
		s.logger.Warn("refresh tokens not revoked", "error", err, "user_id", userID)
	}

	s.audit(client{ipAddress, userAgent}, accepted(models.AuditActionLogout, userID))
	s.recordAuthEvent(context.Background(), models.AuditActionLogout, &userID, "")
	return nil
}

func (s *AuthService) IsTokenRevoked(jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	return s.blacklist.IsBlacklisted(jti)
}

// issueTokens mints an access/refresh pair and persists the refresh token's
// fingerprint; the raw refresh token is never stored.
func (s *AuthService) issueTokens(user *models.User) (*dto.TokenResponse, error) {
	access, accessExpiry, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, refreshExpiry, err := s.tokens.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	err = s.refreshTokens.Create(&models.RefreshToken{
		UserID:    user.ID,
		TokenHash: fingerprint(refresh),
		ExpiresAt: refreshExpiry,
	})
	if err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &dto.TokenResponse{
		Access:    access,
		Refresh:   refresh,
		TokenType: "Bearer",
		ExpiresAt: accessExpiry,
	}, nil
}

func (s *AuthService) revokeJTI(jti string, userID uuid.UUID, until time.Time) {
	err := s.blacklist.Create(&models.BlacklistedToken{JTI: jti, UserID: userID, ExpiresAt: until})
	if err != nil {
		s.logger.Error("token not blacklisted", "error", err, "jti", jti, "user_id", userID)
	}
}

func refreshRejected(userID *uuid.UUID, reason string) models.AuditLog {
	return models.AuditLog{
		UserID:   userID,
		Action:   models.AuditActionTokenRefresh,
		Resource: "token",
		Changes:  models.JSONBMap{"reason": reason},
	}
}

// fingerprint is the hex SHA-256 under which refresh tokens are stored.
func fingerprint(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
