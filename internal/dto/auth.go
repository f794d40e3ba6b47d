package dto

import (
	"time"

	"budgetbuddy/internal/models"

	"github.com/shopspring/decimal"
)

// Auth Request DTOs

// RegisterRequest creates a password user. Password strength is checked by
// the password service so the configured minimum applies.
type RegisterRequest struct {
	Email         string           `json:"email" validate:"required,email"`
	Password      string           `json:"password" validate:"required"`
	MonthlyIncome *decimal.Decimal `json:"monthly_income"`
	Currency      string           `json:"currency" validate:"omitempty,currency_code"`
	Preferences   models.JSONBMap  `json:"preferences"`
}

// LoginRequest contains login credentials. Username is the email address.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest contains refresh token for renewal
type RefreshTokenRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// FirebaseLoginRequest exchanges a Firebase ID token for an app token pair
type FirebaseLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// Auth Response DTOs

// TokenResponse contains authentication tokens
type TokenResponse struct {
	Access    string    `json:"access"`
	Refresh   string    `json:"refresh"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RegisterResponse is the token pair plus the freshly created profile
type RegisterResponse struct {
	TokenResponse
	Profile *models.Profile `json:"profile"`
}
