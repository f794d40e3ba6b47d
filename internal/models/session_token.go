package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Values of the token_type claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// CustomClaims is the payload of both session JWTs. UserID duplicates the
// subject so clients can read it without knowing the registered names.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	TokenType string `json:"token_type"`
}

// IdentityClaims is what a verified external ID token contributes.
type IdentityClaims struct {
	UID           string
	Email         string
	EmailVerified bool
}

// RefreshToken is the server-side record of an issued refresh JWT. Only the
// sha256 of the token is kept; rotation revokes the row it was redeemed from.
type RefreshToken struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	TokenHash string     `gorm:"type:varchar(255);not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null;index" json:"expires_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at,omitempty"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
}

func (RefreshToken) TableName() string { return "refresh_tokens" }

func (rt *RefreshToken) BeforeCreate(*gorm.DB) error {
	assignID(&rt.ID)
	return nil
}

func (rt *RefreshToken) IsRevoked() bool { return rt.RevokedAt != nil }

// IsValid reports whether the token can still be redeemed.
func (rt *RefreshToken) IsValid() bool {
	return rt.RevokedAt == nil && time.Now().UTC().Before(rt.ExpiresAt)
}

// BlacklistedToken marks an access token's jti as logged out until the token
// would have expired on its own.
type BlacklistedToken struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	JTI           string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"jti"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ExpiresAt     time.Time `gorm:"not null;index" json:"expires_at"`
	BlacklistedAt time.Time `gorm:"not null" json:"blacklisted_at"`
}

func (BlacklistedToken) TableName() string { return "blacklisted_tokens" }

func (bt *BlacklistedToken) BeforeCreate(*gorm.DB) error {
	assignID(&bt.ID)
	return nil
}

func assignID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
