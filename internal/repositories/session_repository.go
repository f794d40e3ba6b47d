package repositories

import (
	"errors"
	"fmt"
	"time"

	"budgetbuddy/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository keeps hashed refresh tokens for rotation.
type RefreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) RefreshTokenRepositoryInterface {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Create(token *models.RefreshToken) error {
	if token == nil {
		return errors.New("refresh token cannot be nil")
	}
	if err := r.db.Create(token).Error; err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (r *RefreshTokenRepository) GetByTokenHash(tokenHash string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	err := r.db.Where("token_hash = ?", tokenHash).First(&token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRefreshTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	return &token, nil
}

// Revoke reports ErrRefreshTokenNotFound when the row is missing or already
// revoked, so a replayed refresh token loses the race.
func (r *RefreshTokenRepository) Revoke(tokenID uuid.UUID) error {
	n, err := revokeWhere(r.db, "id = ?", tokenID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRefreshTokenNotFound
	}
	return nil
}

func (r *RefreshTokenRepository) RevokeAllForUser(userID uuid.UUID) error {
	_, err := revokeWhere(r.db, "user_id = ?", userID)
	return err
}

func (r *RefreshTokenRepository) DeleteExpired() (int64, error) {
	return purgeExpired(r.db, &models.RefreshToken{})
}

type blacklistedTokenRepository struct {
	db *gorm.DB
}

func NewBlacklistedTokenRepository(db *gorm.DB) BlacklistedTokenRepositoryInterface {
	return &blacklistedTokenRepository{db: db}
}

// Create is idempotent per jti; logging out twice is not an error.
func (r *blacklistedTokenRepository) Create(token *models.BlacklistedToken) error {
	if token.BlacklistedAt.IsZero() {
		token.BlacklistedAt = time.Now().UTC()
	}

	err := r.db.Create(token).Error
	if err == nil || isDuplicateKeyError(err) {
		return nil
	}
	return fmt.Errorf("failed to blacklist token: %w", err)
}

func (r *blacklistedTokenRepository) IsBlacklisted(jti string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.BlacklistedToken{}).Where("jti = ?", jti).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	return count > 0, nil
}

func (r *blacklistedTokenRepository) DeleteExpired() (int64, error) {
	return purgeExpired(r.db, &models.BlacklistedToken{})
}

func revokeWhere(db *gorm.DB, query string, arg interface{}) (int64, error) {
	result := db.Model(&models.RefreshToken{}).
		Where(query, arg).
		Where("revoked_at IS NULL").
		Update("revoked_at", time.Now().UTC())
	if result.Error != nil {
		return 0, fmt.Errorf("failed to revoke refresh tokens: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func purgeExpired(db *gorm.DB, model interface{}) (int64, error) {
	result := db.Where("expires_at < ?", time.Now().UTC()).Delete(model)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge expired session rows: %w", result.Error)
	}
	return result.RowsAffected, nil
}
