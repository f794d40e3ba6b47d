package repositories

import (
	"errors"
	"fmt"

	"budgetbuddy/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository owns the login identities. Emails are compared on their
// normalized form so "A@B.com" and "a@b.com" are one user.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepositoryInterface {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}

	err := r.db.Create(user).Error
	switch {
	case err == nil:
		return nil
	case isDuplicateKeyError(err):
		return ErrUserAlreadyExists
	default:
		return fmt.Errorf("failed to create user: %w", err)
	}
}

func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	return r.first("id = ?", id)
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	return r.first("LOWER(email) = ?", models.NormalizeEmail(email))
}

// GetByUsername finds federated users, whose username is the provider UID.
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	return r.first("username = ?", username)
}

func (r *UserRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("LOWER(email) = ?", models.NormalizeEmail(email)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) UpdateFailedLoginAttempts(user *models.User) error {
	return r.patch(user, map[string]interface{}{
		"failed_login_attempts": user.FailedLoginAttempts,
		"locked_at":             user.LockedAt,
	})
}

// UpdateLastLogin records a successful sign-in and resets the failure counter.
func (r *UserRepository) UpdateLastLogin(user *models.User) error {
	return r.patch(user, map[string]interface{}{
		"failed_login_attempts": 0,
		"last_login_at":         user.LastLoginAt,
	})
}

func (r *UserRepository) first(query string, arg interface{}) (*models.User, error) {
	var user models.User
	err := r.db.Where(query, arg).Order("created_at ASC").First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) patch(user *models.User, fields map[string]interface{}) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}
	if err := r.db.Model(user).Updates(fields).Error; err != nil {
		return fmt.Errorf("failed to update user %s: %w", user.ID, err)
	}
	return nil
}
