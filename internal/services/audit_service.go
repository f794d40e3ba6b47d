package services

import (
	"errors"
	"fmt"

	"budgetbuddy/internal/models"
	"budgetbuddy/internal/repositories"

	"github.com/google/uuid"
)

const maxAuditTrailLimit = 100

var (
	ErrInvalidUserID   = errors.New("invalid user ID")
	ErrInvalidActivity = errors.New("invalid activity")
)

// AuditService reads the audit trail and records request activity
type AuditService struct {
	auditRepo    repositories.AuditLogRepositoryInterface
	activityRepo repositories.UserActivityRepositoryInterface
}

// NewAuditService creates a new audit service
func NewAuditService(
	auditRepo repositories.AuditLogRepositoryInterface,
	activityRepo repositories.UserActivityRepositoryInterface,
) AuditServiceInterface {
	return &AuditService{
		auditRepo:    auditRepo,
		activityRepo: activityRepo,
	}
}

// RecordActivity stores one request activity row. Oversized path and user
// agent are cut to their rune limits by the model hook.
func (s *AuditService) RecordActivity(activity *models.UserActivity) error {
	if activity == nil || activity.Method == "" {
		return ErrInvalidActivity
	}

	if err := s.activityRepo.Create(activity); err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

// GetUserAuditTrail retrieves audit entries written for a user with pagination
func (s *AuditService) GetUserAuditTrail(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error) {
	if userID == uuid.Nil {
		return nil, 0, ErrInvalidUserID
	}

	if limit <= 0 || limit > maxAuditTrailLimit {
		limit = maxAuditTrailLimit
	}
	if offset < 0 {
		offset = 0
	}

	return s.auditRepo.GetByUserID(userID, offset, limit)
}
