package repositories

import (
	"errors"
	"fmt"

	"budgetbuddy/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLogRepository appends and reads audit entries. There is no update or
// delete path; the log is append-only.
type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) AuditLogRepositoryInterface {
	return &AuditLogRepository{db: db}
}

// Create wraps the insert in a nested transaction. Inside a unit of work gorm
// issues a savepoint, so a failed audit row rolls back alone.
func (r *AuditLogRepository) Create(entry *models.AuditLog) error {
	if entry == nil {
		return errors.New("audit log cannot be nil")
	}

	if err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(entry).Error
	}); err != nil {
		return fmt.Errorf("failed to append audit entry for %s/%s: %w", entry.Resource, entry.ResourceID, err)
	}
	return nil
}

// GetByResource returns one resource's history, oldest first.
func (r *AuditLogRepository) GetByResource(resource, resourceID string) ([]*models.AuditLog, error) {
	var entries []*models.AuditLog
	err := r.db.
		Where("resource = ? AND resource_id = ?", resource, resourceID).
		Order("created_at ASC, id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read audit history: %w", err)
	}
	return entries, nil
}

// GetByUserID pages through everything recorded against userID, newest first.
func (r *AuditLogRepository) GetByUserID(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error) {
	scoped := r.db.Model(&models.AuditLog{}).Where("user_id = ?", userID)

	var total int64
	if err := scoped.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	var entries []*models.AuditLog
	err := paginate(scoped, models.Page{Offset: offset, Limit: limit}).
		Order("created_at DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read audit trail: %w", err)
	}
	return entries, total, nil
}
