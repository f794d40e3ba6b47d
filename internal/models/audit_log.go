package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AuditActionCreate       = "create"
	AuditActionUpdate       = "update"
	AuditActionDelete       = "delete"
	AuditActionLogin        = "login"
	AuditActionLogout       = "logout"
	AuditActionRegister     = "register"
	AuditActionFailedLogin  = "failed_login"
	AuditActionLocked       = "account_locked"
	AuditActionTokenRefresh = "token_refresh"
	AuditActionDataDeleted  = "data_deleted"

	AuditResourceTransaction = "Transaction"
	AuditResourceUser        = "User"
)

// AuditLog is one append-only history row. For transactions Changes is the
// full field snapshot after create or update, and empty after delete.
type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action     string     `gorm:"type:varchar(20);not null;index" json:"action"`
	Resource   string     `gorm:"type:varchar(100);not null;index:idx_audit_logs_resource" json:"resource"`
	ResourceID string     `gorm:"type:varchar(64);index:idx_audit_logs_resource" json:"resource_id"`
	IPAddress  string     `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	UserAgent  string     `gorm:"type:text" json:"user_agent,omitempty"`
	Changes    JSONBMap   `gorm:"type:text" json:"changes"`
	CreatedAt  time.Time  `gorm:"not null;index" json:"created_at"`
}

func (AuditLog) TableName() string { return "audit_logs" }

func (al *AuditLog) BeforeCreate(*gorm.DB) error {
	assignID(&al.ID)
	if al.CreatedAt.IsZero() {
		al.CreatedAt = time.Now().UTC()
	}
	if al.Changes == nil {
		al.Changes = JSONBMap{}
	}
	return nil
}
