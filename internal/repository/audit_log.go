package repository

import (
	"context"

	"volunteer-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLogRepository handles database operations for audit entries
type AuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Create inserts one audit entry
func (r *AuditLogRepository) Create(ctx context.Context, entry *models.AuditLog) error {
	return translate("create audit log", r.db.WithContext(ctx).Create(entry).Error, nil, nil)
}

// List returns the organization's audit entries, newest first, with pagination
func (r *AuditLogRepository) List(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]models.AuditLog, int64, error) {
	var entries []models.AuditLog
	var total int64

	// Get total count
	if err := r.db.WithContext(ctx).Model(&models.AuditLog{}).Where("organization_id = ?", orgID).Count(&total).Error; err != nil {
		return nil, 0, translate("count audit logs", err, nil, nil)
	}

	// Get paginated results
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&entries).Error
	if err != nil {
		return nil, 0, translate("list audit logs", err, nil, nil)
	}

	return entries, total, nil
}
