package repository

import (
	"context"

	"volunteer-scheduler-backend/internal/database/models"
	apperrors "volunteer-scheduler-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MinistryRepository handles database operations for ministries
type MinistryRepository struct {
	db *gorm.DB
}

// NewMinistryRepository creates a new ministry repository
func NewMinistryRepository(db *gorm.DB) *MinistryRepository {
	return &MinistryRepository{db: db}
}

// List returns the organization's ministries ordered by name
func (r *MinistryRepository) List(ctx context.Context, orgID uuid.UUID) ([]models.Ministry, error) {
	var ministries []models.Ministry
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("name ASC").
		Find(&ministries).Error
	if err != nil {
		return nil, translate("list ministries", err, nil, nil)
	}
	return ministries, nil
}

// Create inserts one ministry. A name already used in the organization,
// ignoring case, fails with a BackendError carrying ErrMinistryExists.
func (r *MinistryRepository) Create(ctx context.Context, ministry *models.Ministry) error {
	return translate("create ministry", r.db.WithContext(ctx).Create(ministry).Error, nil, apperrors.ErrMinistryExists)
}

// Remove deletes a ministry by name. Volunteer roles naming it are untouched.
func (r *MinistryRepository) Remove(ctx context.Context, orgID uuid.UUID, name string) error {
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND name_key = ?", orgID, models.NormalizeMinistryName(name)).
		Delete(&models.Ministry{}).Error
	return translate("remove ministry", err, nil, nil)
}
