package repository

import (
	"context"
	"time"

	"volunteer-scheduler-backend/internal/database/models"
	apperrors "volunteer-scheduler-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VolunteerRepository handles database operations for volunteers
type VolunteerRepository struct {
	db *gorm.DB
}

// NewVolunteerRepository creates a new volunteer repository
func NewVolunteerRepository(db *gorm.DB) *VolunteerRepository {
	return &VolunteerRepository{db: db}
}

// List returns every volunteer of the organization ordered by name
func (r *VolunteerRepository) List(ctx context.Context, orgID uuid.UUID) ([]models.Volunteer, error) {
	var volunteers []models.Volunteer
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("name ASC").
		Find(&volunteers).Error
	if err != nil {
		return nil, translate("list volunteers", err, nil, nil)
	}
	return volunteers, nil
}

// GetByID retrieves a volunteer by ID within the organization
func (r *VolunteerRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Volunteer, error) {
	var volunteer models.Volunteer
	err := r.db.WithContext(ctx).
		First(&volunteer, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, translate("get volunteer", err, apperrors.ErrVolunteerNotFound, nil)
	}
	return &volunteer, nil
}

// ListByIDs returns the volunteers among ids that still exist
func (r *VolunteerRepository) ListByIDs(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]models.Volunteer, error) {
	if len(ids) == 0 {
		return []models.Volunteer{}, nil
	}
	var volunteers []models.Volunteer
	err := r.db.WithContext(ctx).
		Where("organization_id = ? AND id IN ?", orgID, ids).
		Find(&volunteers).Error
	if err != nil {
		return nil, translate("list volunteers", err, nil, nil)
	}
	return volunteers, nil
}

// Create inserts one volunteer
func (r *VolunteerRepository) Create(ctx context.Context, volunteer *models.Volunteer) error {
	return translate("create volunteer", r.db.WithContext(ctx).Create(volunteer).Error, nil, nil)
}

// Update replaces the mutable fields. A missing id updates nothing and succeeds.
func (r *VolunteerRepository) Update(ctx context.Context, volunteer *models.Volunteer) error {
	err := r.db.WithContext(ctx).
		Model(&models.Volunteer{}).
		Where("id = ? AND organization_id = ?", volunteer.ID, volunteer.OrganizationID).
		Updates(map[string]interface{}{
			"name":              volunteer.Name,
			"roles":             volunteer.Roles,
			"avatar_url":        volunteer.AvatarURL,
			"email":             volunteer.Email,
			"unavailable_dates": volunteer.UnavailableDates,
			"updated_at":        time.Now(),
		}).Error
	return translate("update volunteer", err, nil, nil)
}

// Remove deletes a volunteer. Assignments referencing it are left alone.
func (r *VolunteerRepository) Remove(ctx context.Context, orgID, id uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, orgID).
		Delete(&models.Volunteer{}).Error
	return translate("remove volunteer", err, nil, nil)
}
