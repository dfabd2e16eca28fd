package repository

import (
	"context"
	"strings"

	"volunteer-scheduler-backend/internal/database/models"
	apperrors "volunteer-scheduler-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileRepository handles database operations for authenticated profiles
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetByID retrieves a profile by ID
func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	if err != nil {
		return nil, translate("get profile", err, apperrors.ErrProfileNotFound, nil)
	}
	return &profile, nil
}

// GetByEmail retrieves a profile by email, compared case-insensitively
func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).First(&profile, "LOWER(email) = ?", strings.ToLower(email)).Error
	if err != nil {
		return nil, translate("get profile", err, apperrors.ErrProfileNotFound, nil)
	}
	return &profile, nil
}

// CreateWithVolunteer inserts a volunteer profile and its roster entry
// sharing the same id, in one transaction.
func (r *ProfileRepository) CreateWithVolunteer(ctx context.Context, profile *models.Profile, volunteer *models.Volunteer) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		volunteer.ID = profile.ID
		volunteer.OrganizationID = profile.OrganizationID
		return tx.Create(volunteer).Error
	})
	return translate("sign up volunteer", err, nil, apperrors.ErrProfileExists)
}
