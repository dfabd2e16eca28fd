package repository

import (
	"context"

	"volunteer-scheduler-backend/internal/database/models"
	apperrors "volunteer-scheduler-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Create creates a new organization
func (r *OrganizationRepository) Create(ctx context.Context, org *models.Organization) error {
	return translate("create organization", r.db.WithContext(ctx).Create(org).Error, nil, nil)
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error
	if err != nil {
		return nil, translate("get organization", err, apperrors.ErrOrganizationNotFound, nil)
	}
	return &org, nil
}

// RegisterWithAdmin inserts the organization and its first admin profile in
// one transaction so neither can exist without the other.
func (r *OrganizationRepository) RegisterWithAdmin(ctx context.Context, org *models.Organization, admin *models.Profile) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return err
		}
		admin.OrganizationID = org.ID
		admin.Role = models.ProfileRoleAdmin
		return tx.Create(admin).Error
	})
	return translate("register organization", err, nil, apperrors.ErrProfileExists)
}
