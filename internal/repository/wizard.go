package repository

import (
	"context"
	"errors"
	"time"

	"volunteer-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WizardRepository persists onboarding wizard step counters
type WizardRepository struct {
	db *gorm.DB
}

// NewWizardRepository creates a new wizard repository
func NewWizardRepository(db *gorm.DB) *WizardRepository {
	return &WizardRepository{db: db}
}

// Get returns the progress row for (scope, owner), or nil when none exists yet
func (r *WizardRepository) Get(ctx context.Context, scope models.WizardScope, ownerID uuid.UUID) (*models.WizardProgress, error) {
	var progress models.WizardProgress
	err := r.db.WithContext(ctx).
		First(&progress, "scope = ? AND owner_id = ?", scope, ownerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate("get wizard progress", err, nil, nil)
	}
	return &progress, nil
}

// Save writes the step for (scope, owner), creating the row on first use
func (r *WizardRepository) Save(ctx context.Context, progress *models.WizardProgress) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "scope"}, {Name: "owner_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"step":       progress.Step,
			"updated_at": time.Now(),
		}),
	}).Create(progress).Error
	return translate("save wizard progress", err, nil, nil)
}

// Delete forgets the progress for (scope, owner)
func (r *WizardRepository) Delete(ctx context.Context, scope models.WizardScope, ownerID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Where("scope = ? AND owner_id = ?", scope, ownerID).
		Delete(&models.WizardProgress{}).Error
	return translate("delete wizard progress", err, nil, nil)
}
