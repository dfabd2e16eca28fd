package repository

import (
	"context"
	"time"

	"volunteer-scheduler-backend/internal/database/models"
	apperrors "volunteer-scheduler-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// List returns the organization's teams ordered by name
func (r *TeamRepository) List(ctx context.Context, orgID uuid.UUID) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("name ASC").
		Find(&teams).Error
	if err != nil {
		return nil, translate("list teams", err, nil, nil)
	}
	return teams, nil
}

// GetByID retrieves a team by ID within the organization
func (r *TeamRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).
		First(&team, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, translate("get team", err, apperrors.ErrTeamNotFound, nil)
	}
	return &team, nil
}

// Create inserts one team
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	if team.MemberIDs == nil {
		team.MemberIDs = []uuid.UUID{}
	}
	return translate("create team", r.db.WithContext(ctx).Create(team).Error, nil, nil)
}

// Update replaces name and members. A missing id updates nothing and succeeds.
func (r *TeamRepository) Update(ctx context.Context, team *models.Team) error {
	members := team.MemberIDs
	if members == nil {
		members = []uuid.UUID{}
	}
	err := r.db.WithContext(ctx).
		Model(&models.Team{}).
		Where("id = ? AND organization_id = ?", team.ID, team.OrganizationID).
		Updates(map[string]interface{}{
			"name":       team.Name,
			"member_ids": members,
			"updated_at": time.Now(),
		}).Error
	return translate("update team", err, nil, nil)
}

// Remove deletes a team by ID; a missing id is a no-op
func (r *TeamRepository) Remove(ctx context.Context, orgID, id uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, orgID).
		Delete(&models.Team{}).Error
	return translate("remove team", err, nil, nil)
}
