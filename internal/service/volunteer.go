package service

import (
	"context"
	"strings"

	"volunteer-scheduler-backend/internal/database/models"
	apperrors "volunteer-scheduler-backend/internal/errors"
	"volunteer-scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// VolunteerService provides roster business logic
type VolunteerService struct {
	repo      repository.VolunteerRepositoryInterface
	audit     AuditServiceInterface
	validator *validator.Validate
}

// NewVolunteerService creates a new VolunteerService
func NewVolunteerService(repo repository.VolunteerRepositoryInterface, audit AuditServiceInterface, validator *validator.Validate) *VolunteerService {
	return &VolunteerService{repo: repo, audit: audit, validator: validator}
}

// VolunteerRequest creates or replaces a volunteer. Roles may name
// ministries that do not exist.
type VolunteerRequest struct {
	Name             string   `json:"name" validate:"required,min=1,max=200"`
	Roles            []string `json:"roles" validate:"dive,required,max=100"`
	AvatarURL        string   `json:"avatar_url" validate:"omitempty,url,max=500"`
	Email            string   `json:"email" validate:"omitempty,email,max=255"`
	UnavailableDates []string `json:"unavailable_dates" validate:"dive,datetime=2006-01-02"`
}

// List returns the organization's volunteers ordered by name
func (s *VolunteerService) List(ctx context.Context, actor Actor) ([]models.Volunteer, error) {
	return s.repo.List(ctx, actor.OrganizationID)
}

// Create adds a volunteer to the roster
func (s *VolunteerService) Create(ctx context.Context, actor Actor, req *VolunteerRequest) (*models.Volunteer, error) {
	if err := actor.requireAdmin(); err != nil {
		return nil, err
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	volunteer := s.fromRequest(actor, req)
	if err := s.repo.Create(ctx, volunteer); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, AuditActionCreate, "volunteer", volunteer.ID.String(), map[string]interface{}{"name": volunteer.Name})
	return volunteer, nil
}

// Update replaces a volunteer's attributes. Admins may update anyone, a
// volunteer only their own entry. A missing id is not reported.
func (s *VolunteerService) Update(ctx context.Context, actor Actor, id uuid.UUID, req *VolunteerRequest) (*models.Volunteer, error) {
	if !actor.Admin && actor.UserID != id {
		return nil, apperrors.NewAuthorizationError("volunteers may only update their own entry")
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	volunteer := s.fromRequest(actor, req)
	volunteer.ID = id
	if err := s.repo.Update(ctx, volunteer); err != nil {
		return nil, err
	}
	return volunteer, nil
}

// Remove deletes a volunteer. Assignments referencing it are left as they are.
func (s *VolunteerService) Remove(ctx context.Context, actor Actor, id uuid.UUID) error {
	if err := actor.requireAdmin(); err != nil {
		return err
	}
	if err := s.repo.Remove(ctx, actor.OrganizationID, id); err != nil {
		return err
	}
	s.audit.Record(ctx, actor, AuditActionDelete, "volunteer", id.String(), nil)
	return nil
}

func (s *VolunteerService) fromRequest(actor Actor, req *VolunteerRequest) *models.Volunteer {
	roles := make([]string, 0, len(req.Roles))
	for _, r := range req.Roles {
		roles = append(roles, strings.TrimSpace(r))
	}
	dates := append([]string{}, req.UnavailableDates...)

	volunteer := &models.Volunteer{
		Name:             strings.TrimSpace(req.Name),
		Roles:            roles,
		AvatarURL:        req.AvatarURL,
		Email:            strings.TrimSpace(req.Email),
		UnavailableDates: dates,
	}
	volunteer.OrganizationID = actor.OrganizationID
	return volunteer
}
