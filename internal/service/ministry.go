package service

import (
	"context"
	"strings"

	"volunteer-scheduler-backend/internal/database/models"
	apperrors "volunteer-scheduler-backend/internal/errors"
	"volunteer-scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// MinistryService provides ministry business logic
type MinistryService struct {
	repo      repository.MinistryRepositoryInterface
	audit     AuditServiceInterface
	validator *validator.Validate
}

// NewMinistryService creates a new MinistryService
func NewMinistryService(repo repository.MinistryRepositoryInterface, audit AuditServiceInterface, validator *validator.Validate) *MinistryService {
	return &MinistryService{repo: repo, audit: audit, validator: validator}
}

// MinistryRequest creates a ministry; an empty icon means the default
type MinistryRequest struct {
	Name string              `json:"name" validate:"required,min=1,max=100"`
	Icon models.MinistryIcon `json:"icon"`
}

// List returns the organization's ministries
func (s *MinistryService) List(ctx context.Context, actor Actor) ([]models.Ministry, error) {
	return s.repo.List(ctx, actor.OrganizationID)
}

// Create adds a ministry. Names are unique per organization ignoring case.
func (s *MinistryService) Create(ctx context.Context, actor Actor, req *MinistryRequest) (*models.Ministry, error) {
	if err := actor.requireAdmin(); err != nil {
		return nil, err
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	icon := req.Icon
	if icon == "" {
		icon = models.DefaultMinistryIcon
	}
	if !icon.IsValid() {
		return nil, apperrors.ErrInvalidMinistryIcon
	}

	ministry := &models.Ministry{
		OrganizationID: actor.OrganizationID,
		Name:           strings.TrimSpace(req.Name),
		Icon:           icon,
	}
	if err := s.repo.Create(ctx, ministry); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, AuditActionCreate, "ministry", ministry.Name, nil)
	return ministry, nil
}

// Remove deletes a ministry by name. Volunteers keep the role name and
// existing assignments are untouched.
func (s *MinistryService) Remove(ctx context.Context, actor Actor, name string) error {
	if err := actor.requireAdmin(); err != nil {
		return err
	}
	if err := s.repo.Remove(ctx, actor.OrganizationID, name); err != nil {
		return err
	}
	s.audit.Record(ctx, actor, AuditActionDelete, "ministry", name, nil)
	return nil
}
