package service

import (
	"context"
	"strings"

	"volunteer-scheduler-backend/internal/database/models"
	"volunteer-scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TeamService provides team business logic
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	audit     AuditServiceInterface
	validator *validator.Validate
}

// NewTeamService creates a new TeamService
func NewTeamService(repo repository.TeamRepositoryInterface, audit AuditServiceInterface, validator *validator.Validate) *TeamService {
	return &TeamService{repo: repo, audit: audit, validator: validator}
}

// TeamRequest creates or replaces a team
type TeamRequest struct {
	Name      string      `json:"name" validate:"required,min=1,max=100"`
	MemberIDs []uuid.UUID `json:"member_ids"`
}

// List returns the organization's teams
func (s *TeamService) List(ctx context.Context, actor Actor) ([]models.Team, error) {
	return s.repo.List(ctx, actor.OrganizationID)
}

// Create adds a team. Member ids are not checked against the roster.
func (s *TeamService) Create(ctx context.Context, actor Actor, req *TeamRequest) (*models.Team, error) {
	if err := actor.requireAdmin(); err != nil {
		return nil, err
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	team := s.fromRequest(actor, req)
	if err := s.repo.Create(ctx, team); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, AuditActionCreate, "team", team.ID.String(), map[string]interface{}{"name": team.Name})
	return team, nil
}

// Update replaces a team's name and members
func (s *TeamService) Update(ctx context.Context, actor Actor, id uuid.UUID, req *TeamRequest) (*models.Team, error) {
	if err := actor.requireAdmin(); err != nil {
		return nil, err
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	team := s.fromRequest(actor, req)
	team.ID = id
	if err := s.repo.Update(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

// Remove deletes a team; assignments keep their team id
func (s *TeamService) Remove(ctx context.Context, actor Actor, id uuid.UUID) error {
	if err := actor.requireAdmin(); err != nil {
		return err
	}
	if err := s.repo.Remove(ctx, actor.OrganizationID, id); err != nil {
		return err
	}
	s.audit.Record(ctx, actor, AuditActionDelete, "team", id.String(), nil)
	return nil
}

func (s *TeamService) fromRequest(actor Actor, req *TeamRequest) *models.Team {
	members := append([]uuid.UUID{}, req.MemberIDs...)
	team := &models.Team{
		Name:      strings.TrimSpace(req.Name),
		MemberIDs: members,
	}
	team.OrganizationID = actor.OrganizationID
	return team
}
