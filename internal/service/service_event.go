package service

import (
	"context"
	"strings"

	"volunteer-scheduler-backend/internal/database/models"
	apperrors "volunteer-scheduler-backend/internal/errors"
	"volunteer-scheduler-backend/internal/notifier"
	"volunteer-scheduler-backend/internal/repository"
	"volunteer-scheduler-backend/internal/scheduling"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ServiceEventService manages scheduled services and their assignment lists.
//
// Every assignment operation reads the service, changes the list in memory
// and writes the whole list back. Two concurrent writers on the same
// service race and the last write wins.
type ServiceEventService struct {
	repo          repository.ServiceEventRepositoryInterface
	volunteerRepo repository.VolunteerRepositoryInterface
	teamRepo      repository.TeamRepositoryInterface
	publisher     ChangePublisher
	audit         AuditServiceInterface
	validator     *validator.Validate
}

// NewServiceEventService creates a new ServiceEventService. publisher may be nil.
func NewServiceEventService(
	repo repository.ServiceEventRepositoryInterface,
	volunteerRepo repository.VolunteerRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	publisher ChangePublisher,
	audit AuditServiceInterface,
	validator *validator.Validate,
) *ServiceEventService {
	return &ServiceEventService{
		repo:          repo,
		volunteerRepo: volunteerRepo,
		teamRepo:      teamRepo,
		publisher:     publisher,
		audit:         audit,
		validator:     validator,
	}
}

// ServiceEventRequest creates or replaces a service
type ServiceEventRequest struct {
	Date        string              `json:"date" validate:"required" example:"2025-01-05"`
	Title       string              `json:"title" validate:"required,min=1,max=200"`
	EventTypeID *uuid.UUID          `json:"event_type_id"`
	Assignments []models.Assignment `json:"assignments"`
}

// AssignmentRequest adds one volunteer to a role
type AssignmentRequest struct {
	Role        string    `json:"role" validate:"required,max=100"`
	VolunteerID uuid.UUID `json:"volunteer_id" validate:"required"`
}

// TeamAssignmentRequest adds every member of a team to a role
type TeamAssignmentRequest struct {
	Role   string    `json:"role" validate:"required,max=100"`
	TeamID uuid.UUID `json:"team_id" validate:"required"`
}

// List returns the organization's services, optionally limited to [from, to]
func (s *ServiceEventService) List(ctx context.Context, actor Actor, from, to string) ([]models.ServiceEvent, error) {
	fromDate, err := parseOptionalDate("from", from)
	if err != nil {
		return nil, err
	}
	toDate, err := parseOptionalDate("to", to)
	if err != nil {
		return nil, err
	}
	if fromDate != nil && toDate != nil && toDate.Before(*fromDate) {
		return nil, apperrors.ErrInvalidDateRange
	}
	return s.repo.List(ctx, actor.OrganizationID, repository.ServiceEventFilter{From: fromDate, To: toDate})
}

// Create inserts a service. Volunteers already assigned are notified.
func (s *ServiceEventService) Create(ctx context.Context, actor Actor, req *ServiceEventRequest) (*models.ServiceEvent, error) {
	if err := actor.requireAdmin(); err != nil {
		return nil, err
	}
	svc, err := s.fromRequest(actor, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, svc); err != nil {
		return nil, err
	}

	s.publish(nil, svc)
	s.audit.Record(ctx, actor, AuditActionCreate, "service", svc.ID.String(), map[string]interface{}{
		"title": svc.Title,
		"date":  svc.DateString(),
	})
	return svc, nil
}

// Update replaces date, title, event type and assignments of a service.
// Updating an id that does not exist affects nothing and is not reported.
func (s *ServiceEventService) Update(ctx context.Context, actor Actor, id uuid.UUID, req *ServiceEventRequest) (*models.ServiceEvent, error) {
	if err := actor.requireAdmin(); err != nil {
		return nil, err
	}
	svc, err := s.fromRequest(actor, req)
	if err != nil {
		return nil, err
	}
	svc.ID = id

	var previous []models.Assignment
	existing, err := s.repo.GetByID(ctx, actor.OrganizationID, id)
	switch {
	case err == nil:
		previous = existing.Assignments
		svc.CreatedAt = existing.CreatedAt
	case !apperrors.IsNotFound(err):
		return nil, err
	}

	if err := s.repo.Update(ctx, svc); err != nil {
		return nil, err
	}
	if existing != nil {
		s.publish(previous, svc)
	}
	return svc, nil
}

// Remove deletes a service
func (s *ServiceEventService) Remove(ctx context.Context, actor Actor, id uuid.UUID) error {
	if err := actor.requireAdmin(); err != nil {
		return err
	}
	if err := s.repo.Remove(ctx, actor.OrganizationID, id); err != nil {
		return err
	}
	s.audit.Record(ctx, actor, AuditActionDelete, "service", id.String(), nil)
	return nil
}

// AddAssignment appends {role, volunteer} to the service. Duplicates are kept.
func (s *ServiceEventService) AddAssignment(ctx context.Context, actor Actor, serviceID uuid.UUID, req *AssignmentRequest) (*models.ServiceEvent, error) {
	if err := actor.requireAdmin(); err != nil {
		return nil, err
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	role := strings.TrimSpace(req.Role)
	return s.mutate(ctx, actor, serviceID, func(svc models.ServiceEvent) (models.ServiceEvent, error) {
		return scheduling.AddAssignment(svc, role, req.VolunteerID), nil
	})
}

// RemoveAssignment removes the assignment at index; an index out of range
// leaves the list unchanged.
func (s *ServiceEventService) RemoveAssignment(ctx context.Context, actor Actor, serviceID uuid.UUID, index int) (*models.ServiceEvent, error) {
	if err := actor.requireAdmin(); err != nil {
		return nil, err
	}
	return s.mutate(ctx, actor, serviceID, func(svc models.ServiceEvent) (models.ServiceEvent, error) {
		return scheduling.RemoveAssignment(svc, index), nil
	})
}

// AssignTeam appends one assignment per team member
func (s *ServiceEventService) AssignTeam(ctx context.Context, actor Actor, serviceID uuid.UUID, req *TeamAssignmentRequest) (*models.ServiceEvent, error) {
	if err := actor.requireAdmin(); err != nil {
		return nil, err
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	team, err := s.teamRepo.GetByID(ctx, actor.OrganizationID, req.TeamID)
	if err != nil {
		return nil, err
	}
	role := strings.TrimSpace(req.Role)
	return s.mutate(ctx, actor, serviceID, func(svc models.ServiceEvent) (models.ServiceEvent, error) {
		return scheduling.AssignTeam(svc, role, *team), nil
	})
}

// RespondToAssignment lets the assigned volunteer confirm or decline
func (s *ServiceEventService) RespondToAssignment(ctx context.Context, actor Actor, serviceID uuid.UUID, index int, status models.AssignmentStatus) (*models.ServiceEvent, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	return s.mutate(ctx, actor, serviceID, func(svc models.ServiceEvent) (models.ServiceEvent, error) {
		if index < 0 || index >= len(svc.Assignments) {
			return svc, apperrors.ErrAssignmentNotFound
		}
		if svc.Assignments[index].VolunteerID != actor.UserID {
			return svc, apperrors.ErrNotAssignee
		}
		next, _ := scheduling.SetAssignmentStatus(svc, index, status)
		return next, nil
	})
}

// EligibleVolunteers returns volunteers holding role; an empty role matches
// everyone. When date is set, volunteers unavailable that day are left out.
func (s *ServiceEventService) EligibleVolunteers(ctx context.Context, actor Actor, role, date string) ([]models.Volunteer, error) {
	day, err := parseOptionalDate("date", date)
	if err != nil {
		return nil, err
	}
	volunteers, err := s.volunteerRepo.List(ctx, actor.OrganizationID)
	if err != nil {
		return nil, err
	}
	eligible := scheduling.EligibleVolunteers(volunteers, role)
	if day != nil {
		eligible = scheduling.AvailableOn(eligible, *day)
	}
	return eligible, nil
}

func (s *ServiceEventService) mutate(ctx context.Context, actor Actor, serviceID uuid.UUID, change func(models.ServiceEvent) (models.ServiceEvent, error)) (*models.ServiceEvent, error) {
	current, err := s.repo.GetByID(ctx, actor.OrganizationID, serviceID)
	if err != nil {
		return nil, err
	}
	next, err := change(*current)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, &next); err != nil {
		return nil, err
	}
	s.publish(current.Assignments, &next)
	return &next, nil
}

func (s *ServiceEventService) publish(previous []models.Assignment, svc *models.ServiceEvent) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(notifier.ServiceChange{
		OrganizationID: svc.OrganizationID,
		ServiceID:      svc.ID,
		Title:          svc.Title,
		Date:           svc.Date,
		Previous:       previous,
		Current:        svc.Assignments,
	})
}

func (s *ServiceEventService) fromRequest(actor Actor, req *ServiceEventRequest) (*models.ServiceEvent, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}
	date, err := parseDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	assignments := make([]models.Assignment, 0, len(req.Assignments))
	for _, a := range req.Assignments {
		if a.Status != "" && !a.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		assignments = append(assignments, a)
	}

	svc := &models.ServiceEvent{
		Date:        date,
		Title:       strings.TrimSpace(req.Title),
		EventTypeID: req.EventTypeID,
		Assignments: assignments,
	}
	svc.OrganizationID = actor.OrganizationID
	return svc, nil
}
