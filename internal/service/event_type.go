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

// EventTypeService provides event type business logic
type EventTypeService struct {
	repo      repository.EventTypeRepositoryInterface
	audit     AuditServiceInterface
	validator *validator.Validate
}

// NewEventTypeService creates a new EventTypeService
func NewEventTypeService(repo repository.EventTypeRepositoryInterface, audit AuditServiceInterface, validator *validator.Validate) *EventTypeService {
	return &EventTypeService{repo: repo, audit: audit, validator: validator}
}

// EventTypeRequest creates an event type; an empty color means blue
type EventTypeRequest struct {
	Name  string            `json:"name" validate:"required,min=1,max=100"`
	Color models.EventColor `json:"color"`
}

// List returns the organization's event types
func (s *EventTypeService) List(ctx context.Context, actor Actor) ([]models.EventType, error) {
	return s.repo.List(ctx, actor.OrganizationID)
}

// Create adds an event type
func (s *EventTypeService) Create(ctx context.Context, actor Actor, req *EventTypeRequest) (*models.EventType, error) {
	if err := actor.requireAdmin(); err != nil {
		return nil, err
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	color := req.Color
	if color == "" {
		color = models.DefaultEventColor
	}
	if !color.IsValid() {
		return nil, apperrors.ErrInvalidEventColor
	}

	eventType := &models.EventType{
		Name:  strings.TrimSpace(req.Name),
		Color: color,
	}
	eventType.OrganizationID = actor.OrganizationID
	if err := s.repo.Create(ctx, eventType); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, AuditActionCreate, "event_type", eventType.ID.String(), map[string]interface{}{"name": eventType.Name})
	return eventType, nil
}

// Remove deletes an event type. Services tagged with it fall back to "General".
func (s *EventTypeService) Remove(ctx context.Context, actor Actor, id uuid.UUID) error {
	if err := actor.requireAdmin(); err != nil {
		return err
	}
	if err := s.repo.Remove(ctx, actor.OrganizationID, id); err != nil {
		return err
	}
	s.audit.Record(ctx, actor, AuditActionDelete, "event_type", id.String(), nil)
	return nil
}
