package repository

import (
	"context"

	"volunteer-scheduler-backend/internal/database/models"
	apperrors "volunteer-scheduler-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventTypeRepository handles database operations for event types
type EventTypeRepository struct {
	db *gorm.DB
}

// NewEventTypeRepository creates a new event type repository
func NewEventTypeRepository(db *gorm.DB) *EventTypeRepository {
	return &EventTypeRepository{db: db}
}

// List returns the organization's event types ordered by name
func (r *EventTypeRepository) List(ctx context.Context, orgID uuid.UUID) ([]models.EventType, error) {
	var eventTypes []models.EventType
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("name ASC").
		Find(&eventTypes).Error
	if err != nil {
		return nil, translate("list event types", err, nil, nil)
	}
	return eventTypes, nil
}

// GetByID retrieves an event type by ID within the organization
func (r *EventTypeRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.EventType, error) {
	var eventType models.EventType
	err := r.db.WithContext(ctx).
		First(&eventType, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, translate("get event type", err, apperrors.ErrEventTypeNotFound, nil)
	}
	return &eventType, nil
}

// Create inserts one event type
func (r *EventTypeRepository) Create(ctx context.Context, eventType *models.EventType) error {
	return translate("create event type", r.db.WithContext(ctx).Create(eventType).Error, nil, nil)
}

// Remove deletes an event type. Services tagged with it keep the dangling id.
func (r *EventTypeRepository) Remove(ctx context.Context, orgID, id uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, orgID).
		Delete(&models.EventType{}).Error
	return translate("remove event type", err, nil, nil)
}
