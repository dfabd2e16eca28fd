package repository

import (
	"context"
	"time"

	"volunteer-scheduler-backend/internal/database/models"
	apperrors "volunteer-scheduler-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceEventFilter narrows a service listing to a date range. Nil bounds
// are open.
type ServiceEventFilter struct {
	From *time.Time
	To   *time.Time
}

// ServiceEventRepository handles database operations for scheduled services
type ServiceEventRepository struct {
	db *gorm.DB
}

// NewServiceEventRepository creates a new service event repository
func NewServiceEventRepository(db *gorm.DB) *ServiceEventRepository {
	return &ServiceEventRepository{db: db}
}

// List returns the organization's services ordered by date
func (r *ServiceEventRepository) List(ctx context.Context, orgID uuid.UUID, filter ServiceEventFilter) ([]models.ServiceEvent, error) {
	query := r.db.WithContext(ctx).Where("organization_id = ?", orgID)
	if filter.From != nil {
		query = query.Where("date >= ?", filter.From.Format(models.DateLayout))
	}
	if filter.To != nil {
		query = query.Where("date <= ?", filter.To.Format(models.DateLayout))
	}

	var services []models.ServiceEvent
	if err := query.Order("date ASC").Order("created_at ASC").Find(&services).Error; err != nil {
		return nil, translate("list services", err, nil, nil)
	}
	return services, nil
}

// GetByID retrieves a service by ID within the organization
func (r *ServiceEventRepository) GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.ServiceEvent, error) {
	var service models.ServiceEvent
	err := r.db.WithContext(ctx).
		First(&service, "id = ? AND organization_id = ?", id, orgID).Error
	if err != nil {
		return nil, translate("get service", err, apperrors.ErrServiceNotFound, nil)
	}
	return &service, nil
}

// Create inserts one service. Not idempotent.
func (r *ServiceEventRepository) Create(ctx context.Context, service *models.ServiceEvent) error {
	if service.Assignments == nil {
		service.Assignments = []models.Assignment{}
	}
	return translate("create service", r.db.WithContext(ctx).Create(service).Error, nil, nil)
}

// CreateBatch inserts all services in one transaction; either all rows are
// written or none.
func (r *ServiceEventRepository) CreateBatch(ctx context.Context, services []models.ServiceEvent) error {
	if len(services) == 0 {
		return nil
	}
	for i := range services {
		if services[i].Assignments == nil {
			services[i].Assignments = []models.Assignment{}
		}
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&services, 50).Error
	})
	return translate("create services", err, nil, nil)
}

// Update replaces date, title, type and the whole assignment list. A missing
// id updates nothing and succeeds. Concurrent writers are last-write-wins.
func (r *ServiceEventRepository) Update(ctx context.Context, service *models.ServiceEvent) error {
	assignments := service.Assignments
	if assignments == nil {
		assignments = []models.Assignment{}
	}
	err := r.db.WithContext(ctx).
		Model(&models.ServiceEvent{}).
		Where("id = ? AND organization_id = ?", service.ID, service.OrganizationID).
		Updates(map[string]interface{}{
			"date":          service.Date,
			"title":         service.Title,
			"event_type_id": service.EventTypeID,
			"assignments":   assignments,
			"updated_at":    time.Now(),
		}).Error
	return translate("update service", err, nil, nil)
}

// Remove deletes a service by ID; a missing id is a no-op
func (r *ServiceEventRepository) Remove(ctx context.Context, orgID, id uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, orgID).
		Delete(&models.ServiceEvent{}).Error
	return translate("remove service", err, nil, nil)
}
