package repository

import (
	"context"

	"volunteer-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(ctx context.Context, org *models.Organization) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error)
	RegisterWithAdmin(ctx context.Context, org *models.Organization, admin *models.Profile) error
}

// ProfileRepositoryInterface defines the interface for profile repository operations
type ProfileRepositoryInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	CreateWithVolunteer(ctx context.Context, profile *models.Profile, volunteer *models.Volunteer) error
}

// VolunteerRepositoryInterface defines the interface for volunteer repository operations
type VolunteerRepositoryInterface interface {
	List(ctx context.Context, orgID uuid.UUID) ([]models.Volunteer, error)
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Volunteer, error)
	ListByIDs(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]models.Volunteer, error)
	Create(ctx context.Context, volunteer *models.Volunteer) error
	Update(ctx context.Context, volunteer *models.Volunteer) error
	Remove(ctx context.Context, orgID, id uuid.UUID) error
}

// MinistryRepositoryInterface defines the interface for ministry repository operations
type MinistryRepositoryInterface interface {
	List(ctx context.Context, orgID uuid.UUID) ([]models.Ministry, error)
	Create(ctx context.Context, ministry *models.Ministry) error
	Remove(ctx context.Context, orgID uuid.UUID, name string) error
}

// EventTypeRepositoryInterface defines the interface for event type repository operations
type EventTypeRepositoryInterface interface {
	List(ctx context.Context, orgID uuid.UUID) ([]models.EventType, error)
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.EventType, error)
	Create(ctx context.Context, eventType *models.EventType) error
	Remove(ctx context.Context, orgID, id uuid.UUID) error
}

// ServiceEventRepositoryInterface defines the interface for service event repository operations
type ServiceEventRepositoryInterface interface {
	List(ctx context.Context, orgID uuid.UUID, filter ServiceEventFilter) ([]models.ServiceEvent, error)
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.ServiceEvent, error)
	Create(ctx context.Context, service *models.ServiceEvent) error
	CreateBatch(ctx context.Context, services []models.ServiceEvent) error
	Update(ctx context.Context, service *models.ServiceEvent) error
	Remove(ctx context.Context, orgID, id uuid.UUID) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	List(ctx context.Context, orgID uuid.UUID) ([]models.Team, error)
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*models.Team, error)
	Create(ctx context.Context, team *models.Team) error
	Update(ctx context.Context, team *models.Team) error
	Remove(ctx context.Context, orgID, id uuid.UUID) error
}

// PushSubscriptionRepositoryInterface defines the interface for push subscription repository operations
type PushSubscriptionRepositoryInterface interface {
	Upsert(ctx context.Context, sub *models.PushSubscription) error
	ListByUsers(ctx context.Context, userIDs []uuid.UUID) ([]models.PushSubscription, error)
	DeleteByEndpoint(ctx context.Context, endpoint string) error
	DeleteForUser(ctx context.Context, userID uuid.UUID, endpoint string) error
}

// AuditLogRepositoryInterface defines the interface for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(ctx context.Context, entry *models.AuditLog) error
	List(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]models.AuditLog, int64, error)
}

// WizardRepositoryInterface defines the interface for wizard progress repository operations
type WizardRepositoryInterface interface {
	Get(ctx context.Context, scope models.WizardScope, ownerID uuid.UUID) (*models.WizardProgress, error)
	Save(ctx context.Context, progress *models.WizardProgress) error
	Delete(ctx context.Context, scope models.WizardScope, ownerID uuid.UUID) error
}

// Compile-time checks
var (
	_ OrganizationRepositoryInterface     = (*OrganizationRepository)(nil)
	_ ProfileRepositoryInterface          = (*ProfileRepository)(nil)
	_ VolunteerRepositoryInterface        = (*VolunteerRepository)(nil)
	_ MinistryRepositoryInterface         = (*MinistryRepository)(nil)
	_ EventTypeRepositoryInterface        = (*EventTypeRepository)(nil)
	_ ServiceEventRepositoryInterface     = (*ServiceEventRepository)(nil)
	_ TeamRepositoryInterface             = (*TeamRepository)(nil)
	_ PushSubscriptionRepositoryInterface = (*PushSubscriptionRepository)(nil)
	_ AuditLogRepositoryInterface         = (*AuditLogRepository)(nil)
	_ WizardRepositoryInterface           = (*WizardRepository)(nil)
)
