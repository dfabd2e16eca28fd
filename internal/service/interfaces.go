package service

import (
	"context"

	"volunteer-scheduler-backend/internal/database/models"
	"volunteer-scheduler-backend/internal/notifier"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AccountServiceInterface defines the interface for registration and sign-in
type AccountServiceInterface interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
	Signup(ctx context.Context, req *SignupRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	Me(ctx context.Context, actor Actor) (*models.Profile, error)
	Organization(ctx context.Context, actor Actor) (*models.Organization, error)
}

// VolunteerServiceInterface defines the interface for volunteer service
type VolunteerServiceInterface interface {
	List(ctx context.Context, actor Actor) ([]models.Volunteer, error)
	Create(ctx context.Context, actor Actor, req *VolunteerRequest) (*models.Volunteer, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, req *VolunteerRequest) (*models.Volunteer, error)
	Remove(ctx context.Context, actor Actor, id uuid.UUID) error
}

// MinistryServiceInterface defines the interface for ministry service
type MinistryServiceInterface interface {
	List(ctx context.Context, actor Actor) ([]models.Ministry, error)
	Create(ctx context.Context, actor Actor, req *MinistryRequest) (*models.Ministry, error)
	Remove(ctx context.Context, actor Actor, name string) error
}

// EventTypeServiceInterface defines the interface for event type service
type EventTypeServiceInterface interface {
	List(ctx context.Context, actor Actor) ([]models.EventType, error)
	Create(ctx context.Context, actor Actor, req *EventTypeRequest) (*models.EventType, error)
	Remove(ctx context.Context, actor Actor, id uuid.UUID) error
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	List(ctx context.Context, actor Actor) ([]models.Team, error)
	Create(ctx context.Context, actor Actor, req *TeamRequest) (*models.Team, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, req *TeamRequest) (*models.Team, error)
	Remove(ctx context.Context, actor Actor, id uuid.UUID) error
}

// ServiceEventServiceInterface defines the interface for scheduled services and their assignments
type ServiceEventServiceInterface interface {
	List(ctx context.Context, actor Actor, from, to string) ([]models.ServiceEvent, error)
	Create(ctx context.Context, actor Actor, req *ServiceEventRequest) (*models.ServiceEvent, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, req *ServiceEventRequest) (*models.ServiceEvent, error)
	Remove(ctx context.Context, actor Actor, id uuid.UUID) error
	CreateRecurring(ctx context.Context, actor Actor, req *RecurringRequest) ([]models.ServiceEvent, error)
	AddAssignment(ctx context.Context, actor Actor, serviceID uuid.UUID, req *AssignmentRequest) (*models.ServiceEvent, error)
	RemoveAssignment(ctx context.Context, actor Actor, serviceID uuid.UUID, index int) (*models.ServiceEvent, error)
	AssignTeam(ctx context.Context, actor Actor, serviceID uuid.UUID, req *TeamAssignmentRequest) (*models.ServiceEvent, error)
	RespondToAssignment(ctx context.Context, actor Actor, serviceID uuid.UUID, index int, status models.AssignmentStatus) (*models.ServiceEvent, error)
	EligibleVolunteers(ctx context.Context, actor Actor, role, date string) ([]models.Volunteer, error)
}

// ScheduleGeneratorInterface defines the interface for AI schedule drafts
type ScheduleGeneratorInterface interface {
	Generate(ctx context.Context, actor Actor, req *GenerateRequest) ([]models.ServiceEvent, error)
}

// WizardServiceInterface defines the interface for onboarding wizard progress
type WizardServiceInterface interface {
	Get(ctx context.Context, actor Actor, scope models.WizardScope) (*WizardState, error)
	Advance(ctx context.Context, actor Actor, scope models.WizardScope) (*WizardState, error)
	SetStep(ctx context.Context, actor Actor, scope models.WizardScope, step int) (*WizardState, error)
	Reset(ctx context.Context, actor Actor, scope models.WizardScope) error
}

// NotificationServiceInterface defines the interface for push subscriptions
type NotificationServiceInterface interface {
	Config() NotificationConfig
	Subscribe(ctx context.Context, actor Actor, req *SubscriptionRequest) (NotificationConfig, error)
	Unsubscribe(ctx context.Context, actor Actor, endpoint string) error
	SendTest(ctx context.Context, actor Actor) (*TestNotificationResponse, error)
}

// AuditServiceInterface defines the interface for the audit log
type AuditServiceInterface interface {
	Record(ctx context.Context, actor Actor, action, entity, entityID string, details interface{})
	List(ctx context.Context, actor Actor, page, pageSize int) (*AuditLogListResponse, error)
}

// ChangePublisher queues service changes for assignee notification
type ChangePublisher interface {
	Publish(change notifier.ServiceChange) bool
}

// Notifier sends a message to a set of users right away
type Notifier interface {
	PushEnabled() bool
	Notify(ctx context.Context, orgID uuid.UUID, userIDs []uuid.UUID, msg notifier.Message) (notifier.Result, error)
}

// Compile-time checks
var (
	_ AccountServiceInterface      = (*AccountService)(nil)
	_ VolunteerServiceInterface    = (*VolunteerService)(nil)
	_ MinistryServiceInterface     = (*MinistryService)(nil)
	_ EventTypeServiceInterface    = (*EventTypeService)(nil)
	_ TeamServiceInterface         = (*TeamService)(nil)
	_ ServiceEventServiceInterface = (*ServiceEventService)(nil)
	_ ScheduleGeneratorInterface   = (*ScheduleGenerator)(nil)
	_ WizardServiceInterface       = (*WizardService)(nil)
	_ NotificationServiceInterface = (*NotificationService)(nil)
	_ AuditServiceInterface        = (*AuditService)(nil)
	_ ChangePublisher              = (*notifier.Dispatcher)(nil)
	_ Notifier                     = (*notifier.Dispatcher)(nil)
)
