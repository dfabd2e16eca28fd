package testutils

import (
	"fmt"
	"time"

	"volunteer-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Igreja Teste",
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// ProfileFactory provides methods to create test Profile data
type ProfileFactory struct{}

// NewProfileFactory creates a new ProfileFactory
func NewProfileFactory() *ProfileFactory {
	return &ProfileFactory{}
}

// Create creates a test volunteer Profile with a unique email
func (f *ProfileFactory) Create() *models.Profile {
	id := uuid.New()
	return &models.Profile{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		Email:          fmt.Sprintf("user-%s@example.org", id.String()[:8]),
		PasswordHash:   "$2a$10$abcdefghijklmnopqrstuuJ9z7nq0Ne7P3fN1f6U0S1rZ4y3kY5sC",
		FullName:       "Test User",
		Role:           models.ProfileRoleVolunteer,
	}
}

// WithOrganization sets the organization of the profile
func (f *ProfileFactory) WithOrganization(orgID uuid.UUID) *models.Profile {
	p := f.Create()
	p.OrganizationID = orgID
	return p
}

// Admin creates an admin profile in the organization
func (f *ProfileFactory) Admin(orgID uuid.UUID) *models.Profile {
	p := f.WithOrganization(orgID)
	p.Role = models.ProfileRoleAdmin
	return p
}

// VolunteerFactory provides methods to create test Volunteer data
type VolunteerFactory struct{}

// NewVolunteerFactory creates a new VolunteerFactory
func NewVolunteerFactory() *VolunteerFactory {
	return &VolunteerFactory{}
}

// Create creates a test Volunteer with default values
func (f *VolunteerFactory) Create() *models.Volunteer {
	v := &models.Volunteer{
		Name:             "Ana",
		Roles:            []string{"Louvor"},
		Email:            "ana@example.org",
		UnavailableDates: []string{},
	}
	v.ID = uuid.New()
	v.OrganizationID = uuid.New()
	return v
}

// WithOrganization creates a volunteer in the organization
func (f *VolunteerFactory) WithOrganization(orgID uuid.UUID) *models.Volunteer {
	v := f.Create()
	v.OrganizationID = orgID
	return v
}

// Named creates a volunteer in the organization with a name and roles
func (f *VolunteerFactory) Named(orgID uuid.UUID, name string, roles ...string) *models.Volunteer {
	v := f.WithOrganization(orgID)
	v.Name = name
	v.Roles = roles
	v.Email = ""
	return v
}

// MinistryFactory provides methods to create test Ministry data
type MinistryFactory struct{}

// NewMinistryFactory creates a new MinistryFactory
func NewMinistryFactory() *MinistryFactory {
	return &MinistryFactory{}
}

// Create creates a test Ministry with default values
func (f *MinistryFactory) Create() *models.Ministry {
	m := &models.Ministry{
		Name: "Louvor",
		Icon: models.MinistryIconMusic,
	}
	m.OrganizationID = uuid.New()
	return m
}

// Named creates a ministry in the organization
func (f *MinistryFactory) Named(orgID uuid.UUID, name string) *models.Ministry {
	m := f.Create()
	m.OrganizationID = orgID
	m.Name = name
	return m
}

// EventTypeFactory provides methods to create test EventType data
type EventTypeFactory struct{}

// NewEventTypeFactory creates a new EventTypeFactory
func NewEventTypeFactory() *EventTypeFactory {
	return &EventTypeFactory{}
}

// WithOrganization creates an event type in the organization
func (f *EventTypeFactory) WithOrganization(orgID uuid.UUID) *models.EventType {
	et := &models.EventType{
		Name:  "Culto de Domingo",
		Color: models.EventColorBlue,
	}
	et.ID = uuid.New()
	et.OrganizationID = orgID
	return et
}

// ServiceEventFactory provides methods to create test ServiceEvent data
type ServiceEventFactory struct{}

// NewServiceEventFactory creates a new ServiceEventFactory
func NewServiceEventFactory() *ServiceEventFactory {
	return &ServiceEventFactory{}
}

// OnDate creates a service without assignments on the given YYYY-MM-DD date
func (f *ServiceEventFactory) OnDate(orgID uuid.UUID, date string) *models.ServiceEvent {
	day, err := time.Parse(models.DateLayout, date)
	if err != nil {
		panic(err)
	}
	s := &models.ServiceEvent{
		Date:        day,
		Title:       "Culto",
		Assignments: []models.Assignment{},
	}
	s.ID = uuid.New()
	s.OrganizationID = orgID
	return s
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// WithMembers creates a team in the organization with the given members
func (f *TeamFactory) WithMembers(orgID uuid.UUID, members ...uuid.UUID) *models.Team {
	t := &models.Team{
		Name:      "Equipe A",
		MemberIDs: members,
	}
	t.ID = uuid.New()
	t.OrganizationID = orgID
	return t
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization *OrganizationFactory
	Profile      *ProfileFactory
	Volunteer    *VolunteerFactory
	Ministry     *MinistryFactory
	EventType    *EventTypeFactory
	ServiceEvent *ServiceEventFactory
	Team         *TeamFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		Profile:      NewProfileFactory(),
		Volunteer:    NewVolunteerFactory(),
		Ministry:     NewMinistryFactory(),
		EventType:    NewEventTypeFactory(),
		ServiceEvent: NewServiceEventFactory(),
		Team:         NewTeamFactory(),
	}
}
