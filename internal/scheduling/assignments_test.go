package scheduling_test

import (
	"testing"
	"time"

	"volunteer-scheduler-backend/internal/database/models"
	"volunteer-scheduler-backend/internal/scheduling"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AssignmentsTestSuite struct {
	suite.Suite
	ana     models.Volunteer
	bruno   models.Volunteer
	service models.ServiceEvent
}

func (s *AssignmentsTestSuite) SetupTest() {
	s.ana = models.Volunteer{Name: "Ana", Roles: []string{"Louvor"}}
	s.ana.ID = uuid.New()
	s.bruno = models.Volunteer{Name: "Bruno", Roles: []string{"Recepção", "Mídia"}, UnavailableDates: []string{"2025-01-05"}}
	s.bruno.ID = uuid.New()

	s.service = models.ServiceEvent{
		Date:  time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
		Title: "Culto de Domingo",
	}
	s.service.ID = uuid.New()
}

func (s *AssignmentsTestSuite) TestAddAssignmentAppends() {
	updated := scheduling.AddAssignment(s.service, "Louvor", s.ana.ID)

	s.Require().Len(updated.Assignments, 1)
	s.Equal("Louvor", updated.Assignments[0].Role)
	s.Equal(s.ana.ID, updated.Assignments[0].VolunteerID)
	s.Empty(s.service.Assignments, "input must not be mutated")
}

func (s *AssignmentsTestSuite) TestAddAssignmentDoesNotAliasInput() {
	base := scheduling.AddAssignment(s.service, "Louvor", s.ana.ID)
	first := scheduling.AddAssignment(base, "Mídia", s.bruno.ID)
	second := scheduling.AddAssignment(base, "Recepção", s.bruno.ID)

	s.Equal("Mídia", first.Assignments[1].Role)
	s.Equal("Recepção", second.Assignments[1].Role)
	s.Len(base.Assignments, 1)
}

func (s *AssignmentsTestSuite) TestDuplicateAssignmentsCoexist() {
	updated := scheduling.AddAssignment(s.service, "Louvor", s.ana.ID)
	updated = scheduling.AddAssignment(updated, "Louvor", s.ana.ID)
	s.Require().Len(updated.Assignments, 2)

	afterFirst := scheduling.RemoveAssignment(updated, 0)
	s.Len(afterFirst.Assignments, 1)
	afterSecond := scheduling.RemoveAssignment(updated, 1)
	s.Len(afterSecond.Assignments, 1)
	s.Equal(afterFirst.Assignments, afterSecond.Assignments)
}

func (s *AssignmentsTestSuite) TestAddThenRemoveRoundTrip() {
	start := scheduling.AddAssignment(s.service, "Mídia", s.bruno.ID)
	added := scheduling.AddAssignment(start, "Louvor", s.ana.ID)
	back := scheduling.RemoveAssignment(added, len(added.Assignments)-1)

	s.Equal(start.Assignments, back.Assignments)
}

func (s *AssignmentsTestSuite) TestRemoveAssignmentOutOfRange() {
	testCases := []struct {
		name  string
		index int
	}{
		{"negative", -1},
		{"past end", 1},
		{"far past end", 42},
	}

	withOne := scheduling.AddAssignment(s.service, "Louvor", s.ana.ID)
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(withOne.Assignments, scheduling.RemoveAssignment(withOne, tc.index).Assignments)
		})
	}

	s.Run("empty list", func() {
		s.Empty(scheduling.RemoveAssignment(s.service, 0).Assignments)
	})
}

func (s *AssignmentsTestSuite) TestAssignTeam() {
	team := models.Team{Name: "Equipe A", MemberIDs: []uuid.UUID{s.ana.ID, s.bruno.ID}}
	team.ID = uuid.New()

	updated := scheduling.AssignTeam(s.service, "Louvor", team)

	s.Require().Len(updated.Assignments, 2)
	for i, a := range updated.Assignments {
		s.Equal("Louvor", a.Role)
		s.Equal(team.MemberIDs[i], a.VolunteerID)
		s.Require().NotNil(a.TeamID)
		s.Equal(team.ID, *a.TeamID)
	}
}

func (s *AssignmentsTestSuite) TestSetAssignmentStatus() {
	withOne := scheduling.AddAssignment(s.service, "Louvor", s.ana.ID)

	updated, ok := scheduling.SetAssignmentStatus(withOne, 0, models.AssignmentStatusConfirmed)
	s.True(ok)
	s.Equal(models.AssignmentStatusConfirmed, updated.Assignments[0].Status)
	s.Empty(withOne.Assignments[0].Status)

	_, ok = scheduling.SetAssignmentStatus(withOne, 3, models.AssignmentStatusDeclined)
	s.False(ok)
}

func (s *AssignmentsTestSuite) TestEligibleVolunteers() {
	roster := []models.Volunteer{s.ana, s.bruno}

	eligible := scheduling.EligibleVolunteers(roster, "Louvor")
	s.Require().Len(eligible, 1)
	s.Equal(s.ana.ID, eligible[0].ID)

	s.Len(scheduling.EligibleVolunteers(roster, ""), 2)
	s.Empty(scheduling.EligibleVolunteers(roster, "Cozinha"))
}

func (s *AssignmentsTestSuite) TestAvailability() {
	day := time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC)

	s.True(scheduling.IsAvailable(s.ana, day))
	s.False(scheduling.IsAvailable(s.bruno, day))

	available := scheduling.AvailableOn([]models.Volunteer{s.ana, s.bruno}, day)
	s.Require().Len(available, 1)
	s.Equal("Ana", available[0].Name)
}

// Scenario: ministry, volunteer and service created, one assignment added.
func (s *AssignmentsTestSuite) TestScheduleScenario() {
	updated := scheduling.AddAssignment(s.service, "Louvor", s.ana.ID)

	s.Len(updated.Assignments, 1)
	eligible := scheduling.EligibleVolunteers([]models.Volunteer{s.ana, s.bruno}, "Louvor")
	s.Equal([]models.Volunteer{s.ana}, eligible)

	// removing the ministry leaves the roles and assignment untouched
	ministries := []models.Ministry{}
	s.Contains(s.ana.Roles, "Louvor")
	s.Equal(models.DefaultMinistryIcon, scheduling.ResolveMinistryIcon(ministries, "Louvor"))
	s.Equal([]string{"Louvor"}, scheduling.UnknownRoles(s.ana, ministries))
}

func TestAssignmentsTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentsTestSuite))
}

func TestNewAssignees(t *testing.T) {
	ana, bruno, carla := uuid.New(), uuid.New(), uuid.New()

	prev := []models.Assignment{{Role: "Louvor", VolunteerID: ana}}
	next := []models.Assignment{
		{Role: "Louvor", VolunteerID: ana},
		{Role: "Mídia", VolunteerID: carla},
		{Role: "Recepção", VolunteerID: bruno},
		{Role: "Louvor", VolunteerID: carla},
	}

	assert.Equal(t, []uuid.UUID{carla, bruno}, scheduling.NewAssignees(prev, next))
	assert.Empty(t, scheduling.NewAssignees(next, prev))
	assert.Empty(t, scheduling.NewAssignees(nil, nil))
}

func TestResolveVolunteer(t *testing.T) {
	ana := models.Volunteer{Name: "Ana"}
	ana.ID = uuid.New()

	found, ok := scheduling.ResolveVolunteer([]models.Volunteer{ana}, ana.ID)
	require.True(t, ok)
	assert.Equal(t, "Ana", found.Name)

	missing := uuid.New()
	placeholder, ok := scheduling.ResolveVolunteer([]models.Volunteer{ana}, missing)
	assert.False(t, ok)
	assert.Equal(t, scheduling.UnknownVolunteerName, placeholder.Name)
	assert.Equal(t, missing, placeholder.ID)
}

func TestResolveMinistryIcon(t *testing.T) {
	ministries := []models.Ministry{
		{Name: "Louvor", Icon: models.MinistryIconMusic},
		{Name: "Broken", Icon: "rocket"},
	}

	assert.Equal(t, models.MinistryIconMusic, scheduling.ResolveMinistryIcon(ministries, "louvor"))
	assert.Equal(t, models.DefaultMinistryIcon, scheduling.ResolveMinistryIcon(ministries, "Broken"))
	assert.Equal(t, models.DefaultMinistryIcon, scheduling.ResolveMinistryIcon(ministries, "Missing"))
}

func TestResolveEventType(t *testing.T) {
	youth := models.EventType{Name: "Jovens", Color: models.EventColorPurple}
	youth.ID = uuid.New()
	types := []models.EventType{youth}

	assert.Equal(t, "Jovens", scheduling.ResolveEventType(types, &youth.ID).Name)

	other := uuid.New()
	fallback := scheduling.ResolveEventType(types, &other)
	assert.Equal(t, scheduling.GeneralEventTypeName, fallback.Name)
	assert.Equal(t, models.EventColorBlue, fallback.Color)

	assert.Equal(t, scheduling.GeneralEventTypeName, scheduling.ResolveEventType(types, nil).Name)
}

func TestVolunteersByName(t *testing.T) {
	first := models.Volunteer{Name: "Ana"}
	first.ID = uuid.New()
	second := models.Volunteer{Name: "Ana"}
	second.ID = uuid.New()

	index := scheduling.VolunteersByName([]models.Volunteer{first, second})
	assert.Equal(t, first.ID, index["Ana"])
	_, ok := index["ana"]
	assert.False(t, ok, "matching is exact")
}
