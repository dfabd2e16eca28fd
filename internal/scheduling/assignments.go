// Package scheduling holds the pure rules for a service's embedded
// assignment list. Functions never mutate their inputs.
package scheduling

import (
	"time"

	"volunteer-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

func cloneAssignments(in []models.Assignment) []models.Assignment {
	out := make([]models.Assignment, len(in))
	copy(out, in)
	return out
}

// AddAssignment appends {role, volunteerID} without any duplicate check.
func AddAssignment(service models.ServiceEvent, role string, volunteerID uuid.UUID) models.ServiceEvent {
	assignments := cloneAssignments(service.Assignments)
	service.Assignments = append(assignments, models.Assignment{
		Role:        role,
		VolunteerID: volunteerID,
	})
	return service
}

// RemoveAssignment drops the assignment at index. An out of range index
// returns the service unchanged.
func RemoveAssignment(service models.ServiceEvent, index int) models.ServiceEvent {
	if index < 0 || index >= len(service.Assignments) {
		return service
	}
	assignments := make([]models.Assignment, 0, len(service.Assignments)-1)
	assignments = append(assignments, service.Assignments[:index]...)
	assignments = append(assignments, service.Assignments[index+1:]...)
	service.Assignments = assignments
	return service
}

// AssignTeam appends one assignment per team member, each tagged with the team id.
func AssignTeam(service models.ServiceEvent, role string, team models.Team) models.ServiceEvent {
	assignments := cloneAssignments(service.Assignments)
	teamID := team.ID
	for _, memberID := range team.MemberIDs {
		assignments = append(assignments, models.Assignment{
			Role:        role,
			VolunteerID: memberID,
			TeamID:      &teamID,
		})
	}
	service.Assignments = assignments
	return service
}

// SetAssignmentStatus records a response on the assignment at index.
// The second return value is false when index is out of range.
func SetAssignmentStatus(service models.ServiceEvent, index int, status models.AssignmentStatus) (models.ServiceEvent, bool) {
	if index < 0 || index >= len(service.Assignments) {
		return service, false
	}
	assignments := cloneAssignments(service.Assignments)
	assignments[index].Status = status
	service.Assignments = assignments
	return service, true
}

// EligibleVolunteers returns volunteers holding role, in input order.
// An empty role makes everybody eligible.
func EligibleVolunteers(volunteers []models.Volunteer, role string) []models.Volunteer {
	if role == "" {
		out := make([]models.Volunteer, len(volunteers))
		copy(out, volunteers)
		return out
	}
	out := make([]models.Volunteer, 0, len(volunteers))
	for _, v := range volunteers {
		if v.HasRole(role) {
			out = append(out, v)
		}
	}
	return out
}

// IsAvailable reports whether date is absent from the volunteer's unavailable dates.
func IsAvailable(volunteer models.Volunteer, date time.Time) bool {
	day := date.Format(models.DateLayout)
	for _, d := range volunteer.UnavailableDates {
		if d == day {
			return false
		}
	}
	return true
}

// AvailableOn filters volunteers down to those available on date.
func AvailableOn(volunteers []models.Volunteer, date time.Time) []models.Volunteer {
	out := make([]models.Volunteer, 0, len(volunteers))
	for _, v := range volunteers {
		if IsAvailable(v, date) {
			out = append(out, v)
		}
	}
	return out
}

// NewAssignees returns the volunteer ids present in next but not in prev,
// deduplicated, in order of first appearance.
func NewAssignees(prev, next []models.Assignment) []uuid.UUID {
	before := make(map[uuid.UUID]struct{}, len(prev))
	for _, a := range prev {
		before[a.VolunteerID] = struct{}{}
	}
	var added []uuid.UUID
	seen := make(map[uuid.UUID]struct{})
	for _, a := range next {
		if _, ok := before[a.VolunteerID]; ok {
			continue
		}
		if _, ok := seen[a.VolunteerID]; ok {
			continue
		}
		seen[a.VolunteerID] = struct{}{}
		added = append(added, a.VolunteerID)
	}
	return added
}
