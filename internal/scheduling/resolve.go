package scheduling

import (
	"volunteer-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

// Fallbacks used when a soft reference points at nothing.
const (
	UnknownVolunteerName = "Unknown volunteer"
	GeneralEventTypeName = "General"
)

// ResolveVolunteer looks a volunteer up by id. A dangling id yields a
// placeholder named UnknownVolunteerName and false.
func ResolveVolunteer(volunteers []models.Volunteer, id uuid.UUID) (models.Volunteer, bool) {
	for _, v := range volunteers {
		if v.ID == id {
			return v, true
		}
	}
	placeholder := models.Volunteer{Name: UnknownVolunteerName}
	placeholder.ID = id
	return placeholder, false
}

// ResolveMinistryIcon returns the icon of the ministry named role, compared
// case-insensitively, or the default icon.
func ResolveMinistryIcon(ministries []models.Ministry, role string) models.MinistryIcon {
	key := models.NormalizeMinistryName(role)
	for _, m := range ministries {
		if models.NormalizeMinistryName(m.Name) == key {
			if m.Icon.IsValid() {
				return m.Icon
			}
			break
		}
	}
	return models.DefaultMinistryIcon
}

// ResolveEventType returns the referenced event type or a "General" blue one.
func ResolveEventType(eventTypes []models.EventType, id *uuid.UUID) models.EventType {
	if id != nil {
		for _, et := range eventTypes {
			if et.ID == *id {
				return et
			}
		}
	}
	return models.EventType{Name: GeneralEventTypeName, Color: models.DefaultEventColor}
}

// VolunteersByName indexes a roster by exact display name. When two
// volunteers share a name the first one wins.
func VolunteersByName(volunteers []models.Volunteer) map[string]uuid.UUID {
	index := make(map[string]uuid.UUID, len(volunteers))
	for _, v := range volunteers {
		if _, ok := index[v.Name]; !ok {
			index[v.Name] = v.ID
		}
	}
	return index
}

// UnknownRoles lists the volunteer's roles that name no existing ministry.
func UnknownRoles(volunteer models.Volunteer, ministries []models.Ministry) []string {
	known := make(map[string]struct{}, len(ministries))
	for _, m := range ministries {
		known[models.NormalizeMinistryName(m.Name)] = struct{}{}
	}
	var unknown []string
	for _, r := range volunteer.Roles {
		if _, ok := known[models.NormalizeMinistryName(r)]; !ok {
			unknown = append(unknown, r)
		}
	}
	return unknown
}
