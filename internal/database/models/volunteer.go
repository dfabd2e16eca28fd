package models

import (
	"gorm.io/datatypes"
)

// Volunteer is a person who can be scheduled. Roles are ministry names and
// are not checked against the ministries table.
type Volunteer struct {
	TenantModel
	Name             string                      `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Roles            datatypes.JSONSlice[string] `json:"roles" gorm:"type:jsonb;not null;default:'[]'"`
	AvatarURL        string                      `json:"avatar_url,omitempty" gorm:"size:500"`
	Email            string                      `json:"email,omitempty" gorm:"size:255"`
	UnavailableDates datatypes.JSONSlice[string] `json:"unavailable_dates,omitempty" gorm:"type:jsonb;not null;default:'[]'"`
}

// TableName returns the table name for Volunteer
func (Volunteer) TableName() string {
	return "volunteers"
}

// HasRole reports whether the volunteer lists the given ministry name
func (v Volunteer) HasRole(role string) bool {
	for _, r := range v.Roles {
		if r == role {
			return true
		}
	}
	return false
}
