package models

import (
	"github.com/google/uuid"
)

// Profile is an authenticated identity. Volunteers who sign up share their
// profile id with their Volunteer row.
type Profile struct {
	BaseModel
	OrganizationID uuid.UUID   `json:"organization_id" gorm:"type:uuid;not null;index"`
	Email          string      `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash   string      `json:"-" gorm:"not null;size:100"`
	FullName       string      `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	Role           ProfileRole `json:"role" gorm:"type:varchar(20);not null;default:'volunteer'"`
}

// TableName returns the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}

// IsAdmin reports whether the profile has administrator rights
func (p Profile) IsAdmin() bool {
	return p.Role == ProfileRoleAdmin
}
