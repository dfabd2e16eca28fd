package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ministry is a named area of service. Its name is the key, unique per
// organization ignoring case.
type Ministry struct {
	BaseModel
	OrganizationID uuid.UUID    `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_ministries_org_name"`
	Name           string       `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	NameKey        string       `json:"-" gorm:"not null;size:100;uniqueIndex:idx_ministries_org_name"`
	Icon           MinistryIcon `json:"icon" gorm:"type:varchar(20);not null;default:'users'"`
}

// TableName returns the table name for Ministry
func (Ministry) TableName() string {
	return "ministries"
}

// BeforeSave keeps the case-folded name in sync for the unique index
func (m *Ministry) BeforeSave(tx *gorm.DB) error {
	m.NameKey = NormalizeMinistryName(m.Name)
	if m.Icon == "" {
		m.Icon = DefaultMinistryIcon
	}
	return nil
}

// NormalizeMinistryName folds a ministry name the way the unique index compares it
func NormalizeMinistryName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
