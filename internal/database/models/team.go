package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Team is a reusable group of volunteers that can be scheduled together
type Team struct {
	TenantModel
	Name      string                         `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	MemberIDs datatypes.JSONSlice[uuid.UUID] `json:"member_ids" gorm:"type:jsonb;not null;default:'[]'"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
