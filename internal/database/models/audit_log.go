package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLog records who changed what inside an organization
type AuditLog struct {
	TenantModel
	ActorID  *uuid.UUID     `json:"actor_id,omitempty" gorm:"type:uuid"`
	Action   string         `json:"action" gorm:"not null;size:50"`
	Entity   string         `json:"entity" gorm:"not null;size:50"`
	EntityID string         `json:"entity_id" gorm:"size:200"`
	Details  datatypes.JSON `json:"details,omitempty" gorm:"type:jsonb"`
}

// TableName returns the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}
