package models

import (
	"github.com/google/uuid"
)

// PushSubscription is a browser push endpoint registered by a user
type PushSubscription struct {
	BaseModel
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index"`
	Endpoint       string    `json:"endpoint" gorm:"uniqueIndex;not null;type:text"`
	P256dh         string    `json:"p256dh" gorm:"not null;size:200"`
	Auth           string    `json:"auth" gorm:"not null;size:100"`
}

// TableName returns the table name for PushSubscription
func (PushSubscription) TableName() string {
	return "push_subscriptions"
}
