package models

import (
	"github.com/google/uuid"
)

// WizardProgress is the persisted step counter of an onboarding wizard.
// OwnerID is the organization id for the organization scope and the
// profile id for the user scope.
type WizardProgress struct {
	BaseModel
	Scope   WizardScope `json:"scope" gorm:"type:varchar(20);not null;uniqueIndex:idx_wizard_scope_owner"`
	OwnerID uuid.UUID   `json:"owner_id" gorm:"type:uuid;not null;uniqueIndex:idx_wizard_scope_owner"`
	Step    int         `json:"step" gorm:"not null;default:0"`
}

// TableName returns the table name for WizardProgress
func (WizardProgress) TableName() string {
	return "wizard_progress"
}

// IsComplete reports whether the wizard reached its terminal step
func (w WizardProgress) IsComplete() bool {
	return w.Step >= w.Scope.TerminalStep()
}
