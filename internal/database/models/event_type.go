package models

// EventType is a reusable category a service can be tagged with
type EventType struct {
	TenantModel
	Name  string     `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Color EventColor `json:"color" gorm:"type:varchar(20);not null;default:'blue'"`
}

// TableName returns the table name for EventType
func (EventType) TableName() string {
	return "event_types"
}
