package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DateLayout is the wire and storage format of calendar dates
const DateLayout = "2006-01-02"

// Assignment pairs a role with a volunteer inside one service. It has no
// identity of its own; duplicates are allowed and removal is by index.
type Assignment struct {
	Role        string           `json:"role"`
	VolunteerID uuid.UUID        `json:"volunteerId"`
	TeamID      *uuid.UUID       `json:"teamId,omitempty"`
	Status      AssignmentStatus `json:"status,omitempty"`
}

// ServiceEvent is one scheduled occurrence needing volunteer coverage
type ServiceEvent struct {
	TenantModel
	Date        time.Time                       `json:"date" gorm:"type:date;not null;index"`
	Title       string                          `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	EventTypeID *uuid.UUID                      `json:"event_type_id,omitempty" gorm:"type:uuid"`
	Assignments datatypes.JSONSlice[Assignment] `json:"assignments" gorm:"type:jsonb;not null;default:'[]'"`
}

// TableName returns the table name for ServiceEvent
func (ServiceEvent) TableName() string {
	return "services"
}

// DateString returns the service date as YYYY-MM-DD
func (s ServiceEvent) DateString() string {
	return s.Date.Format(DateLayout)
}

// MarshalJSON writes date as YYYY-MM-DD, the same form requests use.
func (s ServiceEvent) MarshalJSON() ([]byte, error) {
	type plain ServiceEvent
	return json.Marshal(struct {
		plain
		Date string `json:"date"`
	}{plain: plain(s), Date: s.DateString()})
}

// UnmarshalJSON accepts date as YYYY-MM-DD or as an RFC 3339 timestamp.
func (s *ServiceEvent) UnmarshalJSON(data []byte) error {
	type plain ServiceEvent
	aux := struct {
		*plain
		Date string `json:"date"`
	}{plain: (*plain)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Date == "" {
		return nil
	}
	date, err := time.Parse(DateLayout, aux.Date)
	if err != nil {
		ts, tsErr := time.Parse(time.RFC3339, aux.Date)
		if tsErr != nil {
			return fmt.Errorf("service date %q: %w", aux.Date, err)
		}
		y, m, d := ts.UTC().Date()
		date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	s.Date = date
	return nil
}
