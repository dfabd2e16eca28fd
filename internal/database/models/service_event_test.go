package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceEventJSONDate(t *testing.T) {
	svc := ServiceEvent{
		Date:        time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
		Title:       "Culto",
		Assignments: []Assignment{{Role: "Louvor", VolunteerID: uuid.New()}},
	}
	svc.ID = uuid.New()
	svc.OrganizationID = uuid.New()

	raw, err := json.Marshal(svc)
	require.NoError(t, err)

	var wire map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &wire))
	assert.Equal(t, "2025-01-05", wire["date"])
	assert.Equal(t, svc.ID.String(), wire["id"])
	assert.Equal(t, svc.OrganizationID.String(), wire["organization_id"])
	assert.Equal(t, "Culto", wire["title"])

	var decoded ServiceEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, svc.Date.Equal(decoded.Date))
	assert.Equal(t, svc.ID, decoded.ID)
	assert.Equal(t, svc.Assignments, decoded.Assignments)
}

func TestServiceEventUnmarshalDateForms(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "calendar date", body: `{"date":"2025-01-12"}`, want: "2025-01-12"},
		{name: "timestamp", body: `{"date":"2025-01-12T10:30:00Z"}`, want: "2025-01-12"},
		{name: "absent", body: `{"title":"Culto"}`, want: "0001-01-01"},
		{name: "malformed", body: `{"date":"12/01/2025"}`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var svc ServiceEvent
			err := json.Unmarshal([]byte(tc.body), &svc)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, svc.DateString())
		})
	}
}
