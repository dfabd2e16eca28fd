// Package notifier delivers assignment notifications by Web Push and email.
package notifier

import (
	"context"
	"encoding/json"
	"errors"

	"volunteer-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

// ErrSubscriptionGone is returned by a PushSender when the push service
// reports the endpoint as expired (HTTP 404 or 410).
var ErrSubscriptionGone = errors.New("push subscription gone")

// Message is the payload shown by the browser notification
type Message struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url"`
}

// Encode marshals the message into the push payload
func (m Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// PushSender delivers one encrypted payload to one subscription
type PushSender interface {
	Send(ctx context.Context, sub models.PushSubscription, payload []byte) error
}

// EmailSender delivers one plain notification email
type EmailSender interface {
	SendEmail(ctx context.Context, toEmail, toName, subject, textBody string) error
}

// SubscriptionStore is the storage the dispatcher needs for subscriptions
type SubscriptionStore interface {
	ListByUsers(ctx context.Context, userIDs []uuid.UUID) ([]models.PushSubscription, error)
	DeleteByEndpoint(ctx context.Context, endpoint string) error
}

// VolunteerLookup resolves volunteer ids to roster entries
type VolunteerLookup interface {
	ListByIDs(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]models.Volunteer, error)
}
