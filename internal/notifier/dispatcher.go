package notifier

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"volunteer-scheduler-backend/internal/database/models"
	"volunteer-scheduler-backend/internal/logger"
	"volunteer-scheduler-backend/internal/scheduling"

	"github.com/google/uuid"
)

// ServiceChange describes one write to a service's assignment list
type ServiceChange struct {
	OrganizationID uuid.UUID
	ServiceID      uuid.UUID
	Title          string
	Date           time.Time
	Previous       []models.Assignment
	Current        []models.Assignment
}

// Result counts what one notification round did
type Result struct {
	Pushed  int `json:"pushed"`
	Pruned  int `json:"pruned"`
	Failed  int `json:"failed"`
	Emailed int `json:"emailed"`
}

// DispatcherOptions wires a Dispatcher. Push and Email may be nil to
// disable that channel.
type DispatcherOptions struct {
	Subscriptions SubscriptionStore
	Volunteers    VolunteerLookup
	Push          PushSender
	Email         EmailSender
	AppBaseURL    string
	BufferSize    int
	Timeout       time.Duration
}

// Dispatcher notifies newly added assignees. Changes are queued by Publish
// and handled by a single background goroutine started with Start.
type Dispatcher struct {
	subs       SubscriptionStore
	volunteers VolunteerLookup
	push       PushSender
	email      EmailSender
	appBaseURL string
	timeout    time.Duration
	events     chan ServiceChange
	wg         sync.WaitGroup
}

// NewDispatcher creates a dispatcher; call Start to begin draining events
func NewDispatcher(opts DispatcherOptions) *Dispatcher {
	if opts.BufferSize <= 0 {
		opts.BufferSize = 64
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	return &Dispatcher{
		subs:       opts.Subscriptions,
		volunteers: opts.Volunteers,
		push:       opts.Push,
		email:      opts.Email,
		appBaseURL: opts.AppBaseURL,
		timeout:    opts.Timeout,
		events:     make(chan ServiceChange, opts.BufferSize),
	}
}

// PushEnabled reports whether Web Push delivery is configured
func (d *Dispatcher) PushEnabled() bool {
	return d.push != nil
}

// Start runs the event loop until ctx is cancelled
func (d *Dispatcher) Start(ctx context.Context) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case change := <-d.events:
				d.handle(ctx, change)
			}
		}
	}()
}

// Wait blocks until the event loop has stopped
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Publish queues a change without blocking. It returns false and drops
// the change when the queue is full.
func (d *Dispatcher) Publish(change ServiceChange) bool {
	select {
	case d.events <- change:
		return true
	default:
		logger.New().WithFields(map[string]interface{}{
			"service_id":      change.ServiceID.String(),
			"organization_id": change.OrganizationID.String(),
		}).Warn("Notification queue full, dropping service change")
		return false
	}
}

func (d *Dispatcher) handle(parent context.Context, change ServiceChange) {
	ctx, cancel := context.WithTimeout(parent, d.timeout)
	defer cancel()

	result, err := d.HandleChange(ctx, change)
	log := logger.New().WithFields(map[string]interface{}{
		"service_id": change.ServiceID.String(),
		"pushed":     result.Pushed,
		"pruned":     result.Pruned,
		"failed":     result.Failed,
		"emailed":    result.Emailed,
	})
	if err != nil {
		log.Errorf("Failed to notify assignees: %v", err)
		return
	}
	log.Debug("Service change notified")
}

// HandleChange notifies only the volunteers that are new in change.Current
func (d *Dispatcher) HandleChange(ctx context.Context, change ServiceChange) (Result, error) {
	added := scheduling.NewAssignees(change.Previous, change.Current)
	if len(added) == 0 {
		return Result{}, nil
	}

	msg := Message{
		Title: "New assignment",
		Body:  fmt.Sprintf("You have been scheduled for %s on %s", change.Title, change.Date.Format(models.DateLayout)),
		URL:   d.serviceURL(change.ServiceID),
	}
	return d.Notify(ctx, change.OrganizationID, added, msg)
}

// Notify sends msg to every subscription of userIDs and, when email is
// configured, to each volunteer among userIDs with an email address.
// Gone subscriptions are deleted.
func (d *Dispatcher) Notify(ctx context.Context, orgID uuid.UUID, userIDs []uuid.UUID, msg Message) (Result, error) {
	var result Result

	if d.push != nil {
		if err := d.pushAll(ctx, userIDs, msg, &result); err != nil {
			return result, err
		}
	}

	if d.email != nil && d.volunteers != nil {
		if err := d.emailAll(ctx, orgID, userIDs, msg, &result); err != nil {
			return result, err
		}
	}

	return result, nil
}

func (d *Dispatcher) pushAll(ctx context.Context, userIDs []uuid.UUID, msg Message, result *Result) error {
	subs, err := d.subs.ListByUsers(ctx, userIDs)
	if err != nil {
		return err
	}
	payload, err := msg.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode push payload: %w", err)
	}

	for _, sub := range subs {
		err := d.push.Send(ctx, sub, payload)
		switch {
		case err == nil:
			result.Pushed++
		case errors.Is(err, ErrSubscriptionGone):
			if delErr := d.subs.DeleteByEndpoint(ctx, sub.Endpoint); delErr != nil {
				logger.New().WithField("user_id", sub.UserID.String()).Warnf("Failed to prune push subscription: %v", delErr)
				continue
			}
			result.Pruned++
		default:
			result.Failed++
			logger.New().WithField("user_id", sub.UserID.String()).Warnf("Push delivery failed: %v", err)
		}
	}
	return nil
}

func (d *Dispatcher) emailAll(ctx context.Context, orgID uuid.UUID, userIDs []uuid.UUID, msg Message, result *Result) error {
	volunteers, err := d.volunteers.ListByIDs(ctx, orgID, userIDs)
	if err != nil {
		return err
	}
	for _, v := range volunteers {
		if v.Email == "" {
			continue
		}
		body := msg.Body
		if msg.URL != "" {
			body = fmt.Sprintf("%s\n\n%s", msg.Body, msg.URL)
		}
		if err := d.email.SendEmail(ctx, v.Email, v.Name, msg.Title, body); err != nil {
			result.Failed++
			logger.New().WithField("volunteer_id", v.ID.String()).Warnf("Email delivery failed: %v", err)
			continue
		}
		result.Emailed++
	}
	return nil
}

func (d *Dispatcher) serviceURL(serviceID uuid.UUID) string {
	if d.appBaseURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/services/%s", d.appBaseURL, serviceID)
}
