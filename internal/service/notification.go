package service

import (
	"context"
	"strings"

	"volunteer-scheduler-backend/internal/database/models"
	"volunteer-scheduler-backend/internal/logger"
	"volunteer-scheduler-backend/internal/notifier"
	"volunteer-scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Notification delivery modes
const (
	NotificationModePush      = "push"
	NotificationModeSimulated = "simulated"
)

// NotificationService stores push subscriptions and sends test messages.
// Without VAPID keys it reports the simulated mode instead of failing.
type NotificationService struct {
	repo      repository.PushSubscriptionRepositoryInterface
	notifier  Notifier
	publicKey string
	validator *validator.Validate
}

// NewNotificationService creates a new NotificationService. publicKey is
// empty when Web Push is not configured.
func NewNotificationService(repo repository.PushSubscriptionRepositoryInterface, n Notifier, publicKey string, validator *validator.Validate) *NotificationService {
	return &NotificationService{
		repo:      repo,
		notifier:  n,
		publicKey: publicKey,
		validator: validator,
	}
}

// NotificationConfig tells the client how to subscribe
type NotificationConfig struct {
	Mode      string `json:"mode"`
	PublicKey string `json:"public_key,omitempty"`
}

// SubscriptionKeys are the browser-generated encryption keys
type SubscriptionKeys struct {
	P256dh string `json:"p256dh" validate:"required"`
	Auth   string `json:"auth" validate:"required"`
}

// SubscriptionRequest mirrors the browser PushSubscription JSON
type SubscriptionRequest struct {
	Endpoint string           `json:"endpoint" validate:"required,url,max=1000"`
	Keys     SubscriptionKeys `json:"keys" validate:"required"`
}

// TestNotificationResponse reports how a test notification was delivered
type TestNotificationResponse struct {
	Mode    string           `json:"mode"`
	Message notifier.Message `json:"message"`
	Result  notifier.Result  `json:"result"`
}

// Config returns the public key in push mode, or the simulated mode
func (s *NotificationService) Config() NotificationConfig {
	if !s.pushEnabled() {
		return NotificationConfig{Mode: NotificationModeSimulated}
	}
	return NotificationConfig{Mode: NotificationModePush, PublicKey: s.publicKey}
}

// Subscribe stores the caller's subscription. In simulated mode nothing is
// stored and the simulated config is returned.
func (s *NotificationService) Subscribe(ctx context.Context, actor Actor, req *SubscriptionRequest) (NotificationConfig, error) {
	if err := validate(s.validator, req); err != nil {
		return NotificationConfig{}, err
	}
	cfg := s.Config()
	if cfg.Mode == NotificationModeSimulated {
		return cfg, nil
	}

	sub := &models.PushSubscription{
		UserID:         actor.UserID,
		OrganizationID: actor.OrganizationID,
		Endpoint:       strings.TrimSpace(req.Endpoint),
		P256dh:         req.Keys.P256dh,
		Auth:           req.Keys.Auth,
	}
	if err := s.repo.Upsert(ctx, sub); err != nil {
		return NotificationConfig{}, err
	}
	return cfg, nil
}

// Unsubscribe removes one of the caller's subscriptions
func (s *NotificationService) Unsubscribe(ctx context.Context, actor Actor, endpoint string) error {
	return s.repo.DeleteForUser(ctx, actor.UserID, strings.TrimSpace(endpoint))
}

// SendTest pushes a test message to the caller's own subscriptions
func (s *NotificationService) SendTest(ctx context.Context, actor Actor) (*TestNotificationResponse, error) {
	msg := notifier.Message{
		Title: "Test notification",
		Body:  "Notifications are working",
	}
	if !s.pushEnabled() {
		return &TestNotificationResponse{Mode: NotificationModeSimulated, Message: msg}, nil
	}

	result, err := s.notifier.Notify(ctx, actor.OrganizationID, []uuid.UUID{actor.UserID}, msg)
	if err != nil {
		return nil, err
	}
	if result.Pushed == 0 {
		logger.WithContext(ctx).Info("No live push subscription for test notification, falling back to simulated")
		return &TestNotificationResponse{Mode: NotificationModeSimulated, Message: msg, Result: result}, nil
	}
	return &TestNotificationResponse{Mode: NotificationModePush, Message: msg, Result: result}, nil
}

func (s *NotificationService) pushEnabled() bool {
	return s.notifier != nil && s.notifier.PushEnabled() && s.publicKey != ""
}
