package notifier

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"volunteer-scheduler-backend/internal/database/models"
	apperrors "volunteer-scheduler-backend/internal/errors"

	webpush "github.com/SherClockHolmes/webpush-go"
)

const (
	defaultPushTTL     = 24 * 60 * 60
	defaultPushTimeout = 15 * time.Second
)

// WebPushSender sends VAPID-signed Web Push messages
type WebPushSender struct {
	publicKey  string
	privateKey string
	subscriber string
	httpClient *http.Client
}

// NewWebPushSender creates a sender. Missing keys yield a NotificationSetupError
// so callers can fall back to simulated notifications.
func NewWebPushSender(publicKey, privateKey, subscriber string) (*WebPushSender, error) {
	if publicKey == "" || privateKey == "" {
		return nil, apperrors.NewNotificationSetupError("web push disabled", apperrors.ErrVAPIDKeysNotSet)
	}
	return &WebPushSender{
		publicKey:  publicKey,
		privateKey: privateKey,
		subscriber: subscriber,
		httpClient: &http.Client{Timeout: defaultPushTimeout},
	}, nil
}

// PublicKey returns the VAPID application server key handed to browsers
func (s *WebPushSender) PublicKey() string {
	return s.publicKey
}

// Send delivers payload to sub. 404 and 410 map to ErrSubscriptionGone.
func (s *WebPushSender) Send(ctx context.Context, sub models.PushSubscription, payload []byte) error {
	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			Auth:   sub.Auth,
			P256dh: sub.P256dh,
		},
	}, &webpush.Options{
		HTTPClient:      s.httpClient,
		Subscriber:      s.subscriber,
		VAPIDPublicKey:  s.publicKey,
		VAPIDPrivateKey: s.privateKey,
		TTL:             defaultPushTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to send push notification: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return ErrSubscriptionGone
	case resp.StatusCode >= 300:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("push service returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// GenerateVAPIDKeys creates a fresh key pair for VAPID_PRIVATE_KEY / VAPID_PUBLIC_KEY
func GenerateVAPIDKeys() (privateKey, publicKey string, err error) {
	return webpush.GenerateVAPIDKeys()
}
