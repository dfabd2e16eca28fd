package notifier

import (
	"context"
	"crypto/ecdh"
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"volunteer-scheduler-backend/internal/database/models"
	apperrors "volunteer-scheduler-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func browserSubscription(t *testing.T, endpoint string) models.PushSubscription {
	t.Helper()
	key, err := ecdh.P256().GenerateKey(rand.Reader)
	require.NoError(t, err)
	authSecret := make([]byte, 16)
	_, err = rand.Read(authSecret)
	require.NoError(t, err)

	return models.PushSubscription{
		Endpoint: endpoint,
		P256dh:   base64.RawURLEncoding.EncodeToString(key.PublicKey().Bytes()),
		Auth:     base64.RawURLEncoding.EncodeToString(authSecret),
	}
}

func TestNewWebPushSenderRequiresKeys(t *testing.T) {
	_, err := NewWebPushSender("", "", "mailto:admin@example.org")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotificationSetup(err))
}

func TestWebPushSenderSend(t *testing.T) {
	privateKey, publicKey, err := GenerateVAPIDKeys()
	require.NoError(t, err)

	var status atomic.Int32
	var gotAuth atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth.Store(r.Header.Get("Authorization"))
		w.WriteHeader(int(status.Load()))
	}))
	defer server.Close()

	sender, err := NewWebPushSender(publicKey, privateKey, "mailto:admin@example.org")
	require.NoError(t, err)
	assert.Equal(t, publicKey, sender.PublicKey())

	sub := browserSubscription(t, server.URL+"/push/abc")
	payload := []byte(`{"title":"New assignment"}`)

	t.Run("created", func(t *testing.T) {
		status.Store(http.StatusCreated)
		require.NoError(t, sender.Send(context.Background(), sub, payload))
		assert.True(t, strings.HasPrefix(gotAuth.Load().(string), "vapid "))
	})

	t.Run("gone", func(t *testing.T) {
		status.Store(http.StatusGone)
		assert.ErrorIs(t, sender.Send(context.Background(), sub, payload), ErrSubscriptionGone)
	})

	t.Run("not found", func(t *testing.T) {
		status.Store(http.StatusNotFound)
		assert.ErrorIs(t, sender.Send(context.Background(), sub, payload), ErrSubscriptionGone)
	})

	t.Run("server error", func(t *testing.T) {
		status.Store(http.StatusInternalServerError)
		err := sender.Send(context.Background(), sub, payload)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrSubscriptionGone)
	})
}
