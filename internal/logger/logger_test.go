package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContextAddsCaller(t *testing.T) {
	var buf bytes.Buffer
	Setup("debug", &buf)
	t.Cleanup(func() { Setup("info", nil) })

	ctx := context.WithValue(context.Background(), "email", "ana@igreja.org") //nolint:staticcheck
	ctx = context.WithValue(ctx, "organization_id", "org-1")                  //nolint:staticcheck
	ctx = context.WithValue(ctx, "request_id", "")                            //nolint:staticcheck

	WithContext(ctx).WithField("service_id", "svc-1").Info("assignment added")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ana@igreja.org", entry["user"])
	assert.Equal(t, "org-1", entry["organization_id"])
	assert.Equal(t, "svc-1", entry["service_id"])
	assert.Equal(t, "assignment added", entry["msg"])
	assert.NotContains(t, entry, "request_id")
}

func TestWithContextUnknownUser(t *testing.T) {
	var buf bytes.Buffer
	Setup("info", &buf)
	t.Cleanup(func() { Setup("info", nil) })

	WithContext(context.Background()).Info("anonymous")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "unknown", entry["user"])
}

func TestSetupLevels(t *testing.T) {
	testCases := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"info":    logrus.InfoLevel,
		"warn":    logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"verbose": logrus.InfoLevel,
		"trace":   logrus.InfoLevel,
	}
	for level, expected := range testCases {
		Setup(level, &bytes.Buffer{})
		assert.Equal(t, expected, logrus.GetLevel(), level)
	}
	Setup("info", nil)
}
