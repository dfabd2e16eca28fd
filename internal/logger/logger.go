package logger

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is a logrus entry pre-populated with request identity.
type Logger struct {
	*logrus.Entry
}

// contextFields are copied from the context when present and non-empty.
// Keys match what the auth and request-id middleware store on gin.Context.
var contextFields = []string{"organization_id", "user_id", "role", "request_id"}

// New returns a logger on the standard logrus instance.
func New() *Logger {
	return &Logger{Entry: logrus.NewEntry(logrus.StandardLogger())}
}

// WithContext tags the entry with the caller and request found in ctx.
// The caller is the first of email, username, user that is set.
func WithContext(ctx context.Context) *Logger {
	fields := logrus.Fields{"user": "unknown"}
	for _, key := range []string{"email", "username", "user"} {
		if v := stringValue(ctx, key); v != "" {
			fields["user"] = v
			break
		}
	}
	for _, key := range contextFields {
		if v := stringValue(ctx, key); v != "" {
			fields[key] = v
		}
	}
	return &Logger{Entry: New().Entry.WithFields(fields)}
}

// Setup switches the standard logger to JSON on out. Unknown levels mean info.
func Setup(level string, out io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil || lvl > logrus.DebugLevel {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

// WithField returns a child logger with one extra field.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithField(key, value)}
}

// WithFields returns a child logger with the given fields added.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{Entry: l.Entry.WithFields(fields)}
}

func stringValue(ctx context.Context, key string) string {
	s, _ := ctx.Value(key).(string)
	return s
}
