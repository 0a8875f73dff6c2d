package logging

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, GetLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("WARN"))
	assert.Equal(t, logrus.TraceLevel, GetLevel(" trace "))
	assert.Equal(t, logrus.InfoLevel, GetLevel(""))
	assert.Equal(t, logrus.InfoLevel, GetLevel("loud"))
}

func TestSetup_FileOutput(t *testing.T) {
	prevOut := logrus.StandardLogger().Out
	prevLevel := logrus.GetLevel()
	defer func() {
		logrus.SetOutput(prevOut)
		logrus.SetLevel(prevLevel)
	}()

	logPath := filepath.Join(t.TempDir(), "gymplan")
	require.NoError(t, Setup(LoggerSetupParams{
		LogFileName: logPath,
		LogLevel:    "info",
	}))
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())

	logrus.Info("hello from test")

	content, err := os.ReadFile(logPath + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(content), "hello from test")
}

func TestSetup_SentryWithoutDSN(t *testing.T) {
	err := Setup(LoggerSetupParams{SentryEnabled: true})
	assert.Error(t, err)
}

type recordingTransport struct {
	events []*sentry.Event
}

func (t *recordingTransport) Configure(sentry.ClientOptions) {}

func (t *recordingTransport) SendEvent(event *sentry.Event) {
	t.events = append(t.events, event)
}

func (t *recordingTransport) Flush(time.Duration) bool { return true }

func (t *recordingTransport) FlushWithContext(context.Context) bool { return true }

func (t *recordingTransport) Close() {}

func TestSentryHook_Fire(t *testing.T) {
	transport := &recordingTransport{}
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:       "https://public@sentry.example.com/1",
		Transport: transport,
	})
	require.NoError(t, err)

	hook := NewSentryHook([]logrus.Level{logrus.ErrorLevel})
	hook.hub = sentry.NewHub(client, sentry.NewScope())
	assert.Equal(t, []logrus.Level{logrus.ErrorLevel}, hook.Levels())

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.AddHook(hook)
	logger.WithError(errors.New("store down")).WithField("op", "delete plan node").Error("operation failed")

	require.Len(t, transport.events, 1)
	event := transport.events[0]
	assert.Equal(t, "operation failed", event.Message)
	assert.Equal(t, sentry.LevelError, event.Level)
	assert.Equal(t, "delete plan node", event.Extra["op"])
	require.Len(t, event.Exception, 1)
	assert.Equal(t, "store down", event.Exception[0].Value)
}

func TestSentryLevel(t *testing.T) {
	assert.Equal(t, sentry.LevelFatal, sentryLevel(logrus.PanicLevel))
	assert.Equal(t, sentry.LevelWarning, sentryLevel(logrus.WarnLevel))
	assert.Equal(t, sentry.LevelDebug, sentryLevel(logrus.TraceLevel))
}
