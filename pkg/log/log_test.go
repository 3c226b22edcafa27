package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogger(t *testing.T) (*bytes.Buffer, Logger) {
	t.Helper()

	buf := &bytes.Buffer{}
	base := logrus.New()
	base.SetOutput(buf)
	base.SetFormatter(&logrus.JSONFormatter{})
	base.SetLevel(logrus.DebugLevel)

	return buf, &logger{entry: logrus.NewEntry(base)}
}

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	require.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestWithFields_DevelopmentFiltersNoise(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf, l := captureLogger(t)

	l.WithFields(Fields{
		"snapshot_id": "abc",
		"user_agent":  "curl",
		"path":        "/api/status",
	}).Info("teste")

	out := buf.String()
	assert.Contains(t, out, `"snapshot_id":"abc"`)
	assert.Contains(t, out, `"path":"/api/status"`)
	assert.NotContains(t, out, "user_agent")
}

func TestWithFields_ProductionKeepsEverything(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf, l := captureLogger(t)

	l.WithField("user_agent", "curl").Info("teste")

	assert.Contains(t, buf.String(), `"user_agent":"curl"`)
}

func TestWithContext(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf, l := captureLogger(t)

	ctx, id := WithCorrelationID(context.Background())
	l.WithContext(ctx).Info("teste")

	assert.Contains(t, buf.String(), id)
}

func TestConfigure(t *testing.T) {
	previous := logrus.GetLevel()
	t.Cleanup(func() { logrus.SetLevel(previous) })

	Configure("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Configure("verboso")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
