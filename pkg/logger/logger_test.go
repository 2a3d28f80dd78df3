package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRequestIDAddsField(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := New(Config{Level: "debug", Service: "furnish", Output: buf})
	require.NoError(t, err)

	ctx := ContextWithRequestID(context.Background(), "req-123")
	WithRequestID(ctx, log).Info("hello")

	assert.Contains(t, buf.String(), `"request_id":"req-123"`)
	assert.Contains(t, buf.String(), `"service":"furnish"`)
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := New(Config{Level: "loud", Output: buf})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestWithRequestIDWithoutID(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := New(Config{Encoding: "console", Output: buf})
	require.NoError(t, err)

	assert.Same(t, log, WithRequestID(context.Background(), log))
	assert.Empty(t, RequestID(context.Background()))
}
