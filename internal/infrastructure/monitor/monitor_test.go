package monitor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pendingStub uint64

func (p pendingStub) Pending() uint64 { return uint64(p) }

func TestMonitorRefresh(t *testing.T) {
	var slotErr error
	m := New(time.Minute, nil,
		Probe{Name: "bolt", Target: PingFunc(func(ctx context.Context) error { return slotErr })},
		Probe{Name: "redis", Target: PingFunc(func(ctx context.Context) error { return nil })},
	)
	m.TrackPending(pendingStub(7))

	assert.False(t, m.IsOnline(), "offline before the first check")

	m.Refresh()
	require.True(t, m.IsOnline())
	status := m.GetStatus()
	assert.Equal(t, map[string]bool{"bolt": true, "redis": true}, status.Backends)
	assert.Equal(t, uint64(7), status.PendingRevision)
	assert.False(t, status.LastCheck.IsZero())

	slotErr = errors.New("closed")
	m.Refresh()
	assert.False(t, m.IsOnline())
	assert.Equal(t, []string{"bolt"}, m.GetStatus().Down())
}

func TestMonitorWithoutProbesIsOnline(t *testing.T) {
	m := New(0, nil)
	m.Refresh()
	assert.True(t, m.IsOnline())
	assert.Empty(t, m.GetStatus().Down())
}

func TestMonitorNilTargetIsDown(t *testing.T) {
	m := New(0, nil, Probe{Name: "postgres"})
	m.Refresh()
	assert.False(t, m.IsOnline())
}

func TestMonitorStartStop(t *testing.T) {
	m := New(10*time.Millisecond, nil, Probe{Name: "memory", Target: PingFunc(func(ctx context.Context) error { return nil })})
	m.Start()
	defer m.Stop()

	assert.Eventually(t, m.IsOnline, time.Second, 5*time.Millisecond)
	m.Stop()
}
