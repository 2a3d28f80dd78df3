package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestShutdownRunsHooksInReverse(t *testing.T) {
	m := New(time.Second, nil)
	var order []string
	m.Register("slot", func(ctx context.Context) error {
		order = append(order, "slot")
		return nil
	})
	m.RegisterCloser("redis", closerFunc(func() error {
		order = append(order, "redis")
		return nil
	}))
	m.Register("snapshot_processor", func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		order = append(order, "snapshot_processor")
		return nil
	})

	require.NoError(t, m.Shutdown(context.Background()))
	assert.Equal(t, []string{"snapshot_processor", "redis", "slot"}, order)

	require.NoError(t, m.Shutdown(context.Background()))
	assert.Len(t, order, 3, "hooks run once")
}

func TestShutdownJoinsErrors(t *testing.T) {
	m := New(time.Second, nil)
	first := errors.New("first")
	second := errors.New("second")
	ran := 0
	m.Register("a", func(ctx context.Context) error { ran++; return first })
	m.Register("b", func(ctx context.Context) error { ran++; return nil })
	m.Register("c", func(ctx context.Context) error { ran++; return second })

	err := m.Shutdown(context.Background())
	assert.ErrorIs(t, err, first)
	assert.ErrorIs(t, err, second)
	assert.Equal(t, 3, ran)
}

func TestWaitShutsDownOnCancel(t *testing.T) {
	m := New(time.Second, nil)
	stopped := make(chan struct{})
	m.Register("server", func(ctx context.Context) error {
		close(stopped)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, m.Wait(ctx))

	select {
	case <-stopped:
	default:
		t.Fatal("hook did not run")
	}
}
