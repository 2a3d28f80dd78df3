package usecase

import (
	"context"

	"github.com/fastygo/furnish/domain"
)

// SnapshotSink receives the full store state after every applied mutation.
// Submit must not block on durable storage.
type SnapshotSink interface {
	Submit(ctx context.Context, snapshot domain.Snapshot)
}
