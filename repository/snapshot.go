package repository

import "context"

// SnapshotRepository is the durable slot holding the serialised store state under one key.
// Load returns domain.ErrSnapshotNotFound when nothing has ever been saved.
type SnapshotRepository interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, payload []byte) error
	Ping(ctx context.Context) error
}
