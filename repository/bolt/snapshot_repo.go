package bolt

import (
	"context"

	"github.com/fastygo/furnish/domain"
	"github.com/fastygo/furnish/internal/infrastructure/slot"
	"github.com/fastygo/furnish/repository"
)

type snapshotRepository struct {
	store *slot.Store
	key   string
}

// NewSnapshotRepository stores the snapshot under key in a local Bolt slot store.
func NewSnapshotRepository(store *slot.Store, key string) repository.SnapshotRepository {
	return &snapshotRepository{store: store, key: key}
}

func (r *snapshotRepository) Load(ctx context.Context) ([]byte, error) {
	value, found, err := r.store.Get(r.key)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrSnapshotNotFound
	}
	return value, nil
}

func (r *snapshotRepository) Save(ctx context.Context, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.store.Put(r.key, payload)
}

func (r *snapshotRepository) Ping(ctx context.Context) error {
	_, err := r.store.Size()
	return err
}
