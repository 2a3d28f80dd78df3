package memory

import (
	"context"
	"sync"

	"github.com/fastygo/furnish/domain"
	"github.com/fastygo/furnish/repository"
)

// SnapshotRepository keeps the slot in process memory. It backs tests and the
// "memory" store backend.
type SnapshotRepository struct {
	mu      sync.Mutex
	payload []byte
	present bool
	saves   int
	failErr error
}

// NewSnapshotRepository returns an empty slot.
func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{}
}

// NewSnapshotRepositoryWith returns a slot that already holds payload.
func NewSnapshotRepositoryWith(payload []byte) *SnapshotRepository {
	return &SnapshotRepository{payload: append([]byte(nil), payload...), present: true}
}

func (r *SnapshotRepository) Load(ctx context.Context) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.present {
		return nil, domain.ErrSnapshotNotFound
	}
	return append([]byte(nil), r.payload...), nil
}

func (r *SnapshotRepository) Save(ctx context.Context, payload []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return r.failErr
	}
	r.payload = append([]byte(nil), payload...)
	r.present = true
	r.saves++
	return nil
}

func (r *SnapshotRepository) Ping(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failErr
}

// FailWith makes every following Save and Ping return err; nil restores normal behaviour.
func (r *SnapshotRepository) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failErr = err
}

// Saves reports how many times Save succeeded.
func (r *SnapshotRepository) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

var _ repository.SnapshotRepository = (*SnapshotRepository)(nil)
