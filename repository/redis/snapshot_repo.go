package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/fastygo/furnish/domain"
	"github.com/fastygo/furnish/repository"
)

// cmdable is the subset of the go-redis client used by the snapshot slot.
type cmdable interface {
	Get(ctx context.Context, key string) *redislib.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redislib.StatusCmd
	Ping(ctx context.Context) *redislib.StatusCmd
}

type snapshotRepository struct {
	client cmdable
	prefix string
	key    string
}

// NewSnapshotRepository creates a Redis-backed snapshot slot. The snapshot never expires.
func NewSnapshotRepository(client cmdable, key string) repository.SnapshotRepository {
	return &snapshotRepository{
		client: client,
		prefix: "store:",
		key:    key,
	}
}

func (r *snapshotRepository) Load(ctx context.Context) ([]byte, error) {
	result, err := r.client.Get(ctx, r.slotKey()).Bytes()
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, err
	}
	return result, nil
}

func (r *snapshotRepository) Save(ctx context.Context, payload []byte) error {
	return r.client.Set(ctx, r.slotKey(), payload, 0).Err()
}

func (r *snapshotRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *snapshotRepository) slotKey() string {
	return fmt.Sprintf("%s%s", r.prefix, r.key)
}
