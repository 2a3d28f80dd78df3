package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fastygo/furnish/domain"
	"github.com/fastygo/furnish/repository"
)

// querier is satisfied by *pgxpool.Pool.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
}

type snapshotRepository struct {
	pool querier
	key  string
}

// NewSnapshotRepository returns a Postgres-backed snapshot slot stored as one row of store_snapshots.
func NewSnapshotRepository(pool querier, key string) repository.SnapshotRepository {
	return &snapshotRepository{pool: pool, key: key}
}

func (r *snapshotRepository) Load(ctx context.Context) ([]byte, error) {
	const query = `
	SELECT payload
	FROM store_snapshots
	WHERE key = $1
	`
	var payload []byte
	if err := r.pool.QueryRow(ctx, query, r.key).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, err
	}
	return payload, nil
}

func (r *snapshotRepository) Save(ctx context.Context, payload []byte) error {
	if len(payload) == 0 {
		return domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO store_snapshots (key, payload, updated_at)
	VALUES ($1, $2, NOW())
	ON CONFLICT (key) DO UPDATE
	SET payload = EXCLUDED.payload,
		updated_at = NOW()
	`
	_, err := r.pool.Exec(ctx, query, r.key, payload)
	return err
}

func (r *snapshotRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
