package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/furnish/domain"
)

func TestSnapshotRepositoryLoadMissing(t *testing.T) {
	repo := NewSnapshotRepository(&fakeQuerier{}, "furnishing-store")
	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}

func TestSnapshotRepositorySaveThenLoad(t *testing.T) {
	fake := &fakeQuerier{}
	repo := NewSnapshotRepository(fake, "furnishing-store")
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, []byte(`{"version":1}`)))
	require.Len(t, fake.execArgs, 1)
	assert.Equal(t, "furnishing-store", fake.execArgs[0][0])

	raw, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"version":1}`, string(raw))
	assert.Equal(t, []any{"furnishing-store"}, fake.queryArgs)
}

func TestSnapshotRepositoryRejectsEmptyPayload(t *testing.T) {
	repo := NewSnapshotRepository(&fakeQuerier{}, "k")
	err := repo.Save(context.Background(), nil)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestSnapshotRepositoryPropagatesScanErrors(t *testing.T) {
	repo := NewSnapshotRepository(&fakeQuerier{scanErr: errors.New("conn reset")}, "k")
	_, err := repo.Load(context.Background())
	assert.EqualError(t, err, "conn reset")
}

type fakeQuerier struct {
	stored    []byte
	scanErr   error
	queryArgs []any
	execArgs  [][]any
}

func (f *fakeQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	f.queryArgs = args
	return fakeRow{q: f}
}

func (f *fakeQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execArgs = append(f.execArgs, args)
	if payload, ok := args[1].([]byte); ok {
		f.stored = append([]byte(nil), payload...)
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *fakeQuerier) Ping(ctx context.Context) error {
	return nil
}

type fakeRow struct {
	q *fakeQuerier
}

func (r fakeRow) Scan(dest ...any) error {
	if r.q.scanErr != nil {
		return r.q.scanErr
	}
	if r.q.stored == nil {
		return pgx.ErrNoRows
	}
	*(dest[0].(*[]byte)) = append([]byte(nil), r.q.stored...)
	return nil
}
