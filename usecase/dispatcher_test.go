package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/furnish/domain"
)

func TestDispatcherRoutesByName(t *testing.T) {
	d := NewDispatcher()
	d.RegisterCommand("clients.create", func(ctx context.Context, payload interface{}) (interface{}, error) {
		return "created:" + payload.(string), nil
	})
	d.RegisterQuery("clients.get", func(ctx context.Context, params interface{}) (interface{}, error) {
		return "got:" + params.(string), nil
	})

	out, err := d.ExecuteCommand(context.Background(), "clients.create", "x")
	require.NoError(t, err)
	assert.Equal(t, "created:x", out)

	out, err = d.ExecuteQuery(context.Background(), "clients.get", "y")
	require.NoError(t, err)
	assert.Equal(t, "got:y", out)

	assert.Equal(t, []string{"clients.create", "clients.get"}, d.Names())
}

func TestDispatcherUnknownHandler(t *testing.T) {
	d := NewDispatcher()
	_, err := d.ExecuteCommand(context.Background(), "nope", nil)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))

	_, err = d.ExecuteQuery(context.Background(), "nope", nil)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}
