package store

import (
	"context"
	"strings"

	"github.com/fastygo/furnish/domain"
)

// AddClient stores a new client under a generated id and returns it.
func (s *Store) AddClient(ctx context.Context, client domain.Client) (domain.Client, error) {
	if client.CreatedAt.IsZero() {
		client.CreatedAt = s.now()
	}
	return add(ctx, s, &s.clients, client, func(c *domain.Client, id string) { c.ID = id })
}

func (s *Store) UpdateClient(ctx context.Context, id string, patch domain.ClientPatch) (domain.Client, bool, error) {
	return update(ctx, s, &s.clients, id, patch)
}

func (s *Store) DeleteClient(ctx context.Context, id string) bool {
	return remove(ctx, s, &s.clients, id)
}

func (s *Store) GetClient(id string) (domain.Client, bool) {
	return get(s, &s.clients, id)
}

func (s *Store) ListClients() []domain.Client {
	return list(s, &s.clients)
}

// ClientsByType matches the client type case-insensitively.
func (s *Store) ClientsByType(clientType string) []domain.Client {
	return filter(s, &s.clients, func(c domain.Client) bool {
		return strings.EqualFold(string(c.Type), clientType)
	})
}
