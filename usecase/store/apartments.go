package store

import (
	"context"

	"github.com/fastygo/furnish/domain"
)

// AddApartment stores a new apartment. The client reference is not checked.
func (s *Store) AddApartment(ctx context.Context, apartment domain.Apartment) (domain.Apartment, error) {
	return add(ctx, s, &s.apartments, apartment, func(a *domain.Apartment, id string) { a.ID = id })
}

func (s *Store) UpdateApartment(ctx context.Context, id string, patch domain.ApartmentPatch) (domain.Apartment, bool, error) {
	return update(ctx, s, &s.apartments, id, patch)
}

// DeleteApartment removes the apartment only; records that reference it are kept.
func (s *Store) DeleteApartment(ctx context.Context, id string) bool {
	return remove(ctx, s, &s.apartments, id)
}

func (s *Store) GetApartment(id string) (domain.Apartment, bool) {
	return get(s, &s.apartments, id)
}

func (s *Store) ListApartments() []domain.Apartment {
	return list(s, &s.apartments)
}

func (s *Store) ApartmentsByClient(clientID string) []domain.Apartment {
	return filter(s, &s.apartments, func(a domain.Apartment) bool {
		return a.ClientID == clientID
	})
}
