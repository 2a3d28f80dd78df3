package store

import (
	"context"
	"strings"

	"github.com/fastygo/furnish/domain"
)

func (s *Store) AddDelivery(ctx context.Context, delivery domain.Delivery) (domain.Delivery, error) {
	delivery.ApplyDefaults()
	return add(ctx, s, &s.deliveries, delivery, func(d *domain.Delivery, id string) { d.ID = id })
}

func (s *Store) UpdateDelivery(ctx context.Context, id string, patch domain.DeliveryPatch) (domain.Delivery, bool, error) {
	return update(ctx, s, &s.deliveries, id, patch)
}

func (s *Store) DeleteDelivery(ctx context.Context, id string) bool {
	return remove(ctx, s, &s.deliveries, id)
}

func (s *Store) GetDelivery(id string) (domain.Delivery, bool) {
	return get(s, &s.deliveries, id)
}

func (s *Store) ListDeliveries() []domain.Delivery {
	return list(s, &s.deliveries)
}

func (s *Store) DeliveriesByApartment(apartmentID string) []domain.Delivery {
	return filter(s, &s.deliveries, func(d domain.Delivery) bool {
		return d.ApartmentID == apartmentID
	})
}

func (s *Store) DeliveriesByVendor(vendor string) []domain.Delivery {
	return filter(s, &s.deliveries, func(d domain.Delivery) bool {
		return strings.EqualFold(d.Vendor, vendor)
	})
}
