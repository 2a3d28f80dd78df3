package store

import (
	"context"
	"strings"

	"github.com/fastygo/furnish/domain"
)

func (s *Store) AddVendor(ctx context.Context, vendor domain.Vendor) (domain.Vendor, error) {
	return add(ctx, s, &s.vendors, vendor, func(v *domain.Vendor, id string) { v.ID = id })
}

// UpdateVendor merges patch into the vendor. Renaming does not rewrite the records
// that reference the old name; use VendorReferences to find them first.
func (s *Store) UpdateVendor(ctx context.Context, id string, patch domain.VendorPatch) (domain.Vendor, bool, error) {
	return update(ctx, s, &s.vendors, id, patch)
}

func (s *Store) DeleteVendor(ctx context.Context, id string) bool {
	return remove(ctx, s, &s.vendors, id)
}

func (s *Store) GetVendor(id string) (domain.Vendor, bool) {
	return get(s, &s.vendors, id)
}

func (s *Store) ListVendors() []domain.Vendor {
	return list(s, &s.vendors)
}

// VendorByName returns the first vendor whose display name matches case-insensitively.
func (s *Store) VendorByName(name string) (domain.Vendor, bool) {
	matches := filter(s, &s.vendors, func(v domain.Vendor) bool {
		return strings.EqualFold(v.Name, name)
	})
	if len(matches) == 0 {
		return domain.Vendor{}, false
	}
	return matches[0], true
}

// VendorReferences collects the ids of products, deliveries, payments and issues
// that reference the vendor display name.
func (s *Store) VendorReferences(name string) domain.VendorUsage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	usage := domain.VendorUsage{
		Vendor:     name,
		Products:   []string{},
		Deliveries: []string{},
		Payments:   []string{},
		Issues:     []string{},
	}
	for _, p := range s.products.items {
		if strings.EqualFold(p.Vendor, name) {
			usage.Products = append(usage.Products, p.ID)
		}
	}
	for _, d := range s.deliveries.items {
		if strings.EqualFold(d.Vendor, name) {
			usage.Deliveries = append(usage.Deliveries, d.ID)
		}
	}
	for _, p := range s.payments.items {
		if strings.EqualFold(p.Vendor, name) {
			usage.Payments = append(usage.Payments, p.ID)
		}
	}
	for _, i := range s.issues.items {
		if strings.EqualFold(i.Vendor, name) {
			usage.Issues = append(usage.Issues, i.ID)
		}
	}
	return usage
}
