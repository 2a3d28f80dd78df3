package store

import (
	"context"
	"strings"

	"github.com/fastygo/furnish/domain"
)

// AddProduct stores a new product, defaulting its availability and status fields.
func (s *Store) AddProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	product.ApplyDefaults()
	return add(ctx, s, &s.products, product, func(p *domain.Product, id string) { p.ID = id })
}

func (s *Store) UpdateProduct(ctx context.Context, id string, patch domain.ProductPatch) (domain.Product, bool, error) {
	return update(ctx, s, &s.products, id, patch)
}

func (s *Store) DeleteProduct(ctx context.Context, id string) bool {
	return remove(ctx, s, &s.products, id)
}

func (s *Store) GetProduct(id string) (domain.Product, bool) {
	return get(s, &s.products, id)
}

func (s *Store) ListProducts() []domain.Product {
	return list(s, &s.products)
}

func (s *Store) ProductsByApartment(apartmentID string) []domain.Product {
	return filter(s, &s.products, func(p domain.Product) bool {
		return p.ApartmentID == apartmentID
	})
}

func (s *Store) ProductsByVendor(vendor string) []domain.Product {
	return filter(s, &s.products, func(p domain.Product) bool {
		return strings.EqualFold(p.Vendor, vendor)
	})
}

// ProductIssue resolves the issue linked to a product: the explicit IssueID when set,
// otherwise the first issue raised against the product.
func (s *Store) ProductIssue(productID string) (domain.Issue, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products.get(productID)
	if !ok {
		return domain.Issue{}, false
	}
	if product.IssueID != "" {
		return s.issues.get(product.IssueID)
	}
	for _, issue := range s.issues.items {
		if issue.ProductID == productID {
			return issue.Clone(), true
		}
	}
	return domain.Issue{}, false
}
