package store

import (
	"strings"
)

const defaultSearchLimit = 20

// SearchHit is one record matched by a global search.
type SearchHit struct {
	Kind        string `json:"kind"`
	ID          string `json:"id"`
	Title       string `json:"title"`
	ApartmentID string `json:"apartment_id,omitempty"`
}

// Search matches query case-insensitively as a substring of the display fields of
// every collection. Results follow collection order, then insertion order.
func (s *Store) Search(query string, limit int) []SearchHit {
	needle := strings.ToLower(strings.TrimSpace(query))
	hits := make([]SearchHit, 0)
	if needle == "" {
		return hits
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	match := func(fields ...string) bool {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f), needle) {
				return true
			}
		}
		return false
	}
	emit := func(hit SearchHit) bool {
		hits = append(hits, hit)
		return len(hits) >= limit
	}

	for _, c := range s.clients.items {
		if match(c.Name, c.Email, c.Phone) && emit(SearchHit{Kind: "client", ID: c.ID, Title: c.Name}) {
			return hits
		}
	}
	for _, a := range s.apartments.items {
		if match(a.Name, a.Address) && emit(SearchHit{Kind: "apartment", ID: a.ID, Title: a.Name, ApartmentID: a.ID}) {
			return hits
		}
	}
	for _, v := range s.vendors.items {
		if match(v.Name, v.CompanyName, v.ContactPerson, v.Email) && emit(SearchHit{Kind: "vendor", ID: v.ID, Title: v.Name}) {
			return hits
		}
	}
	for _, p := range s.products.items {
		if match(p.Name, p.SKU, p.Vendor, p.Category) && emit(SearchHit{Kind: "product", ID: p.ID, Title: p.Name, ApartmentID: p.ApartmentID}) {
			return hits
		}
	}
	for _, d := range s.deliveries.items {
		if match(d.OrderReference, d.Vendor, d.Notes) && emit(SearchHit{Kind: "delivery", ID: d.ID, Title: d.OrderReference, ApartmentID: d.ApartmentID}) {
			return hits
		}
	}
	for _, p := range s.payments.items {
		if match(p.OrderReference, p.Vendor) && emit(SearchHit{Kind: "payment", ID: p.ID, Title: p.OrderReference, ApartmentID: p.ApartmentID}) {
			return hits
		}
	}
	for _, i := range s.issues.items {
		if match(i.Type, i.Description, i.Vendor) && emit(SearchHit{Kind: "issue", ID: i.ID, Title: i.Type, ApartmentID: i.ApartmentID}) {
			return hits
		}
	}
	return hits
}
