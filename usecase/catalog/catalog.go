// Package catalog exposes the entity store through the dispatcher as named
// commands and queries, one set per collection.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/fastygo/furnish/domain"
	"github.com/fastygo/furnish/usecase"
	"github.com/fastygo/furnish/usecase/store"
)

// Collection names, also used as the first segment of every handler name.
const (
	Clients    = "clients"
	Apartments = "apartments"
	Vendors    = "vendors"
	Products   = "products"
	Deliveries = "deliveries"
	Payments   = "payments"
	Issues     = "issues"
	Activities = "activities"
	Notes      = "notes"
)

// Entities lists every collection served by the catalog.
var Entities = []string{Clients, Apartments, Vendors, Products, Deliveries, Payments, Issues, Activities, Notes}

// Handler name suffixes and standalone names.
const (
	OpList   = "list"
	OpGet    = "get"
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"

	PaymentsHistory      = "payments.history"
	IssuesCommunicate    = "issues.communicate"
	ManualNoteGet        = "apartments.manual_note.get"
	ManualNoteSet        = "apartments.manual_note.set"
	VendorReferencesName = "vendors.references"
	SearchName           = "search"
	StatsName            = "store.stats"
)

// Name joins a collection and an operation into a handler name.
func Name(entity, op string) string {
	return entity + "." + op
}

// ListFilter narrows a list query. Empty fields are ignored; set fields are combined.
type ListFilter struct {
	ApartmentID string
	ClientID    string
	ProductID   string
	Vendor      string
	Type        string
}

// Mutation carries a record id and its raw JSON body.
type Mutation struct {
	ID   string
	Body json.RawMessage
}

// SearchParams configures a global search.
type SearchParams struct {
	Query string
	Limit int
}

// DeleteResult reports whether a delete removed anything; deleting a missing id is not an error.
type DeleteResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// ManualNoteBody is the payload of apartments.manual_note.set.
type ManualNoteBody struct {
	Text string `json:"text"`
}

// Register binds every catalog handler to d.
func Register(d *usecase.Dispatcher, s *store.Store, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("catalog")

	register(d, logger, entity[domain.Client, domain.ClientPatch]{
		name: Clients, id: func(c domain.Client) string { return c.ID },
		add: s.AddClient, update: s.UpdateClient, remove: s.DeleteClient, get: s.GetClient, list: s.ListClients,
		lookups: map[string]func(string) []domain.Client{"type": s.ClientsByType},
	})
	register(d, logger, entity[domain.Apartment, domain.ApartmentPatch]{
		name: Apartments, id: func(a domain.Apartment) string { return a.ID },
		add: s.AddApartment, update: s.UpdateApartment, remove: s.DeleteApartment, get: s.GetApartment, list: s.ListApartments,
		lookups: map[string]func(string) []domain.Apartment{"client_id": s.ApartmentsByClient},
	})
	register(d, logger, entity[domain.Vendor, domain.VendorPatch]{
		name: Vendors, id: func(v domain.Vendor) string { return v.ID },
		add: s.AddVendor, update: s.UpdateVendor, remove: s.DeleteVendor, get: s.GetVendor, list: s.ListVendors,
		lookups: map[string]func(string) []domain.Vendor{"vendor": func(name string) []domain.Vendor {
			if v, ok := s.VendorByName(name); ok {
				return []domain.Vendor{v}
			}
			return []domain.Vendor{}
		}},
	})
	register(d, logger, entity[domain.Product, domain.ProductPatch]{
		name: Products, id: func(p domain.Product) string { return p.ID },
		add: s.AddProduct, update: s.UpdateProduct, remove: s.DeleteProduct, get: s.GetProduct, list: s.ListProducts,
		lookups: map[string]func(string) []domain.Product{
			"apartment_id": s.ProductsByApartment,
			"vendor":       s.ProductsByVendor,
		},
	})
	register(d, logger, entity[domain.Delivery, domain.DeliveryPatch]{
		name: Deliveries, id: func(x domain.Delivery) string { return x.ID },
		add: s.AddDelivery, update: s.UpdateDelivery, remove: s.DeleteDelivery, get: s.GetDelivery, list: s.ListDeliveries,
		lookups: map[string]func(string) []domain.Delivery{
			"apartment_id": s.DeliveriesByApartment,
			"vendor":       s.DeliveriesByVendor,
		},
	})
	register(d, logger, entity[domain.Payment, domain.PaymentPatch]{
		name: Payments, id: func(p domain.Payment) string { return p.ID },
		add: s.AddPayment, update: s.UpdatePayment, remove: s.DeletePayment, get: s.GetPayment, list: s.ListPayments,
		lookups: map[string]func(string) []domain.Payment{
			"apartment_id": s.PaymentsByApartment,
			"vendor":       s.PaymentsByVendor,
		},
	})
	register(d, logger, entity[domain.Issue, domain.IssuePatch]{
		name: Issues, id: func(i domain.Issue) string { return i.ID },
		add: s.AddIssue, update: s.UpdateIssue, remove: s.DeleteIssue, get: s.GetIssue, list: s.ListIssues,
		lookups: map[string]func(string) []domain.Issue{
			"apartment_id": s.IssuesByApartment,
			"vendor":       s.IssuesByVendor,
			"product_id":   s.IssuesByProduct,
		},
	})
	register(d, logger, entity[domain.Activity, domain.ActivityPatch]{
		name: Activities, id: func(a domain.Activity) string { return a.ID },
		add: s.AddActivity, update: s.UpdateActivity, remove: s.DeleteActivity, get: s.GetActivity, list: s.ListActivities,
		lookups: map[string]func(string) []domain.Activity{
			"apartment_id": s.ActivitiesByApartment,
			"type":         s.ActivitiesByType,
		},
	})
	register(d, logger, entity[domain.AINote, domain.AINotePatch]{
		name: Notes, id: func(n domain.AINote) string { return n.ID },
		add: s.AddAINote, update: s.UpdateAINote, remove: s.DeleteAINote, get: s.GetAINote, list: s.ListAINotes,
		lookups: map[string]func(string) []domain.AINote{"apartment_id": s.AINotesByApartment},
	})

	registerActions(d, s)
}

func registerActions(d *usecase.Dispatcher, s *store.Store) {
	d.RegisterCommand(PaymentsHistory, func(ctx context.Context, payload interface{}) (interface{}, error) {
		m, err := mutation(payload)
		if err != nil {
			return nil, err
		}
		var entry domain.PaymentEntry
		if err := decode(m.Body, &entry); err != nil {
			return nil, err
		}
		payment, found, err := s.AddPaymentToHistory(ctx, m.ID, entry)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, notFound(Payments, m.ID)
		}
		return payment, nil
	})

	d.RegisterCommand(IssuesCommunicate, func(ctx context.Context, payload interface{}) (interface{}, error) {
		m, err := mutation(payload)
		if err != nil {
			return nil, err
		}
		var entry domain.CommunicationEntry
		if err := decode(m.Body, &entry); err != nil {
			return nil, err
		}
		issue, found, err := s.AppendIssueCommunication(ctx, m.ID, entry)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, notFound(Issues, m.ID)
		}
		return issue, nil
	})

	d.RegisterCommand(ManualNoteSet, func(ctx context.Context, payload interface{}) (interface{}, error) {
		m, err := mutation(payload)
		if err != nil {
			return nil, err
		}
		var body ManualNoteBody
		if err := decode(m.Body, &body); err != nil {
			return nil, err
		}
		return s.SetManualNote(ctx, m.ID, body.Text), nil
	})

	d.RegisterQuery(ManualNoteGet, func(ctx context.Context, params interface{}) (interface{}, error) {
		id, _ := params.(string)
		note, ok := s.ManualNote(id)
		if !ok {
			return nil, notFound("manual note", id)
		}
		return note, nil
	})

	d.RegisterQuery(VendorReferencesName, func(ctx context.Context, params interface{}) (interface{}, error) {
		name, _ := params.(string)
		if name == "" {
			return nil, domain.WrapError(domain.ErrCodeInvalid, "vendor name is required", domain.ErrInvalidPayload)
		}
		return s.VendorReferences(name), nil
	})

	d.RegisterQuery(SearchName, func(ctx context.Context, params interface{}) (interface{}, error) {
		p, _ := params.(SearchParams)
		return s.Search(p.Query, p.Limit), nil
	})

	d.RegisterQuery(StatsName, func(ctx context.Context, params interface{}) (interface{}, error) {
		return s.Stats(), nil
	})
}

func mutation(payload interface{}) (Mutation, error) {
	m, ok := payload.(Mutation)
	if !ok {
		return Mutation{}, domain.ErrInvalidPayload
	}
	return m, nil
}

func decode(body json.RawMessage, dst interface{}) error {
	if len(body) == 0 {
		return domain.WrapError(domain.ErrCodeInvalid, "empty body", domain.ErrInvalidPayload)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return domain.WrapError(domain.ErrCodeInvalid, "invalid payload", err)
	}
	return nil
}

func notFound(kind, id string) error {
	return domain.WrapError(domain.ErrCodeNotFound, fmt.Sprintf("%s %q not found", kind, id), domain.ErrRecordNotFound)
}
