package catalog

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/furnish/domain"
	"github.com/fastygo/furnish/usecase"
	"github.com/fastygo/furnish/usecase/store"
)

func newCatalog(t *testing.T) (*usecase.Dispatcher, *store.Store) {
	t.Helper()
	s := store.Open(context.Background(), store.Options{})
	d := usecase.NewDispatcher()
	Register(d, s, nil)
	return d, s
}

func TestRegisterCoversEveryCollection(t *testing.T) {
	d, _ := newCatalog(t)
	names := d.Names()
	for _, e := range Entities {
		for _, op := range []string{OpList, OpGet, OpCreate, OpUpdate, OpDelete} {
			assert.Contains(t, names, Name(e, op))
		}
	}
	for _, name := range []string{PaymentsHistory, IssuesCommunicate, ManualNoteGet, ManualNoteSet, VendorReferencesName, SearchName, StatsName} {
		assert.Contains(t, names, name)
	}
}

func TestCreateGetUpdateDelete(t *testing.T) {
	d, _ := newCatalog(t)
	ctx := context.Background()

	out, err := d.ExecuteCommand(ctx, Name(Vendors, OpCreate), Mutation{
		Body: json.RawMessage(`{"id":"ignored","name":"Atelier Nord","company_name":"Atelier Nord Oy"}`),
	})
	require.NoError(t, err)
	vendor := out.(domain.Vendor)
	assert.NotEqual(t, "ignored", vendor.ID)
	assert.Regexp(t, `^vendor-\d+$`, vendor.ID)

	out, err = d.ExecuteQuery(ctx, Name(Vendors, OpGet), vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, vendor, out)

	out, err = d.ExecuteCommand(ctx, Name(Vendors, OpUpdate), Mutation{ID: vendor.ID, Body: json.RawMessage(`{"website":"https://atelier.example"}`)})
	require.NoError(t, err)
	assert.Equal(t, "https://atelier.example", out.(domain.Vendor).Website)
	assert.Equal(t, "Atelier Nord", out.(domain.Vendor).Name)

	out, err = d.ExecuteCommand(ctx, Name(Vendors, OpDelete), vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, DeleteResult{ID: vendor.ID, Deleted: true}, out)

	out, err = d.ExecuteCommand(ctx, Name(Vendors, OpDelete), vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, DeleteResult{ID: vendor.ID, Deleted: false}, out)

	_, err = d.ExecuteQuery(ctx, Name(Vendors, OpGet), vendor.ID)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestUpdateMissingIsNotFound(t *testing.T) {
	d, _ := newCatalog(t)

	_, err := d.ExecuteCommand(context.Background(), Name(Products, OpUpdate), Mutation{ID: "product-404", Body: json.RawMessage(`{"qty":2}`)})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}

func TestMalformedBodiesAreInvalid(t *testing.T) {
	d, _ := newCatalog(t)
	ctx := context.Background()

	cases := map[string]Mutation{
		"broken json":  {Body: json.RawMessage(`{"name":`)},
		"empty body":   {},
		"unknown enum": {Body: json.RawMessage(`{"name":"Z","account_status":"Gone","type":"Investor"}`)},
	}
	for name, m := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := d.ExecuteCommand(ctx, Name(Clients, OpCreate), m)
			assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid), "%v", err)
		})
	}

	_, err := d.ExecuteCommand(ctx, Name(Clients, OpCreate), "not a mutation")
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
}

func TestListFilters(t *testing.T) {
	d, _ := newCatalog(t)
	ctx := context.Background()

	out, err := d.ExecuteQuery(ctx, Name(Products, OpList), ListFilter{})
	require.NoError(t, err)
	assert.Len(t, out, 4)

	out, err = d.ExecuteQuery(ctx, Name(Products, OpList), ListFilter{ApartmentID: "apt-1", Vendor: "nordic living"})
	require.NoError(t, err)
	products := out.([]domain.Product)
	require.Len(t, products, 1)
	assert.Equal(t, "product-1", products[0].ID)

	out, err = d.ExecuteQuery(ctx, Name(Activities, OpList), ListFilter{ApartmentID: "apt-1"})
	require.NoError(t, err)
	assert.Equal(t, "activity-3", out.([]domain.Activity)[0].ID)

	out, err = d.ExecuteQuery(ctx, Name(Vendors, OpList), ListFilter{Vendor: "LUMEN LIGHTING"})
	require.NoError(t, err)
	assert.Len(t, out, 1)

	_, err = d.ExecuteQuery(ctx, Name(Clients, OpList), ListFilter{ApartmentID: "apt-1"})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestPaymentHistoryCommand(t *testing.T) {
	d, _ := newCatalog(t)
	ctx := context.Background()

	out, err := d.ExecuteCommand(ctx, PaymentsHistory, Mutation{
		ID:   "payment-1",
		Body: json.RawMessage(`{"date":"2024-05-20T00:00:00Z","amount":"1200","method":"Bank transfer"}`),
	})
	require.NoError(t, err)
	payment := out.(domain.Payment)
	assert.Equal(t, domain.PaymentPaid, payment.Status)
	assert.Equal(t, "2400", payment.AmountPaid.String())

	_, err = d.ExecuteCommand(ctx, PaymentsHistory, Mutation{ID: "payment-404", Body: json.RawMessage(`{"amount":1,"method":"Card"}`)})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}

func TestIssueAndNoteActions(t *testing.T) {
	d, _ := newCatalog(t)
	ctx := context.Background()

	out, err := d.ExecuteCommand(ctx, IssuesCommunicate, Mutation{ID: "issue-1", Body: json.RawMessage(`{"sender":"team","message":"Approved the replacement."}`)})
	require.NoError(t, err)
	assert.Len(t, out.(domain.Issue).AICommunicationLog, 3)

	_, err = d.ExecuteQuery(ctx, ManualNoteGet, "apt-2")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))

	_, err = d.ExecuteCommand(ctx, ManualNoteSet, Mutation{ID: "apt-2", Body: json.RawMessage(`{"text":"Keys with concierge"}`)})
	require.NoError(t, err)
	out, err = d.ExecuteQuery(ctx, ManualNoteGet, "apt-2")
	require.NoError(t, err)
	assert.Equal(t, "Keys with concierge", out.(domain.ManualNote).Text)
}

func TestSearchStatsAndReferences(t *testing.T) {
	d, _ := newCatalog(t)
	ctx := context.Background()

	out, err := d.ExecuteQuery(ctx, SearchName, SearchParams{Query: "lamp"})
	require.NoError(t, err)
	hits := out.([]store.SearchHit)
	require.Len(t, hits, 1)
	assert.Equal(t, "product-3", hits[0].ID)

	out, err = d.ExecuteQuery(ctx, StatsName, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, out.(map[string]int)["products"])

	out, err = d.ExecuteQuery(ctx, VendorReferencesName, "Casa Interiors")
	require.NoError(t, err)
	assert.Equal(t, 4, out.(domain.VendorUsage).Total())

	_, err = d.ExecuteQuery(ctx, VendorReferencesName, "")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}
