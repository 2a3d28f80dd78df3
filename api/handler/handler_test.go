package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/fastygo/furnish/api/handler"
	"github.com/fastygo/furnish/internal/infrastructure/monitor"
	"github.com/fastygo/furnish/pkg/httpcontext"
	"github.com/fastygo/furnish/usecase"
	"github.com/fastygo/furnish/usecase/catalog"
	"github.com/fastygo/furnish/usecase/store"
)

type envelope struct {
	Status string          `json:"status"`
	Code   string          `json:"code"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
	Meta   struct {
		Count int `json:"count"`
	} `json:"meta"`
}

type fixture struct {
	store      *store.Store
	dispatcher *usecase.Dispatcher
	adapter    *httpcontext.Adapter
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	s := store.Open(context.Background(), store.Options{})
	d := usecase.NewDispatcher()
	catalog.Register(d, s, nil)
	return fixture{store: s, dispatcher: d, adapter: httpcontext.NewAdapter(time.Second)}
}

func request(method, uri, body string, userValues map[string]string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	for k, v := range userValues {
		ctx.SetUserValue(k, v)
	}
	return ctx
}

func decode(t *testing.T, ctx *fasthttp.RequestCtx) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &env), string(ctx.Response.Body()))
	return env
}

func TestEntityHandlerCRUD(t *testing.T) {
	f := newFixture(t)
	h := handler.NewEntityHandler(catalog.Clients, f.dispatcher, f.adapter, nil)

	ctx := request(http.MethodPost, "/api/v1/clients", `{"name":"X","email":"x@x.com","phone":"","account_status":"Active","type":"Investor"}`, nil)
	h.Create(ctx)
	require.Equal(t, http.StatusCreated, ctx.Response.StatusCode())
	assert.NotEmpty(t, ctx.Response.Header.Peek("X-Request-ID"))

	var created struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(decode(t, ctx).Data, &created))
	assert.Regexp(t, `^client-\d+$`, created.ID)

	ctx = request(http.MethodGet, "/api/v1/clients/"+created.ID, "", map[string]string{"id": created.ID})
	h.Get(ctx)
	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	ctx = request(http.MethodPatch, "/api/v1/clients/"+created.ID, `{"phone":"+1 555"}`, map[string]string{"id": created.ID})
	h.Update(ctx)
	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	got, _ := f.store.GetClient(created.ID)
	assert.Equal(t, "+1 555", got.Phone)

	ctx = request(http.MethodDelete, "/api/v1/clients/"+created.ID, "", map[string]string{"id": created.ID})
	h.Delete(ctx)
	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"id":"`+created.ID+`","deleted":true}`, string(decode(t, ctx).Data))

	ctx = request(http.MethodGet, "/api/v1/clients/"+created.ID, "", map[string]string{"id": created.ID})
	h.Get(ctx)
	assert.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
	assert.Equal(t, "NOT_FOUND", decode(t, ctx).Code)
}

func TestEntityHandlerErrors(t *testing.T) {
	f := newFixture(t)
	h := handler.NewEntityHandler(catalog.Apartments, f.dispatcher, f.adapter, nil)

	ctx := request(http.MethodPost, "/api/v1/apartments", `{"name":"Loft","type":"castle","status":"Planning"}`, nil)
	h.Create(ctx)
	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
	env := decode(t, ctx)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "INVALID", env.Code)
	assert.Contains(t, env.Error, "type")

	ctx = request(http.MethodPatch, "/api/v1/apartments/apt-404", `{"progress":10}`, map[string]string{"id": "apt-404"})
	h.Update(ctx)
	assert.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())

	ctx = request(http.MethodGet, "/api/v1/apartments/", "", nil)
	h.Get(ctx)
	assert.Equal(t, http.StatusBadRequest, ctx.Response.StatusCode())
}

func TestEntityHandlerListFilters(t *testing.T) {
	f := newFixture(t)
	h := handler.NewEntityHandler(catalog.Payments, f.dispatcher, f.adapter, nil)

	ctx := request(http.MethodGet, "/api/v1/payments?apartment_id=apt-1&vendor=casa%20interiors", "", nil)
	h.List(ctx)
	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	env := decode(t, ctx)
	assert.Equal(t, 1, env.Meta.Count)
	var payments []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payments))
	require.Len(t, payments, 1)
	assert.Equal(t, "payment-2", payments[0].ID)
}

func TestStoreHandlerActions(t *testing.T) {
	f := newFixture(t)
	h := handler.NewStoreHandler(f.dispatcher, f.adapter, nil)

	ctx := request(http.MethodPost, "/api/v1/payments/payment-1/history", `{"amount":"600","method":"Card"}`, map[string]string{"id": "payment-1"})
	h.AddPaymentEntry(ctx)
	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	p, _ := f.store.GetPayment("payment-1")
	assert.Equal(t, "1800", p.AmountPaid.String())
	assert.Len(t, p.PaymentHistory, 2)

	ctx = request(http.MethodPost, "/api/v1/issues/issue-2/communications", `{"sender":"vendor","message":"Back in stock next week."}`, map[string]string{"id": "issue-2"})
	h.AddCommunication(ctx)
	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	ctx = request(http.MethodPut, "/api/v1/apartments/apt-1/manual-note", `{"text":"Measure the hallway"}`, map[string]string{"id": "apt-1"})
	h.PutManualNote(ctx)
	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	ctx = request(http.MethodGet, "/api/v1/apartments/apt-1/manual-note", "", map[string]string{"id": "apt-1"})
	h.GetManualNote(ctx)
	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.Contains(t, string(decode(t, ctx).Data), "Measure the hallway")

	ctx = request(http.MethodGet, "/api/v1/search?q=riverside", "", nil)
	h.Search(ctx)
	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.Contains(t, string(decode(t, ctx).Data), `"id":"apt-1"`)

	ctx = request(http.MethodGet, "/api/v1/vendor-references?name=Lumen%20Lighting", "", nil)
	h.VendorReferences(ctx)
	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.Contains(t, string(decode(t, ctx).Data), `"products":["product-3"]`)

	ctx = request(http.MethodGet, "/api/v1/stats", "", nil)
	h.Stats(ctx)
	assert.Contains(t, string(decode(t, ctx).Data), `"manual_notes":1`)
}

type statusStub monitor.Status

func (s statusStub) GetStatus() monitor.Status { return monitor.Status(s) }

func TestHealthHandler(t *testing.T) {
	f := newFixture(t)

	h := handler.NewHealthHandler(statusStub{Online: true, Backends: map[string]bool{"bolt": true}}, "bolt", f.store.Stats, f.adapter, nil)
	ctx := request(http.MethodGet, "/health", "", nil)
	h.Check(ctx)
	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	assert.Contains(t, string(decode(t, ctx).Data), `"clients":3`)

	h = handler.NewHealthHandler(statusStub{Backends: map[string]bool{"redis": false}}, "redis", nil, f.adapter, nil)
	ctx = request(http.MethodGet, "/health", "", nil)
	h.Check(ctx)
	assert.Equal(t, http.StatusServiceUnavailable, ctx.Response.StatusCode())
	assert.Equal(t, "DEGRADED", decode(t, ctx).Code)
}
