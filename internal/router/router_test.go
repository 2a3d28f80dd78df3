package router

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/fastygo/furnish/api/handler"
	"github.com/fastygo/furnish/internal/infrastructure/monitor"
	"github.com/fastygo/furnish/internal/middleware"
	"github.com/fastygo/furnish/pkg/httpcontext"
	"github.com/fastygo/furnish/usecase"
	"github.com/fastygo/furnish/usecase/catalog"
	"github.com/fastygo/furnish/usecase/store"
)

func newHandler(t *testing.T) fasthttp.RequestHandler {
	t.Helper()
	s := store.Open(context.Background(), store.Options{})
	d := usecase.NewDispatcher()
	catalog.Register(d, s, nil)
	adapter := httpcontext.NewAdapter(time.Second)

	mon := monitor.New(time.Minute, nil)
	mon.Refresh()

	handlers := Handlers{
		Store:  apiHandler.NewStoreHandler(d, adapter, nil),
		Health: apiHandler.NewHealthHandler(mon, "memory", s.Stats, adapter, nil),
		Metrics: func(ctx *fasthttp.RequestCtx) {
			ctx.SetBodyString("# metrics")
		},
	}
	for _, entity := range catalog.Entities {
		handlers.Entities = append(handlers.Entities, apiHandler.NewEntityHandler(entity, d, adapter, nil))
	}
	return New(handlers, middleware.Observe(nil, nil)).Handler
}

func serve(h fasthttp.RequestHandler, method, uri, body string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	h(ctx)
	return ctx
}

func TestRoutes(t *testing.T) {
	h := newHandler(t)

	tests := []struct {
		method string
		uri    string
		body   string
		status int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/api/v1/clients", "", http.StatusOK},
		{http.MethodGet, "/api/v1/apartments/apt-1", "", http.StatusOK},
		{http.MethodGet, "/api/v1/vendors/vendor-404", "", http.StatusNotFound},
		{http.MethodGet, "/api/v1/products?apartment_id=apt-2", "", http.StatusOK},
		{http.MethodGet, "/api/v1/deliveries?type=x", "", http.StatusBadRequest},
		{http.MethodPost, "/api/v1/activities", `{"apartment_id":"apt-1","actor":"Anna","summary":"Visited site","type":"comment"}`, http.StatusCreated},
		{http.MethodPatch, "/api/v1/issues/issue-1", `{"status":"Resolved"}`, http.StatusOK},
		{http.MethodDelete, "/api/v1/notes/note-1", "", http.StatusOK},
		{http.MethodPost, "/api/v1/payments/payment-2/history", `{"amount":"10","method":"Card"}`, http.StatusOK},
		{http.MethodPost, "/api/v1/issues/issue-2/communications", `{"sender":"ai","message":"Following up."}`, http.StatusOK},
		{http.MethodPut, "/api/v1/apartments/apt-3/manual-note", `{"text":"Handed over"}`, http.StatusOK},
		{http.MethodGet, "/api/v1/apartments/apt-3/manual-note", "", http.StatusOK},
		{http.MethodGet, "/api/v1/search?q=oslo", "", http.StatusOK},
		{http.MethodGet, "/api/v1/vendor-references?name=Casa%20Interiors", "", http.StatusOK},
		{http.MethodGet, "/api/v1/stats", "", http.StatusOK},
		{http.MethodGet, "/api/v1/unknown", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.uri, func(t *testing.T) {
			ctx := serve(h, tt.method, tt.uri, tt.body)
			assert.Equal(t, tt.status, ctx.Response.StatusCode(), string(ctx.Response.Body()))
		})
	}
}
