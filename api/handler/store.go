package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/furnish/api/transport"
	"github.com/fastygo/furnish/pkg/httpcontext"
	"github.com/fastygo/furnish/usecase"
	"github.com/fastygo/furnish/usecase/catalog"
)

// StoreHandler serves the endpoints that are not plain CRUD.
type StoreHandler struct {
	baseHandler
}

func NewStoreHandler(dispatcher *usecase.Dispatcher, adapter *httpcontext.Adapter, logger *zap.Logger) *StoreHandler {
	return &StoreHandler{baseHandler: newBaseHandler(dispatcher, adapter, logger)}
}

// @Summary Post a payment against a payment record
// @Tags payments
// @Router /api/v1/payments/{id}/history [post]
func (h *StoreHandler) AddPaymentEntry(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}
	h.command(ctx, catalog.PaymentsHistory, catalog.Mutation{ID: id, Body: body(ctx)}, http.StatusOK)
}

// @Summary Append a message to an issue's vendor conversation
// @Tags issues
// @Router /api/v1/issues/{id}/communications [post]
func (h *StoreHandler) AddCommunication(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}
	h.command(ctx, catalog.IssuesCommunicate, catalog.Mutation{ID: id, Body: body(ctx)}, http.StatusOK)
}

// @Tags apartments
// @Router /api/v1/apartments/{id}/manual-note [get]
func (h *StoreHandler) GetManualNote(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}
	h.query(ctx, catalog.ManualNoteGet, id)
}

// @Tags apartments
// @Router /api/v1/apartments/{id}/manual-note [put]
func (h *StoreHandler) PutManualNote(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}
	h.command(ctx, catalog.ManualNoteSet, catalog.Mutation{ID: id, Body: body(ctx)}, http.StatusOK)
}

// @Summary Global search across every collection
// @Router /api/v1/search [get]
func (h *StoreHandler) Search(ctx *fasthttp.RequestCtx) {
	q := transport.ParseSearchQuery(ctx.QueryArgs())
	h.list(ctx, catalog.SearchName, catalog.SearchParams{Query: q.Q, Limit: q.Limit})
}

// @Summary Records that reference a vendor by display name
// @Router /api/v1/vendor-references [get]
func (h *StoreHandler) VendorReferences(ctx *fasthttp.RequestCtx) {
	h.query(ctx, catalog.VendorReferencesName, string(ctx.QueryArgs().Peek("name")))
}

// @Router /api/v1/stats [get]
func (h *StoreHandler) Stats(ctx *fasthttp.RequestCtx) {
	h.query(ctx, catalog.StatsName, nil)
}
