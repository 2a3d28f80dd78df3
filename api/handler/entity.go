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

// EntityHandler serves the CRUD endpoints of one store collection.
type EntityHandler struct {
	baseHandler
	entity string
}

func NewEntityHandler(entity string, dispatcher *usecase.Dispatcher, adapter *httpcontext.Adapter, logger *zap.Logger) *EntityHandler {
	return &EntityHandler{
		baseHandler: newBaseHandler(dispatcher, adapter, logger),
		entity:      entity,
	}
}

// Entity returns the collection name, which is also the route segment.
func (h *EntityHandler) Entity() string {
	return h.entity
}

// @Summary List records, optionally filtered by apartment_id, client_id, product_id, vendor or type
// @Router /api/v1/{entity} [get]
func (h *EntityHandler) List(ctx *fasthttp.RequestCtx) {
	q := transport.ParseListQuery(ctx.QueryArgs())
	h.list(ctx, catalog.Name(h.entity, catalog.OpList), catalog.ListFilter{
		ApartmentID: q.ApartmentID,
		ClientID:    q.ClientID,
		ProductID:   q.ProductID,
		Vendor:      q.Vendor,
		Type:        q.Type,
	})
}

// @Summary Get record
// @Router /api/v1/{entity}/{id} [get]
func (h *EntityHandler) Get(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}
	h.query(ctx, catalog.Name(h.entity, catalog.OpGet), id)
}

// @Summary Create record
// @Router /api/v1/{entity} [post]
func (h *EntityHandler) Create(ctx *fasthttp.RequestCtx) {
	h.command(ctx, catalog.Name(h.entity, catalog.OpCreate), catalog.Mutation{Body: body(ctx)}, http.StatusCreated)
}

// @Summary Merge fields into a record
// @Router /api/v1/{entity}/{id} [patch]
func (h *EntityHandler) Update(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}
	h.command(ctx, catalog.Name(h.entity, catalog.OpUpdate), catalog.Mutation{ID: id, Body: body(ctx)}, http.StatusOK)
}

// @Summary Delete record; deleting a missing id reports deleted=false
// @Router /api/v1/{entity}/{id} [delete]
func (h *EntityHandler) Delete(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}
	h.command(ctx, catalog.Name(h.entity, catalog.OpDelete), id, http.StatusOK)
}
