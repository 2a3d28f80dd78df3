package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/fastygo/furnish/api/handler"
	"github.com/fastygo/furnish/internal/middleware"
)

const apiPrefix = "/api/v1"

type Handlers struct {
	Entities []*apiHandler.EntityHandler
	Store    *apiHandler.StoreHandler
	Health   *apiHandler.HealthHandler
	Metrics  fasthttp.RequestHandler
	Pprof    fasthttp.RequestHandler
}

func New(handlers Handlers, wrap middleware.Wrapper) *router.Router {
	if wrap == nil {
		wrap = func(route string, next fasthttp.RequestHandler) fasthttp.RequestHandler { return next }
	}
	r := router.New()
	handle := func(method, path string, h fasthttp.RequestHandler) {
		r.Handle(method, path, wrap(path, h))
	}

	handle(fasthttp.MethodGet, "/health", handlers.Health.Check)
	if handlers.Metrics != nil {
		r.GET("/metrics", handlers.Metrics)
	}
	if handlers.Pprof != nil {
		r.GET("/debug/pprof/{profile:*}", handlers.Pprof)
	}

	for _, e := range handlers.Entities {
		collection := apiPrefix + "/" + e.Entity()
		record := collection + "/{id}"

		handle(fasthttp.MethodGet, collection, e.List)
		handle(fasthttp.MethodPost, collection, e.Create)
		handle(fasthttp.MethodGet, record, e.Get)
		handle(fasthttp.MethodPatch, record, e.Update)
		handle(fasthttp.MethodDelete, record, e.Delete)
	}

	handle(fasthttp.MethodPost, apiPrefix+"/payments/{id}/history", handlers.Store.AddPaymentEntry)
	handle(fasthttp.MethodPost, apiPrefix+"/issues/{id}/communications", handlers.Store.AddCommunication)
	handle(fasthttp.MethodGet, apiPrefix+"/apartments/{id}/manual-note", handlers.Store.GetManualNote)
	handle(fasthttp.MethodPut, apiPrefix+"/apartments/{id}/manual-note", handlers.Store.PutManualNote)
	handle(fasthttp.MethodGet, apiPrefix+"/search", handlers.Store.Search)
	handle(fasthttp.MethodGet, apiPrefix+"/vendor-references", handlers.Store.VendorReferences)
	handle(fasthttp.MethodGet, apiPrefix+"/stats", handlers.Store.Stats)

	return r
}
