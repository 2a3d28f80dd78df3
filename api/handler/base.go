package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"reflect"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/furnish/api/transport"
	"github.com/fastygo/furnish/domain"
	"github.com/fastygo/furnish/pkg/httpcontext"
	appLogger "github.com/fastygo/furnish/pkg/logger"
	"github.com/fastygo/furnish/usecase"
)

type baseHandler struct {
	adapter    *httpcontext.Adapter
	dispatcher *usecase.Dispatcher
	logger     *zap.Logger
}

func newBaseHandler(dispatcher *usecase.Dispatcher, adapter *httpcontext.Adapter, logger *zap.Logger) baseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return baseHandler{adapter: adapter, dispatcher: dispatcher, logger: logger}
}

func (h baseHandler) requestContext(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	if h.adapter != nil {
		return h.adapter.Attach(ctx)
	}
	return context.WithCancel(context.Background())
}

func (h baseHandler) respondJSON(ctx *fasthttp.RequestCtx, status int, payload transport.Envelope) {
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(status)
	body, _ := json.Marshal(payload)
	ctx.SetBody(body)
}

func (h baseHandler) respondSuccess(ctx *fasthttp.RequestCtx, status int, data interface{}) {
	h.respondJSON(ctx, status, transport.NewSuccess(data, nil))
}

func (h baseHandler) respondError(ctx *fasthttp.RequestCtx, stdCtx context.Context, err error) {
	status, code := mapError(err)
	if status >= http.StatusInternalServerError {
		appLogger.WithRequestID(stdCtx, h.logger).Error("request failed", zap.Error(err))
	}
	h.respondJSON(ctx, status, transport.NewError(code, err.Error(), nil))
}

// command runs a dispatcher command bound to the request and writes the envelope.
func (h baseHandler) command(ctx *fasthttp.RequestCtx, name string, payload interface{}, status int) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	out, err := h.dispatcher.ExecuteCommand(stdCtx, name, payload)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, status, out)
}

// query runs a dispatcher query bound to the request and writes the envelope.
func (h baseHandler) query(ctx *fasthttp.RequestCtx, name string, params interface{}) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	out, err := h.dispatcher.ExecuteQuery(stdCtx, name, params)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, out)
}

// list runs a dispatcher query returning a slice and reports its length in meta.
func (h baseHandler) list(ctx *fasthttp.RequestCtx, name string, params interface{}) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	out, err := h.dispatcher.ExecuteQuery(stdCtx, name, params)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	count := 0
	if v := reflect.ValueOf(out); v.Kind() == reflect.Slice {
		count = v.Len()
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewList(out, count))
}

func (h baseHandler) pathID(ctx *fasthttp.RequestCtx) (string, bool) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "missing id", nil))
		return "", false
	}
	return id, true
}

func body(ctx *fasthttp.RequestCtx) json.RawMessage {
	return append(json.RawMessage(nil), ctx.PostBody()...)
}

func mapError(err error) (int, string) {
	switch {
	case domain.IsDomainError(err, domain.ErrCodeInvalid):
		return http.StatusBadRequest, string(domain.ErrCodeInvalid)
	case domain.IsDomainError(err, domain.ErrCodeNotFound):
		return http.StatusNotFound, string(domain.ErrCodeNotFound)
	case domain.IsDomainError(err, domain.ErrCodeConflict):
		return http.StatusConflict, string(domain.ErrCodeConflict)
	default:
		return http.StatusInternalServerError, string(domain.ErrCodeInternal)
	}
}
