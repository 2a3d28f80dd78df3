package middleware

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fastygo/furnish/pkg/metrics"
)

func TestObserveRecordsRequests(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	reg := prometheus.NewRegistry()
	wrap := Observe(zap.New(core), metrics.NewHTTPMetrics(reg))

	h := wrap("/api/v1/clients/{id}", func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusNotFound)
	})

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodGet)
	ctx.Request.SetRequestURI("/api/v1/clients/client-9")
	h(ctx)

	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "http_requests_total"))
	entries := logs.FilterMessage("request served").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "/api/v1/clients/{id}", entries[0].ContextMap()["route"])
	}
}

func TestObserveRecoversPanics(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	wrap := Observe(zap.New(core), nil)

	h := wrap("/boom", func(ctx *fasthttp.RequestCtx) {
		panic("boom")
	})

	ctx := &fasthttp.RequestCtx{}
	assert.NotPanics(t, func() { h(ctx) })
	assert.Equal(t, fasthttp.StatusInternalServerError, ctx.Response.StatusCode())
	assert.Equal(t, 1, logs.FilterMessage("handler panic").Len())
	assert.Equal(t, 1, logs.FilterMessage("request failed").Len())
}
