package httpcontext

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"

	appLogger "github.com/fastygo/furnish/pkg/logger"
)

func TestAttachReusesClientRequestID(t *testing.T) {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.Set(RequestIDHeader, "req-42")
	ctx.Request.Header.SetUserAgent("dashboard/1.0")

	stdCtx, cancel := NewAdapter(time.Second).Attach(ctx)
	defer cancel()

	assert.Equal(t, "req-42", appLogger.RequestID(stdCtx))
	assert.Equal(t, "req-42", string(ctx.Response.Header.Peek(RequestIDHeader)))
	assert.Equal(t, "dashboard/1.0", stdCtx.Value(KeyUserAgent))
	_, ok := stdCtx.Deadline()
	assert.True(t, ok)
}

func TestAttachKeepsOneIDPerRequest(t *testing.T) {
	ctx := &fasthttp.RequestCtx{}
	a := NewAdapter(0)

	first, cancel := a.Attach(ctx)
	defer cancel()
	second, cancel2 := a.Attach(ctx)
	defer cancel2()

	id := appLogger.RequestID(first)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, appLogger.RequestID(second))
}
