package middleware

import (
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/furnish/pkg/metrics"
)

// Wrapper decorates the handler registered for route.
type Wrapper func(route string, next fasthttp.RequestHandler) fasthttp.RequestHandler

// Observe logs every request and records it in the HTTP metrics under its route pattern.
// A panic in next is logged and answered with 500.
func Observe(logger *zap.Logger, httpMetrics *metrics.HTTPMetrics) Wrapper {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("http")
	return func(route string, next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			start := time.Now()
			method := string(ctx.Method())

			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("handler panic", zap.String("route", route), zap.Any("panic", rec))
					ctx.ResetBody()
					ctx.SetStatusCode(fasthttp.StatusInternalServerError)
				}

				status := ctx.Response.StatusCode()
				elapsed := time.Since(start)
				httpMetrics.Observe(method, route, status, elapsed)

				fields := []zap.Field{
					zap.String("method", method),
					zap.String("route", route),
					zap.String("path", string(ctx.Path())),
					zap.Int("status", status),
					zap.Duration("elapsed", elapsed),
				}
				if reqID := string(ctx.Response.Header.Peek("X-Request-ID")); reqID != "" {
					fields = append(fields, zap.String("request_id", reqID))
				}
				if status >= fasthttp.StatusInternalServerError {
					logger.Warn("request failed", fields...)
					return
				}
				logger.Debug("request served", fields...)
			}()

			next(ctx)
		}
	}
}
