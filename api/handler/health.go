package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/furnish/api/transport"
	"github.com/fastygo/furnish/internal/infrastructure/monitor"
	"github.com/fastygo/furnish/pkg/httpcontext"
)

// StatusReporter is satisfied by *monitor.Monitor.
type StatusReporter interface {
	GetStatus() monitor.Status
}

type HealthHandler struct {
	baseHandler
	monitor StatusReporter
	backend string
	stats   func() map[string]int
}

func NewHealthHandler(mon StatusReporter, backend string, stats func() map[string]int, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(nil, adapter, logger),
		monitor:     mon,
		backend:     backend,
		stats:       stats,
	}
}

// @Summary Health check
// @Tags health
// @Router /health [get]
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	status := h.monitor.GetStatus()
	payload := map[string]interface{}{
		"timestamp": time.Now().UTC(),
		"store": map[string]interface{}{
			"backend":          h.backend,
			"pending_revision": status.PendingRevision,
		},
		"services": status.Backends,
	}
	if h.stats != nil {
		payload["records"] = h.stats()
	}

	if status.Online {
		h.respondSuccess(ctx, http.StatusOK, payload)
		return
	}
	h.respondJSON(ctx, http.StatusServiceUnavailable, transport.NewError("DEGRADED", "dependencies unhealthy", payload))
}
