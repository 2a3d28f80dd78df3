package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics records entity store mutations and snapshot persistence.
type StoreMetrics struct {
	mutations       *prometheus.CounterVec
	records         *prometheus.GaugeVec
	persistDuration prometheus.Histogram
	persistFailures prometheus.Counter
	persistSuccess  prometheus.Counter
}

// NewStoreMetrics registers the store metrics on the provided registerer.
// A nil registerer yields a recorder that drops every observation.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "store_mutations_total",
		Help: "Applied entity store mutations.",
	}, []string{"collection", "operation"})
	records := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "store_records",
		Help: "Records currently held per collection.",
	}, []string{"collection"})
	persistDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "store_persist_duration_seconds",
		Help:    "Duration of snapshot saves in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	persistFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "store_persist_failures_total",
		Help: "Snapshot saves that failed and were kept for retry.",
	})
	persistSuccess := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "store_persist_success_total",
		Help: "Snapshot saves that completed.",
	})
	reg.MustRegister(mutations, records, persistDuration, persistFailures, persistSuccess)
	return &StoreMetrics{
		mutations:       mutations,
		records:         records,
		persistDuration: persistDuration,
		persistFailures: persistFailures,
		persistSuccess:  persistSuccess,
	}
}

// IncMutation counts one applied mutation.
func (m *StoreMetrics) IncMutation(collection, operation string) {
	if m == nil || m.mutations == nil {
		return
	}
	m.mutations.WithLabelValues(normalizeLabel(collection), normalizeLabel(operation)).Inc()
}

// SetRecords publishes collection sizes.
func (m *StoreMetrics) SetRecords(counts map[string]int) {
	if m == nil || m.records == nil {
		return
	}
	for collection, n := range counts {
		m.records.WithLabelValues(normalizeLabel(collection)).Set(float64(n))
	}
}

// ObservePersist records the outcome of one snapshot save.
func (m *StoreMetrics) ObservePersist(duration time.Duration, err error) {
	if m == nil || m.persistDuration == nil {
		return
	}
	m.persistDuration.Observe(duration.Seconds())
	if err != nil {
		m.persistFailures.Inc()
		return
	}
	m.persistSuccess.Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
