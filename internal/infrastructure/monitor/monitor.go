package monitor

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Pinger is anything whose reachability can be probed: a snapshot repository,
// a pgx pool, or a redis client wrapped in PingFunc.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a plain function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// Probe is one named dependency checked on every tick.
type Probe struct {
	Name    string
	Target  Pinger
	Timeout time.Duration
}

// PendingReporter exposes the revision still waiting to be persisted, 0 when none.
type PendingReporter interface {
	Pending() uint64
}

type Monitor struct {
	probes  []Probe
	pending PendingReporter

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	logger   *zap.Logger
}

func New(interval time.Duration, logger *zap.Logger, probes ...Probe) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	for i := range probes {
		if probes[i].Timeout <= 0 {
			probes[i].Timeout = 3 * time.Second
		}
	}
	return &Monitor{
		probes:   probes,
		interval: interval,
		stopCh:   make(chan struct{}),
		logger:   logger.Named("monitor"),
	}
}

// TrackPending makes the status report the revision still waiting for the slot.
func (m *Monitor) TrackPending(p PendingReporter) {
	m.mu.Lock()
	m.pending = p
	m.mu.Unlock()
}

func (m *Monitor) Start() {
	go m.loop()
}

func (m *Monitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

// IsOnline reports whether every probe succeeded on the last check.
// A monitor that has not checked yet is offline.
func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.Online
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	status := m.status
	status.Backends = make(map[string]bool, len(m.status.Backends))
	for name, ok := range m.status.Backends {
		status.Backends[name] = ok
	}
	return status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.Refresh()
	for {
		select {
		case <-ticker.C:
			m.Refresh()
		case <-m.stopCh:
			return
		}
	}
}

// Refresh probes every dependency once and stores the result.
func (m *Monitor) Refresh() {
	status := Status{
		Online:    true,
		Backends:  make(map[string]bool, len(m.probes)),
		LastCheck: time.Now().UTC(),
	}
	for _, probe := range m.probes {
		ok := m.check(probe)
		status.Backends[probe.Name] = ok
		status.Online = status.Online && ok
	}

	m.mu.Lock()
	if m.pending != nil {
		status.PendingRevision = m.pending.Pending()
	}
	if m.status.Online && !status.Online {
		m.logger.Warn("backend offline", zap.Strings("down", status.Down()))
	}
	m.status = status
	m.mu.Unlock()
}

func (m *Monitor) check(probe Probe) bool {
	if probe.Target == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), probe.Timeout)
	defer cancel()
	if err := probe.Target.Ping(ctx); err != nil {
		m.logger.Debug("probe failed", zap.String("probe", probe.Name), zap.Error(err))
		return false
	}
	return true
}

// Down lists the probes that failed, sorted by name.
func (s Status) Down() []string {
	down := make([]string, 0)
	for name, ok := range s.Backends {
		if !ok {
			down = append(down, name)
		}
	}
	sort.Strings(down)
	return down
}
