package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/fastygo/furnish/domain"
	"github.com/fastygo/furnish/pkg/metrics"
	"github.com/fastygo/furnish/repository"
	"github.com/fastygo/furnish/usecase"
)

// ConnectionHealth abstracts the connection monitor functionality.
type ConnectionHealth interface {
	IsOnline() bool
}

// ProcessorConfig controls how snapshots are written and retried.
type ProcessorConfig struct {
	RetryInterval time.Duration
	SaveTimeout   time.Duration
}

// SnapshotProcessor writes store snapshots to the durable slot in the background.
// Bursts of submissions collapse to the newest revision; a failed save keeps that
// revision pending until the retry schedule or the next submission writes it.
type SnapshotProcessor struct {
	repo    repository.SnapshotRepository
	monitor ConnectionHealth
	metrics *metrics.StoreMetrics
	logger  *zap.Logger
	cron    *cron.Cron
	cfg     ProcessorConfig

	mu      sync.Mutex
	pending *domain.Snapshot
	latest  uint64
	saved   uint64

	saveMu  sync.Mutex
	wake    chan struct{}
	stopCh  chan struct{}
	done    chan struct{}
	once    sync.Once
	started atomic.Bool
}

func NewSnapshotProcessor(
	repo repository.SnapshotRepository,
	monitor ConnectionHealth,
	storeMetrics *metrics.StoreMetrics,
	logger *zap.Logger,
	cfg ProcessorConfig,
) *SnapshotProcessor {
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = 30 * time.Second
	}
	if cfg.SaveTimeout <= 0 {
		cfg.SaveTimeout = 5 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	sp := &SnapshotProcessor{
		repo:    repo,
		monitor: monitor,
		metrics: storeMetrics,
		logger:  logger.Named("snapshot"),
		cfg:     cfg,
		cron:    cron.New(cron.WithSeconds()),
		wake:    make(chan struct{}, 1),
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}

	schedule := fmt.Sprintf("@every %s", cfg.RetryInterval)
	_, _ = sp.cron.AddFunc(schedule, func() {
		if sp.Pending() == 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), cfg.RetryInterval)
		defer cancel()
		if err := sp.Drain(ctx); err != nil {
			sp.logger.Warn("snapshot retry failed", zap.Error(err))
		}
	})

	return sp
}

// Submit queues snap for saving and returns immediately. A revision not newer
// than the last one submitted is ignored.
func (sp *SnapshotProcessor) Submit(ctx context.Context, snap domain.Snapshot) {
	if sp == nil {
		return
	}
	sp.mu.Lock()
	if snap.Revision <= sp.latest {
		sp.mu.Unlock()
		return
	}
	sp.latest = snap.Revision
	sp.pending = &snap
	sp.mu.Unlock()

	select {
	case sp.wake <- struct{}{}:
	default:
	}
}

// Start launches the writer loop and the retry scheduler.
func (sp *SnapshotProcessor) Start() {
	if sp == nil || sp.cron == nil {
		return
	}
	if !sp.started.CompareAndSwap(false, true) {
		return
	}
	go sp.loop()
	sp.cron.Start()
	sp.logger.Info("snapshot processor started", zap.Duration("retry_interval", sp.cfg.RetryInterval))
}

// Stop halts the scheduler and the loop, then flushes whatever is still pending.
func (sp *SnapshotProcessor) Stop(ctx context.Context) error {
	if sp == nil || sp.cron == nil {
		return nil
	}
	stopCtx := sp.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}

	sp.once.Do(func() { close(sp.stopCh) })
	if sp.started.Load() {
		select {
		case <-sp.done:
		case <-ctx.Done():
		}
	}

	err := sp.Flush(ctx)
	if err != nil {
		sp.logger.Warn("final snapshot flush failed", zap.Uint64("revision", sp.Pending()), zap.Error(err))
	}
	sp.logger.Info("snapshot processor stopped")
	return err
}

// Drain writes the pending snapshot unless the monitor reports the slot offline.
func (sp *SnapshotProcessor) Drain(ctx context.Context) error {
	return sp.drain(ctx, false)
}

// Flush writes pending snapshots until none is left, ignoring the monitor.
// It returns the save error when the slot keeps failing.
func (sp *SnapshotProcessor) Flush(ctx context.Context) error {
	if sp == nil {
		return nil
	}
	for sp.Pending() != 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := sp.drain(ctx, true); err != nil {
			return err
		}
	}
	return nil
}

// Pending returns the revision waiting to be saved, 0 when the slot is current.
func (sp *SnapshotProcessor) Pending() uint64 {
	if sp == nil {
		return 0
	}
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if sp.pending == nil {
		return 0
	}
	return sp.pending.Revision
}

// Saved returns the last revision the slot acknowledged.
func (sp *SnapshotProcessor) Saved() uint64 {
	if sp == nil {
		return 0
	}
	sp.mu.Lock()
	defer sp.mu.Unlock()
	return sp.saved
}

func (sp *SnapshotProcessor) loop() {
	defer close(sp.done)
	for {
		select {
		case <-sp.wake:
			ctx, cancel := context.WithTimeout(context.Background(), sp.cfg.SaveTimeout)
			if err := sp.Drain(ctx); err != nil {
				sp.logger.Warn("snapshot save failed, will retry", zap.Error(err))
			}
			cancel()
		case <-sp.stopCh:
			return
		}
	}
}

func (sp *SnapshotProcessor) drain(ctx context.Context, force bool) error {
	if sp == nil || sp.repo == nil {
		return nil
	}
	if !force && sp.monitor != nil && !sp.monitor.IsOnline() {
		sp.logger.Debug("skipping snapshot save (offline)")
		return nil
	}

	sp.saveMu.Lock()
	defer sp.saveMu.Unlock()

	sp.mu.Lock()
	snap := sp.pending
	sp.pending = nil
	sp.mu.Unlock()
	if snap == nil {
		return nil
	}

	payload, err := snap.Encode()
	if err != nil {
		sp.logger.Error("dropping unencodable snapshot", zap.Uint64("revision", snap.Revision), zap.Error(err))
		return nil
	}

	saveCtx, cancel := context.WithTimeout(ctx, sp.cfg.SaveTimeout)
	defer cancel()

	start := time.Now()
	err = sp.repo.Save(saveCtx, payload)
	sp.metrics.ObservePersist(time.Since(start), err)

	sp.mu.Lock()
	defer sp.mu.Unlock()
	if err != nil {
		if sp.pending == nil {
			sp.pending = snap
		}
		return fmt.Errorf("save snapshot revision %d: %w", snap.Revision, err)
	}
	if snap.Revision > sp.saved {
		sp.saved = snap.Revision
	}
	sp.logger.Debug("snapshot saved", zap.Uint64("revision", snap.Revision), zap.Int("bytes", len(payload)))
	return nil
}

var _ usecase.SnapshotSink = (*SnapshotProcessor)(nil)
