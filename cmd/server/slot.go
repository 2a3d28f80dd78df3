package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fastygo/furnish/internal/config"
	"github.com/fastygo/furnish/internal/infrastructure/monitor"
	pgInfra "github.com/fastygo/furnish/internal/infrastructure/postgres"
	redisInfra "github.com/fastygo/furnish/internal/infrastructure/redis"
	"github.com/fastygo/furnish/internal/infrastructure/slot"
	"github.com/fastygo/furnish/internal/services/lifecycle"
	"github.com/fastygo/furnish/repository"
	boltRepo "github.com/fastygo/furnish/repository/bolt"
	"github.com/fastygo/furnish/repository/memory"
	pgRepo "github.com/fastygo/furnish/repository/postgres"
	redisRepo "github.com/fastygo/furnish/repository/redis"
)

// openSlot connects the configured backend and returns the snapshot repository on top of it.
// Connections are registered with the manager so they close after the store has flushed.
func openSlot(ctx context.Context, cfg *config.Config, manager *lifecycle.Manager, logger *zap.Logger) (repository.SnapshotRepository, error) {
	switch cfg.Store.Backend {
	case config.BackendBolt:
		db, err := slot.Open(cfg.Store.BoltPath, cfg.Store.BoltBucket)
		if err != nil {
			return nil, fmt.Errorf("open bolt slot: %w", err)
		}
		manager.RegisterCloser("bolt", db)
		logger.Info("using bolt slot", zap.String("path", cfg.Store.BoltPath), zap.String("key", cfg.Store.Key))
		return boltRepo.NewSnapshotRepository(db, cfg.Store.Key), nil

	case config.BackendRedis:
		client, err := redisInfra.NewClient(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		manager.Register("redis", func(context.Context) error {
			return redisInfra.Close(client, logger)
		})
		return redisRepo.NewSnapshotRepository(client, cfg.Store.Key), nil

	case config.BackendPostgres:
		if err := pgInfra.RunMigrations(cfg.Database, cfg.Migrations, logger); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}
		pool, err := pgInfra.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		manager.Register("postgres", func(context.Context) error {
			return pgInfra.Close(pool, logger)
		})
		return pgRepo.NewSnapshotRepository(pool, cfg.Store.Key), nil

	case config.BackendMemory:
		logger.Warn("using in-memory slot, state is lost on exit")
		return memory.NewSnapshotRepository(), nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}

func slotProbe(cfg *config.Config, repo repository.SnapshotRepository) monitor.Probe {
	return monitor.Probe{Name: cfg.Store.Backend, Target: repo}
}
