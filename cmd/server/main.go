package main

import (
	"context"
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"github.com/valyala/fasthttp/pprofhandler"
	"go.uber.org/zap"

	apiHandler "github.com/fastygo/furnish/api/handler"
	"github.com/fastygo/furnish/internal/config"
	"github.com/fastygo/furnish/internal/infrastructure/monitor"
	"github.com/fastygo/furnish/internal/middleware"
	"github.com/fastygo/furnish/internal/router"
	"github.com/fastygo/furnish/internal/services"
	"github.com/fastygo/furnish/internal/services/lifecycle"
	"github.com/fastygo/furnish/pkg/httpcontext"
	"github.com/fastygo/furnish/pkg/logger"
	"github.com/fastygo/furnish/pkg/metrics"
	"github.com/fastygo/furnish/usecase"
	"github.com/fastygo/furnish/usecase/catalog"
	"github.com/fastygo/furnish/usecase/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
		Service:  cfg.AppName,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	storeMetrics := metrics.NewStoreMetrics(registry)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	repo, err := openSlot(appCtx, cfg, manager, zapLogger)
	if err != nil {
		zapLogger.Fatal("store slot unavailable", zap.Error(err))
	}

	mon := monitor.New(cfg.Store.MonitorInterval, zapLogger, slotProbe(cfg, repo))
	mon.Refresh()
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	processor := services.NewSnapshotProcessor(repo, mon, storeMetrics, zapLogger, services.ProcessorConfig{
		RetryInterval: cfg.Store.RetryInterval,
		SaveTimeout:   cfg.Store.SaveTimeout,
	})
	mon.TrackPending(processor)
	processor.Start()
	manager.Register("snapshot_processor", processor.Stop)

	entityStore := store.Open(appCtx, store.Options{
		Repository: repo,
		Sink:       processor,
		Logger:     zapLogger,
		Metrics:    storeMetrics,
	})
	zapLogger.Info("entity store ready",
		zap.String("origin", string(entityStore.Origin())),
		zap.Any("records", entityStore.Stats()))

	dispatcher := usecase.NewDispatcher()
	catalog.Register(dispatcher, entityStore, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Store:  apiHandler.NewStoreHandler(dispatcher, ctxAdapter, zapLogger),
		Health: apiHandler.NewHealthHandler(mon, cfg.Store.Backend, entityStore.Stats, ctxAdapter, zapLogger),
	}
	for _, entity := range catalog.Entities {
		handlers.Entities = append(handlers.Entities, apiHandler.NewEntityHandler(entity, dispatcher, ctxAdapter, zapLogger))
	}
	if cfg.HTTP.EnableMetrics {
		handlers.Metrics = fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}
	if cfg.HTTP.EnablePprof {
		handlers.Pprof = pprofhandler.PprofHandler
	}

	r := router.New(handlers, middleware.Observe(zapLogger, httpMetrics))

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Concurrency:  cfg.HTTP.MaxConn,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.ShutdownWithContext(ctx)
	})

	if err := manager.Wait(appCtx); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
