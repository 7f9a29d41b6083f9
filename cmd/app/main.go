package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/HexBrew_Go/internal/bootstrap"
	"github.com/osse101/HexBrew_Go/internal/clock"
	"github.com/osse101/HexBrew_Go/internal/concurrency"
	"github.com/osse101/HexBrew_Go/internal/config"
	"github.com/osse101/HexBrew_Go/internal/logger"
	"github.com/osse101/HexBrew_Go/internal/scheduler"
	"github.com/osse101/HexBrew_Go/internal/server"
	"github.com/osse101/HexBrew_Go/internal/sse"
	"github.com/osse101/HexBrew_Go/internal/worker"
)

const (
	shutdownTimeout = 15 * time.Second
	jobQueueSize    = 16
	cycleTickJob    = "cycle_tick"
)

// @title HexBrew API
// @version 1.0
// @description Potion shop game service: forage by day, brew, and sell to night-time customers.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hexbrew: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg, os.Stdout)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if cfg.Environment != config.EnvDev {
		warnings, err := config.ValidateEnvWithWarnings()
		if err != nil {
			return err
		}
		for _, w := range warnings {
			logger.Warn("Configuration warning", "warning", w)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clk := clock.New()
	locks := concurrency.NewLockManager()

	storage, err := bootstrap.InitializeStorage(ctx, cfg, clk, locks)
	if err != nil {
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		storage.Close()
		return err
	}

	svc, err := bootstrap.InitializeServices(cfg, storage, publisher, clk, locks)
	if err != nil {
		storage.Close()
		return err
	}

	hub := sse.NewHub()
	hub.Start()

	brewWorker := worker.NewBrewReadyWorker(clk, bootstrap.BrewReadyNotifier(hub))

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:        bus,
		ShopService:     svc.Shop,
		Hub:             hub,
		BrewReadyWorker: brewWorker,
	}); err != nil {
		storage.Close()
		return err
	}

	if err := svc.Start(ctx); err != nil {
		storage.Close()
		return err
	}
	brewWorker.Start(ctx, storage)

	pool := worker.NewPool(cfg.WorkerCount, jobQueueSize)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(cycleTickJob, cfg.CyclePollInterval, worker.NewCycleTickJob(svc.Cycle))

	services := server.Services{
		World:   svc.Cycle,
		Player:  svc.Player,
		Forage:  svc.Forage,
		Brewing: svc.Brewing,
		Shop:    svc.Shop,
		Hub:     hub,
	}
	if storage.Pool != nil {
		services.DB = storage.Pool
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, services)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err = <-serverErr:
		logger.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          sched,
		WorkerPool:         pool,
		BrewReadyWorker:    brewWorker,
		Hub:                hub,
		ResilientPublisher: publisher,
		Storage:            storage,
	})

	return err
}
