package bootstrap

import (
	"context"

	"github.com/osse101/HexBrew_Go/internal/event"
	"github.com/osse101/HexBrew_Go/internal/logger"
	"github.com/osse101/HexBrew_Go/internal/scheduler"
	"github.com/osse101/HexBrew_Go/internal/server"
	"github.com/osse101/HexBrew_Go/internal/sse"
	"github.com/osse101/HexBrew_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	BrewReadyWorker    *worker.BrewReadyWorker
	Hub                *sse.Hub
	ResilientPublisher *event.ResilientPublisher
	Storage            *Storage
}

// GracefulShutdown stops the application in dependency order:
//  1. event stream, releasing long-lived SSE connections
//  2. HTTP server, draining in-flight requests
//  3. scheduler and worker pool, so the world clock stops ticking
//  4. brew ready timers
//  5. event publisher, dead-lettering anything still queued for retry
//  6. storage
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	logger.Info(LogMsgShuttingDownServer)

	if c.Hub != nil {
		c.Hub.Stop()
	}

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			logger.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.WorkerPool != nil {
		c.WorkerPool.Stop()
	}

	if c.BrewReadyWorker != nil {
		if err := c.BrewReadyWorker.Shutdown(ctx); err != nil {
			logger.Error(LogMsgBrewReadyWorkerFailed, "error", err)
		}
	}

	if c.ResilientPublisher != nil {
		logger.Info(LogMsgShuttingDownEventPublisher)
		if err := c.ResilientPublisher.Shutdown(ctx); err != nil {
			logger.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if c.Storage != nil {
		c.Storage.Close()
	}

	logger.Info(LogMsgServerStopped)
}
