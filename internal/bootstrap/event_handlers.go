package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/HexBrew_Go/internal/event"
	"github.com/osse101/HexBrew_Go/internal/logger"
	"github.com/osse101/HexBrew_Go/internal/metrics"
	"github.com/osse101/HexBrew_Go/internal/shop"
	"github.com/osse101/HexBrew_Go/internal/sse"
	"github.com/osse101/HexBrew_Go/internal/worker"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration
type EventHandlerDependencies struct {
	EventBus        event.Bus
	ShopService     shop.Service
	Hub             *sse.Hub
	BrewReadyWorker *worker.BrewReadyWorker
}

// RegisterEventHandlers sets up every event subscriber:
// the metrics collector, the shop's nightly order generation,
// the SSE bridge and the brew ready timers.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	logger.Info(LogMsgMetricsCollectorRegistered)

	deps.EventBus.Subscribe(event.NightBegan, deps.ShopService.HandleNightBegan)
	logger.Info(LogMsgShopSubscribed)

	if deps.Hub != nil {
		sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
		logger.Info(LogMsgStreamSubscribed)
	}

	if deps.BrewReadyWorker != nil {
		deps.BrewReadyWorker.Subscribe(deps.EventBus)
		logger.Info(LogMsgBrewReadyWorkerSubscribed)
	}

	return nil
}

// BrewReadyNotifier pushes brew ready notices to the player's stream
func BrewReadyNotifier(hub *sse.Hub) func(ctx context.Context, ready worker.BrewReady) {
	return func(_ context.Context, ready worker.BrewReady) {
		hub.BroadcastTo(ready.PlayerID, sse.EventTypeBrewReady, ready)
	}
}
