package worker

import (
	"context"
	"time"

	"github.com/osse101/HexBrew_Go/internal/clock"
	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/event"
	"github.com/osse101/HexBrew_Go/internal/logger"
)

const brewReadyWorkerName = "brew ready worker"

// BrewReady is passed to the notify callback when a brew window closes
type BrewReady struct {
	PlayerID   string `json:"player_id"`
	CauldronID string `json:"cauldron_id"`
	RecipeID   string `json:"recipe_id"`
}

// ActiveBrewSource lists the cauldrons to rescan on startup
type ActiveBrewSource interface {
	ListPlayerIDs(ctx context.Context) ([]string, error)
	GetCauldrons(ctx context.Context, playerID string) ([]domain.Cauldron, error)
}

// BrewReadyWorker tells players when a brew can be collected.
// It schedules a timer per cauldron from brew.started events.
type BrewReadyWorker struct {
	BaseWorker
	clock  clock.Clock
	notify func(ctx context.Context, ready BrewReady)
}

// NewBrewReadyWorker creates a BrewReadyWorker
func NewBrewReadyWorker(clk clock.Clock, notify func(ctx context.Context, ready BrewReady)) *BrewReadyWorker {
	w := &BrewReadyWorker{clock: clk, notify: notify}
	w.init()
	return w
}

// Start schedules every brew already in progress
func (w *BrewReadyWorker) Start(ctx context.Context, source ActiveBrewSource) {
	log := logger.FromContext(ctx)

	ids, err := source.ListPlayerIDs(ctx)
	if err != nil {
		log.Error(LogMsgBrewReadyScanFailed, "error", err)
		return
	}
	for _, id := range ids {
		cauldrons, err := source.GetCauldrons(ctx, id)
		if err != nil {
			log.Error(LogMsgBrewReadyScanFailed, "player_id", id, "error", err)
			continue
		}
		for _, c := range cauldrons {
			if c.IsBrewing() {
				w.Schedule(BrewReady{PlayerID: id, CauldronID: c.ID, RecipeID: c.RecipeID}, *c.BrewEndsAt)
			}
		}
	}
}

// Subscribe subscribes the worker to brew events
func (w *BrewReadyWorker) Subscribe(bus event.Bus) {
	bus.Subscribe(event.BrewStarted, w.handleBrewStarted)
	bus.Subscribe(event.BrewFinished, w.handleBrewFinished)
}

func (w *BrewReadyWorker) handleBrewStarted(ctx context.Context, e event.Event) error {
	p, err := event.DecodePayload[domain.BrewStartedPayload](e.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgBrewReadyBadPayload, "error", err)
		return nil
	}
	w.Schedule(BrewReady{PlayerID: p.PlayerID, CauldronID: p.CauldronID, RecipeID: p.RecipeID}, time.Unix(p.EndsAt, 0))
	return nil
}

func (w *BrewReadyWorker) handleBrewFinished(_ context.Context, e event.Event) error {
	p, err := event.DecodePayload[domain.BrewFinishedPayload](e.Payload)
	if err != nil {
		return nil
	}
	w.stopTimer(timerKey(p.PlayerID, p.CauldronID))
	return nil
}

// Schedule notifies at endsAt, or right away if it has passed
func (w *BrewReadyWorker) Schedule(ready BrewReady, endsAt time.Time) {
	delay := endsAt.Sub(w.clock.Now())
	if delay < 0 {
		delay = 0
	}
	logger.Debug(LogMsgBrewReadyScheduled,
		"player_id", ready.PlayerID,
		"cauldron_id", ready.CauldronID,
		"delay", delay)

	w.schedule(timerKey(ready.PlayerID, ready.CauldronID), delay, func() {
		ctx := context.Background()
		logger.FromContext(ctx).Info(LogMsgBrewReadyFired, "player_id", ready.PlayerID, "cauldron_id", ready.CauldronID)
		w.notify(ctx, ready)
	})
}

// Pending returns the number of scheduled notifications
func (w *BrewReadyWorker) Pending() int {
	return w.pending()
}

// Shutdown cancels pending notifications and waits for in-flight ones
func (w *BrewReadyWorker) Shutdown(ctx context.Context) error {
	return w.shutdownInternal(ctx, brewReadyWorkerName)
}

func timerKey(playerID, cauldronID string) string {
	return playerID + "/" + cauldronID
}
