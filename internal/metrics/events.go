package metrics

import (
	"context"

	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/event"
	"github.com/osse101/HexBrew_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all game events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	event.SubscribeAll(bus, event.AllTypes, e.HandleEvent)
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.PhaseChanged:
		err = recordPhase(evt)

	case event.PlayerRegistered:
		PlayersRegistered.Inc()

	case event.IngredientForaged:
		var p domain.IngredientForagedPayload
		if p, err = event.DecodePayload[domain.IngredientForagedPayload](evt.Payload); err == nil {
			for _, ing := range p.Gathered {
				IngredientsForaged.WithLabelValues(string(p.Zone), string(ing)).Inc()
			}
		}

	case event.BrewStarted:
		var p domain.BrewStartedPayload
		if p, err = event.DecodePayload[domain.BrewStartedPayload](evt.Payload); err == nil {
			BrewsStarted.WithLabelValues(p.RecipeID).Inc()
		}

	case event.BrewFinished:
		var p domain.BrewFinishedPayload
		if p, err = event.DecodePayload[domain.BrewFinishedPayload](evt.Payload); err == nil {
			PotionsBrewed.WithLabelValues(p.RecipeID, QualityTier(p.Quality)).Inc()
			if p.GoldEarned > 0 {
				GoldEarned.WithLabelValues(SourceBrew).Add(float64(p.GoldEarned))
			}
		}

	case event.OrdersGenerated:
		var p domain.OrdersGeneratedPayload
		if p, err = event.DecodePayload[domain.OrdersGeneratedPayload](evt.Payload); err == nil {
			OrdersGenerated.Add(float64(p.OrderCount))
		}

	case event.PotionSold:
		var p domain.PotionSoldPayload
		if p, err = event.DecodePayload[domain.PotionSoldPayload](evt.Payload); err == nil {
			PotionsSold.WithLabelValues(p.RecipeID, string(p.Faction)).Inc()
			GoldEarned.WithLabelValues(SourceSale).Add(float64(p.Price))
		}
	}

	if err != nil {
		log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func recordPhase(evt event.Event) error {
	p, err := event.DecodePayload[domain.PhaseChangedPayload](evt.Payload)
	if err != nil {
		return err
	}
	SetWorld(p.Day, p.Phase)
	return nil
}

// SetWorld publishes the current day and phase gauges
func SetWorld(day int, phase domain.Phase) {
	WorldDay.Set(float64(day))
	for _, ph := range []domain.Phase{domain.PhaseDay, domain.PhaseNight} {
		v := 0.0
		if ph == phase {
			v = 1
		}
		WorldPhase.WithLabelValues(string(ph)).Set(v)
	}
}

// QualityTier buckets a potion quality into a metric label
func QualityTier(quality int) string {
	if quality >= domain.QualityHigh {
		return QualityTierHigh
	}
	return QualityTierLow
}
