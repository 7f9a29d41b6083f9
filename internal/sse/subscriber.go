package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/event"
	"github.com/osse101/HexBrew_Go/internal/recipe"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for all relevant event types
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.PhaseChanged, s.worldHandler(EventTypeWorldPhase))
	s.bus.Subscribe(event.NightBegan, s.worldHandler(EventTypeNightBegan))
	s.bus.Subscribe(event.DayAdvanced, s.worldHandler(EventTypeDayAdvanced))

	s.bus.Subscribe(event.BrewStarted, playerHandler(s.hub, EventTypeBrewStarted,
		func(p domain.BrewStartedPayload) string { return p.PlayerID }))
	s.bus.Subscribe(event.BrewFinished, playerHandler(s.hub, EventTypeBrewFinished,
		func(p domain.BrewFinishedPayload) string { return p.PlayerID }))
	s.bus.Subscribe(event.OrdersGenerated, playerHandler(s.hub, EventTypeOrdersGenerated,
		func(p domain.OrdersGeneratedPayload) string { return p.PlayerID }))
	s.bus.Subscribe(event.PotionSold, playerHandler(s.hub, EventTypePotionSold,
		func(p domain.PotionSoldPayload) string { return p.PlayerID }))
	s.bus.Subscribe(event.IngredientForaged, playerHandler(s.hub, EventTypeIngredientForaged,
		func(p domain.IngredientForagedPayload) string { return p.PlayerID }))

	slog.Info(LogMsgSubscriberReady,
		"types", []string{
			EventTypeWorldPhase, EventTypeNightBegan, EventTypeDayAdvanced,
			EventTypeBrewStarted, EventTypeBrewFinished, EventTypeOrdersGenerated,
			EventTypePotionSold, EventTypeIngredientForaged,
		})
}

func (s *Subscriber) worldHandler(sseType string) event.Handler {
	return func(_ context.Context, evt event.Event) error {
		p, err := event.DecodePayload[domain.PhaseChangedPayload](evt.Payload)
		if err != nil {
			slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
			return nil
		}

		today := recipe.ForDay(p.Day)
		s.hub.Broadcast(sseType, WorldPayload{
			Day:        p.Day,
			Week:       p.Week,
			Phase:      p.Phase,
			Previous:   p.Previous,
			RecipeID:   today.ID,
			RecipeName: today.Name,
		})

		slog.Debug(LogMsgEventBroadcast, "event_type", sseType, "day", p.Day, "phase", p.Phase)
		return nil
	}
}

// playerHandler forwards a typed payload to the clients following its player
func playerHandler[T any](hub *Hub, sseType string, owner func(T) string) event.Handler {
	return func(_ context.Context, evt event.Event) error {
		p, err := event.DecodePayload[T](evt.Payload)
		if err != nil {
			slog.Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
			return nil
		}

		playerID := owner(p)
		hub.BroadcastTo(playerID, sseType, p)
		slog.Debug(LogMsgEventBroadcast, "event_type", sseType, "player_id", playerID)
		return nil
	}
}
