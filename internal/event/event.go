package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/HexBrew_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Event types
const (
	PhaseChanged      Type = domain.EventTypePhaseChanged
	NightBegan        Type = domain.EventTypeNightBegan
	DayAdvanced       Type = domain.EventTypeDayAdvanced
	PlayerRegistered  Type = domain.EventTypePlayerRegistered
	IngredientForaged Type = domain.EventTypeIngredientForaged
	BrewStarted       Type = domain.EventTypeBrewStarted
	BrewFinished      Type = domain.EventTypeBrewFinished
	OrdersGenerated   Type = domain.EventTypeOrdersGenerated
	PotionSold        Type = domain.EventTypePotionSold
)

// AllTypes lists every event type the game publishes
var AllTypes = []Type{
	PhaseChanged,
	NightBegan,
	DayAdvanced,
	PlayerRegistered,
	IngredientForaged,
	BrewStarted,
	BrewFinished,
	OrdersGenerated,
	PotionSold,
}

// Type-safe event constructors

// NewPhaseEvent creates a world clock event. eventType is one of PhaseChanged,
// NightBegan or DayAdvanced.
func NewPhaseEvent(eventType Type, day, week int, phase, previous domain.Phase, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: domain.PhaseChangedPayload{
			Day:       day,
			Week:      week,
			Phase:     phase,
			Previous:  previous,
			Timestamp: at.Unix(),
		},
	}
}

// NewPlayerRegisteredEvent creates a player.registered event
func NewPlayerRegisteredEvent(playerID, username string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlayerRegistered,
		Payload: domain.PlayerRegisteredPayload{
			PlayerID:  playerID,
			Username:  username,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewIngredientForagedEvent creates an ingredient.foraged event
func NewIngredientForagedEvent(playerID string, zone domain.Zone, gathered []domain.IngredientType) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    IngredientForaged,
		Payload: domain.IngredientForagedPayload{
			PlayerID:  playerID,
			Zone:      zone,
			Gathered:  gathered,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewBrewStartedEvent creates a brew.started event
func NewBrewStartedEvent(playerID, cauldronID, recipeID string, endsAt time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BrewStarted,
		Payload: domain.BrewStartedPayload{
			PlayerID:   playerID,
			CauldronID: cauldronID,
			RecipeID:   recipeID,
			EndsAt:     endsAt.Unix(),
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewBrewFinishedEvent creates a brew.finished event
func NewBrewFinishedEvent(playerID, cauldronID string, potion domain.Potion, goldEarned int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    BrewFinished,
		Payload: domain.BrewFinishedPayload{
			PlayerID:   playerID,
			CauldronID: cauldronID,
			PotionID:   potion.ID,
			RecipeID:   potion.RecipeID,
			Quality:    potion.Quality,
			GoldEarned: goldEarned,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewOrdersGeneratedEvent creates an orders.generated event
func NewOrdersGeneratedEvent(playerID string, day, count int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    OrdersGenerated,
		Payload: domain.OrdersGeneratedPayload{
			PlayerID:   playerID,
			Day:        day,
			OrderCount: count,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewPotionSoldEvent creates a potion.sold event
func NewPotionSoldEvent(playerID string, order domain.Order, potionID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PotionSold,
		Payload: domain.PotionSoldPayload{
			PlayerID:  playerID,
			OrderID:   order.ID,
			PotionID:  potionID,
			RecipeID:  order.RecipeID,
			Faction:   order.Faction,
			Price:     order.Price,
			Timestamp: time.Now().Unix(),
		},
		Metadata: Metadata{"faction": string(order.Faction)},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Publisher publishes events
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus defines the interface for an event bus
type Bus interface {
	Publisher
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber of the event type synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe registers a handler for an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll registers the handler for every event type in types
func SubscribeAll(bus Bus, types []Type, handler Handler) {
	for _, t := range types {
		bus.Subscribe(t, handler)
	}
}
