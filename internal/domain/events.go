package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking. These represent domain events that can be published
// and consumed by multiple modules.
//
// Event types follow the pattern: <entity>.<action> (e.g., "world.night_began")
const (
	// EventTypePhaseChanged is published on every Day/Night transition
	EventTypePhaseChanged = "world.phase_changed"

	// EventTypeNightBegan is published when the world enters the Night phase
	EventTypeNightBegan = "world.night_began"

	// EventTypeDayAdvanced is published when Night ends and the day counter moves on
	EventTypeDayAdvanced = "world.day_advanced"

	// EventTypePlayerRegistered is published when a new player is created
	EventTypePlayerRegistered = "player.registered"

	// EventTypeIngredientForaged is published after a successful forage
	EventTypeIngredientForaged = "ingredient.foraged"

	// EventTypeBrewStarted is published when a cauldron starts brewing
	EventTypeBrewStarted = "brew.started"

	// EventTypeBrewFinished is published when a brew is collected as a potion
	EventTypeBrewFinished = "brew.finished"

	// EventTypeOrdersGenerated is published when a player's shop receives new orders
	EventTypeOrdersGenerated = "orders.generated"

	// EventTypePotionSold is published when an order is fulfilled
	EventTypePotionSold = "potion.sold"
)
