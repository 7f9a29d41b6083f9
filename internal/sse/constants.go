package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 10
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Event types for SSE
const (
	// EventTypeWorldPhase is sent on every day/night transition
	EventTypeWorldPhase = "world.phase"

	// EventTypeNightBegan is sent when the shop opens for the night
	EventTypeNightBegan = "world.night_began"

	// EventTypeDayAdvanced is sent when a new day starts
	EventTypeDayAdvanced = "world.day_advanced"

	// EventTypeBrewStarted is sent when a player starts a brew
	EventTypeBrewStarted = "brew.started"

	// EventTypeBrewFinished is sent when a brew is collected
	EventTypeBrewFinished = "brew.finished"

	// EventTypeBrewReady is sent when a brew can be collected
	EventTypeBrewReady = "brew.ready"

	// EventTypeOrdersGenerated is sent when a player's shop receives orders
	EventTypeOrdersGenerated = "orders.generated"

	// EventTypePotionSold is sent when an order is fulfilled
	EventTypePotionSold = "potion.sold"

	// EventTypeIngredientForaged is sent when a player forages a zone
	EventTypeIngredientForaged = "ingredient.foraged"

	// EventTypeConnected is the first event sent to a new client
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Query parameters
const (
	QueryParamTypes    = "types"
	QueryParamPlayerID = "player_id"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgEventDropped       = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgInvalidPayload     = "Invalid event payload for SSE"
	LogMsgSubscriberReady    = "SSE subscriber registered for event types"
)
