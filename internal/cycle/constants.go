package cycle

// maxCatchUp bounds the transitions applied by one Tick
const maxCatchUp = 10000

// Log messages
const (
	LogMsgWorldLoaded      = "World clock loaded"
	LogMsgWorldInitialized = "World clock initialized"
	LogMsgPhaseChanged     = "World phase changed"
	LogMsgCatchUpCapped    = "World clock catch-up capped"
	LogMsgNightsSkipped    = "World clock caught up, opening tonight's shop only"
	LogMsgSaveFailed       = "Failed to save world state"
	LogMsgPublishFailed    = "Failed to publish world event"
)

// Error messages
const (
	ErrMsgLoadWorld    = "failed to load world"
	ErrMsgSaveWorld    = "failed to save world"
	ErrMsgInvalidTimer = "phase durations must be positive"
)
