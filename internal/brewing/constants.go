package brewing

// Log messages
const (
	LogMsgStartBrewCalled  = "StartBrew called"
	LogMsgBrewStarted      = "Brew started"
	LogMsgFinishBrewCalled = "FinishBrew called"
	LogMsgBrewFinished     = "Brew finished"
	LogMsgPublishFailed    = "Failed to publish brewing event"
)

// Error messages
const (
	ErrMsgBeginTx       = "failed to begin transaction"
	ErrMsgCommitTx      = "failed to commit transaction"
	ErrMsgLoadCauldron  = "failed to lock cauldron"
	ErrMsgLoadInventory = "failed to load ingredients"
)
