package shop

// Log messages
const (
	LogMsgOpenShop         = "Shop opened"
	LogMsgOpenShopForAll   = "Opening shops for night"
	LogMsgOpenShopFailed   = "Failed to open shop"
	LogMsgSellPotionCalled = "SellPotion called"
	LogMsgPotionSold       = "Potion sold"
	LogMsgPublishFailed    = "Failed to publish shop event"
	LogMsgBadNightPayload  = "Night event payload could not be decoded"
)

// Error messages
const (
	ErrMsgBeginTx      = "failed to begin transaction"
	ErrMsgCommitTx     = "failed to commit transaction"
	ErrMsgListPlayers  = "failed to list players"
	ErrMsgOpenShopsFmt = "failed to open %d of %d shops: %w"
)
