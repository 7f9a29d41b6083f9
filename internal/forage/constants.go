package forage

// Log messages
const (
	LogMsgForageCalled  = "Forage called"
	LogMsgForaged       = "Ingredients foraged"
	LogMsgPublishFailed = "Failed to publish forage event"
)

// Error messages
const (
	ErrMsgBeginTx         = "failed to begin transaction"
	ErrMsgCommitTx        = "failed to commit transaction"
	ErrMsgLoadIngredients = "failed to load ingredients"
	ErrFmtUnknownZone     = "%w: %q"
	ErrFmtDidYouMean      = "%w: %q (did you mean %s?)"
)

// maxSuggestions caps the zone names offered for a typo
const maxSuggestions = 2
