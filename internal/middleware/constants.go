package middleware

// PathParamPlayerID is the chi route parameter holding the player ID
const PathParamPlayerID = "id"

// Player actions tracked by ActivityTracker
const (
	ActionRegister = "register"
	ActionForage   = "forage"
	ActionBrew     = "brew"
	ActionCollect  = "collect"
	ActionSell     = "sell"
)

// Log messages
const (
	LogMsgActionRecorded = "Player action recorded"
	LogMsgActionFailed   = "Player action rejected"
)
