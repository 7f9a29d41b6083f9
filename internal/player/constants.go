package player

import "time"

// Username limits
const (
	MaxUsernameLength = 32
)

// Username lookup cache
const (
	DefaultCacheSize = 1024
	DefaultCacheTTL  = 10 * time.Minute
)

// Log messages
const (
	LogMsgRegisterCalled   = "Register called"
	LogMsgPlayerRegistered = "Player registered"
	LogMsgPlayerExists     = "Player already registered"
	LogMsgRegisterRace     = "Username taken concurrently, returning winner"
	LogMsgPublishFailed    = "Failed to publish player event"
)
