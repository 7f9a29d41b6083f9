package discord

import "time"

// API client configuration
const (
	apiPrefix         = "/api/v1"
	apiRequestTimeout = 10 * time.Second
	apiMaxRetries     = 3
	apiRetryDelay     = 500 * time.Millisecond
	maxErrorBodyBytes = 4 * 1024

	// commandTimeout bounds the API work behind one slash command
	commandTimeout = 30 * time.Second
)

// Embed colors
const (
	ColorRecipe    = 0x8e44ad // Purple
	ColorInventory = 0x9b59b6
	ColorForage    = 0x27ae60 // Green
	ColorBrew      = 0xe67e22 // Orange
	ColorShop      = 0xf1c40f // Gold
	ColorDay       = 0xf39c12
	ColorNight     = 0x2c3e50
)

// Footer constants for standardized embed footers
const (
	FooterHexBrew = "HexBrew"
)

// Option names
const (
	OptionDay    = "day"
	OptionZone   = "zone"
	OptionRecipe = "recipe"
	OptionOrder  = "order"
	OptionStatus = "status"
)

// Log messages
const (
	LogMsgRetryingRequest        = "Retrying API request"
	LogMsgRequestFailed          = "API request failed"
	LogMsgServerErrorRetry       = "Server error, will retry"
	LogMsgDeferFailed            = "Failed to send deferred response"
	LogMsgEditFailed             = "Failed to edit interaction response"
	LogMsgActionFailed           = "Command action failed"
	LogMsgRegisterFailed         = "Failed to register player"
	LogMsgCheckingCommands       = "Checking Discord commands..."
	LogMsgCommandsUnchanged      = "Commands unchanged, skipping registration"
	LogMsgCommandsChanged        = "Commands changed, updating..."
	LogMsgCommandsUpdated        = "Commands updated successfully"
	LogMsgForceUpdate            = "Force update enabled - replacing all commands"
	LogMsgBotRunning             = "Discord bot is now running"
	LogMsgBotReady               = "Bot is ready"
	LogMsgUnknownCommand         = "Unknown command"
	LogMsgHealthServerStarting   = "Starting Discord health server"
	LogMsgHealthServerFailed     = "Discord health server failed"
	LogMsgHealthServerStopFailed = "Discord health server shutdown failed"
)
