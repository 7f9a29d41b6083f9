package cooldown

import "time"

const (
	// DefaultCooldownDuration is the fallback cooldown when no specific duration is configured
	DefaultCooldownDuration = 5 * time.Minute

	// ActionScopeSeparator joins an action and its scope in a cooldown key
	ActionScopeSeparator = ":"
)

const (
	// HashSeparator is the separator used when combining playerID and action for advisory lock hashing
	HashSeparator = ":"

	// HashMaskPositiveInt64 masks the MSB so advisory lock keys are positive int64 values
	HashMaskPositiveInt64 = 0x7FFFFFFFFFFFFFFF
)

// SQL
const (
	SQLAdvisoryLock = "SELECT pg_advisory_xact_lock($1)"

	SQLSelectLastUsed = `
		SELECT last_used_at
		FROM player_cooldowns
		WHERE player_id = $1 AND action_name = $2
	`

	SQLDeleteCooldown = `DELETE FROM player_cooldowns WHERE player_id = $1 AND action_name = $2`

	SQLUpsertCooldown = `
		INSERT INTO player_cooldowns (player_id, action_name, last_used_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (player_id, action_name) DO UPDATE
		SET last_used_at = EXCLUDED.last_used_at
	`
)

// Error message formats
const (
	ErrMsgCheckCooldownFailed     = "failed to check cooldown: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgAcquireLockFailed       = "failed to acquire advisory lock: %w"
	ErrMsgGetCooldownTxFailed     = "failed to get cooldown within transaction: %w"
	ErrMsgUpdateCooldownFailed    = "failed to update cooldown: %w"
	ErrMsgCommitTransactionFailed = "failed to commit cooldown transaction: %w"
	ErrMsgResetCooldownFailed     = "failed to reset cooldown: %w"
	ErrMsgGetLastUsedFailed       = "failed to get last used: %w"
)

// Log messages
const (
	LogMsgDevModeBypass         = "DEV_MODE: Bypassing cooldown enforcement"
	LogMsgRaceConditionDetected = "Race condition detected - concurrent request on cooldown"
	LogMsgCooldownEnforced      = "Cooldown enforced successfully"
)

// Player-facing formats for ErrOnCooldown.Error()
const (
	ErrFmtCooldownWithMinutes = "You can %s again in %dm %ds"
	ErrFmtCooldownSecondsOnly = "You can %s again in %ds"
)

const SecondsPerMinute = 60
