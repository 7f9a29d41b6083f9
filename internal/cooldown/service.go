package cooldown

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/HexBrew_Go/internal/domain"
)

// Service manages action cooldowns for players
type Service interface {
	// CheckCooldown checks if a player's action is on cooldown
	// Returns: (onCooldown bool, remaining time.Duration, error)
	CheckCooldown(ctx context.Context, playerID, action string) (bool, time.Duration, error)

	// EnforceCooldown atomically checks cooldown and executes action if allowed.
	// The cooldown is only recorded when fn succeeds.
	EnforceCooldown(ctx context.Context, playerID, action string, fn func() error) error

	// ResetCooldown manually resets a cooldown (admin/testing)
	ResetCooldown(ctx context.Context, playerID, action string) error

	// GetLastUsed returns when action was last performed (for UI display)
	GetLastUsed(ctx context.Context, playerID, action string) (*time.Time, error)
}

// ActionKey scopes an action, e.g. ActionKey("forage", "Forest") == "forage:Forest"
func ActionKey(action, scope string) string {
	if scope == "" {
		return action
	}
	return action + ActionScopeSeparator + scope
}

// splitActionKey is the inverse of ActionKey
func splitActionKey(key string) (action, scope string) {
	action, scope, _ = strings.Cut(key, ActionScopeSeparator)
	return action, scope
}

// ErrOnCooldown is returned when action is still on cooldown
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	minutes := int(e.Remaining.Minutes())
	seconds := int(e.Remaining.Seconds()) % SecondsPerMinute

	what := e.Action
	if action, scope := splitActionKey(e.Action); scope != "" {
		what = fmt.Sprintf("%s in %s", action, scope)
	}

	if minutes > 0 {
		return fmt.Sprintf(ErrFmtCooldownWithMinutes, what, minutes, seconds)
	}
	return fmt.Sprintf(ErrFmtCooldownSecondsOnly, what, seconds)
}

// Is allows errors.Is() to match any ErrOnCooldown as well as domain.ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	if target == domain.ErrOnCooldown {
		return true
	}
	_, ok := target.(ErrOnCooldown)
	return ok
}

// checkCooldown reports whether lastUsed is still within duration at now
func checkCooldown(now time.Time, lastUsed *time.Time, duration time.Duration) (bool, time.Duration) {
	if lastUsed == nil {
		return false, 0
	}

	elapsed := now.Sub(*lastUsed)
	if elapsed < duration {
		return true, duration - elapsed
	}

	return false, 0
}
