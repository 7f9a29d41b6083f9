package cooldown

import (
	"time"

	"github.com/osse101/HexBrew_Go/internal/domain"
)

// Config holds cooldown service configuration
type Config struct {
	// DevMode bypasses all cooldowns when true
	DevMode bool

	// Cooldowns maps action names to their durations. Scoped keys
	// ("forage:Forest") fall back to their unscoped action ("forage").
	Cooldowns map[string]time.Duration
}

// GetCooldownDuration returns the cooldown duration for an action key
func (c *Config) GetCooldownDuration(key string) time.Duration {
	action, _ := splitActionKey(key)

	if c.Cooldowns != nil {
		if duration, ok := c.Cooldowns[key]; ok {
			return duration
		}
		if duration, ok := c.Cooldowns[action]; ok {
			return duration
		}
	}

	switch action {
	case domain.ActionForage:
		return domain.DefaultForageCooldown
	default:
		return DefaultCooldownDuration
	}
}
