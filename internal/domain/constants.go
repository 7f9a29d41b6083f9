package domain

import "time"

// Game defaults
const (
	DefaultStartingGold    = 100
	DefaultCauldronQuality = 1
	DefaultOrdersMin       = 1
	DefaultOrdersMax       = 3
	DefaultBrewTimeSeconds = 20
	OrderDeadline          = 60 * time.Second
	DefaultForageCooldown  = 30 * time.Second
	DefaultDayDuration     = 120 * time.Second
	DefaultNightDuration   = 60 * time.Second
	DefaultPollInterval    = 100 * time.Millisecond
)

// Potion quality tiers
const (
	QualityHigh = 80
	QualityLow  = 20

	// SuccessThreshold is the success chance at or above which a brew is high quality
	SuccessThreshold = 5
)

// Cooldown action prefixes
const (
	ActionForage = "forage"
)
