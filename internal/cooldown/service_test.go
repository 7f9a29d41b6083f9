package cooldown

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HexBrew_Go/internal/clock"
	"github.com/osse101/HexBrew_Go/internal/domain"
)

func TestErrOnCooldown_Error(t *testing.T) {
	tests := []struct {
		name string
		err  ErrOnCooldown
		want string
	}{
		{"minutes and seconds", ErrOnCooldown{Action: "search", Remaining: 2*time.Minute + 30*time.Second}, fmt.Sprintf(ErrFmtCooldownWithMinutes, "search", 2, 30)},
		{"seconds only", ErrOnCooldown{Action: "brew", Remaining: 45 * time.Second}, fmt.Sprintf(ErrFmtCooldownSecondsOnly, "brew", 45)},
		{"scoped action", ErrOnCooldown{Action: ActionKey("forage", "Swamp"), Remaining: 12 * time.Second}, "You can forage in Swamp again in 12s"},
		{"zero remaining", ErrOnCooldown{Action: "magic"}, fmt.Sprintf(ErrFmtCooldownSecondsOnly, "magic", 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrOnCooldown_Is(t *testing.T) {
	var err error = fmt.Errorf("wrapped: %w", ErrOnCooldown{Action: "forage", Remaining: time.Minute})

	assert.True(t, errors.Is(err, ErrOnCooldown{}))
	assert.True(t, errors.Is(err, domain.ErrOnCooldown))
	assert.False(t, errors.Is(err, errors.New("other error")))

	var target ErrOnCooldown
	require.True(t, errors.As(err, &target))
	assert.Equal(t, time.Minute, target.Remaining)
}

func TestCheckCooldown(t *testing.T) {
	now := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	duration := 30 * time.Second
	ptr := func(t time.Time) *time.Time { return &t }

	tests := []struct {
		name          string
		lastUsed      *time.Time
		wantOn        bool
		wantRemaining time.Duration
	}{
		{"never used", nil, false, 0},
		{"active", ptr(now.Add(-10 * time.Second)), true, 20 * time.Second},
		{"expired", ptr(now.Add(-time.Minute)), false, 0},
		{"exact boundary", ptr(now.Add(-30 * time.Second)), false, 0},
		{"just before expiry", ptr(now.Add(-29 * time.Second)), true, time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			on, remaining := checkCooldown(now, tt.lastUsed, duration)
			assert.Equal(t, tt.wantOn, on)
			assert.Equal(t, tt.wantRemaining, remaining)
		})
	}
}

func TestHashPlayerAction(t *testing.T) {
	h1 := hashPlayerAction("p1", "forage:Forest")
	assert.Equal(t, h1, hashPlayerAction("p1", "forage:Forest"))
	assert.GreaterOrEqual(t, h1, int64(0))
	assert.NotEqual(t, h1, hashPlayerAction("p1", "forage:Swamp"))
	assert.NotEqual(t, h1, hashPlayerAction("p2", "forage:Forest"))
}

func TestConfig_GetCooldownDuration(t *testing.T) {
	cfg := Config{Cooldowns: map[string]time.Duration{
		"forage":       10 * time.Second,
		"forage:Ruins": time.Minute,
	}}
	assert.Equal(t, time.Minute, cfg.GetCooldownDuration("forage:Ruins"))
	assert.Equal(t, 10*time.Second, cfg.GetCooldownDuration("forage:Swamp"))
	assert.Equal(t, DefaultCooldownDuration, cfg.GetCooldownDuration("unknown"))

	empty := Config{}
	assert.Equal(t, domain.DefaultForageCooldown, empty.GetCooldownDuration("forage:Forest"))
}

func TestMemoryService_EnforceCooldown(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewSimulated(time.Date(2024, 10, 31, 0, 0, 0, 0, time.UTC))
	svc := NewMemoryService(Config{}, clk, nil)
	key := ActionKey(domain.ActionForage, string(domain.ZoneForest))

	calls := 0
	fn := func() error { calls++; return nil }

	require.NoError(t, svc.EnforceCooldown(ctx, "p1", key, fn))
	assert.Equal(t, 1, calls)

	err := svc.EnforceCooldown(ctx, "p1", key, fn)
	var cd ErrOnCooldown
	require.ErrorAs(t, err, &cd)
	assert.Equal(t, 30*time.Second, cd.Remaining)
	assert.Equal(t, 1, calls, "fn must not run while on cooldown")

	// other players and zones are independent
	require.NoError(t, svc.EnforceCooldown(ctx, "p2", key, fn))
	require.NoError(t, svc.EnforceCooldown(ctx, "p1", ActionKey(domain.ActionForage, string(domain.ZoneSwamp)), fn))

	clk.Advance(30 * time.Second)
	require.NoError(t, svc.EnforceCooldown(ctx, "p1", key, fn))
	assert.Equal(t, 4, calls)

	last, err := svc.GetLastUsed(ctx, "p1", key)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, clk.Now(), *last)
}

func TestMemoryService_FailedActionDoesNotStartCooldown(t *testing.T) {
	ctx := context.Background()
	svc := NewMemoryService(Config{}, clock.NewSimulated(time.Now()), nil)

	boom := errors.New("boom")
	assert.ErrorIs(t, svc.EnforceCooldown(ctx, "p1", "forage:Ruins", func() error { return boom }), boom)

	on, _, err := svc.CheckCooldown(ctx, "p1", "forage:Ruins")
	require.NoError(t, err)
	assert.False(t, on)
}

func TestMemoryService_ResetAndDevMode(t *testing.T) {
	ctx := context.Background()
	svc := NewMemoryService(Config{}, clock.NewSimulated(time.Now()), nil)
	noop := func() error { return nil }

	require.NoError(t, svc.EnforceCooldown(ctx, "p1", "forage:Ruins", noop))
	require.NoError(t, svc.ResetCooldown(ctx, "p1", "forage:Ruins"))
	require.NoError(t, svc.EnforceCooldown(ctx, "p1", "forage:Ruins", noop))

	dev := NewMemoryService(Config{DevMode: true}, clock.NewSimulated(time.Now()), nil)
	require.NoError(t, dev.EnforceCooldown(ctx, "p1", "forage:Ruins", noop))
	require.NoError(t, dev.EnforceCooldown(ctx, "p1", "forage:Ruins", noop))
}
