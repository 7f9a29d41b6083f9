package cooldown

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/HexBrew_Go/internal/clock"
	"github.com/osse101/HexBrew_Go/internal/concurrency"
	"github.com/osse101/HexBrew_Go/internal/logger"
)

// memoryBackend implements Service in process memory
type memoryBackend struct {
	config Config
	clock  clock.Clock
	locks  *concurrency.LockManager

	mu       sync.RWMutex
	lastUsed map[string]time.Time
}

// NewMemoryService creates a cooldown service that keeps state in memory
func NewMemoryService(config Config, clk clock.Clock, locks *concurrency.LockManager) Service {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &memoryBackend{
		config:   config,
		clock:    clk,
		locks:    locks,
		lastUsed: make(map[string]time.Time),
	}
}

func memoryKey(playerID, action string) string {
	return playerID + HashSeparator + action
}

func (b *memoryBackend) get(playerID, action string) *time.Time {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if t, ok := b.lastUsed[memoryKey(playerID, action)]; ok {
		return &t
	}
	return nil
}

func (b *memoryBackend) CheckCooldown(ctx context.Context, playerID, action string) (bool, time.Duration, error) {
	if b.config.DevMode {
		return false, 0, nil
	}
	onCooldown, remaining := checkCooldown(b.clock.Now(), b.get(playerID, action), b.config.GetCooldownDuration(action))
	return onCooldown, remaining, nil
}

func (b *memoryBackend) EnforceCooldown(ctx context.Context, playerID, action string, fn func() error) error {
	lock := b.locks.GetLock("cooldown" + HashSeparator + memoryKey(playerID, action))
	lock.Lock()
	defer lock.Unlock()

	onCooldown, remaining, _ := b.CheckCooldown(ctx, playerID, action)
	if onCooldown {
		return ErrOnCooldown{Action: action, Remaining: remaining}
	}
	if b.config.DevMode {
		logger.FromContext(ctx).Debug(LogMsgDevModeBypass, "action", action, "player_id", playerID)
	}

	if err := fn(); err != nil {
		return err
	}

	b.mu.Lock()
	b.lastUsed[memoryKey(playerID, action)] = b.clock.Now()
	b.mu.Unlock()
	return nil
}

func (b *memoryBackend) ResetCooldown(ctx context.Context, playerID, action string) error {
	b.mu.Lock()
	delete(b.lastUsed, memoryKey(playerID, action))
	b.mu.Unlock()
	return nil
}

func (b *memoryBackend) GetLastUsed(ctx context.Context, playerID, action string) (*time.Time, error) {
	return b.get(playerID, action), nil
}
