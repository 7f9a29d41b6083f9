package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/HexBrew_Go/internal/brewing"
	"github.com/osse101/HexBrew_Go/internal/clock"
	"github.com/osse101/HexBrew_Go/internal/concurrency"
	"github.com/osse101/HexBrew_Go/internal/config"
	"github.com/osse101/HexBrew_Go/internal/cycle"
	"github.com/osse101/HexBrew_Go/internal/event"
	"github.com/osse101/HexBrew_Go/internal/forage"
	"github.com/osse101/HexBrew_Go/internal/logger"
	"github.com/osse101/HexBrew_Go/internal/player"
	"github.com/osse101/HexBrew_Go/internal/shop"
)

// Services holds the game services built on one storage backend
type Services struct {
	Cycle   cycle.Service
	Player  player.Service
	Forage  forage.Service
	Brewing brewing.Service
	Shop    shop.Service
}

// InitializeServices builds every game service. The world clock is not
// started here; call Start once event handlers are registered so catch-up
// transitions reach them. Services share one lock manager so per-player
// writes serialize across features.
func InitializeServices(
	cfg *config.Config,
	storage *Storage,
	publisher event.Publisher,
	clk clock.Clock,
	locks *concurrency.LockManager,
) (*Services, error) {
	timer := cycle.Timer{
		DayDuration:   cfg.CycleDayDuration,
		NightDuration: cfg.CycleNightDuration,
	}

	world, err := cycle.NewService(storage.World, publisher, clk, timer)
	if err != nil {
		return nil, err
	}

	playerCfg := player.DefaultConfig()
	playerCfg.StartingGold = cfg.StartingGold
	playerCfg.CauldronQuality = cfg.CauldronQuality

	shopCfg := shop.Config{
		OrdersMin: cfg.OrdersMin,
		OrdersMax: cfg.OrdersMax,
		NightOnly: cfg.ShopNightOnly,
	}

	seed := cfg.ShopSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	svc := &Services{
		Cycle:   world,
		Player:  player.NewService(storage.Player, publisher, clk, playerCfg),
		Forage:  forage.NewService(storage.Forage, world, storage.Cooldowns, publisher, locks),
		Brewing: brewing.NewService(storage.Brewing, world, publisher, clk, locks),
		Shop:    shop.NewService(storage.Shop, world, publisher, clk, locks, shopCfg, seed),
	}

	logger.Info(LogMsgServicesInitialized,
		"orders_min", shopCfg.OrdersMin,
		"orders_max", shopCfg.OrdersMax,
		"night_only", shopCfg.NightOnly,
		"forage_cooldown", cfg.ForageCooldown)

	return svc, nil
}

// Start loads or initialises the world clock and applies any transitions
// that fell due while the service was down
func (s *Services) Start(ctx context.Context) error {
	if err := s.Cycle.Start(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedStartCycle, err)
	}

	snap := s.Cycle.Snapshot()
	logger.FromContext(ctx).Info(LogMsgWorldStarted,
		"day", snap.Day,
		"week", snap.Week,
		"phase", snap.Phase,
		"time_remaining", snap.TimeRemaining)
	return nil
}
