package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HexBrew_Go/internal/clock"
	"github.com/osse101/HexBrew_Go/internal/concurrency"
	"github.com/osse101/HexBrew_Go/internal/config"
	"github.com/osse101/HexBrew_Go/internal/cooldown"
	"github.com/osse101/HexBrew_Go/internal/database"
	"github.com/osse101/HexBrew_Go/internal/database/memory"
	"github.com/osse101/HexBrew_Go/internal/database/postgres"
	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/logger"
	"github.com/osse101/HexBrew_Go/internal/repository"
)

// Storage holds the repositories and cooldown backend for one storage backend.
// Pool is nil for the in-memory backend.
type Storage struct {
	Pool      *pgxpool.Pool
	Player    repository.Player
	Forage    repository.Forage
	Brewing   repository.Brewing
	Shop      repository.Shop
	World     repository.World
	Cooldowns cooldown.Service
}

// InitializeStorage connects the configured backend. PostgreSQL is migrated
// before any repository is handed out.
func InitializeStorage(ctx context.Context, cfg *config.Config, clk clock.Clock, locks *concurrency.LockManager) (*Storage, error) {
	cdCfg := cooldownConfig(cfg)

	if cfg.UseMemoryStorage() {
		logger.Warn(LogMsgStorageMemory)
		return NewMemoryStorage(memory.NewStore(), cdCfg, clk, locks), nil
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}

	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRunMigrations, err)
	}

	return &Storage{
		Pool:      pool,
		Player:    postgres.NewPlayerRepository(pool),
		Forage:    postgres.NewForageRepository(pool),
		Brewing:   postgres.NewBrewingRepository(pool),
		Shop:      postgres.NewShopRepository(pool),
		World:     postgres.NewWorldRepository(pool),
		Cooldowns: cooldown.NewPostgresService(pool, cdCfg, clk),
	}, nil
}

// NewMemoryStorage backs every repository with store
func NewMemoryStorage(store *memory.Store, cdCfg cooldown.Config, clk clock.Clock, locks *concurrency.LockManager) *Storage {
	return &Storage{
		Player:    store,
		Forage:    store,
		Brewing:   store,
		Shop:      store,
		World:     store,
		Cooldowns: cooldown.NewMemoryService(cdCfg, clk, locks),
	}
}

// ListPlayerIDs lets the brew ready worker rescan active brews
func (s *Storage) ListPlayerIDs(ctx context.Context) ([]string, error) {
	return s.Player.ListPlayerIDs(ctx)
}

// GetCauldrons returns the player's cauldrons from the brewing repository
func (s *Storage) GetCauldrons(ctx context.Context, playerID string) ([]domain.Cauldron, error) {
	return s.Brewing.GetCauldrons(ctx, playerID)
}

// Close releases the database pool, if any
func (s *Storage) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}

func cooldownConfig(cfg *config.Config) cooldown.Config {
	return cooldown.Config{
		DevMode: cfg.DevMode,
		Cooldowns: map[string]time.Duration{
			domain.ActionForage: cfg.ForageCooldown,
		},
	}
}
