package cooldown

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HexBrew_Go/internal/clock"
	"github.com/osse101/HexBrew_Go/internal/logger"
)

// postgresBackend implements Service using PostgreSQL
type postgresBackend struct {
	db     *pgxpool.Pool
	config Config
	clock  clock.Clock
}

// NewPostgresService creates a new cooldown service with Postgres backend
func NewPostgresService(db *pgxpool.Pool, config Config, clk clock.Clock) Service {
	return &postgresBackend{
		db:     db,
		config: config,
		clock:  clk,
	}
}

// CheckCooldown checks if a player's action is on cooldown (unlocked read)
func (b *postgresBackend) CheckCooldown(ctx context.Context, playerID, action string) (bool, time.Duration, error) {
	if b.config.DevMode {
		return false, 0, nil
	}

	lastUsed, err := b.getLastUsed(ctx, b.db, playerID, action)
	if err != nil {
		return false, 0, fmt.Errorf(ErrMsgCheckCooldownFailed, err)
	}

	onCooldown, remaining := checkCooldown(b.clock.Now(), lastUsed, b.config.GetCooldownDuration(action))
	return onCooldown, remaining, nil
}

// EnforceCooldown atomically checks cooldown and executes action if allowed.
// A cheap unlocked read rejects most requests before the advisory lock is taken.
func (b *postgresBackend) EnforceCooldown(ctx context.Context, playerID, action string, fn func() error) error {
	log := logger.FromContext(ctx)

	onCooldown, remaining, err := b.CheckCooldown(ctx, playerID, action)
	if err != nil {
		return err
	}
	if onCooldown {
		return ErrOnCooldown{Action: action, Remaining: remaining}
	}

	if b.config.DevMode {
		log.Debug(LogMsgDevModeBypass, "action", action, "player_id", playerID)
		if err := fn(); err != nil {
			return err
		}
		_, err := b.db.Exec(ctx, SQLUpsertCooldown, playerID, action, b.clock.Now())
		return err
	}

	tx, err := b.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	// Advisory locks work even when no row exists yet
	if _, err := tx.Exec(ctx, SQLAdvisoryLock, hashPlayerAction(playerID, action)); err != nil {
		return fmt.Errorf(ErrMsgAcquireLockFailed, err)
	}

	lastUsed, err := b.getLastUsed(ctx, tx, playerID, action)
	if err != nil {
		return fmt.Errorf(ErrMsgGetCooldownTxFailed, err)
	}

	if onCooldown, remaining := checkCooldown(b.clock.Now(), lastUsed, b.config.GetCooldownDuration(action)); onCooldown {
		log.Debug(LogMsgRaceConditionDetected, "action", action, "player_id", playerID, "remaining", remaining)
		return ErrOnCooldown{Action: action, Remaining: remaining}
	}

	if err := fn(); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, SQLUpsertCooldown, playerID, action, b.clock.Now()); err != nil {
		return fmt.Errorf(ErrMsgUpdateCooldownFailed, err)
	}

	// Commit releases the advisory lock
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	log.Debug(LogMsgCooldownEnforced, "action", action, "player_id", playerID)
	return nil
}

// ResetCooldown manually resets a cooldown
func (b *postgresBackend) ResetCooldown(ctx context.Context, playerID, action string) error {
	if _, err := b.db.Exec(ctx, SQLDeleteCooldown, playerID, action); err != nil {
		return fmt.Errorf(ErrMsgResetCooldownFailed, err)
	}
	return nil
}

// GetLastUsed returns when action was last performed
func (b *postgresBackend) GetLastUsed(ctx context.Context, playerID, action string) (*time.Time, error) {
	return b.getLastUsed(ctx, b.db, playerID, action)
}

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (b *postgresBackend) getLastUsed(ctx context.Context, q rowQuerier, playerID, action string) (*time.Time, error) {
	var lastUsed time.Time

	err := q.QueryRow(ctx, SQLSelectLastUsed, playerID, action).Scan(&lastUsed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf(ErrMsgGetLastUsedFailed, err)
	}
	return &lastUsed, nil
}

// hashPlayerAction creates a consistent int64 hash from playerID + action for advisory locking
func hashPlayerAction(playerID, action string) int64 {
	h := sha256.Sum256([]byte(playerID + HashSeparator + action))
	return int64(binary.BigEndian.Uint64(h[:8]) & HashMaskPositiveInt64)
}
