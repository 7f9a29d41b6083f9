package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HexBrew_Go/internal/database/generated"
	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/repository"
)

// PlayerRepository implements repository.Player for PostgreSQL
type PlayerRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db, q: generated.New(db)}
}

var _ repository.Player = (*PlayerRepository)(nil)

// CreatePlayer inserts the player and its starter cauldron in one transaction
func (r *PlayerRepository) CreatePlayer(ctx context.Context, player domain.Player, cauldron domain.Cauldron) error {
	id, err := parseID(player.ID, domain.ErrInvalidInput)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgBeginTx, err)
	}
	q := r.q.WithTx(tx)
	defer repository.SafeRollback(ctx, &pgTx{tx: tx, q: q})

	err = q.CreatePlayer(ctx, generated.CreatePlayerParams{
		PlayerID:  id,
		Username:  player.Username,
		Gold:      int32(player.Gold),
		CreatedAt: toTimestamptz(player.CreatedAt),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrUsernameTaken, player.Username)
		}
		return fmt.Errorf("failed to insert player: %w", err)
	}

	err = q.CreateCauldron(ctx, generated.CreateCauldronParams{
		PlayerID:   id,
		CauldronID: cauldron.ID,
		Quality:    int32(cauldron.Quality),
	})
	if err != nil {
		return fmt.Errorf("failed to insert cauldron: %w", err)
	}

	return tx.Commit(ctx)
}

// GetPlayerByID returns domain.ErrPlayerNotFound when no player matches
func (r *PlayerRepository) GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error) {
	id, err := parseID(playerID, domain.ErrPlayerNotFound)
	if err != nil {
		return nil, err
	}
	row, err := r.q.GetPlayerByID(ctx, id)
	return mapPlayerRow(row, err, playerID)
}

// GetPlayerByUsername matches usernames case-insensitively
func (r *PlayerRepository) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	row, err := r.q.GetPlayerByUsername(ctx, username)
	return mapPlayerRow(row, err, username)
}

// ListPlayerIDs returns every player ID in registration order
func (r *PlayerRepository) ListPlayerIDs(ctx context.Context) ([]string, error) {
	return listPlayerIDs(ctx, r.q)
}

// GetInventory returns the player's gold, ingredients and unsold potions
func (r *PlayerRepository) GetInventory(ctx context.Context, playerID string) (*domain.Inventory, error) {
	id, err := parseID(playerID, domain.ErrPlayerNotFound)
	if err != nil {
		return nil, err
	}
	row, err := r.q.GetPlayerByID(ctx, id)
	player, err := mapPlayerRow(row, err, playerID)
	if err != nil {
		return nil, err
	}

	ingredients, err := listIngredients(ctx, r.q, id)
	if err != nil {
		return nil, err
	}
	potions, err := listPotions(ctx, r.q, id)
	if err != nil {
		return nil, err
	}

	return &domain.Inventory{
		Gold:        player.Gold,
		Ingredients: ingredients,
		Potions:     potions,
	}, nil
}

func mapPlayerRow(row generated.Player, err error, key string) (*domain.Player, error) {
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load player: %w", err)
	}
	return toDomainPlayer(row), nil
}
