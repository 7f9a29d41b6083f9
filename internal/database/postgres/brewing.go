package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HexBrew_Go/internal/database/generated"
	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/repository"
)

// BrewingRepository implements repository.Brewing for PostgreSQL
type BrewingRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewBrewingRepository creates a new BrewingRepository
func NewBrewingRepository(db *pgxpool.Pool) *BrewingRepository {
	return &BrewingRepository{db: db, q: generated.New(db)}
}

var _ repository.Brewing = (*BrewingRepository)(nil)

// BeginTx starts a new transaction
func (r *BrewingRepository) BeginTx(ctx context.Context) (repository.Tx, error) {
	return beginTx(ctx, r.db, r.q)
}

// GetCauldrons returns every cauldron the player owns
func (r *BrewingRepository) GetCauldrons(ctx context.Context, playerID string) ([]domain.Cauldron, error) {
	id, err := parseID(playerID, domain.ErrPlayerNotFound)
	if err != nil {
		return nil, err
	}

	rows, err := r.q.ListCauldrons(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query cauldrons: %w", err)
	}
	cauldrons := make([]domain.Cauldron, 0, len(rows))
	for _, row := range rows {
		cauldrons = append(cauldrons, toDomainCauldron(row))
	}
	return cauldrons, nil
}
