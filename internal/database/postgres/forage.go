package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HexBrew_Go/internal/database/generated"
	"github.com/osse101/HexBrew_Go/internal/repository"
)

// ForageRepository implements repository.Forage for PostgreSQL
type ForageRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewForageRepository creates a new ForageRepository
func NewForageRepository(db *pgxpool.Pool) *ForageRepository {
	return &ForageRepository{db: db, q: generated.New(db)}
}

var _ repository.Forage = (*ForageRepository)(nil)

// BeginTx starts a new transaction
func (r *ForageRepository) BeginTx(ctx context.Context) (repository.Tx, error) {
	return beginTx(ctx, r.db, r.q)
}
