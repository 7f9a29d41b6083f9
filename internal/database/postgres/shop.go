package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HexBrew_Go/internal/database/generated"
	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/repository"
)

// ShopRepository implements repository.Shop for PostgreSQL
type ShopRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewShopRepository creates a new ShopRepository
func NewShopRepository(db *pgxpool.Pool) *ShopRepository {
	return &ShopRepository{db: db, q: generated.New(db)}
}

var _ repository.Shop = (*ShopRepository)(nil)

// BeginTx starts a new transaction
func (r *ShopRepository) BeginTx(ctx context.Context) (repository.Tx, error) {
	return beginTx(ctx, r.db, r.q)
}

// GetOrders returns the player's orders, newest batch first
func (r *ShopRepository) GetOrders(ctx context.Context, playerID string) ([]domain.Order, error) {
	id, err := parseID(playerID, domain.ErrPlayerNotFound)
	if err != nil {
		return nil, err
	}

	rows, err := r.q.ListOrders(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	orders := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, toDomainOrder(row))
	}
	return orders, nil
}

// ListPlayerIDs returns every player ID in registration order
func (r *ShopRepository) ListPlayerIDs(ctx context.Context) ([]string, error) {
	return listPlayerIDs(ctx, r.q)
}
