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

// WorldRepository implements repository.World for PostgreSQL
type WorldRepository struct {
	q *generated.Queries
}

// NewWorldRepository creates a new WorldRepository
func NewWorldRepository(db *pgxpool.Pool) *WorldRepository {
	return &WorldRepository{q: generated.New(db)}
}

var _ repository.World = (*WorldRepository)(nil)

// LoadWorld returns nil, nil before the first save
func (r *WorldRepository) LoadWorld(ctx context.Context) (*domain.WorldState, error) {
	row, err := r.q.GetWorldState(ctx)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load world: %w", err)
	}

	var state domain.WorldState
	state.Day = int(row.Day)
	state.Week = int(row.Week)
	state.Cycle.Phase = domain.Phase(row.Phase)
	state.Cycle.CycleStartTime = row.CycleStartAt.Time
	state.UpdatedAt = row.UpdatedAt.Time
	return &state, nil
}

// SaveWorld upserts the single world row
func (r *WorldRepository) SaveWorld(ctx context.Context, state domain.WorldState) error {
	err := r.q.UpsertWorldState(ctx, generated.UpsertWorldStateParams{
		Day:          int32(state.Day),
		Week:         int32(state.Week),
		Phase:        string(state.Cycle.Phase),
		CycleStartAt: toTimestamptz(state.Cycle.CycleStartTime),
		UpdatedAt:    toTimestamptz(state.UpdatedAt),
	})
	if err != nil {
		return fmt.Errorf("failed to save world: %w", err)
	}
	return nil
}
