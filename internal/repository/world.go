package repository

import (
	"context"

	"github.com/osse101/HexBrew_Go/internal/domain"
)

// World persists the single shared world clock
type World interface {
	// LoadWorld returns nil, nil when no world has been saved yet
	LoadWorld(ctx context.Context) (*domain.WorldState, error)
	SaveWorld(ctx context.Context, state domain.WorldState) error
}
