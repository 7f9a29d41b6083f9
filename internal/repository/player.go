package repository

import (
	"context"

	"github.com/osse101/HexBrew_Go/internal/domain"
)

// Player defines the data access required by the player service
type Player interface {
	// CreatePlayer stores a new player with its starter cauldron.
	// Returns domain.ErrUsernameTaken when the username already exists.
	CreatePlayer(ctx context.Context, player domain.Player, cauldron domain.Cauldron) error
	GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error)
	GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error)
	ListPlayerIDs(ctx context.Context) ([]string, error)
	GetInventory(ctx context.Context, playerID string) (*domain.Inventory, error)
}
