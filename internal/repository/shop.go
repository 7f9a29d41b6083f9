package repository

import (
	"context"

	"github.com/osse101/HexBrew_Go/internal/domain"
)

// Shop defines the data access required by the shop service
type Shop interface {
	TxBeginner
	// GetOrders returns every order of the player, newest batch first
	GetOrders(ctx context.Context, playerID string) ([]domain.Order, error)
	ListPlayerIDs(ctx context.Context) ([]string, error)
}
