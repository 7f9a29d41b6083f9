package repository

import (
	"context"

	"github.com/osse101/HexBrew_Go/internal/domain"
)

// Brewing defines the data access required by the brewing service
type Brewing interface {
	TxBeginner
	GetCauldrons(ctx context.Context, playerID string) ([]domain.Cauldron, error)
}
