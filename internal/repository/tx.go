package repository

import (
	"context"

	"github.com/osse101/HexBrew_Go/internal/domain"
)

// Tx is a unit of work over one player's holdings. Reads ending in ForUpdate
// lock the returned rows until Commit or Rollback.
type Tx interface {
	GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error)
	AddGold(ctx context.Context, playerID string, amount int) error

	GetIngredients(ctx context.Context, playerID string) ([]domain.IngredientItem, error)
	ReplaceIngredients(ctx context.Context, playerID string, items []domain.IngredientItem) error

	GetCauldronForUpdate(ctx context.Context, playerID, cauldronID string) (*domain.Cauldron, error)
	UpdateCauldron(ctx context.Context, cauldron domain.Cauldron) error

	// GetPotions returns the player's unsold potions, oldest first
	GetPotions(ctx context.Context, playerID string) ([]domain.Potion, error)
	InsertPotion(ctx context.Context, potion domain.Potion) error
	DeletePotion(ctx context.Context, potionID string) error

	GetOrderForUpdate(ctx context.Context, playerID, orderID string) (*domain.Order, error)
	MarkOrderFulfilled(ctx context.Context, orderID string) error
	DeleteUnfulfilledOrders(ctx context.Context, playerID string) error
	InsertOrders(ctx context.Context, orders []domain.Order) error

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TxBeginner starts transactions
type TxBeginner interface {
	BeginTx(ctx context.Context) (Tx, error)
}
