package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/osse101/HexBrew_Go/internal/database/generated"
	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/repository"
)

// pgTx implements repository.Tx. Row access goes through sqlc queries bound
// to the transaction; bulk inserts use COPY on the raw pgx.Tx.
type pgTx struct {
	tx pgx.Tx
	q  *generated.Queries
}

func (t *pgTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	id, err := parseID(playerID, domain.ErrPlayerNotFound)
	if err != nil {
		return nil, err
	}
	row, err := t.q.GetPlayerForUpdate(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock player: %w", err)
	}
	return toDomainPlayer(row), nil
}

func (t *pgTx) AddGold(ctx context.Context, playerID string, amount int) error {
	id, err := parseID(playerID, domain.ErrPlayerNotFound)
	if err != nil {
		return err
	}
	affected, err := t.q.AddGold(ctx, generated.AddGoldParams{Amount: int32(amount), PlayerID: id})
	if err != nil {
		return fmt.Errorf("failed to add gold: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}
	return nil
}

func (t *pgTx) GetIngredients(ctx context.Context, playerID string) ([]domain.IngredientItem, error) {
	id, err := parseID(playerID, domain.ErrPlayerNotFound)
	if err != nil {
		return nil, err
	}
	return listIngredients(ctx, t.q, id)
}

func (t *pgTx) ReplaceIngredients(ctx context.Context, playerID string, items []domain.IngredientItem) error {
	id, err := parseID(playerID, domain.ErrPlayerNotFound)
	if err != nil {
		return err
	}
	if err := t.q.DeleteIngredients(ctx, id); err != nil {
		return fmt.Errorf("failed to clear ingredients: %w", err)
	}

	rows := make([][]any, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		rows = append(rows, []any{id, int32(len(rows)), string(item.IngredientType), int32(item.Quantity)})
	}
	if len(rows) == 0 {
		return nil
	}

	_, err = t.tx.CopyFrom(ctx, pgx.Identifier{tableIngredients}, ingredientCopyColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("failed to write ingredients: %w", err)
	}
	return nil
}

func (t *pgTx) GetCauldronForUpdate(ctx context.Context, playerID, cauldronID string) (*domain.Cauldron, error) {
	id, err := parseID(playerID, domain.ErrCauldronNotFound)
	if err != nil {
		return nil, err
	}
	row, err := t.q.GetCauldronForUpdate(ctx, generated.GetCauldronForUpdateParams{PlayerID: id, CauldronID: cauldronID})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrCauldronNotFound, cauldronID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cauldron: %w", err)
	}
	c := toDomainCauldron(row)
	return &c, nil
}

func (t *pgTx) UpdateCauldron(ctx context.Context, c domain.Cauldron) error {
	id, err := parseID(c.Owner, domain.ErrCauldronNotFound)
	if err != nil {
		return err
	}
	affected, err := t.q.UpdateCauldron(ctx, generated.UpdateCauldronParams{
		PlayerID:      id,
		CauldronID:    c.ID,
		Quality:       int32(c.Quality),
		RecipeID:      toText(c.RecipeID),
		BrewStartedAt: ptrToTimestamptz(c.BrewStarted),
		BrewEndsAt:    ptrToTimestamptz(c.BrewEndsAt),
	})
	if err != nil {
		return fmt.Errorf("failed to update cauldron: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrCauldronNotFound, c.ID)
	}
	return nil
}

func (t *pgTx) GetPotions(ctx context.Context, playerID string) ([]domain.Potion, error) {
	id, err := parseID(playerID, domain.ErrPlayerNotFound)
	if err != nil {
		return nil, err
	}
	return listPotions(ctx, t.q, id)
}

func (t *pgTx) InsertPotion(ctx context.Context, p domain.Potion) error {
	potionID, err := uuid.Parse(p.ID)
	if err != nil {
		return fmt.Errorf("%w: potion id %q", domain.ErrInvalidInput, p.ID)
	}
	owner, err := parseID(p.Owner, domain.ErrPlayerNotFound)
	if err != nil {
		return err
	}
	err = t.q.CreatePotion(ctx, generated.CreatePotionParams{
		PotionID:  potionID,
		PlayerID:  owner,
		RecipeID:  p.RecipeID,
		Effect:    string(p.Effect),
		Quality:   int32(p.Quality),
		Value:     int32(p.Value),
		CreatedAt: toTimestamptz(p.CreatedAt),
	})
	if err != nil {
		return fmt.Errorf("failed to insert potion: %w", err)
	}
	return nil
}

func (t *pgTx) DeletePotion(ctx context.Context, potionID string) error {
	id, err := parseID(potionID, domain.ErrNoMatchingPotion)
	if err != nil {
		return err
	}
	if err := t.q.DeletePotion(ctx, id); err != nil {
		return fmt.Errorf("failed to delete potion: %w", err)
	}
	return nil
}

func (t *pgTx) GetOrderForUpdate(ctx context.Context, playerID, orderID string) (*domain.Order, error) {
	pid, err := parseID(playerID, domain.ErrOrderNotFound)
	if err != nil {
		return nil, err
	}
	oid, err := parseID(orderID, domain.ErrOrderNotFound)
	if err != nil {
		return nil, err
	}
	row, err := t.q.GetOrderForUpdate(ctx, generated.GetOrderForUpdateParams{PlayerID: pid, OrderID: oid})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrOrderNotFound, orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	o := toDomainOrder(row)
	return &o, nil
}

func (t *pgTx) MarkOrderFulfilled(ctx context.Context, orderID string) error {
	id, err := parseID(orderID, domain.ErrOrderNotFound)
	if err != nil {
		return err
	}
	if err := t.q.MarkOrderFulfilled(ctx, id); err != nil {
		return fmt.Errorf("failed to mark order fulfilled: %w", err)
	}
	return nil
}

func (t *pgTx) DeleteUnfulfilledOrders(ctx context.Context, playerID string) error {
	id, err := parseID(playerID, domain.ErrPlayerNotFound)
	if err != nil {
		return err
	}
	if err := t.q.DeleteUnfulfilledOrders(ctx, id); err != nil {
		return fmt.Errorf("failed to clear orders: %w", err)
	}
	return nil
}

func (t *pgTx) InsertOrders(ctx context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(orders))
	for i, o := range orders {
		oid, err := uuid.Parse(o.ID)
		if err != nil {
			return fmt.Errorf("%w: order id %q", domain.ErrInvalidInput, o.ID)
		}
		owner, err := parseID(o.Owner, domain.ErrPlayerNotFound)
		if err != nil {
			return err
		}
		rows = append(rows, []any{
			oid, owner, int32(i), o.BuyerID, o.RecipeID, o.RecipeName, int32(o.RecipeDay),
			string(o.Faction), int32(o.Price), o.Deadline.UTC(), o.Fulfilled, int32(o.ReputationReq), o.CreatedAt.UTC(),
		})
	}

	_, err := t.tx.CopyFrom(ctx, pgx.Identifier{tableOrders}, orderCopyColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("failed to insert orders: %w", err)
	}
	return nil
}

func (t *pgTx) Commit(ctx context.Context) error {
	return mapTxErr(t.tx.Commit(ctx))
}

func (t *pgTx) Rollback(ctx context.Context) error {
	return mapTxErr(t.tx.Rollback(ctx))
}

func mapTxErr(err error) error {
	if errors.Is(err, pgx.ErrTxClosed) {
		return repository.ErrTxClosed
	}
	return err
}
