package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/repository"
)

func seedPlayer(t *testing.T, s *Store, id, username string, gold int) {
	t.Helper()
	err := s.CreatePlayer(context.Background(),
		domain.Player{ID: id, Username: username, Gold: gold},
		domain.Cauldron{ID: domain.DefaultCauldronID, Quality: domain.DefaultCauldronQuality})
	require.NoError(t, err)
}

func TestStore_CreatePlayer(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seedPlayer(t, s, "p1", "Morgana", 100)

	p, err := s.GetPlayerByUsername(ctx, "morgana")
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)

	err = s.CreatePlayer(ctx, domain.Player{ID: "p2", Username: "MORGANA"}, domain.Cauldron{ID: domain.DefaultCauldronID})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	_, err = s.GetPlayerByID(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)

	cauldrons, err := s.GetCauldrons(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, cauldrons, 1)
	assert.Equal(t, "p1", cauldrons[0].Owner)
}

func TestTx_CommitPublishesChanges(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seedPlayer(t, s, "p1", "Morgana", 100)

	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.AddGold(ctx, "p1", 50))
	require.NoError(t, tx.ReplaceIngredients(ctx, "p1", []domain.IngredientItem{
		{IngredientType: domain.IngredientBatWing, Quantity: 2},
		{IngredientType: domain.IngredientGraveDust, Quantity: 0},
		{IngredientType: domain.IngredientWyrmScale, Quantity: 1},
	}))
	require.NoError(t, tx.Commit(ctx))

	inv, err := s.GetInventory(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 150, inv.Gold)
	require.Len(t, inv.Ingredients, 2)
	assert.Equal(t, 1, inv.Ingredients[1].Slot)
	assert.Equal(t, domain.IngredientWyrmScale, inv.Ingredients[1].IngredientType)

	assert.ErrorIs(t, tx.Commit(ctx), repository.ErrTxClosed)
	assert.ErrorIs(t, tx.Rollback(ctx), repository.ErrTxClosed)
}

func TestTx_RollbackDiscardsChanges(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seedPlayer(t, s, "p1", "Morgana", 100)

	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.AddGold(ctx, "p1", 50))
	c, err := tx.GetCauldronForUpdate(ctx, "p1", domain.DefaultCauldronID)
	require.NoError(t, err)
	ends := time.Now().Add(time.Minute)
	c.RecipeID = "recipe_day_1"
	c.BrewEndsAt = &ends
	require.NoError(t, tx.UpdateCauldron(ctx, *c))
	repository.SafeRollback(ctx, tx)

	p, err := s.GetPlayerByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 100, p.Gold)

	cauldrons, err := s.GetCauldrons(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, cauldrons[0].IsBrewing())
}

func TestTx_GoldCannotGoNegative(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seedPlayer(t, s, "p1", "Morgana", 10)

	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	assert.ErrorIs(t, tx.AddGold(ctx, "p1", -11), domain.ErrInvalidInput)
}

func TestTx_PotionsAndOrders(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seedPlayer(t, s, "p1", "Morgana", 0)
	now := time.Now()

	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.InsertPotion(ctx, domain.Potion{ID: "pot-2", Owner: "p1", RecipeID: "recipe_day_1", CreatedAt: now.Add(time.Second)}))
	require.NoError(t, tx.InsertPotion(ctx, domain.Potion{ID: "pot-1", Owner: "p1", RecipeID: "recipe_day_1", CreatedAt: now}))
	require.NoError(t, tx.InsertOrders(ctx, []domain.Order{
		{ID: "o1", Owner: "p1", RecipeID: "recipe_day_1", Price: 60},
		{ID: "o2", Owner: "p1", RecipeID: "recipe_day_1", Price: 70},
	}))
	require.NoError(t, tx.Commit(ctx))

	tx, err = s.BeginTx(ctx)
	require.NoError(t, err)
	potions, err := tx.GetPotions(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, potions, 2)
	assert.Equal(t, "pot-1", potions[0].ID)

	require.NoError(t, tx.DeletePotion(ctx, "pot-1"))
	require.NoError(t, tx.MarkOrderFulfilled(ctx, "o1"))
	require.NoError(t, tx.DeleteUnfulfilledOrders(ctx, "p1"))
	require.NoError(t, tx.InsertOrders(ctx, []domain.Order{{ID: "o3", Owner: "p1", RecipeID: "recipe_day_1"}}))

	_, err = tx.GetOrderForUpdate(ctx, "p1", "o2")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	require.NoError(t, tx.Commit(ctx))

	orders, err := s.GetOrders(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "o3", orders[0].ID)
	assert.Equal(t, "o1", orders[1].ID)
	assert.True(t, orders[1].Fulfilled)

	inv, err := s.GetInventory(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, inv.Potions, 1)
	assert.Equal(t, "pot-2", inv.Potions[0].ID)
}

func TestStore_World(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	w, err := s.LoadWorld(ctx)
	require.NoError(t, err)
	assert.Nil(t, w)

	require.NoError(t, s.SaveWorld(ctx, domain.WorldState{Day: 2, Week: 1}))
	w, err = s.LoadWorld(ctx)
	require.NoError(t, err)
	require.NotNil(t, w)
	assert.Equal(t, 2, w.Day)
}

func TestStore_WorldDoesNotWaitOnTx(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seedPlayer(t, s, "p1", "Morgana", 100)

	tx, err := s.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)
	require.NoError(t, tx.AddGold(ctx, "p1", 5))

	done := make(chan error, 1)
	go func() {
		if err := s.SaveWorld(ctx, domain.WorldState{Day: 4, Week: 1}); err != nil {
			done <- err
			return
		}
		_, err := s.LoadWorld(ctx)
		done <- err
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("world access blocked behind an open transaction")
	}
}

func TestBeginTx_CanceledContext(t *testing.T) {
	s := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.BeginTx(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	// The store is still usable
	_, err = s.ListPlayerIDs(context.Background())
	assert.NoError(t, err)
}
