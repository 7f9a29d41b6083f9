package brewing

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HexBrew_Go/internal/clock"
	"github.com/osse101/HexBrew_Go/internal/concurrency"
	"github.com/osse101/HexBrew_Go/internal/database/memory"
	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/event"
)

type fixedDay int

func (d fixedDay) CurrentDay() int { return int(d) }

type capturePublisher struct {
	mu     sync.Mutex
	events []event.Event
}

func (p *capturePublisher) Publish(_ context.Context, evt event.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return nil
}

type fixture struct {
	svc   Service
	store *memory.Store
	clock *clock.SimulatedClock
	pub   *capturePublisher
}

const playerID = "player-1"

func newFixture(t *testing.T, day int, inv []domain.IngredientItem) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.CreatePlayer(ctx,
		domain.Player{ID: playerID, Username: "hazel", Gold: 100},
		domain.Cauldron{ID: domain.DefaultCauldronID, Quality: domain.DefaultCauldronQuality}))

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.ReplaceIngredients(ctx, playerID, inv))
	require.NoError(t, tx.Commit(ctx))

	clk := clock.NewSimulated(time.Date(2026, 10, 31, 20, 0, 0, 0, time.UTC))
	pub := &capturePublisher{}
	return &fixture{
		svc:   NewService(store, fixedDay(day), pub, clk, concurrency.NewLockManager()),
		store: store,
		clock: clk,
		pub:   pub,
	}
}

func TestService_BrewTodaysRecipeEndToEnd(t *testing.T) {
	f := newFixture(t, 1, items(domain.IngredientMandrakeRoot, 3, domain.IngredientGhostMushroom, 1))
	ctx := context.Background()

	cauldron, err := f.svc.StartBrew(ctx, playerID, "", "")
	require.NoError(t, err)
	assert.Equal(t, "recipe_day_1", cauldron.RecipeID)
	assert.True(t, cauldron.IsBrewing())

	inv, err := f.store.GetInventory(ctx, playerID)
	require.NoError(t, err)
	assert.Equal(t, []domain.IngredientItem{
		{Owner: playerID, Slot: 0, IngredientType: domain.IngredientMandrakeRoot, Quantity: 1},
	}, inv.Ingredients)

	_, err = f.svc.StartBrew(ctx, playerID, domain.DefaultCauldronID, "")
	assert.ErrorIs(t, err, domain.ErrBrewInProgress)

	_, err = f.svc.FinishBrew(ctx, playerID, domain.DefaultCauldronID)
	assert.ErrorIs(t, err, domain.ErrBrewNotReady)

	f.clock.Advance(20 * time.Second)
	result, err := f.svc.FinishBrew(ctx, playerID, domain.DefaultCauldronID)
	require.NoError(t, err)
	assert.Equal(t, domain.QualityHigh, result.Potion.Quality)
	assert.Equal(t, 50, result.GoldEarned)
	assert.NotEmpty(t, result.Potion.ID)

	inv, err = f.store.GetInventory(ctx, playerID)
	require.NoError(t, err)
	assert.Equal(t, 150, inv.Gold)
	require.Len(t, inv.Potions, 1)
	assert.Equal(t, result.Potion.ID, inv.Potions[0].ID)

	cauldrons, err := f.svc.GetCauldrons(ctx, playerID)
	require.NoError(t, err)
	assert.False(t, cauldrons[0].IsBrewing())

	_, err = f.svc.FinishBrew(ctx, playerID, domain.DefaultCauldronID)
	assert.ErrorIs(t, err, domain.ErrNoActiveBrew)

	require.Len(t, f.pub.events, 2)
	assert.Equal(t, event.BrewStarted, f.pub.events[0].Type)
	assert.Equal(t, event.BrewFinished, f.pub.events[1].Type)
}

func TestService_StartBrewInsufficientLeavesInventory(t *testing.T) {
	inv := items(domain.IngredientMandrakeRoot, 1)
	f := newFixture(t, 1, inv)
	ctx := context.Background()

	_, err := f.svc.StartBrew(ctx, playerID, "", "")
	assert.ErrorIs(t, err, domain.ErrInsufficientIngredients)

	got, err := f.store.GetInventory(ctx, playerID)
	require.NoError(t, err)
	require.Len(t, got.Ingredients, 1)
	assert.Equal(t, 1, got.Ingredients[0].Quantity)
	assert.Empty(t, f.pub.events)
}

func TestService_RecipeUnlocks(t *testing.T) {
	f := newFixture(t, 2, items(domain.IngredientVampireBloom, 1, domain.IngredientGraveDust, 2))
	ctx := context.Background()

	_, err := f.svc.StartBrew(ctx, playerID, "", "recipe_day_3")
	assert.ErrorIs(t, err, domain.ErrRecipeLocked)

	_, err = f.svc.StartBrew(ctx, playerID, "", "recipe_day_99")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	_, err = f.svc.StartBrew(ctx, playerID, "", "recipe_day_1")
	assert.ErrorIs(t, err, domain.ErrInsufficientIngredients)
}

func TestService_LowQualityEarnsNoGold(t *testing.T) {
	f := newFixture(t, 7, items(
		domain.IngredientMandrakeRoot, 1,
		domain.IngredientGraveDust, 1,
		domain.IngredientVampireBloom, 1,
		domain.IngredientPumpkinSeed, 2,
	))
	ctx := context.Background()

	_, err := f.svc.StartBrew(ctx, playerID, "", "")
	require.NoError(t, err)
	f.clock.Advance(time.Minute)

	result, err := f.svc.FinishBrew(ctx, playerID, "")
	require.NoError(t, err)
	assert.Equal(t, domain.QualityLow, result.Potion.Quality)
	assert.Zero(t, result.GoldEarned)

	p, err := f.store.GetPlayerByID(ctx, playerID)
	require.NoError(t, err)
	assert.Equal(t, 100, p.Gold)
}

func TestService_UnknownPlayerAndCauldron(t *testing.T) {
	f := newFixture(t, 1, nil)
	ctx := context.Background()

	_, err := f.svc.StartBrew(ctx, "ghost", "", "")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)

	_, err = f.svc.FinishBrew(ctx, playerID, "cauldron_2")
	assert.ErrorIs(t, err, domain.ErrCauldronNotFound)
}
