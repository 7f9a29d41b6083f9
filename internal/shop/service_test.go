package shop

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HexBrew_Go/internal/clock"
	"github.com/osse101/HexBrew_Go/internal/concurrency"
	"github.com/osse101/HexBrew_Go/internal/database/memory"
	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/event"
)

type stubPhase struct {
	mu    sync.Mutex
	phase domain.Phase
}

func (s *stubPhase) CurrentPhase() domain.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

type fixture struct {
	svc   Service
	store *memory.Store
	phase *stubPhase
}

func newFixture(t *testing.T, players ...string) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	for _, id := range players {
		require.NoError(t, store.CreatePlayer(ctx,
			domain.Player{ID: id, Username: "user-" + id, Gold: 100},
			domain.Cauldron{ID: domain.DefaultCauldronID, Quality: 1}))
	}
	phase := &stubPhase{phase: domain.PhaseNight}
	svc := NewService(store, phase, nil, clock.NewSimulated(now), concurrency.NewLockManager(), DefaultConfig(), 1)
	return &fixture{svc: svc, store: store, phase: phase}
}

func (f *fixture) givePotion(t *testing.T, playerID, potionID, recipeID string) {
	t.Helper()
	ctx := context.Background()
	tx, err := f.store.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.InsertPotion(ctx, domain.Potion{
		ID: potionID, Owner: playerID, RecipeID: recipeID, Quality: domain.QualityHigh, CreatedAt: now,
	}))
	require.NoError(t, tx.Commit(ctx))
}

func orderFor(t *testing.T, orders []domain.Order, recipeID string) domain.Order {
	t.Helper()
	for _, o := range orders {
		if o.RecipeID == recipeID {
			return o
		}
	}
	t.Fatalf("no order for %s", recipeID)
	return domain.Order{}
}

func TestService_SellPotionFlow(t *testing.T) {
	f := newFixture(t, "p1")
	ctx := context.Background()

	orders, err := f.svc.OpenShop(ctx, "p1", 1)
	require.NoError(t, err)
	require.NotEmpty(t, orders)
	order := orderFor(t, orders, "recipe_day_1")

	_, err = f.svc.SellPotion(ctx, "p1", order.ID)
	assert.ErrorIs(t, err, domain.ErrNoMatchingPotion)

	f.givePotion(t, "p1", "pot-1", "recipe_day_1")
	sale, err := f.svc.SellPotion(ctx, "p1", order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.Price, sale.GoldEarned)
	assert.Equal(t, 100+order.Price, sale.Gold)
	assert.Equal(t, "pot-1", sale.PotionID)

	f.givePotion(t, "p1", "pot-2", "recipe_day_1")
	_, err = f.svc.SellPotion(ctx, "p1", order.ID)
	assert.ErrorIs(t, err, domain.ErrOrderAlreadyFulfilled)

	inv, err := f.store.GetInventory(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 100+order.Price, inv.Gold)
	require.Len(t, inv.Potions, 1)
	assert.Equal(t, "pot-2", inv.Potions[0].ID)

	earnings, err := f.svc.GetEarnings(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, order.Price, earnings)
}

func TestService_SellPotionShopClosedByDay(t *testing.T) {
	f := newFixture(t, "p1")
	f.phase.phase = domain.PhaseDay

	_, err := f.svc.SellPotion(context.Background(), "p1", "anything")
	assert.ErrorIs(t, err, domain.ErrShopClosed)
}

func TestService_SellPotionUnknownOrder(t *testing.T) {
	f := newFixture(t, "p1")
	_, err := f.svc.SellPotion(context.Background(), "p1", "missing")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestService_OpenShopKeepsFulfilledOrders(t *testing.T) {
	f := newFixture(t, "p1")
	ctx := context.Background()

	first, err := f.svc.OpenShop(ctx, "p1", 1)
	require.NoError(t, err)
	sold := orderFor(t, first, "recipe_day_1")
	f.givePotion(t, "p1", "pot-1", "recipe_day_1")
	_, err = f.svc.SellPotion(ctx, "p1", sold.ID)
	require.NoError(t, err)

	second, err := f.svc.OpenShop(ctx, "p1", 2)
	require.NoError(t, err)

	all, err := f.svc.GetOrders(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, all, len(second)+1)

	ids := map[string]bool{}
	for _, o := range all {
		ids[o.ID] = true
	}
	assert.True(t, ids[sold.ID], "fulfilled order kept")
	for _, o := range first {
		if o.ID != sold.ID {
			assert.False(t, ids[o.ID], "stale order %s dropped", o.ID)
		}
	}
	// Newest batch first
	assert.Equal(t, second[0].ID, all[0].ID)
}

func TestService_HandleNightBeganOpensEveryShop(t *testing.T) {
	f := newFixture(t, "p1", "p2")
	ctx := context.Background()

	bus := event.NewMemoryBus()
	bus.Subscribe(event.NightBegan, f.svc.HandleNightBegan)

	evt := event.NewPhaseEvent(event.NightBegan, 2, 1, domain.PhaseNight, domain.PhaseDay, now)
	require.NoError(t, bus.Publish(ctx, evt))

	for _, id := range []string{"p1", "p2"} {
		orders, err := f.svc.GetOrders(ctx, id)
		require.NoError(t, err)
		assert.NotEmpty(t, orders)
		for _, o := range orders {
			assert.Contains(t, []string{"recipe_day_1", "recipe_day_2"}, o.RecipeID)
			assert.Equal(t, id, o.Owner)
		}
	}
}

func TestService_OpenShopForAllReportsFailures(t *testing.T) {
	f := newFixture(t, "p1")
	f.svc = NewService(f.store, f.phase, nil, clock.NewSimulated(now), concurrency.NewLockManager(),
		Config{OrdersMin: 3, OrdersMax: 1}, 1)

	opened, err := f.svc.OpenShopForAll(context.Background(), 1)
	assert.Zero(t, opened)
	assert.ErrorIs(t, err, domain.ErrInvalidOrderBounds)
}

func TestService_ConcurrentSalesOnlyOneWins(t *testing.T) {
	f := newFixture(t, "p1")
	ctx := context.Background()

	orders, err := f.svc.OpenShop(ctx, "p1", 1)
	require.NoError(t, err)
	order := orderFor(t, orders, "recipe_day_1")
	f.givePotion(t, "p1", "pot-1", "recipe_day_1")
	f.givePotion(t, "p1", "pot-2", "recipe_day_1")

	var wg sync.WaitGroup
	results := make(chan error, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.SellPotion(ctx, "p1", order.ID)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	wins := 0
	for err := range results {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, domain.ErrOrderAlreadyFulfilled)
		}
	}
	assert.Equal(t, 1, wins)

	p, err := f.store.GetPlayerByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 100+order.Price, p.Gold)
}
