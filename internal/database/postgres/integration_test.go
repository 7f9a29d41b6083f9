package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/HexBrew_Go/internal/database"
	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/repository"
)

var (
	testDBConnString  string
	testPool          *pgxpool.Pool
	migrationsApplied bool
	migrationsMux     sync.Mutex
)

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		testDBConnString, terminate = setupContainer(context.Background())
	}

	code := m.Run()

	if testPool != nil {
		testPool.Close()
	}
	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupContainer(ctx context.Context) (string, func()) {
	// Handle potential panics from testcontainers
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		_ = pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

// requireDB returns a migrated pool or skips the test
func requireDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}

	migrationsMux.Lock()
	defer migrationsMux.Unlock()

	ctx := context.Background()
	if testPool == nil {
		pool, err := database.NewPool(ctx, testDBConnString, 10, time.Minute, 5*time.Minute)
		require.NoError(t, err)
		testPool = pool
	}
	if !migrationsApplied {
		require.NoError(t, database.Migrate(ctx, testPool))
		migrationsApplied = true
	}
	return testPool
}

func createTestPlayer(t *testing.T, repo *PlayerRepository, gold int) domain.Player {
	t.Helper()
	p := domain.Player{
		ID:        uuid.NewString(),
		Username:  "witch_" + uuid.NewString()[:8],
		Gold:      gold,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	cauldron := domain.Cauldron{ID: domain.DefaultCauldronID, Owner: p.ID, Quality: domain.DefaultCauldronQuality}
	require.NoError(t, repo.CreatePlayer(context.Background(), p, cauldron))
	return p
}

func TestPlayerRepository_CreateAndGet(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	repo := NewPlayerRepository(pool)

	p := createTestPlayer(t, repo, 100)

	byID, err := repo.GetPlayerByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Username, byID.Username)
	assert.Equal(t, 100, byID.Gold)

	byName, err := repo.GetPlayerByUsername(ctx, p.Username)
	require.NoError(t, err)
	assert.Equal(t, p.ID, byName.ID)

	dup := p
	dup.ID = uuid.NewString()
	err = repo.CreatePlayer(ctx, dup, domain.Cauldron{ID: domain.DefaultCauldronID, Owner: dup.ID, Quality: 1})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	_, err = repo.GetPlayerByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)

	_, err = repo.GetPlayerByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)

	ids, err := repo.ListPlayerIDs(ctx)
	require.NoError(t, err)
	assert.Contains(t, ids, p.ID)
}

func TestTx_IngredientsAndGold(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	players := NewPlayerRepository(pool)
	forage := NewForageRepository(pool)
	p := createTestPlayer(t, players, 50)

	tx, err := forage.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	_, err = tx.GetPlayerForUpdate(ctx, p.ID)
	require.NoError(t, err)
	require.NoError(t, tx.ReplaceIngredients(ctx, p.ID, []domain.IngredientItem{
		{Owner: p.ID, IngredientType: domain.IngredientMandrakeRoot, Quantity: 2},
		{Owner: p.ID, IngredientType: domain.IngredientBatWing, Quantity: 0},
		{Owner: p.ID, IngredientType: domain.IngredientGraveDust, Quantity: 3},
	}))
	require.NoError(t, tx.AddGold(ctx, p.ID, 25))
	require.NoError(t, tx.Commit(ctx))

	inv, err := players.GetInventory(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 75, inv.Gold)
	require.Len(t, inv.Ingredients, 2)
	assert.Equal(t, domain.IngredientMandrakeRoot, inv.Ingredients[0].IngredientType)
	assert.Equal(t, domain.IngredientGraveDust, inv.Ingredients[1].IngredientType)
	assert.Equal(t, 3, inv.Ingredients[1].Quantity)

	// Rollback after commit reports a closed transaction
	assert.ErrorIs(t, tx.Rollback(ctx), repository.ErrTxClosed)
}

func TestTx_CauldronAndPotions(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	players := NewPlayerRepository(pool)
	brewing := NewBrewingRepository(pool)
	p := createTestPlayer(t, players, 0)

	now := time.Now().UTC().Truncate(time.Microsecond)
	ends := now.Add(20 * time.Second)

	tx, err := brewing.BeginTx(ctx)
	require.NoError(t, err)
	c, err := tx.GetCauldronForUpdate(ctx, p.ID, domain.DefaultCauldronID)
	require.NoError(t, err)
	assert.False(t, c.IsBrewing())

	c.RecipeID = "recipe_day_1"
	c.BrewStarted = &now
	c.BrewEndsAt = &ends
	require.NoError(t, tx.UpdateCauldron(ctx, *c))

	potion := domain.Potion{
		ID: uuid.NewString(), Owner: p.ID, RecipeID: "recipe_day_1",
		Effect: domain.EffectHealing, Quality: 80, Value: 50, CreatedAt: now,
	}
	require.NoError(t, tx.InsertPotion(ctx, potion))
	require.NoError(t, tx.Commit(ctx))

	cauldrons, err := brewing.GetCauldrons(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, cauldrons, 1)
	assert.True(t, cauldrons[0].IsBrewing())
	assert.Equal(t, "recipe_day_1", cauldrons[0].RecipeID)
	require.NotNil(t, cauldrons[0].BrewEndsAt)
	assert.True(t, ends.Equal(*cauldrons[0].BrewEndsAt))

	tx, err = brewing.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	potions, err := tx.GetPotions(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, potions, 1)
	assert.Equal(t, potion.ID, potions[0].ID)

	require.NoError(t, tx.DeletePotion(ctx, potion.ID))
	c.RecipeID = ""
	c.BrewStarted = nil
	c.BrewEndsAt = nil
	require.NoError(t, tx.UpdateCauldron(ctx, *c))
	require.NoError(t, tx.Commit(ctx))

	cauldrons, err = brewing.GetCauldrons(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, cauldrons[0].IsBrewing())

	_, err = func() (*domain.Cauldron, error) {
		tx, err := brewing.BeginTx(ctx)
		require.NoError(t, err)
		defer repository.SafeRollback(ctx, tx)
		return tx.GetCauldronForUpdate(ctx, p.ID, "cauldron_9")
	}()
	assert.ErrorIs(t, err, domain.ErrCauldronNotFound)
}

func TestShopRepository_Orders(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	players := NewPlayerRepository(pool)
	shop := NewShopRepository(pool)
	p := createTestPlayer(t, players, 0)

	now := time.Now().UTC().Truncate(time.Microsecond)
	newOrder := func(recipeID string) domain.Order {
		return domain.Order{
			ID: uuid.NewString(), Owner: p.ID, BuyerID: "customer_1", RecipeID: recipeID,
			RecipeName: recipeID, RecipeDay: 1, Faction: domain.FactionGhost, Price: 120,
			Deadline: now.Add(domain.OrderDeadline), CreatedAt: now,
		}
	}
	first, second := newOrder("recipe_day_1"), newOrder("recipe_day_3")

	tx, err := shop.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.InsertOrders(ctx, []domain.Order{first, second}))
	require.NoError(t, tx.Commit(ctx))

	orders, err := shop.GetOrders(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, domain.FactionGhost, orders[0].Faction)

	tx, err = shop.BeginTx(ctx)
	require.NoError(t, err)
	o, err := tx.GetOrderForUpdate(ctx, p.ID, first.ID)
	require.NoError(t, err)
	assert.False(t, o.Fulfilled)
	require.NoError(t, tx.MarkOrderFulfilled(ctx, first.ID))
	require.NoError(t, tx.DeleteUnfulfilledOrders(ctx, p.ID))
	require.NoError(t, tx.Commit(ctx))

	orders, err = shop.GetOrders(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.True(t, orders[0].Fulfilled)

	tx, err = shop.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)
	_, err = tx.GetOrderForUpdate(ctx, p.ID, second.ID)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestWorldRepository_SaveAndLoad(t *testing.T) {
	pool := requireDB(t)
	ctx := context.Background()
	repo := NewWorldRepository(pool)

	start := time.Now().UTC().Truncate(time.Microsecond)
	state := domain.WorldState{
		Day:       3,
		Week:      2,
		Cycle:     domain.CycleState{Phase: domain.PhaseNight, CycleStartTime: start},
		UpdatedAt: start,
	}
	require.NoError(t, repo.SaveWorld(ctx, state))

	state.Day = 4
	require.NoError(t, repo.SaveWorld(ctx, state))

	loaded, err := repo.LoadWorld(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 4, loaded.Day)
	assert.Equal(t, 2, loaded.Week)
	assert.Equal(t, domain.PhaseNight, loaded.Cycle.Phase)
	assert.True(t, start.Equal(loaded.Cycle.CycleStartTime))
}
