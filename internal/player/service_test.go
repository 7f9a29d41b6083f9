package player

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HexBrew_Go/internal/clock"
	"github.com/osse101/HexBrew_Go/internal/database/memory"
	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/event"
	"github.com/osse101/HexBrew_Go/internal/repository"
)

// countingRepo counts username lookups that reach storage
type countingRepo struct {
	repository.Player
	byUsername atomic.Int32
}

func (r *countingRepo) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	r.byUsername.Add(1)
	return r.Player.GetPlayerByUsername(ctx, username)
}

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

var start = time.Date(2026, 10, 31, 18, 0, 0, 0, time.UTC)

func newTestService() (Service, *countingRepo, *capturePublisher) {
	repo := &countingRepo{Player: memory.NewStore()}
	pub := &capturePublisher{}
	return NewService(repo, pub, clock.NewSimulated(start), DefaultConfig()), repo, pub
}

func TestRegister_CreatesStarterKit(t *testing.T) {
	svc, _, pub := newTestService()
	ctx := context.Background()

	p, created, err := svc.Register(ctx, "  Hazel ")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Hazel", p.Username)
	assert.Equal(t, domain.DefaultStartingGold, p.Gold)
	assert.Equal(t, start, p.CreatedAt)
	assert.Len(t, p.ID, 36)

	inv, err := svc.GetInventory(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultStartingGold, inv.Gold)
	assert.Empty(t, inv.Ingredients)
	assert.Empty(t, inv.Potions)

	require.Len(t, pub.events, 1)
	assert.Equal(t, event.PlayerRegistered, pub.events[0].Type)
}

func TestRegister_Idempotent(t *testing.T) {
	svc, _, pub := newTestService()
	ctx := context.Background()

	first, created, err := svc.Register(ctx, "hazel")
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := svc.Register(ctx, "HAZEL")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, pub.events, 1)
}

func TestRegister_InvalidUsername(t *testing.T) {
	svc, _, _ := newTestService()

	_, _, err := svc.Register(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidUsername)

	_, _, err = svc.Register(context.Background(), strings.Repeat("a", MaxUsernameLength+1))
	assert.ErrorIs(t, err, domain.ErrInvalidUsername)
}

func TestRegister_ConcurrentSameUsername(t *testing.T) {
	svc, _, pub := newTestService()
	ctx := context.Background()

	const n = 10
	ids := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, _, err := svc.Register(ctx, "morgana")
			if assert.NoError(t, err) {
				ids[i] = p.ID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
	assert.Len(t, pub.events, 1)
}

func TestGetPlayerByUsername_UsesCache(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	p, _, err := svc.Register(ctx, "hazel")
	require.NoError(t, err)
	before := repo.byUsername.Load()

	for i := 0; i < 3; i++ {
		got, err := svc.GetPlayerByUsername(ctx, "Hazel")
		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)
	}
	assert.Equal(t, before, repo.byUsername.Load())

	_, err = svc.GetPlayerByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestGetPlayer(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	p, _, err := svc.Register(ctx, "hazel")
	require.NoError(t, err)

	got, err := svc.GetPlayer(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, *p, *got)

	_, err = svc.GetPlayer(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}
