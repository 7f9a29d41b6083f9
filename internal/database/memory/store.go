// Package memory provides an in-process store implementing every repository
// interface. It backs STORAGE_BACKEND=memory and service tests.
//
// Player data sits behind one store-wide lock that a transaction holds from
// BeginTx to Commit or Rollback, so transactions for different players run
// one at a time. That is fine for development and tests; production traffic
// belongs on the postgres backend. The world clock has its own lock and never
// waits on a player transaction.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/repository"
)

type playerData struct {
	player      domain.Player
	ingredients []domain.IngredientItem
	cauldrons   []domain.Cauldron
	potions     []domain.Potion
	// orders holds the newest batch first
	orders []domain.Order
}

func (d *playerData) clone() *playerData {
	c := *d
	c.ingredients = append([]domain.IngredientItem(nil), d.ingredients...)
	c.cauldrons = make([]domain.Cauldron, len(d.cauldrons))
	for i, cd := range d.cauldrons {
		c.cauldrons[i] = cloneCauldron(cd)
	}
	c.potions = append([]domain.Potion(nil), d.potions...)
	c.orders = append([]domain.Order(nil), d.orders...)
	return &c
}

// Store is a mutex-guarded in-memory database
type Store struct {
	mu        sync.Mutex
	players   map[string]*playerData
	usernames map[string]string
	order     []string

	worldMu sync.RWMutex
	world   *domain.WorldState
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		players:   make(map[string]*playerData),
		usernames: make(map[string]string),
	}
}

var (
	_ repository.Player  = (*Store)(nil)
	_ repository.Brewing = (*Store)(nil)
	_ repository.Shop    = (*Store)(nil)
	_ repository.Forage  = (*Store)(nil)
	_ repository.World   = (*Store)(nil)
)

func usernameKey(username string) string {
	return strings.ToLower(username)
}

// CreatePlayer stores a new player with its starter cauldron
func (s *Store) CreatePlayer(_ context.Context, player domain.Player, cauldron domain.Cauldron) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if player.ID == "" {
		return fmt.Errorf("%w: empty player id", domain.ErrInvalidInput)
	}
	key := usernameKey(player.Username)
	if _, taken := s.usernames[key]; taken {
		return fmt.Errorf("%w: %s", domain.ErrUsernameTaken, player.Username)
	}
	if _, exists := s.players[player.ID]; exists {
		return fmt.Errorf("%w: duplicate player id %s", domain.ErrInvalidInput, player.ID)
	}

	cauldron.Owner = player.ID
	s.players[player.ID] = &playerData{
		player:    player,
		cauldrons: []domain.Cauldron{cauldron},
	}
	s.usernames[key] = player.ID
	s.order = append(s.order, player.ID)
	return nil
}

// GetPlayerByID returns domain.ErrPlayerNotFound when no player matches
func (s *Store) GetPlayerByID(_ context.Context, playerID string) (*domain.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.players[playerID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}
	p := d.player
	return &p, nil
}

// GetPlayerByUsername matches usernames case-insensitively
func (s *Store) GetPlayerByUsername(_ context.Context, username string) (*domain.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.usernames[usernameKey(username)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, username)
	}
	p := s.players[id].player
	return &p, nil
}

// ListPlayerIDs returns every player ID in registration order
func (s *Store) ListPlayerIDs(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.order...), nil
}

// GetInventory returns the player's gold, ingredients and unsold potions
func (s *Store) GetInventory(_ context.Context, playerID string) (*domain.Inventory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.players[playerID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}
	return &domain.Inventory{
		Gold:        d.player.Gold,
		Ingredients: append([]domain.IngredientItem{}, d.ingredients...),
		Potions:     append([]domain.Potion{}, d.potions...),
	}, nil
}

// GetCauldrons returns every cauldron the player owns
func (s *Store) GetCauldrons(_ context.Context, playerID string) ([]domain.Cauldron, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.players[playerID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}
	return d.clone().cauldrons, nil
}

// GetOrders returns the player's orders, newest batch first
func (s *Store) GetOrders(_ context.Context, playerID string) ([]domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.players[playerID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, playerID)
	}
	return append([]domain.Order{}, d.orders...), nil
}

// LoadWorld returns nil, nil before the first save
func (s *Store) LoadWorld(_ context.Context) (*domain.WorldState, error) {
	s.worldMu.RLock()
	defer s.worldMu.RUnlock()

	if s.world == nil {
		return nil, nil
	}
	w := *s.world
	return &w, nil
}

// SaveWorld replaces the stored world state
func (s *Store) SaveWorld(_ context.Context, state domain.WorldState) error {
	s.worldMu.Lock()
	defer s.worldMu.Unlock()
	s.world = &state
	return nil
}

// BeginTx starts a transaction. Player data stays locked until Commit or
// Rollback, so callers must not use non-transactional player reads while it
// is open.
func (s *Store) BeginTx(ctx context.Context) (repository.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	return &memTx{store: s, staged: make(map[string]*playerData)}, nil
}

func cloneCauldron(c domain.Cauldron) domain.Cauldron {
	if c.BrewStarted != nil {
		t := *c.BrewStarted
		c.BrewStarted = &t
	}
	if c.BrewEndsAt != nil {
		t := *c.BrewEndsAt
		c.BrewEndsAt = &t
	}
	return c
}

// sortedPotions orders potions oldest first, matching the SQL backend
func sortedPotions(potions []domain.Potion) []domain.Potion {
	out := append([]domain.Potion{}, potions...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
