package shop

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/osse101/HexBrew_Go/internal/clock"
	"github.com/osse101/HexBrew_Go/internal/concurrency"
	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/event"
	"github.com/osse101/HexBrew_Go/internal/logger"
	"github.com/osse101/HexBrew_Go/internal/recipe"
	"github.com/osse101/HexBrew_Go/internal/repository"
)

// PhaseProvider reports the current world phase
type PhaseProvider interface {
	CurrentPhase() domain.Phase
}

// Config tunes order generation and trading hours
type Config struct {
	OrdersMin int
	OrdersMax int
	// NightOnly rejects sales outside the Night phase
	NightOnly bool
}

// DefaultConfig matches the original game balance
func DefaultConfig() Config {
	return Config{
		OrdersMin: domain.DefaultOrdersMin,
		OrdersMax: domain.DefaultOrdersMax,
		NightOnly: true,
	}
}

// SaleResult is returned by SellPotion
type SaleResult struct {
	OrderID    string `json:"order_id"`
	PotionID   string `json:"potion_id"`
	RecipeID   string `json:"recipe_id"`
	GoldEarned int    `json:"gold_earned"`
	Gold       int    `json:"gold"`
}

// Service defines the shop feature
type Service interface {
	// OpenShop replaces the player's unfulfilled orders with a new batch for day
	OpenShop(ctx context.Context, playerID string, day int) ([]domain.Order, error)
	// OpenShopForAll opens every player's shop and returns how many opened
	OpenShopForAll(ctx context.Context, day int) (int, error)
	GetOrders(ctx context.Context, playerID string) ([]domain.Order, error)
	SellPotion(ctx context.Context, playerID, orderID string) (*SaleResult, error)
	GetEarnings(ctx context.Context, playerID string) (int, error)
	// HandleNightBegan is the world.night_began subscriber
	HandleNightBegan(ctx context.Context, evt event.Event) error
}

type service struct {
	repo      repository.Shop
	world     PhaseProvider
	publisher event.Publisher
	clock     clock.Clock
	locks     *concurrency.LockManager
	config    Config

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewService creates a new shop service. seed drives order generation.
func NewService(
	repo repository.Shop,
	world PhaseProvider,
	publisher event.Publisher,
	clk clock.Clock,
	locks *concurrency.LockManager,
	config Config,
	seed int64,
) Service {
	//nolint:gosec // G404: math/rand is acceptable for game mechanics, not for cryptographic purposes
	rng := rand.New(rand.NewSource(seed))
	return &service{
		repo:      repo,
		world:     world,
		publisher: publisher,
		clock:     clk,
		locks:     locks,
		config:    config,
		rng:       rng,
	}
}

func (s *service) generate(playerID string, day int) ([]domain.Order, error) {
	s.rngMu.Lock()
	orders, err := GenerateCustomerOrders(s.rng, day, s.config.OrdersMin, s.config.OrdersMax, s.clock.Now())
	s.rngMu.Unlock()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Owner = playerID
	}
	return orders, nil
}

func (s *service) OpenShop(ctx context.Context, playerID string, day int) ([]domain.Order, error) {
	log := logger.FromContext(ctx)

	orders, err := s.generate(playerID, day)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(concurrency.PlayerKey(playerID))
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.GetPlayerForUpdate(ctx, playerID); err != nil {
		return nil, err
	}
	if err := tx.DeleteUnfulfilledOrders(ctx, playerID); err != nil {
		return nil, err
	}
	if err := tx.InsertOrders(ctx, orders); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCommitTx, err)
	}

	log.Info(LogMsgOpenShop, "player_id", playerID, "day", day, "orders", len(orders))
	s.publish(ctx, event.NewOrdersGeneratedEvent(playerID, day, len(orders)))
	return orders, nil
}

func (s *service) OpenShopForAll(ctx context.Context, day int) (int, error) {
	log := logger.FromContext(ctx)

	ids, err := s.repo.ListPlayerIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgListPlayers, err)
	}
	log.Info(LogMsgOpenShopForAll, "day", day, "players", len(ids))

	opened := 0
	var errs []error
	for _, id := range ids {
		if _, err := s.OpenShop(ctx, id, day); err != nil {
			log.Error(LogMsgOpenShopFailed, "player_id", id, "error", err)
			errs = append(errs, err)
			continue
		}
		opened++
	}

	if len(errs) > 0 {
		return opened, fmt.Errorf(ErrMsgOpenShopsFmt, len(errs), len(ids), errors.Join(errs...))
	}
	return opened, nil
}

func (s *service) GetOrders(ctx context.Context, playerID string) ([]domain.Order, error) {
	return s.repo.GetOrders(ctx, playerID)
}

func (s *service) GetEarnings(ctx context.Context, playerID string) (int, error) {
	orders, err := s.repo.GetOrders(ctx, playerID)
	if err != nil {
		return 0, err
	}
	return CalculateTotalEarnings(orders), nil
}

func (s *service) SellPotion(ctx context.Context, playerID, orderID string) (*SaleResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellPotionCalled, "player_id", playerID, "order_id", orderID)

	if s.config.NightOnly && s.world.CurrentPhase() != domain.PhaseNight {
		return nil, fmt.Errorf("%w: customers only visit at night", domain.ErrShopClosed)
	}

	unlock := s.locks.Lock(concurrency.PlayerKey(playerID))
	defer unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return nil, err
	}

	order, err := tx.GetOrderForUpdate(ctx, playerID, orderID)
	if err != nil {
		return nil, err
	}
	if order.Fulfilled {
		return nil, fmt.Errorf("%w: %s", domain.ErrOrderAlreadyFulfilled, orderID)
	}

	potions, err := tx.GetPotions(ctx, playerID)
	if err != nil {
		return nil, err
	}
	potion, ok := FindMatchingPotion(*order, potions)
	if !ok {
		name := order.RecipeName
		if r, err := recipe.ByID(order.RecipeID); err == nil {
			name = r.Name
		}
		return nil, fmt.Errorf("%w: brew a %s first", domain.ErrNoMatchingPotion, name)
	}

	result, err := FulfillOrder(*order, potion)
	if err != nil {
		return nil, err
	}

	if err := tx.MarkOrderFulfilled(ctx, order.ID); err != nil {
		return nil, err
	}
	if err := tx.DeletePotion(ctx, potion.ID); err != nil {
		return nil, err
	}
	if err := tx.AddGold(ctx, playerID, result.GoldEarned); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCommitTx, err)
	}

	log.Info(LogMsgPotionSold,
		"player_id", playerID,
		"order_id", order.ID,
		"recipe_id", order.RecipeID,
		"price", result.GoldEarned)
	s.publish(ctx, event.NewPotionSoldEvent(playerID, result.Order, potion.ID))

	return &SaleResult{
		OrderID:    result.Order.ID,
		PotionID:   potion.ID,
		RecipeID:   order.RecipeID,
		GoldEarned: result.GoldEarned,
		Gold:       player.Gold + result.GoldEarned,
	}, nil
}

func (s *service) HandleNightBegan(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[domain.PhaseChangedPayload](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgBadNightPayload, "error", err)
		return nil
	}
	_, err = s.OpenShopForAll(ctx, p.Day)
	return err
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
