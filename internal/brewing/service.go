package brewing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/HexBrew_Go/internal/clock"
	"github.com/osse101/HexBrew_Go/internal/concurrency"
	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/event"
	"github.com/osse101/HexBrew_Go/internal/logger"
	"github.com/osse101/HexBrew_Go/internal/recipe"
	"github.com/osse101/HexBrew_Go/internal/repository"
)

// DayProvider reports the current day of the week
type DayProvider interface {
	CurrentDay() int
}

// Service defines the brewing feature
type Service interface {
	// StartBrew brews recipeID, or today's recipe when recipeID is empty
	StartBrew(ctx context.Context, playerID, cauldronID, recipeID string) (*domain.Cauldron, error)
	// FinishBrew collects a brew whose window has closed
	FinishBrew(ctx context.Context, playerID, cauldronID string) (*BrewResult, error)
	GetCauldrons(ctx context.Context, playerID string) ([]domain.Cauldron, error)
}

type service struct {
	repo      repository.Brewing
	world     DayProvider
	publisher event.Publisher
	clock     clock.Clock
	locks     *concurrency.LockManager
}

// NewService creates a new brewing service
func NewService(
	repo repository.Brewing,
	world DayProvider,
	publisher event.Publisher,
	clk clock.Clock,
	locks *concurrency.LockManager,
) Service {
	return &service{
		repo:      repo,
		world:     world,
		publisher: publisher,
		clock:     clk,
		locks:     locks,
	}
}

func (s *service) resolveRecipe(recipeID string) (domain.Recipe, error) {
	day := s.world.CurrentDay()
	if recipeID == "" {
		return recipe.ForDay(day), nil
	}
	r, err := recipe.ByID(recipeID)
	if err != nil {
		return domain.Recipe{}, err
	}
	if !recipe.IsUnlocked(r.ID, day) {
		return domain.Recipe{}, fmt.Errorf("%w: %s unlocks later in the week", domain.ErrRecipeLocked, r.Name)
	}
	return r, nil
}

func (s *service) StartBrew(ctx context.Context, playerID, cauldronID, recipeID string) (*domain.Cauldron, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgStartBrewCalled, "player_id", playerID, "cauldron_id", cauldronID, "recipe_id", recipeID)

	if cauldronID == "" {
		cauldronID = domain.DefaultCauldronID
	}
	r, err := s.resolveRecipe(recipeID)
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

	cauldron, err := tx.GetCauldronForUpdate(ctx, playerID, cauldronID)
	if err != nil {
		return nil, err
	}
	if cauldron.IsBrewing() {
		return nil, fmt.Errorf("%w: %s", domain.ErrBrewInProgress, cauldronID)
	}

	items, err := tx.GetIngredients(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadInventory, err)
	}

	plan, err := StartBrew(r, items, cauldronID, s.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := tx.ReplaceIngredients(ctx, playerID, plan.Remaining); err != nil {
		return nil, err
	}

	cauldron.RecipeID = plan.RecipeID
	cauldron.BrewStarted = &plan.StartedAt
	cauldron.BrewEndsAt = &plan.EndsAt
	if err := tx.UpdateCauldron(ctx, *cauldron); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCommitTx, err)
	}

	log.Info(LogMsgBrewStarted, "player_id", playerID, "recipe_id", r.ID, "ends_at", plan.EndsAt)
	s.publish(ctx, event.NewBrewStartedEvent(playerID, cauldronID, r.ID, plan.EndsAt))
	return cauldron, nil
}

func (s *service) FinishBrew(ctx context.Context, playerID, cauldronID string) (*BrewResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgFinishBrewCalled, "player_id", playerID, "cauldron_id", cauldronID)

	if cauldronID == "" {
		cauldronID = domain.DefaultCauldronID
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

	cauldron, err := tx.GetCauldronForUpdate(ctx, playerID, cauldronID)
	if err != nil {
		return nil, err
	}
	if !cauldron.IsBrewing() {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoActiveBrew, cauldronID)
	}

	now := s.clock.Now()
	if now.Before(*cauldron.BrewEndsAt) {
		left := cauldron.BrewEndsAt.Sub(now).Round(time.Second)
		return nil, fmt.Errorf("%w: %s left", domain.ErrBrewNotReady, left)
	}

	r, err := recipe.ByID(cauldron.RecipeID)
	if err != nil {
		return nil, err
	}

	result := FinishBrew(r, cauldron.Quality)
	result.Potion.ID = uuid.NewString()
	result.Potion.Owner = playerID
	result.Potion.CreatedAt = now

	if err := tx.InsertPotion(ctx, result.Potion); err != nil {
		return nil, err
	}
	if result.GoldEarned > 0 {
		if err := tx.AddGold(ctx, playerID, result.GoldEarned); err != nil {
			return nil, err
		}
	}

	cauldron.RecipeID = ""
	cauldron.BrewStarted = nil
	cauldron.BrewEndsAt = nil
	if err := tx.UpdateCauldron(ctx, *cauldron); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCommitTx, err)
	}

	log.Info(LogMsgBrewFinished,
		"player_id", playerID,
		"recipe_id", r.ID,
		"quality", result.Potion.Quality,
		"gold_earned", result.GoldEarned)
	s.publish(ctx, event.NewBrewFinishedEvent(playerID, cauldronID, result.Potion, result.GoldEarned))
	return &result, nil
}

func (s *service) GetCauldrons(ctx context.Context, playerID string) ([]domain.Cauldron, error) {
	return s.repo.GetCauldrons(ctx, playerID)
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
