package forage

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/HexBrew_Go/internal/concurrency"
	"github.com/osse101/HexBrew_Go/internal/cooldown"
	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/event"
	"github.com/osse101/HexBrew_Go/internal/logger"
	"github.com/osse101/HexBrew_Go/internal/naming"
	"github.com/osse101/HexBrew_Go/internal/repository"
)

// DayProvider reports the current day of the week
type DayProvider interface {
	CurrentDay() int
}

// Result is the outcome of a forage
type Result struct {
	Zone        domain.Zone             `json:"zone"`
	Gathered    []domain.IngredientType `json:"gathered"`
	Ingredients []domain.IngredientItem `json:"ingredients"`
}

// Service defines the forage feature
type Service interface {
	// Forage gathers one of every unlocked ingredient spawning in zone.
	// zone is matched loosely ("graveyard", "Mountain Pass", "swmap").
	Forage(ctx context.Context, playerID, zone string) (*Result, error)
	// ResolveZone maps player input onto a zone
	ResolveZone(input string) (domain.Zone, error)
}

type service struct {
	repo      repository.Forage
	world     DayProvider
	cooldowns cooldown.Service
	publisher event.Publisher
	locks     *concurrency.LockManager
	zones     naming.Resolver
}

// NewService creates a new forage service
func NewService(
	repo repository.Forage,
	world DayProvider,
	cooldowns cooldown.Service,
	publisher event.Publisher,
	locks *concurrency.LockManager,
) Service {
	return &service{
		repo:      repo,
		world:     world,
		cooldowns: cooldowns,
		publisher: publisher,
		locks:     locks,
		zones:     naming.NewZoneResolver(),
	}
}

func (s *service) ResolveZone(input string) (domain.Zone, error) {
	if z, ok := s.zones.Resolve(input); ok {
		return domain.Zone(z), nil
	}
	if hints := s.zones.Suggestions(input, maxSuggestions); len(hints) > 0 {
		return "", fmt.Errorf(ErrFmtDidYouMean, domain.ErrUnknownZone, input, strings.Join(hints, " or "))
	}
	return "", fmt.Errorf(ErrFmtUnknownZone, domain.ErrUnknownZone, input)
}

func (s *service) Forage(ctx context.Context, playerID, zoneInput string) (*Result, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgForageCalled, "player_id", playerID, "zone", zoneInput)

	zone, err := s.ResolveZone(zoneInput)
	if err != nil {
		return nil, err
	}

	day := s.world.CurrentDay()
	gathered := Gatherable(zone, day)
	if len(gathered) == 0 {
		return nil, fmt.Errorf("%w: nothing grows in %s yet", domain.ErrNothingToForage, zone)
	}

	var result *Result
	action := cooldown.ActionKey(domain.ActionForage, string(zone))
	err = s.cooldowns.EnforceCooldown(ctx, playerID, action, func() error {
		items, err := s.gather(ctx, playerID, gathered)
		if err != nil {
			return err
		}
		result = &Result{Zone: zone, Gathered: gathered, Ingredients: items}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgForaged, "player_id", playerID, "zone", zone, "day", day, "gathered", gathered)
	s.publish(ctx, event.NewIngredientForagedEvent(playerID, zone, gathered))
	return result, nil
}

func (s *service) gather(ctx context.Context, playerID string, gathered []domain.IngredientType) ([]domain.IngredientItem, error) {
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

	items, err := tx.GetIngredients(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadIngredients, err)
	}
	for _, t := range gathered {
		items = AddIngredient(items, playerID, t, 1)
	}

	if err := tx.ReplaceIngredients(ctx, playerID, items); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCommitTx, err)
	}
	return items, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
