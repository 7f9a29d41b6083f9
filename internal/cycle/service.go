package cycle

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/HexBrew_Go/internal/clock"
	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/event"
	"github.com/osse101/HexBrew_Go/internal/logger"
	"github.com/osse101/HexBrew_Go/internal/metrics"
	"github.com/osse101/HexBrew_Go/internal/recipe"
	"github.com/osse101/HexBrew_Go/internal/repository"
)

// Snapshot is a point-in-time view of the world clock
type Snapshot struct {
	Day             int          `json:"day"`
	Week            int          `json:"week"`
	Phase           domain.Phase `json:"phase"`
	TimeRemainingMs int64        `json:"time_remaining_ms"`
	TimeRemaining   string       `json:"time_remaining"`
	ShopOpen        bool         `json:"shop_open"`
	RecipeID        string       `json:"recipe_id"`
	RecipeName      string       `json:"recipe_name"`
}

// Service owns the authoritative world clock
type Service interface {
	// Start loads the saved world or initialises day 1 at dawn
	Start(ctx context.Context) error
	// Tick applies every phase transition due by now and returns how many ran.
	// At most one night_began is published per call.
	Tick(ctx context.Context) (int, error)
	Snapshot() Snapshot
	CurrentDay() int
	CurrentPhase() domain.Phase
}

type service struct {
	repo      repository.World
	publisher event.Publisher
	clock     clock.Clock
	timer     Timer

	mu    sync.Mutex
	state domain.WorldState
}

// NewService creates the world clock service
func NewService(repo repository.World, publisher event.Publisher, clk clock.Clock, timer Timer) (Service, error) {
	if timer.DayDuration <= 0 || timer.NightDuration <= 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgInvalidTimer)
	}
	now := clk.Now()
	return &service{
		repo:      repo,
		publisher: publisher,
		clock:     clk,
		timer:     timer,
		state: domain.WorldState{
			Day:       1,
			Week:      1,
			Cycle:     Initialize(now),
			UpdatedAt: now,
		},
	}, nil
}

type transition struct {
	day, week       int
	phase, previous domain.Phase
	advancedDay     bool
	at              time.Time
}

func (s *service) Start(ctx context.Context) error {
	log := logger.FromContext(ctx)

	saved, err := s.repo.LoadWorld(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgLoadWorld, err)
	}

	s.mu.Lock()
	if saved != nil {
		s.state = *saved
		if s.state.Day < 1 || s.state.Day > domain.DaysPerWeek {
			s.state.Day = 1
		}
		if s.state.Week < 1 {
			s.state.Week = 1
		}
		log.Info(LogMsgWorldLoaded, "day", s.state.Day, "week", s.state.Week, "phase", s.state.Cycle.Phase)
	} else {
		now := s.clock.Now()
		s.state = domain.WorldState{Day: 1, Week: 1, Cycle: Initialize(now), UpdatedAt: now}
		log.Info(LogMsgWorldInitialized)
	}
	state := s.state
	s.mu.Unlock()

	if saved == nil {
		if err := s.repo.SaveWorld(ctx, state); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgSaveWorld, err)
		}
	}
	metrics.SetWorld(state.Day, state.Cycle.Phase)

	// Catch up on anything that elapsed while the service was down
	_, err = s.Tick(ctx)
	return err
}

func (s *service) Tick(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)
	now := s.clock.Now()

	s.mu.Lock()
	var transitions []transition
	for len(transitions) < maxCatchUp {
		previous := s.state.Cycle.Phase
		next := s.timer.Update(s.state.Cycle, now)
		s.state.Cycle = next
		if !next.PhaseChanged {
			break
		}
		if next.ShouldAdvanceDay {
			s.state.Day, s.state.Week = NextDay(s.state.Day, s.state.Week)
		}
		transitions = append(transitions, transition{
			day:         s.state.Day,
			week:        s.state.Week,
			phase:       next.Phase,
			previous:    previous,
			advancedDay: next.ShouldAdvanceDay,
			at:          next.CycleStartTime,
		})
	}
	if len(transitions) == maxCatchUp {
		// Drop the backlog and restart the current phase from now
		s.state.Cycle.CycleStartTime = now
		s.state.Cycle.Elapsed = 0
		log.Warn(LogMsgCatchUpCapped, "transitions", maxCatchUp)
	}
	if len(transitions) > 0 {
		s.state.UpdatedAt = now
	}
	state := s.state
	s.mu.Unlock()

	if len(transitions) == 0 {
		return 0, nil
	}

	if err := s.repo.SaveWorld(ctx, state); err != nil {
		log.Error(LogMsgSaveFailed, "error", err)
		return len(transitions), fmt.Errorf("%s: %w", ErrMsgSaveWorld, err)
	}

	for _, tr := range transitions {
		log.Info(LogMsgPhaseChanged, "day", tr.day, "week", tr.week, "phase", tr.phase, "previous", tr.previous)
		s.publish(ctx, event.NewPhaseEvent(event.PhaseChanged, tr.day, tr.week, tr.phase, tr.previous, tr.at))
		if tr.advancedDay {
			s.publish(ctx, event.NewPhaseEvent(event.DayAdvanced, tr.day, tr.week, tr.phase, tr.previous, tr.at))
		}
	}

	// Night opens every shop, so only the night the world is in now counts.
	// Nights skipped during catch-up are already over.
	if last := transitions[len(transitions)-1]; last.phase == domain.PhaseNight {
		if len(transitions) > 1 {
			log.Info(LogMsgNightsSkipped, "transitions", len(transitions))
		}
		s.publish(ctx, event.NewPhaseEvent(event.NightBegan, last.day, last.week, last.phase, last.previous, last.at))
	}

	return len(transitions), nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}

func (s *service) Snapshot() Snapshot {
	now := s.clock.Now()

	s.mu.Lock()
	state := s.state
	s.mu.Unlock()

	remaining := s.timer.TimeRemaining(state.Cycle, now)
	today := recipe.ForDay(state.Day)
	return Snapshot{
		Day:             state.Day,
		Week:            state.Week,
		Phase:           state.Cycle.Phase,
		TimeRemainingMs: remaining.Milliseconds(),
		TimeRemaining:   FormatTimeRemaining(remaining),
		ShopOpen:        state.Cycle.Phase == domain.PhaseNight,
		RecipeID:        today.ID,
		RecipeName:      today.Name,
	}
}

func (s *service) CurrentDay() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Day
}

func (s *service) CurrentPhase() domain.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Cycle.Phase
}
