package player

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/osse101/HexBrew_Go/internal/clock"
	"github.com/osse101/HexBrew_Go/internal/domain"
	"github.com/osse101/HexBrew_Go/internal/event"
	"github.com/osse101/HexBrew_Go/internal/logger"
	"github.com/osse101/HexBrew_Go/internal/repository"
)

// Config holds the starter kit and cache settings
type Config struct {
	StartingGold    int
	CauldronQuality int
	CacheSize       int
	CacheTTL        time.Duration
}

// DefaultConfig returns the standard starter kit
func DefaultConfig() Config {
	return Config{
		StartingGold:    domain.DefaultStartingGold,
		CauldronQuality: domain.DefaultCauldronQuality,
		CacheSize:       DefaultCacheSize,
		CacheTTL:        DefaultCacheTTL,
	}
}

// Service defines the player feature
type Service interface {
	// Register returns the existing player for username or creates one.
	// created reports whether a new player was stored.
	Register(ctx context.Context, username string) (player *domain.Player, created bool, err error)
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)
	GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error)
	GetInventory(ctx context.Context, playerID string) (*domain.Inventory, error)
}

type service struct {
	repo      repository.Player
	publisher event.Publisher
	clock     clock.Clock
	config    Config
	cache     *idCache
}

// NewService creates a new player service
func NewService(repo repository.Player, publisher event.Publisher, clk clock.Clock, config Config) Service {
	if config.CacheSize <= 0 {
		config.CacheSize = DefaultCacheSize
	}
	if config.CacheTTL <= 0 {
		config.CacheTTL = DefaultCacheTTL
	}
	return &service{
		repo:      repo,
		publisher: publisher,
		clock:     clk,
		config:    config,
		cache:     newIDCache(config.CacheSize, config.CacheTTL),
	}
}

// NormalizeUsername trims input and checks its length
func NormalizeUsername(username string) (string, error) {
	username = strings.TrimSpace(username)
	n := utf8.RuneCountInString(username)
	if n == 0 {
		return "", fmt.Errorf("%w: username is required", domain.ErrInvalidUsername)
	}
	if n > MaxUsernameLength {
		return "", fmt.Errorf("%w: at most %d characters", domain.ErrInvalidUsername, MaxUsernameLength)
	}
	return username, nil
}

func (s *service) Register(ctx context.Context, username string) (*domain.Player, bool, error) {
	log := logger.FromContext(ctx)

	username, err := NormalizeUsername(username)
	if err != nil {
		return nil, false, err
	}
	log.Info(LogMsgRegisterCalled, "username", username)

	existing, err := s.GetPlayerByUsername(ctx, username)
	if err == nil {
		log.Debug(LogMsgPlayerExists, "player_id", existing.ID)
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrPlayerNotFound) {
		return nil, false, err
	}

	now := s.clock.Now().UTC()
	p := domain.Player{
		ID:        uuid.NewString(),
		Username:  username,
		Gold:      s.config.StartingGold,
		CreatedAt: now,
	}
	cauldron := domain.Cauldron{
		ID:      domain.DefaultCauldronID,
		Owner:   p.ID,
		Quality: s.config.CauldronQuality,
	}

	if err := s.repo.CreatePlayer(ctx, p, cauldron); err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			log.Info(LogMsgRegisterRace, "username", username)
			winner, getErr := s.repo.GetPlayerByUsername(ctx, username)
			if getErr != nil {
				return nil, false, getErr
			}
			s.cache.Set(username, winner.ID)
			return winner, false, nil
		}
		return nil, false, err
	}

	s.cache.Set(username, p.ID)
	log.Info(LogMsgPlayerRegistered, "player_id", p.ID, "username", username)
	s.publish(ctx, event.NewPlayerRegisteredEvent(p.ID, p.Username))
	return &p, true, nil
}

func (s *service) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	return s.repo.GetPlayerByID(ctx, playerID)
}

func (s *service) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	username = strings.TrimSpace(username)

	if id, ok := s.cache.Get(username); ok {
		p, err := s.repo.GetPlayerByID(ctx, id)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, domain.ErrPlayerNotFound) {
			return nil, err
		}
		s.cache.Invalidate(username)
	}

	p, err := s.repo.GetPlayerByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	s.cache.Set(username, p.ID)
	return p, nil
}

func (s *service) GetInventory(ctx context.Context, playerID string) (*domain.Inventory, error) {
	return s.repo.GetInventory(ctx, playerID)
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
