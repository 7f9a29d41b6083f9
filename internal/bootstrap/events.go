package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/osse101/HexBrew_Go/internal/config"
	"github.com/osse101/HexBrew_Go/internal/event"
	"github.com/osse101/HexBrew_Go/internal/logger"
)

// InitializeEventSystem creates the in-memory bus and the resilient publisher
// that services publish through. The dead-letter directory is created first.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	bus := event.NewMemoryBus()

	if err := os.MkdirAll(filepath.Dir(cfg.EventDeadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterDir, err)
	}

	publisher, err := event.NewResilientPublisher(bus, cfg.EventMaxRetries, cfg.EventRetryDelay, cfg.EventDeadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateResilientPublisher, err)
	}

	logger.Info(LogMsgEventSystemInitialized,
		"max_retries", cfg.EventMaxRetries,
		"retry_delay", cfg.EventRetryDelay,
		"deadletter_path", cfg.EventDeadLetterPath)

	return bus, publisher, nil
}
