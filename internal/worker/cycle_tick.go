package worker

import (
	"context"
	"sync/atomic"

	"github.com/osse101/HexBrew_Go/internal/logger"
)

// Ticker advances the world clock
type Ticker interface {
	Tick(ctx context.Context) (int, error)
}

// CycleTickJob drives the world clock from the scheduler. Overlapping runs
// are skipped so a slow tick never queues up behind itself.
type CycleTickJob struct {
	cycle   Ticker
	running atomic.Bool
}

// NewCycleTickJob creates a CycleTickJob
func NewCycleTickJob(cycle Ticker) *CycleTickJob {
	return &CycleTickJob{cycle: cycle}
}

// Process runs one tick
func (j *CycleTickJob) Process(ctx context.Context) error {
	if !j.running.CompareAndSwap(false, true) {
		logger.FromContext(ctx).Debug(LogMsgTickSkipped)
		return nil
	}
	defer j.running.Store(false)

	_, err := j.cycle.Tick(ctx)
	return err
}
