package worker

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/HexBrew_Go/internal/logger"
)

// BaseWorker tracks keyed one-shot timers and in-flight executions
type BaseWorker struct {
	mu       sync.Mutex
	timers   map[string]*time.Timer
	shutdown chan struct{}
	closed   bool
	wg       sync.WaitGroup
}

func (w *BaseWorker) init() {
	if w.timers == nil {
		w.timers = make(map[string]*time.Timer)
	}
	if w.shutdown == nil {
		w.shutdown = make(chan struct{})
	}
}

// schedule runs fn after d, replacing any pending timer for key.
// Returns false after shutdown.
func (w *BaseWorker) schedule(key string, d time.Duration, fn func()) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return false
	}
	if t, ok := w.timers[key]; ok {
		t.Stop()
	}
	w.timers[key] = time.AfterFunc(d, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}
		w.removeTimer(key)
		w.run(fn)
	})
	return true
}

func (w *BaseWorker) run(fn func()) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		fn()
	}()
}

func (w *BaseWorker) stopTimer(key string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if timer, ok := w.timers[key]; ok {
		timer.Stop()
		delete(w.timers, key)
	}
}

func (w *BaseWorker) removeTimer(key string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.timers, key)
}

func (w *BaseWorker) pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.timers)
}

func (w *BaseWorker) shutdownInternal(ctx context.Context, workerName string) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgWorkerShuttingDown, "worker", workerName)

	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.shutdown)
	}
	for key, timer := range w.timers {
		timer.Stop()
		log.Debug(LogMsgBrewReadyCancelled, "worker", workerName, "key", key)
	}
	w.timers = make(map[string]*time.Timer)
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgWorkerShutdownDone, "worker", workerName)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgWorkerShutdownTimeout, "worker", workerName)
		return ctx.Err()
	}
}
