package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/HexBrew_Go/internal/testing/leaktest"
	"github.com/osse101/HexBrew_Go/internal/worker"
)

func TestScheduler(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	var runs atomic.Int32
	sched.Schedule("count", 10*time.Millisecond, worker.JobFunc(func(context.Context) error {
		runs.Add(1)
		return nil
	}))

	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, 5*time.Millisecond)
}

func TestScheduler_StopHaltsJobs(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	var runs atomic.Int32
	sched.Schedule("count", 5*time.Millisecond, worker.JobFunc(func(context.Context) error {
		runs.Add(1)
		return nil
	}))

	assert.Eventually(t, func() bool { return runs.Load() >= 1 }, time.Second, time.Millisecond)
	sched.Stop()
	sched.Stop()

	time.Sleep(20 * time.Millisecond)
	after := runs.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, runs.Load())
}

func TestScheduler_StopReleasesTickers(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := worker.NewPool(1, 10)
		pool.Start()

		sched := New(pool)
		sched.Schedule("a", time.Millisecond, worker.JobFunc(func(context.Context) error { return nil }))
		sched.Schedule("b", time.Millisecond, worker.JobFunc(func(context.Context) error { return nil }))

		sched.Stop()
		pool.Stop()
	})
}
