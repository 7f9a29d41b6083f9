// Package cycle runs the shared day/night clock.
//
// The timer functions are pure: every result is recomputed from the wall
// clock and the phase start time, never from a running countdown.
package cycle

import (
	"fmt"
	"time"

	"github.com/osse101/HexBrew_Go/internal/domain"
)

// Timer holds the length of each phase
type Timer struct {
	DayDuration   time.Duration
	NightDuration time.Duration
}

// DefaultTimer is two minutes of day followed by one minute of night
var DefaultTimer = Timer{
	DayDuration:   domain.DefaultDayDuration,
	NightDuration: domain.DefaultNightDuration,
}

// Duration returns the length of the given phase
func (t Timer) Duration(phase domain.Phase) time.Duration {
	if phase == domain.PhaseNight {
		return t.NightDuration
	}
	return t.DayDuration
}

// Initialize returns a fresh cycle in the Day phase starting at now
func Initialize(now time.Time) domain.CycleState {
	return domain.CycleState{
		Phase:          domain.PhaseDay,
		CycleStartTime: now,
	}
}

// Update advances state to now. When the current phase has run its full
// length the phase flips once and the overshoot carries into the new phase.
func (t Timer) Update(state domain.CycleState, now time.Time) domain.CycleState {
	elapsed := now.Sub(state.CycleStartTime)
	duration := t.Duration(state.Phase)

	if elapsed >= duration {
		overshoot := elapsed - duration
		next := state.Phase.Next()
		return domain.CycleState{
			Phase:            next,
			CycleStartTime:   now.Add(-overshoot),
			Elapsed:          overshoot,
			PhaseChanged:     true,
			ShouldAdvanceDay: next == domain.PhaseDay,
		}
	}

	state.Elapsed = elapsed
	state.PhaseChanged = false
	state.ShouldAdvanceDay = false
	return state
}

// TimeRemaining is the time left in the current phase, never negative
func (t Timer) TimeRemaining(state domain.CycleState, now time.Time) time.Duration {
	remaining := t.Duration(state.Phase) - now.Sub(state.CycleStartTime)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// FormatTimeRemaining renders d as M:SS, rounding partial seconds up
func FormatTimeRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	totalSeconds := int64((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}

// NextDay returns the day after day, wrapping 7 back to 1 and bumping week
func NextDay(day, week int) (int, int) {
	if day >= domain.DaysPerWeek {
		return 1, week + 1
	}
	if day < 1 {
		return 1, week
	}
	return day + 1, week
}
