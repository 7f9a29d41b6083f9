package domain

import "time"

// Phase is the half of the day/night cycle the world is in
type Phase string

// Phases
const (
	PhaseDay   Phase = "Day"
	PhaseNight Phase = "Night"
)

// Next returns the phase that follows p
func (p Phase) Next() Phase {
	if p == PhaseDay {
		return PhaseNight
	}
	return PhaseDay
}

// DaysPerWeek is the number of days before the recipe table repeats
const DaysPerWeek = 7

// CycleState is the polled day/night timer state. It is recomputed from the
// wall clock on every tick.
type CycleState struct {
	Phase            Phase         `json:"current_phase"`
	CycleStartTime   time.Time     `json:"cycle_start_time"`
	Elapsed          time.Duration `json:"elapsed_time"`
	PhaseChanged     bool          `json:"phase_changed"`
	ShouldAdvanceDay bool          `json:"should_advance_day"`
}

// WorldState is the shared world clock: the day counter plus the cycle timer
type WorldState struct {
	Day       int        `json:"day"`
	Week      int        `json:"week"`
	Cycle     CycleState `json:"cycle"`
	UpdatedAt time.Time  `json:"updated_at"`
}
