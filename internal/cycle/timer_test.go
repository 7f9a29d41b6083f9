package cycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/HexBrew_Go/internal/domain"
)

var epoch = time.Date(2026, 10, 31, 18, 0, 0, 0, time.UTC)

func TestInitialize(t *testing.T) {
	state := Initialize(epoch)
	assert.Equal(t, domain.PhaseDay, state.Phase)
	assert.Equal(t, epoch, state.CycleStartTime)
	assert.Zero(t, state.Elapsed)
	assert.False(t, state.PhaseChanged)
}

func TestUpdate_WithinPhase(t *testing.T) {
	state := Initialize(epoch)
	next := DefaultTimer.Update(state, epoch.Add(119*time.Second))

	assert.Equal(t, domain.PhaseDay, next.Phase)
	assert.Equal(t, 119*time.Second, next.Elapsed)
	assert.False(t, next.PhaseChanged)
	assert.False(t, next.ShouldAdvanceDay)
	assert.Equal(t, epoch, next.CycleStartTime)
}

func TestUpdate_FlipsOneMillisecondPastDay(t *testing.T) {
	state := Initialize(epoch)
	now := epoch.Add(120001 * time.Millisecond)
	next := DefaultTimer.Update(state, now)

	assert.True(t, next.PhaseChanged)
	assert.Equal(t, domain.PhaseNight, next.Phase)
	assert.False(t, next.ShouldAdvanceDay)
	assert.Equal(t, time.Millisecond, next.Elapsed)
	assert.Equal(t, now.Add(-time.Millisecond), next.CycleStartTime)
}

func TestUpdate_DayToNightCarriesOvershoot(t *testing.T) {
	state := Initialize(epoch)
	now := epoch.Add(125 * time.Second)
	next := DefaultTimer.Update(state, now)

	assert.Equal(t, domain.PhaseNight, next.Phase)
	assert.True(t, next.PhaseChanged)
	assert.False(t, next.ShouldAdvanceDay)
	assert.Equal(t, 5*time.Second, next.Elapsed)
	assert.Equal(t, now.Add(-5*time.Second), next.CycleStartTime)
}

func TestUpdate_NightToDayAdvancesDay(t *testing.T) {
	state := domain.CycleState{Phase: domain.PhaseNight, CycleStartTime: epoch}
	next := DefaultTimer.Update(state, epoch.Add(60*time.Second))

	assert.Equal(t, domain.PhaseDay, next.Phase)
	assert.True(t, next.PhaseChanged)
	assert.True(t, next.ShouldAdvanceDay)
	assert.Zero(t, next.Elapsed)
}

func TestUpdate_FlipsOncePerCall(t *testing.T) {
	// Ten minutes later a single Update still moves one phase only
	next := DefaultTimer.Update(Initialize(epoch), epoch.Add(10*time.Minute))
	assert.Equal(t, domain.PhaseNight, next.Phase)
	assert.Equal(t, 8*time.Minute, next.Elapsed)
}

func TestTimeRemaining(t *testing.T) {
	state := Initialize(epoch)

	tests := []struct {
		name string
		at   time.Duration
		want time.Duration
	}{
		{"start", 0, 120 * time.Second},
		{"mid", 45 * time.Second, 75 * time.Second},
		{"exact end", 120 * time.Second, 0},
		{"overdue", 5 * time.Minute, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultTimer.TimeRemaining(state, epoch.Add(tt.at))
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, time.Duration(0))
		})
	}

	night := domain.CycleState{Phase: domain.PhaseNight, CycleStartTime: epoch}
	assert.Equal(t, 30*time.Second, DefaultTimer.TimeRemaining(night, epoch.Add(30*time.Second)))
}

func TestFormatTimeRemaining(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{120 * time.Second, "2:00"},
		{75 * time.Second, "1:15"},
		{59001 * time.Millisecond, "1:00"},
		{1 * time.Millisecond, "0:01"},
		{9 * time.Second, "0:09"},
		{0, "0:00"},
		{-time.Second, "0:00"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimeRemaining(tt.in))
		})
	}
}

func TestNextDay(t *testing.T) {
	day, week := NextDay(1, 1)
	assert.Equal(t, 2, day)
	assert.Equal(t, 1, week)

	day, week = NextDay(7, 1)
	assert.Equal(t, 1, day)
	assert.Equal(t, 2, week)

	day, week = NextDay(0, 3)
	assert.Equal(t, 1, day)
	assert.Equal(t, 3, week)
}
