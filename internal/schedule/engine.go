package schedule

import (
	"github.com/jmalherbe/cadence/internal/models"
)

// Engine evaluates goals against the calendar. It holds no mutable state;
// identical inputs under the same clock always produce identical outputs.
type Engine struct {
	clock Clock
}

// New returns an Engine reading the current date from the given clock.
// A nil clock falls back to the system clock.
func New(clock Clock) *Engine {
	if clock == nil {
		clock = SystemClock()
	}
	return &Engine{clock: clock}
}

// Today returns the current local calendar date.
func (e *Engine) Today() string {
	return FormatDate(e.clock.Now())
}

// progressByDate indexes entries by target date. The first entry for a
// date wins; duplicates are kept out by the storage layer, but the engine
// stays total over whatever it is handed.
func progressByDate(progress []models.GoalProgress) map[string]models.GoalProgress {
	byDate := make(map[string]models.GoalProgress, len(progress))
	for _, p := range progress {
		if _, ok := byDate[p.TargetDate]; !ok {
			byDate[p.TargetDate] = p
		}
	}
	return byDate
}

// countInWeek counts entries whose target date falls inside [weekStart,
// weekEnd], counting each target date once.
func countInWeek(progress []models.GoalProgress, weekStart, weekEnd string) int {
	seen := make(map[string]bool)
	for _, p := range progress {
		if p.TargetDate >= weekStart && p.TargetDate <= weekEnd && !seen[p.TargetDate] {
			seen[p.TargetDate] = true
		}
	}
	return len(seen)
}
