package schedule

import (
	"github.com/jmalherbe/cadence/internal/models"
)

// GoalStatusResult bundles everything the UI needs to render one goal's
// current standing: the gate verdict, today's classification, and the
// failed, amendable, and completed date lists for the round so far.
type GoalStatusResult struct {
	CanLogToday    bool
	Reason         string
	TodayStatus    models.DayState
	FailedDates    []string
	AmendableDates []string
	CompletedDates []string
}

// GoalStatus evaluates a goal against the round at the clock's current
// date. When today lies outside the round, TodayStatus is not_applicable.
func (e *Engine) GoalStatus(goal models.Goal, progress []models.GoalProgress, roundStart, roundEnd string) (GoalStatusResult, error) {
	gate, err := e.CanLogToday(goal, progress, roundStart, roundEnd)
	if err != nil {
		return GoalStatusResult{}, err
	}

	result := GoalStatusResult{
		CanLogToday: gate.CanLog,
		Reason:      gate.Reason,
		TodayStatus: models.DayNotApplicable,
	}

	today := e.Today()
	statuses, err := e.ClassifyRange(goal, progress, roundStart, roundEnd)
	if err != nil {
		return GoalStatusResult{}, err
	}
	for _, s := range statuses {
		switch {
		case s.State == models.DayCompleted:
			result.CompletedDates = append(result.CompletedDates, s.Date)
		case s.State == models.DayFailed && s.Date < today:
			result.FailedDates = append(result.FailedDates, s.Date)
		}
		if s.Date == today {
			result.TodayStatus = s.State
		}
	}

	result.AmendableDates, err = e.AmendableDates(goal, progress, roundStart, roundEnd)
	if err != nil {
		return GoalStatusResult{}, err
	}
	return result, nil
}
