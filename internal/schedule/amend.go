package schedule

import (
	"github.com/jmalherbe/cadence/internal/models"
)

// AmendableDates lists the missed dates still eligible for a retroactive
// entry: failed dates from the round start through yesterday (clamped to
// the round end). Today and future dates are never amendable. For a
// times-per-week goal each failed week collapses to one representative
// date, the last elapsed day of that week, since the deficit belongs to
// the week rather than to any particular day.
func (e *Engine) AmendableDates(goal models.Goal, progress []models.GoalProgress, roundStart, roundEnd string) ([]string, error) {
	yesterday, err := AddDays(e.Today(), -1)
	if err != nil {
		return nil, err
	}
	cutoff := yesterday
	if roundEnd < cutoff {
		cutoff = roundEnd
	}
	if cutoff < roundStart {
		// Nothing has elapsed yet; the window is legitimately empty.
		return nil, nil
	}

	statuses, err := e.ClassifyRange(goal, progress, roundStart, cutoff)
	if err != nil {
		return nil, err
	}

	if _, weekly := goal.Frequency.(models.TimesPerWeek); weekly {
		return failedWeekRepresentatives(statuses)
	}

	var dates []string
	for _, s := range statuses {
		if s.State == models.DayFailed {
			dates = append(dates, s.Date)
		}
	}
	return dates, nil
}

// failedWeekRepresentatives reduces week-scoped failures to one date per
// failed week: the last failed date of that week, so the representative
// never lands on a day that already has an entry.
func failedWeekRepresentatives(statuses []models.DayStatus) ([]string, error) {
	dates := make([]string, 0, len(statuses))
	for _, s := range statuses {
		dates = append(dates, s.Date)
	}
	groups, err := groupByWeek(dates)
	if err != nil {
		return nil, err
	}
	failed := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		if s.State == models.DayFailed {
			failed[s.Date] = true
		}
	}
	var reps []string
	for _, week := range groups {
		for i := len(week.Dates) - 1; i >= 0; i-- {
			if failed[week.Dates[i]] {
				reps = append(reps, week.Dates[i])
				break
			}
		}
	}
	return reps, nil
}
