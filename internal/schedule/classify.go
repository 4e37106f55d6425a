package schedule

import (
	"github.com/jmalherbe/cadence/internal/models"
)

// weekGroup is a run of consecutive dates belonging to one Monday-start
// week. Start and End are the week's Monday and Sunday, which may extend
// past the dates actually present in the range.
type weekGroup struct {
	Start string
	End   string
	Dates []string
}

// groupByWeek partitions an ordered date sequence into Monday-start weeks.
func groupByWeek(dates []string) ([]weekGroup, error) {
	var groups []weekGroup
	for _, date := range dates {
		start, end, err := WeekBoundaries(date)
		if err != nil {
			return nil, err
		}
		if n := len(groups); n > 0 && groups[n-1].Start == start {
			groups[n-1].Dates = append(groups[n-1].Dates, date)
			continue
		}
		groups = append(groups, weekGroup{Start: start, End: end, Dates: []string{date}})
	}
	return groups, nil
}

// ClassifyRange computes one DayStatus per date in [start, end] for the
// goal. Daily and specific-days goals are judged date by date; a
// times-per-week goal is judged week by week: unmatched dates in a week
// fail only once the week has fully elapsed short of its quota.
func (e *Engine) ClassifyRange(goal models.Goal, progress []models.GoalProgress, start, end string) ([]models.DayStatus, error) {
	dates, err := DateRange(start, end)
	if err != nil {
		return nil, err
	}
	today := e.Today()
	byDate := progressByDate(progress)

	if tpw, ok := goal.Frequency.(models.TimesPerWeek); ok {
		return classifyWeekly(dates, byDate, progress, tpw.Count, today)
	}

	statuses := make([]models.DayStatus, 0, len(dates))
	for _, date := range dates {
		day, err := DayOfWeek(date)
		if err != nil {
			return nil, err
		}
		status := models.DayStatus{Date: date}
		switch {
		case !Applicable(day, goal.Frequency):
			status.State = models.DayNotApplicable
		case hasEntry(byDate, date):
			entry := byDate[date]
			status.State = models.DayCompleted
			status.ProgressID = &entry.ID
		case date < today:
			status.State = models.DayFailed
		default:
			status.State = models.DayPending
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

func classifyWeekly(dates []string, byDate map[string]models.GoalProgress, progress []models.GoalProgress, quota int, today string) ([]models.DayStatus, error) {
	groups, err := groupByWeek(dates)
	if err != nil {
		return nil, err
	}
	statuses := make([]models.DayStatus, 0, len(dates))
	for _, week := range groups {
		weekOver := week.End < today
		weekCount := countInWeek(progress, week.Start, week.End)
		for _, date := range week.Dates {
			status := models.DayStatus{Date: date}
			switch {
			case hasEntry(byDate, date):
				entry := byDate[date]
				status.State = models.DayCompleted
				status.ProgressID = &entry.ID
			case weekOver && weekCount < quota:
				// Week-level judgment: the elapsed week missed its
				// quota, so every unmatched day in it failed.
				status.State = models.DayFailed
			default:
				status.State = models.DayPending
			}
			statuses = append(statuses, status)
		}
	}
	return statuses, nil
}

func hasEntry(byDate map[string]models.GoalProgress, date string) bool {
	_, ok := byDate[date]
	return ok
}
