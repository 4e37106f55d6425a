package schedule

import (
	"math"

	"github.com/jmalherbe/cadence/internal/models"
)

// GoalProgressSummary aggregates one goal's standing for display.
type GoalProgressSummary struct {
	GoalID               int64
	Title                string
	CompletedCount       int
	ExpectedCount        int
	CompletionPercentage float64
	FailedCount          int
	CanLogToday          bool
	AmendableDates       []string
	TotalDurationSeconds int
}

// RoundProgressSummary aggregates a round's day counters plus the summary
// of every goal in it.
type RoundProgressSummary struct {
	RoundID       int64
	TotalDays     int
	DaysElapsed   int
	DaysRemaining int
	GoalSummaries []GoalProgressSummary
}

// elapsedDays returns how many round days have begun by today: day one is
// the start date itself. Zero before the round starts; not clamped at the
// round end, callers clamp where the round bounds matter.
func (e *Engine) elapsedDays(startDate string) int {
	elapsed := DaysBetween(startDate, e.Today()) + 1
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// expectedCount computes how many completions the frequency demands over
// the first `elapsed` days of the round. A times-per-week goal expects its
// flat weekly quota during its first week and a prorated floor afterwards.
func expectedCount(f models.Frequency, startDate string, elapsed int) (int, error) {
	if elapsed <= 0 {
		return 0, nil
	}
	switch f := f.(type) {
	case models.Daily:
		return elapsed, nil
	case models.SpecificDays:
		endDate, err := AddDays(startDate, elapsed-1)
		if err != nil {
			return 0, err
		}
		dates, err := DateRange(startDate, endDate)
		if err != nil {
			return 0, err
		}
		count := 0
		for _, date := range dates {
			day, err := DayOfWeek(date)
			if err != nil {
				return 0, err
			}
			if f.Contains(day) {
				count++
			}
		}
		return count, nil
	case models.TimesPerWeek:
		if elapsed <= 7 {
			return f.Count, nil
		}
		return elapsed * f.Count / 7, nil
	}
	return 0, nil
}

// GoalSummary rolls up expected/completed counts, the capped completion
// percentage, failure count, loggability, and the amendable window.
func (e *Engine) GoalSummary(goal models.Goal, progress []models.GoalProgress, roundStart, roundEnd string) (GoalProgressSummary, error) {
	elapsed := e.elapsedDays(roundStart)

	expected, err := expectedCount(goal.Frequency, roundStart, elapsed)
	if err != nil {
		return GoalProgressSummary{}, err
	}

	completedDates := make(map[string]bool, len(progress))
	totalDuration := 0
	for _, p := range progress {
		completedDates[p.TargetDate] = true
		totalDuration += p.DurationSeconds
	}
	completed := len(completedDates)

	percentage := 0.0
	if expected > 0 {
		percentage = math.Min(100, float64(completed)/float64(expected)*100)
	}

	statuses, err := e.ClassifyRange(goal, progress, roundStart, roundEnd)
	if err != nil {
		return GoalProgressSummary{}, err
	}
	failedCount := 0
	for _, s := range statuses {
		if s.State == models.DayFailed {
			failedCount++
		}
	}

	gate, err := e.CanLogToday(goal, progress, roundStart, roundEnd)
	if err != nil {
		return GoalProgressSummary{}, err
	}
	amendable, err := e.AmendableDates(goal, progress, roundStart, roundEnd)
	if err != nil {
		return GoalProgressSummary{}, err
	}

	return GoalProgressSummary{
		GoalID:               goal.ID,
		Title:                goal.Title,
		CompletedCount:       completed,
		ExpectedCount:        expected,
		CompletionPercentage: percentage,
		FailedCount:          failedCount,
		CanLogToday:          gate.CanLog,
		AmendableDates:       amendable,
		TotalDurationSeconds: totalDuration,
	}, nil
}

// RoundSummary computes the round's day counters and one goal summary per
// goal. progressByGoal maps goal ID to that goal's entries.
func (e *Engine) RoundSummary(round models.Round, goals []models.Goal, progressByGoal map[int64][]models.GoalProgress) (RoundProgressSummary, error) {
	totalDays := DaysBetween(round.StartDate, round.EndDate) + 1
	elapsed := e.elapsedDays(round.StartDate)
	if elapsed > totalDays {
		elapsed = totalDays
	}

	summary := RoundProgressSummary{
		RoundID:       round.ID,
		TotalDays:     totalDays,
		DaysElapsed:   elapsed,
		DaysRemaining: totalDays - elapsed,
	}
	for _, goal := range goals {
		gs, err := e.GoalSummary(goal, progressByGoal[goal.ID], round.StartDate, round.EndDate)
		if err != nil {
			return RoundProgressSummary{}, err
		}
		summary.GoalSummaries = append(summary.GoalSummaries, gs)
	}
	return summary, nil
}
