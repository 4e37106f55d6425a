package schedule

import (
	"fmt"

	"github.com/jmalherbe/cadence/internal/models"
)

// Refusal reasons surfaced by CanLogToday. The scheduling reason for
// specific-days goals is built dynamically and names the allowed days.
const (
	ReasonRoundNotStarted = "round has not started"
	ReasonRoundEnded      = "round has ended"
	ReasonAlreadyLogged   = "already logged today"
	ReasonQuotaMet        = "weekly quota already met"
	ReasonWeekQuotaMet    = "weekly quota met for this week"
)

// CanLogResult answers "may the user record progress right now". Empty
// string fields mean absent: no refusal reason, or no next eligible date
// left inside the round.
type CanLogResult struct {
	CanLog            bool
	Reason            string
	NextAvailableDate string
	FailedDates       []string
}

// CanLogToday runs the ordered gate: round bounds, applicability, an
// existing entry for today, then the weekly quota. The first matching
// refusal wins. When logging is allowed, the failed dates strictly before
// today ride along for display.
func (e *Engine) CanLogToday(goal models.Goal, progress []models.GoalProgress, roundStart, roundEnd string) (CanLogResult, error) {
	today := e.Today()

	if today < roundStart {
		return CanLogResult{Reason: ReasonRoundNotStarted, NextAvailableDate: roundStart}, nil
	}
	if today > roundEnd {
		return CanLogResult{Reason: ReasonRoundEnded}, nil
	}

	day, err := DayOfWeek(today)
	if err != nil {
		return CanLogResult{}, err
	}
	if !Applicable(day, goal.Frequency) {
		next, err := e.nextApplicableDate(goal.Frequency, today, roundEnd)
		if err != nil {
			return CanLogResult{}, err
		}
		return CanLogResult{Reason: notScheduledReason(goal.Frequency), NextAvailableDate: next}, nil
	}

	byDate := progressByDate(progress)
	tpw, weekly := goal.Frequency.(models.TimesPerWeek)
	var weekCount int
	if weekly {
		weekStart, weekEnd, err := WeekBoundaries(today)
		if err != nil {
			return CanLogResult{}, err
		}
		weekCount = countInWeek(progress, weekStart, weekEnd)
	}

	if hasEntry(byDate, today) {
		if weekly {
			if weekCount >= tpw.Count {
				return CanLogResult{Reason: ReasonQuotaMet}, nil
			}
			next, err := e.nextApplicableDate(goal.Frequency, today, roundEnd)
			if err != nil {
				return CanLogResult{}, err
			}
			return CanLogResult{Reason: ReasonAlreadyLogged, NextAvailableDate: next}, nil
		}
		return CanLogResult{Reason: ReasonAlreadyLogged}, nil
	}

	if weekly && weekCount >= tpw.Count {
		return CanLogResult{Reason: ReasonWeekQuotaMet}, nil
	}

	failed, err := e.failedBefore(goal, progress, roundStart, roundEnd, today)
	if err != nil {
		return CanLogResult{}, err
	}
	return CanLogResult{CanLog: true, FailedDates: failed}, nil
}

// nextApplicableDate scans forward from the day after `after` to the round
// end and returns the first in-scope date, or "" when none remains.
func (e *Engine) nextApplicableDate(f models.Frequency, after, roundEnd string) (string, error) {
	date, err := AddDays(after, 1)
	if err != nil {
		return "", err
	}
	for date <= roundEnd {
		day, err := DayOfWeek(date)
		if err != nil {
			return "", err
		}
		if Applicable(day, f) {
			return date, nil
		}
		if date, err = AddDays(date, 1); err != nil {
			return "", err
		}
	}
	return "", nil
}

// failedBefore lists the failed dates of the round strictly before today.
func (e *Engine) failedBefore(goal models.Goal, progress []models.GoalProgress, roundStart, roundEnd, today string) ([]string, error) {
	statuses, err := e.ClassifyRange(goal, progress, roundStart, roundEnd)
	if err != nil {
		return nil, err
	}
	var failed []string
	for _, s := range statuses {
		if s.State == models.DayFailed && s.Date < today {
			failed = append(failed, s.Date)
		}
	}
	return failed, nil
}

func notScheduledReason(f models.Frequency) string {
	if sd, ok := f.(models.SpecificDays); ok {
		if len(sd.Days) == 0 {
			return "goal has no scheduled days"
		}
		return fmt.Sprintf("only scheduled on %s", models.Describe(sd))
	}
	return "not scheduled today"
}
