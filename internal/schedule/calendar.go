// Package schedule is the date and frequency engine: it decides which
// calendar dates count for a goal, classifies each day of a round, gates
// progress logging, and rolls up per-goal and per-round summaries. It is
// pure computation over already-loaded values; the current date comes from
// an injected Clock and nothing here touches storage.
package schedule

import (
	"fmt"
	"time"
)

// DateLayout is the canonical YYYY-MM-DD encoding used for every calendar
// date in the system. The encoding sorts lexicographically in date order,
// so date strings are compared directly with < and >.
const DateLayout = "2006-01-02"

// FormatDate renders a time as a local calendar date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a calendar date string to local midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// DayOfWeek returns the weekday of a date string (Sunday=0 .. Saturday=6).
func DayOfWeek(date string) (time.Weekday, error) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	return t.Weekday(), nil
}

// AddDays shifts a date string by n calendar days.
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

// WeekBoundaries returns the Monday and Sunday (inclusive) of the week
// containing the given date.
func WeekBoundaries(date string) (string, string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", "", err
	}
	// Monday-start: shift Sunday (0) back six days, others back wd-1.
	back := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		back = 6
	}
	monday := t.AddDate(0, 0, -back)
	sunday := monday.AddDate(0, 0, 6)
	return FormatDate(monday), FormatDate(sunday), nil
}

// DateRange returns the inclusive ordered sequence of date strings from
// start to end. Inverted bounds are an error, never a silent empty result.
func DateRange(start, end string) ([]string, error) {
	from, err := ParseDate(start)
	if err != nil {
		return nil, err
	}
	until, err := ParseDate(end)
	if err != nil {
		return nil, err
	}
	if from.After(until) {
		return nil, fmt.Errorf("date range %s..%s: start after end", start, end)
	}
	dates := make([]string, 0, DaysBetween(start, end)+1)
	for t := from; !t.After(until); t = t.AddDate(0, 0, 1) {
		dates = append(dates, FormatDate(t))
	}
	return dates, nil
}

// DaysBetween returns the whole-day distance from a to b (negative when b
// precedes a). Both arguments must be valid date strings; invalid input
// yields zero, so callers validate first.
func DaysBetween(a, b string) int {
	at, err := ParseDate(a)
	if err != nil {
		return 0
	}
	bt, err := ParseDate(b)
	if err != nil {
		return 0
	}
	// Re-anchor both to UTC midnight so DST transitions cannot skew the
	// 24-hour division.
	au := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(bt.Year(), bt.Month(), bt.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}
