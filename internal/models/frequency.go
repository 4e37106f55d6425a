package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Frequency is the recurrence rule of a goal. It is a closed set: Daily,
// TimesPerWeek, or SpecificDays. Call sites switch over the three concrete
// types; there is no catch-all variant.
type Frequency interface {
	// Rule returns the storage encoding: "daily", "weekly:N", or
	// "days:mon,tue,...". ParseFrequency is its inverse.
	Rule() string

	isFrequency()
}

// Daily means every calendar day counts.
type Daily struct{}

// TimesPerWeek means Count completions are expected within each
// Monday-to-Sunday week; any weekday may contribute.
type TimesPerWeek struct {
	Count int
}

// SpecificDays means only the listed weekdays count. The set may be empty.
type SpecificDays struct {
	Days []time.Weekday
}

func (Daily) isFrequency()        {}
func (TimesPerWeek) isFrequency() {}
func (SpecificDays) isFrequency() {}

func (Daily) Rule() string { return "daily" }

func (f TimesPerWeek) Rule() string {
	return fmt.Sprintf("weekly:%d", f.Count)
}

func (f SpecificDays) Rule() string {
	days := make([]time.Weekday, len(f.Days))
	copy(days, f.Days)
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, weekdayNames[d])
	}
	return "days:" + strings.Join(parts, ",")
}

var weekdayNames = map[time.Weekday]string{
	time.Sunday:    "sun",
	time.Monday:    "mon",
	time.Tuesday:   "tue",
	time.Wednesday: "wed",
	time.Thursday:  "thu",
	time.Friday:    "fri",
	time.Saturday:  "sat",
}

var weekdaysByName = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// Contains reports whether the weekday is part of the set.
func (f SpecificDays) Contains(d time.Weekday) bool {
	for _, day := range f.Days {
		if day == d {
			return true
		}
	}
	return false
}

// ParseFrequency decodes a stored rule string. Unknown rules are an error,
// never a silent fallback.
func ParseFrequency(rule string) (Frequency, error) {
	rule = strings.ToLower(strings.TrimSpace(rule))
	switch {
	case rule == "daily":
		return Daily{}, nil
	case strings.HasPrefix(rule, "weekly:"):
		count, err := strconv.Atoi(strings.TrimPrefix(rule, "weekly:"))
		if err != nil {
			return nil, fmt.Errorf("parse frequency %q: %w", rule, err)
		}
		if count < 1 || count > 7 {
			return nil, fmt.Errorf("parse frequency %q: count must be 1-7", rule)
		}
		return TimesPerWeek{Count: count}, nil
	case strings.HasPrefix(rule, "days:"):
		list := strings.TrimPrefix(rule, "days:")
		if strings.TrimSpace(list) == "" {
			return SpecificDays{}, nil
		}
		seen := make(map[time.Weekday]bool)
		var days []time.Weekday
		for _, part := range strings.Split(list, ",") {
			day, ok := weekdaysByName[strings.TrimSpace(part)]
			if !ok {
				return nil, fmt.Errorf("parse frequency %q: unknown weekday %q", rule, part)
			}
			if seen[day] {
				continue
			}
			seen[day] = true
			days = append(days, day)
		}
		sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
		return SpecificDays{Days: days}, nil
	default:
		return nil, fmt.Errorf("unknown frequency rule %q", rule)
	}
}

// Describe returns a short human-readable label for display.
func Describe(f Frequency) string {
	switch f := f.(type) {
	case Daily:
		return "every day"
	case TimesPerWeek:
		if f.Count == 1 {
			return "once a week"
		}
		return fmt.Sprintf("%d times a week", f.Count)
	case SpecificDays:
		if len(f.Days) == 0 {
			return "no days"
		}
		parts := make([]string, 0, len(f.Days))
		for _, d := range f.Days {
			parts = append(parts, weekdayNames[d])
		}
		return strings.Join(parts, "/")
	}
	return ""
}
