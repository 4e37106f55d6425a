package schedule

import (
	"time"

	"github.com/jmalherbe/cadence/internal/models"
)

// Applicable reports whether a weekday is in scope for a frequency. Daily
// goals cover every day; times-per-week goals accept any day, since the
// quota is judged per week rather than per date; specific-days goals cover
// only their listed weekdays.
func Applicable(day time.Weekday, f models.Frequency) bool {
	switch f := f.(type) {
	case models.Daily:
		return true
	case models.TimesPerWeek:
		return true
	case models.SpecificDays:
		return f.Contains(day)
	}
	// Frequency is sealed; no fourth variant can exist.
	return false
}

// IsApplicable reports whether a date string is in scope for a frequency.
func IsApplicable(date string, f models.Frequency) (bool, error) {
	day, err := DayOfWeek(date)
	if err != nil {
		return false, err
	}
	return Applicable(day, f), nil
}
