package schedule

import "time"

// Clock supplies the current moment. Every engine entry point reads "now"
// through it, so tests can pin the date and replay day or week boundaries.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock { return systemClock{} }

type fixedClock struct {
	at time.Time
}

func (c fixedClock) Now() time.Time { return c.at }

// FixedClock returns a Clock frozen at the given moment.
func FixedClock(at time.Time) Clock { return fixedClock{at: at} }

// FixedDate returns a Clock frozen at local midnight of a date string.
// It panics on malformed input; intended for tests and fixtures.
func FixedDate(date string) Clock {
	t, err := ParseDate(date)
	if err != nil {
		panic(err)
	}
	return fixedClock{at: t}
}
