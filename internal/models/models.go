package models

import "time"

// DayState enumerates the possible states of a single tracked day.
type DayState string

const (
	DayCompleted     DayState = "completed"
	DayFailed        DayState = "failed"
	DayPending       DayState = "pending"
	DayNotApplicable DayState = "not_applicable"
)

// Round represents a bounded tracking window. Dates are inclusive local
// calendar dates in YYYY-MM-DD form; EndDate is never before StartDate.
type Round struct {
	ID        int64
	Title     string
	StartDate string
	EndDate   string
	CreatedAt time.Time
}

// Goal represents a recurring target tracked within a round.
type Goal struct {
	ID              int64
	RoundID         int64
	Title           string
	Frequency       Frequency
	DurationSeconds int
	CreatedAt       time.Time
}

// GoalProgress records one completed occurrence of a goal. TargetDate is
// the calendar date the entry counts toward, which differs from
// CompletedAt when the entry is a retroactive amendment.
type GoalProgress struct {
	ID              int64
	RoundID         int64
	GoalID          int64
	TargetDate      string
	CompletedAt     time.Time
	DurationSeconds int
	Notes           *string
	IsAmendment     bool
}

// DayStatus is the computed state of one date for one goal. It is derived
// on demand and never persisted.
type DayStatus struct {
	Date       string
	State      DayState
	ProgressID *int64
}
