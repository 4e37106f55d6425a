package service

import "fmt"

// NotFoundError reports that a referenced round or goal does not exist.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// NotLoggableError reports a refusal from the can-log gate, carrying the
// gate's reason and, when one exists, the next eligible date.
type NotLoggableError struct {
	Reason            string
	NextAvailableDate string
}

func (e *NotLoggableError) Error() string {
	if e.NextAvailableDate != "" {
		return fmt.Sprintf("cannot log today: %s (next: %s)", e.Reason, e.NextAvailableDate)
	}
	return fmt.Sprintf("cannot log today: %s", e.Reason)
}

// NotAmendableError reports an amendment attempt outside the amendable
// window.
type NotAmendableError struct {
	Date string
}

func (e *NotAmendableError) Error() string {
	return fmt.Sprintf("date %s is not amendable", e.Date)
}
