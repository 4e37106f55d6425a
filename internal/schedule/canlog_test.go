package schedule

import (
	"strings"
	"testing"
	"time"

	"github.com/jmalherbe/cadence/internal/models"
)

func TestCanLogBeforeRoundStarts(t *testing.T) {
	goal := models.Goal{ID: 1, Frequency: models.Daily{}}
	for _, today := range []string{"2029-06-01", "2029-12-31"} {
		eng := New(FixedDate(today))
		res, err := eng.CanLogToday(goal, nil, "2030-01-01", "2030-01-31")
		if err != nil {
			t.Fatalf("CanLogToday failed: %v", err)
		}
		if res.CanLog {
			t.Fatalf("clock %s: expected refusal before round start", today)
		}
		if res.Reason != ReasonRoundNotStarted {
			t.Fatalf("clock %s: got reason %q", today, res.Reason)
		}
		if res.NextAvailableDate != "2030-01-01" {
			t.Fatalf("clock %s: next = %q, want round start", today, res.NextAvailableDate)
		}
	}
}

func TestCanLogAfterRoundEnds(t *testing.T) {
	eng := New(FixedDate("2024-02-01"))
	goal := models.Goal{ID: 1, Frequency: models.Daily{}}
	res, err := eng.CanLogToday(goal, nil, "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("CanLogToday failed: %v", err)
	}
	if res.CanLog || res.Reason != ReasonRoundEnded {
		t.Fatalf("got %+v, want round-ended refusal", res)
	}
	if res.NextAvailableDate != "" {
		t.Fatalf("no next date should remain after the round, got %q", res.NextAvailableDate)
	}
}

func TestCanLogNotScheduledToday(t *testing.T) {
	// 2024-01-15 is a Monday; the goal runs Tuesdays and Thursdays.
	eng := New(FixedDate("2024-01-15"))
	goal := models.Goal{ID: 1, Frequency: models.SpecificDays{Days: []time.Weekday{time.Tuesday, time.Thursday}}}
	res, err := eng.CanLogToday(goal, nil, "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("CanLogToday failed: %v", err)
	}
	if res.CanLog {
		t.Fatalf("expected refusal on an off day")
	}
	if !strings.Contains(res.Reason, "tue") || !strings.Contains(res.Reason, "thu") {
		t.Fatalf("reason should name the scheduled days, got %q", res.Reason)
	}
	if res.NextAvailableDate != "2024-01-16" {
		t.Fatalf("next = %q, want the following Tuesday", res.NextAvailableDate)
	}
}

func TestCanLogNoNextDateWhenScheduleExhausted(t *testing.T) {
	// Round ends Friday; the goal only runs Saturdays; today is Thursday.
	eng := New(FixedDate("2024-01-18"))
	goal := models.Goal{ID: 1, Frequency: models.SpecificDays{Days: []time.Weekday{time.Saturday}}}
	res, err := eng.CanLogToday(goal, nil, "2024-01-15", "2024-01-19")
	if err != nil {
		t.Fatalf("CanLogToday failed: %v", err)
	}
	if res.CanLog {
		t.Fatalf("expected refusal on an off day")
	}
	if res.NextAvailableDate != "" {
		t.Fatalf("no applicable date remains, got next %q", res.NextAvailableDate)
	}
}

func TestCanLogAlreadyLoggedDaily(t *testing.T) {
	eng := New(FixedDate("2024-01-15"))
	goal := models.Goal{ID: 1, Frequency: models.Daily{}}
	progress := []models.GoalProgress{entry(1, 1, "2024-01-15")}
	res, err := eng.CanLogToday(goal, progress, "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("CanLogToday failed: %v", err)
	}
	if res.CanLog || res.Reason != ReasonAlreadyLogged {
		t.Fatalf("got %+v, want already-logged refusal", res)
	}
	if res.NextAvailableDate != "" {
		t.Fatalf("daily goals compute no next date here, got %q", res.NextAvailableDate)
	}
}

func TestCanLogWeeklyQuotaMetExcludesWholeWeek(t *testing.T) {
	goal := models.Goal{ID: 1, Frequency: models.TimesPerWeek{Count: 3}}
	progress := []models.GoalProgress{
		entry(1, 1, "2024-01-15"),
		entry(2, 1, "2024-01-16"),
		entry(3, 1, "2024-01-17"),
	}
	// Quota filled by Wednesday; every later day of that week refuses.
	for _, today := range []string{"2024-01-18", "2024-01-19", "2024-01-20", "2024-01-21"} {
		eng := New(FixedDate(today))
		res, err := eng.CanLogToday(goal, progress, "2024-01-01", "2024-01-31")
		if err != nil {
			t.Fatalf("clock %s: CanLogToday failed: %v", today, err)
		}
		if res.CanLog {
			t.Fatalf("clock %s: expected refusal, quota is met", today)
		}
		if res.Reason != ReasonWeekQuotaMet {
			t.Fatalf("clock %s: got reason %q", today, res.Reason)
		}
	}
	// On a logged day itself the refusal is the stricter quota message.
	eng := New(FixedDate("2024-01-17"))
	res, err := eng.CanLogToday(goal, progress, "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("CanLogToday failed: %v", err)
	}
	if res.Reason != ReasonQuotaMet {
		t.Fatalf("got reason %q, want %q", res.Reason, ReasonQuotaMet)
	}
}

func TestCanLogWeeklyAlreadyLoggedUnderQuota(t *testing.T) {
	eng := New(FixedDate("2024-01-15"))
	goal := models.Goal{ID: 1, Frequency: models.TimesPerWeek{Count: 3}}
	progress := []models.GoalProgress{entry(1, 1, "2024-01-15")}
	res, err := eng.CanLogToday(goal, progress, "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("CanLogToday failed: %v", err)
	}
	if res.CanLog || res.Reason != ReasonAlreadyLogged {
		t.Fatalf("got %+v, want already-logged refusal", res)
	}
	if res.NextAvailableDate != "2024-01-16" {
		t.Fatalf("next = %q, want tomorrow while quota is open", res.NextAvailableDate)
	}
}

func TestCanLogAllowedReportsEarlierMisses(t *testing.T) {
	eng := New(FixedDate("2024-01-05"))
	goal := models.Goal{ID: 1, Frequency: models.Daily{}}
	progress := []models.GoalProgress{entry(1, 1, "2024-01-02")}
	res, err := eng.CanLogToday(goal, progress, "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("CanLogToday failed: %v", err)
	}
	if !res.CanLog {
		t.Fatalf("expected logging to be allowed, got reason %q", res.Reason)
	}
	want := []string{"2024-01-01", "2024-01-03", "2024-01-04"}
	if len(res.FailedDates) != len(want) {
		t.Fatalf("failed dates = %v, want %v", res.FailedDates, want)
	}
	for i, date := range want {
		if res.FailedDates[i] != date {
			t.Fatalf("failed dates = %v, want %v", res.FailedDates, want)
		}
	}
}
