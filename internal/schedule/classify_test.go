package schedule

import (
	"testing"
	"time"

	"github.com/jmalherbe/cadence/internal/models"
)

func entry(id int64, goalID int64, targetDate string) models.GoalProgress {
	return models.GoalProgress{
		ID:          id,
		RoundID:     1,
		GoalID:      goalID,
		TargetDate:  targetDate,
		CompletedAt: time.Now(),
	}
}

func statesByDate(statuses []models.DayStatus) map[string]models.DayState {
	out := make(map[string]models.DayState, len(statuses))
	for _, s := range statuses {
		out[s.Date] = s.State
	}
	return out
}

func TestClassifyDailyNoProgress(t *testing.T) {
	eng := New(FixedDate("2024-01-15"))
	goal := models.Goal{ID: 1, Frequency: models.Daily{}}

	statuses, err := eng.ClassifyRange(goal, nil, "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("ClassifyRange failed: %v", err)
	}
	if len(statuses) != 31 {
		t.Fatalf("expected 31 statuses, got %d", len(statuses))
	}
	for _, s := range statuses {
		if s.Date < "2024-01-15" && s.State != models.DayFailed {
			t.Fatalf("%s: got %s, want failed", s.Date, s.State)
		}
		if s.Date >= "2024-01-15" && s.State != models.DayPending {
			t.Fatalf("%s: got %s, want pending", s.Date, s.State)
		}
	}
}

func TestClassifyCompletedCarriesProgressID(t *testing.T) {
	eng := New(FixedDate("2024-01-15"))
	goal := models.Goal{ID: 1, Frequency: models.Daily{}}
	progress := []models.GoalProgress{entry(42, 1, "2024-01-10")}

	statuses, err := eng.ClassifyRange(goal, progress, "2024-01-10", "2024-01-10")
	if err != nil {
		t.Fatalf("ClassifyRange failed: %v", err)
	}
	if statuses[0].State != models.DayCompleted {
		t.Fatalf("got %s, want completed", statuses[0].State)
	}
	if statuses[0].ProgressID == nil || *statuses[0].ProgressID != 42 {
		t.Fatalf("expected progress id 42, got %v", statuses[0].ProgressID)
	}
}

func TestClassifySpecificDays(t *testing.T) {
	eng := New(FixedDate("2024-01-15"))
	goal := models.Goal{ID: 1, Frequency: models.SpecificDays{Days: []time.Weekday{time.Tuesday, time.Thursday}}}
	// Tuesday Jan 2 logged; Thursday Jan 4 missed.
	progress := []models.GoalProgress{entry(7, 1, "2024-01-02")}

	statuses, err := eng.ClassifyRange(goal, progress, "2024-01-01", "2024-01-07")
	if err != nil {
		t.Fatalf("ClassifyRange failed: %v", err)
	}
	states := statesByDate(statuses)
	if states["2024-01-01"] != models.DayNotApplicable {
		t.Fatalf("Monday: got %s, want not_applicable", states["2024-01-01"])
	}
	if states["2024-01-02"] != models.DayCompleted {
		t.Fatalf("Tuesday: got %s, want completed", states["2024-01-02"])
	}
	if states["2024-01-04"] != models.DayFailed {
		t.Fatalf("Thursday: got %s, want failed", states["2024-01-04"])
	}
	if states["2024-01-06"] != models.DayNotApplicable {
		t.Fatalf("Saturday: got %s, want not_applicable", states["2024-01-06"])
	}
}

func TestClassifyTimesPerWeekIsWeekScoped(t *testing.T) {
	// 2024-01-01 is a Monday, so the round aligns with ISO weeks.
	eng := New(FixedDate("2024-01-15"))
	goal := models.Goal{ID: 1, Frequency: models.TimesPerWeek{Count: 2}}
	progress := []models.GoalProgress{
		entry(1, 1, "2024-01-02"),
		entry(2, 1, "2024-01-03"),
	}

	statuses, err := eng.ClassifyRange(goal, progress, "2024-01-01", "2024-01-21")
	if err != nil {
		t.Fatalf("ClassifyRange failed: %v", err)
	}
	states := statesByDate(statuses)

	// Week one met its quota: logged dates completed, the rest pending.
	if states["2024-01-02"] != models.DayCompleted || states["2024-01-03"] != models.DayCompleted {
		t.Fatalf("expected logged dates completed, got %s / %s", states["2024-01-02"], states["2024-01-03"])
	}
	for _, date := range []string{"2024-01-01", "2024-01-04", "2024-01-05", "2024-01-06", "2024-01-07"} {
		if states[date] != models.DayPending {
			t.Fatalf("%s in quota-met week: got %s, want pending", date, states[date])
		}
	}

	// Week two elapsed with zero entries: every day failed.
	for _, date := range []string{"2024-01-08", "2024-01-09", "2024-01-10", "2024-01-11", "2024-01-12", "2024-01-13", "2024-01-14"} {
		if states[date] != models.DayFailed {
			t.Fatalf("%s in missed week: got %s, want failed", date, states[date])
		}
	}

	// Week three is still running: nothing fails yet.
	for _, date := range []string{"2024-01-15", "2024-01-16", "2024-01-21"} {
		if states[date] != models.DayPending {
			t.Fatalf("%s in current week: got %s, want pending", date, states[date])
		}
	}
}

func TestClassifyTimesPerWeekPartialWeekUnderQuotaStaysPending(t *testing.T) {
	// Week of Jan 15 has one entry and has not ended; staying under quota
	// must not fail any day yet.
	eng := New(FixedDate("2024-01-17"))
	goal := models.Goal{ID: 1, Frequency: models.TimesPerWeek{Count: 3}}
	progress := []models.GoalProgress{entry(1, 1, "2024-01-15")}

	statuses, err := eng.ClassifyRange(goal, progress, "2024-01-15", "2024-01-21")
	if err != nil {
		t.Fatalf("ClassifyRange failed: %v", err)
	}
	states := statesByDate(statuses)
	if states["2024-01-15"] != models.DayCompleted {
		t.Fatalf("logged date: got %s, want completed", states["2024-01-15"])
	}
	for _, date := range []string{"2024-01-16", "2024-01-17", "2024-01-18"} {
		if states[date] != models.DayPending {
			t.Fatalf("%s: got %s, want pending", date, states[date])
		}
	}
}

func TestClassifyRangeInvertedBoundsError(t *testing.T) {
	eng := New(FixedDate("2024-01-15"))
	goal := models.Goal{ID: 1, Frequency: models.Daily{}}
	if _, err := eng.ClassifyRange(goal, nil, "2024-01-10", "2024-01-01"); err == nil {
		t.Fatalf("expected error for inverted range")
	}
}
