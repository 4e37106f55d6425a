package testutil

import (
	"time"

	"github.com/jmalherbe/cadence/internal/models"
	"github.com/jmalherbe/cadence/internal/util"
)

// RoundBuilder provides a fluent API for creating test rounds.
type RoundBuilder struct {
	round models.Round
}

func NewRound() *RoundBuilder {
	return &RoundBuilder{
		round: models.Round{
			ID:        1,
			Title:     "Test Round",
			StartDate: "2024-01-01",
			EndDate:   "2024-01-31",
			CreatedAt: time.Now(),
		},
	}
}

func (b *RoundBuilder) WithID(id int64) *RoundBuilder {
	b.round.ID = id
	return b
}

func (b *RoundBuilder) WithDates(start, end string) *RoundBuilder {
	b.round.StartDate = start
	b.round.EndDate = end
	return b
}

func (b *RoundBuilder) Build() models.Round {
	return b.round
}

// GoalBuilder provides a fluent API for creating test goals.
type GoalBuilder struct {
	goal models.Goal
}

func NewGoal() *GoalBuilder {
	return &GoalBuilder{
		goal: models.Goal{
			ID:        1,
			RoundID:   1,
			Title:     "Test Goal",
			Frequency: models.Daily{},
			CreatedAt: time.Now(),
		},
	}
}

func (b *GoalBuilder) WithID(id int64) *GoalBuilder {
	b.goal.ID = id
	return b
}

func (b *GoalBuilder) WithRoundID(id int64) *GoalBuilder {
	b.goal.RoundID = id
	return b
}

func (b *GoalBuilder) WithTitle(title string) *GoalBuilder {
	b.goal.Title = title
	return b
}

func (b *GoalBuilder) WithFrequency(f models.Frequency) *GoalBuilder {
	b.goal.Frequency = f
	return b
}

func (b *GoalBuilder) WithDuration(seconds int) *GoalBuilder {
	b.goal.DurationSeconds = seconds
	return b
}

func (b *GoalBuilder) Build() models.Goal {
	return b.goal
}

// ProgressBuilder provides a fluent API for creating test progress entries.
type ProgressBuilder struct {
	progress models.GoalProgress
}

func NewProgress(goalID int64, targetDate string) *ProgressBuilder {
	return &ProgressBuilder{
		progress: models.GoalProgress{
			ID:          1,
			RoundID:     1,
			GoalID:      goalID,
			TargetDate:  targetDate,
			CompletedAt: time.Now(),
		},
	}
}

func (b *ProgressBuilder) WithID(id int64) *ProgressBuilder {
	b.progress.ID = id
	return b
}

func (b *ProgressBuilder) WithDuration(seconds int) *ProgressBuilder {
	b.progress.DurationSeconds = seconds
	return b
}

func (b *ProgressBuilder) WithNotes(notes string) *ProgressBuilder {
	b.progress.Notes = util.Ptr(notes)
	return b
}

func (b *ProgressBuilder) AsAmendment() *ProgressBuilder {
	b.progress.IsAmendment = true
	return b
}

func (b *ProgressBuilder) Build() models.GoalProgress {
	return b.progress
}
