// Package service is the calling layer between storage and the schedule
// engine: it loads entities, turns missing rows into not-found errors,
// validates logging and amendments against the engine's verdicts, and
// assembles the summaries the UI renders.
package service

import (
	"context"
	"errors"

	"github.com/jmalherbe/cadence/internal/database"
	"github.com/jmalherbe/cadence/internal/models"
	"github.com/jmalherbe/cadence/internal/schedule"
	"github.com/jmalherbe/cadence/internal/util"
)

// Service coordinates the store and the engine.
type Service struct {
	store  database.Store
	engine *schedule.Engine
}

// New returns a Service. A nil engine gets a system-clock engine.
func New(store database.Store, engine *schedule.Engine) *Service {
	if engine == nil {
		engine = schedule.New(nil)
	}
	return &Service{store: store, engine: engine}
}

// loadGoal fetches a round and one of its goals, mapping missing rows to
// NotFoundError and rejecting goals that belong to a different round.
func (s *Service) loadGoal(ctx context.Context, roundID, goalID int64) (models.Round, models.Goal, error) {
	round, err := s.store.GetRound(ctx, roundID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return models.Round{}, models.Goal{}, &NotFoundError{Entity: "round", ID: roundID}
		}
		return models.Round{}, models.Goal{}, err
	}
	goal, err := s.store.GetGoal(ctx, goalID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return models.Round{}, models.Goal{}, &NotFoundError{Entity: "goal", ID: goalID}
		}
		return models.Round{}, models.Goal{}, err
	}
	if goal.RoundID != round.ID {
		return models.Round{}, models.Goal{}, &NotFoundError{Entity: "goal", ID: goalID}
	}
	return round, goal, nil
}

// GoalStatus evaluates one goal's current standing within its round.
func (s *Service) GoalStatus(ctx context.Context, roundID, goalID int64) (schedule.GoalStatusResult, error) {
	round, goal, err := s.loadGoal(ctx, roundID, goalID)
	if err != nil {
		return schedule.GoalStatusResult{}, err
	}
	progress, err := s.store.ProgressForGoal(ctx, goalID)
	if err != nil {
		return schedule.GoalStatusResult{}, err
	}
	return s.engine.GoalStatus(goal, progress, round.StartDate, round.EndDate)
}

// DayStatuses classifies every date of the round for one goal.
func (s *Service) DayStatuses(ctx context.Context, roundID, goalID int64) ([]models.DayStatus, error) {
	round, goal, err := s.loadGoal(ctx, roundID, goalID)
	if err != nil {
		return nil, err
	}
	progress, err := s.store.ProgressForGoal(ctx, goalID)
	if err != nil {
		return nil, err
	}
	return s.engine.ClassifyRange(goal, progress, round.StartDate, round.EndDate)
}

// RoundSummary assembles the round's day counters and goal summaries.
func (s *Service) RoundSummary(ctx context.Context, roundID int64) (schedule.RoundProgressSummary, error) {
	round, err := s.store.GetRound(ctx, roundID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return schedule.RoundProgressSummary{}, &NotFoundError{Entity: "round", ID: roundID}
		}
		return schedule.RoundProgressSummary{}, err
	}
	goals, err := s.store.GoalsForRound(ctx, roundID)
	if err != nil {
		return schedule.RoundProgressSummary{}, err
	}
	byGoal, err := s.store.ProgressForRound(ctx, roundID)
	if err != nil {
		return schedule.RoundProgressSummary{}, err
	}
	return s.engine.RoundSummary(round, goals, byGoal)
}

// LogToday records progress for today after the engine's gate allows it.
func (s *Service) LogToday(ctx context.Context, roundID, goalID int64, durationSeconds int, notes string) (int64, error) {
	round, goal, err := s.loadGoal(ctx, roundID, goalID)
	if err != nil {
		return 0, err
	}
	progress, err := s.store.ProgressForGoal(ctx, goalID)
	if err != nil {
		return 0, err
	}
	gate, err := s.engine.CanLogToday(goal, progress, round.StartDate, round.EndDate)
	if err != nil {
		return 0, err
	}
	if !gate.CanLog {
		return 0, &NotLoggableError{Reason: gate.Reason, NextAvailableDate: gate.NextAvailableDate}
	}
	entry := models.GoalProgress{
		RoundID:         roundID,
		GoalID:          goalID,
		TargetDate:      s.engine.Today(),
		DurationSeconds: durationSeconds,
	}
	if notes != "" {
		entry.Notes = util.Ptr(notes)
	}
	return s.store.AddProgress(ctx, entry)
}

// AmendDate records a retroactive entry for a missed date. The date must
// be inside the engine's amendable window.
func (s *Service) AmendDate(ctx context.Context, roundID, goalID int64, date string, durationSeconds int, notes string) (int64, error) {
	round, goal, err := s.loadGoal(ctx, roundID, goalID)
	if err != nil {
		return 0, err
	}
	progress, err := s.store.ProgressForGoal(ctx, goalID)
	if err != nil {
		return 0, err
	}
	amendable, err := s.engine.AmendableDates(goal, progress, round.StartDate, round.EndDate)
	if err != nil {
		return 0, err
	}
	allowed := false
	for _, d := range amendable {
		if d == date {
			allowed = true
			break
		}
	}
	if !allowed {
		return 0, &NotAmendableError{Date: date}
	}
	entry := models.GoalProgress{
		RoundID:         roundID,
		GoalID:          goalID,
		TargetDate:      date,
		DurationSeconds: durationSeconds,
		IsAmendment:     true,
	}
	if notes != "" {
		entry.Notes = util.Ptr(notes)
	}
	return s.store.AddProgress(ctx, entry)
}

// ActiveRound returns the round covering today, if any.
func (s *Service) ActiveRound(ctx context.Context) (models.Round, error) {
	round, err := s.store.ActiveRound(ctx, s.engine.Today())
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return models.Round{}, &NotFoundError{Entity: "round"}
		}
		return models.Round{}, err
	}
	return round, nil
}

// Rounds lists every round, newest first.
func (s *Service) Rounds(ctx context.Context) ([]models.Round, error) {
	return s.store.ListRounds(ctx)
}

// CreateRound creates a round and returns it.
func (s *Service) CreateRound(ctx context.Context, title, startDate, endDate string) (models.Round, error) {
	id, err := s.store.CreateRound(ctx, title, startDate, endDate)
	if err != nil {
		return models.Round{}, err
	}
	return s.store.GetRound(ctx, id)
}

// DeleteRound removes a round together with its goals and progress.
func (s *Service) DeleteRound(ctx context.Context, roundID int64) error {
	if err := s.store.DeleteRound(ctx, roundID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return &NotFoundError{Entity: "round", ID: roundID}
		}
		return err
	}
	return nil
}

// Goals lists a round's goals.
func (s *Service) Goals(ctx context.Context, roundID int64) ([]models.Goal, error) {
	return s.store.GoalsForRound(ctx, roundID)
}

// AddGoal creates a goal in a round.
func (s *Service) AddGoal(ctx context.Context, roundID int64, title string, frequency models.Frequency, durationSeconds int) (int64, error) {
	id, err := s.store.AddGoal(ctx, roundID, title, frequency, durationSeconds)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, &NotFoundError{Entity: "round", ID: roundID}
		}
		return 0, err
	}
	return id, nil
}

// UpdateGoal changes a goal's title, frequency, or duration. Past progress
// is left untouched; future classification follows the new frequency.
func (s *Service) UpdateGoal(ctx context.Context, goalID int64, title string, frequency models.Frequency, durationSeconds int) error {
	if err := s.store.UpdateGoal(ctx, goalID, title, frequency, durationSeconds); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return &NotFoundError{Entity: "goal", ID: goalID}
		}
		return err
	}
	return nil
}

// DeleteGoal removes a goal and its progress.
func (s *Service) DeleteGoal(ctx context.Context, goalID int64) error {
	if err := s.store.DeleteGoal(ctx, goalID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return &NotFoundError{Entity: "goal", ID: goalID}
		}
		return err
	}
	return nil
}
