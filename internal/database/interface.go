package database

import (
	"context"

	"github.com/jmalherbe/cadence/internal/models"
)

// RoundStore defines round-related database operations.
type RoundStore interface {
	CreateRound(ctx context.Context, title, startDate, endDate string) (int64, error)
	GetRound(ctx context.Context, id int64) (models.Round, error)
	ListRounds(ctx context.Context) ([]models.Round, error)
	ActiveRound(ctx context.Context, date string) (models.Round, error)
	DeleteRound(ctx context.Context, id int64) error
}

// GoalStore defines goal-related database operations.
type GoalStore interface {
	AddGoal(ctx context.Context, roundID int64, title string, frequency models.Frequency, durationSeconds int) (int64, error)
	GetGoal(ctx context.Context, id int64) (models.Goal, error)
	GoalsForRound(ctx context.Context, roundID int64) ([]models.Goal, error)
	UpdateGoal(ctx context.Context, id int64, title string, frequency models.Frequency, durationSeconds int) error
	DeleteGoal(ctx context.Context, id int64) error
}

// ProgressStore defines progress-entry database operations.
type ProgressStore interface {
	AddProgress(ctx context.Context, p models.GoalProgress) (int64, error)
	ProgressForGoal(ctx context.Context, goalID int64) ([]models.GoalProgress, error)
	ProgressForRound(ctx context.Context, roundID int64) (map[int64][]models.GoalProgress, error)
	DeleteProgress(ctx context.Context, id int64) error
}

// Store combines all store interfaces.
//
//go:generate mockgen -destination=../service/mock_store_test.go -package=service github.com/jmalherbe/cadence/internal/database Store
type Store interface {
	RoundStore
	GoalStore
	ProgressStore
}

var _ Store = (*Database)(nil)
