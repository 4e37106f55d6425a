package database

import (
	"context"
	"strings"
	"time"

	"github.com/jmalherbe/cadence/internal/models"
)

const progressColumns = `id, round_id, goal_id, target_date, completed_at, duration_seconds, notes, is_amendment`

func scanProgress(row rowScanner) (models.GoalProgress, error) {
	var p models.GoalProgress
	var amendment int
	if err := row.Scan(&p.ID, &p.RoundID, &p.GoalID, &p.TargetDate, &p.CompletedAt, &p.DurationSeconds, &p.Notes, &amendment); err != nil {
		return models.GoalProgress{}, err
	}
	p.IsAmendment = amendment == 1
	return p, nil
}

// AddProgress records a completed occurrence. The unique index on
// (goal_id, target_date) turns a second entry for the same date into
// ErrDuplicateEntry.
func (d *Database) AddProgress(ctx context.Context, p models.GoalProgress) (int64, error) {
	completedAt := p.CompletedAt
	if completedAt.IsZero() {
		completedAt = time.Now()
	}
	amendment := 0
	if p.IsAmendment {
		amendment = 1
	}
	res, err := d.DB.ExecContext(ctx,
		`INSERT INTO progress (round_id, goal_id, target_date, completed_at, duration_seconds, notes, is_amendment)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.RoundID, p.GoalID, p.TargetDate, completedAt, p.DurationSeconds, toNullableArg(p.Notes), amendment)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			err = ErrDuplicateEntry
		}
		return 0, wrapErr(EntityProgress, "add", 0, err)
	}
	id, err := res.LastInsertId()
	return id, wrapErr(EntityProgress, "add", 0, err)
}

// ProgressForGoal returns a goal's entries ordered by target date.
func (d *Database) ProgressForGoal(ctx context.Context, goalID int64) ([]models.GoalProgress, error) {
	rows, err := d.DB.QueryContext(ctx,
		"SELECT "+progressColumns+" FROM progress WHERE goal_id = ? ORDER BY target_date ASC", goalID)
	if err != nil {
		return nil, wrapErr(EntityProgress, "list goal", goalID, err)
	}
	defer rows.Close()

	var entries []models.GoalProgress
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, wrapErr(EntityProgress, "list goal", goalID, err)
		}
		entries = append(entries, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(EntityProgress, "list goal", goalID, err)
	}
	return entries, nil
}

// ProgressForRound returns every entry of a round keyed by goal ID.
func (d *Database) ProgressForRound(ctx context.Context, roundID int64) (map[int64][]models.GoalProgress, error) {
	rows, err := d.DB.QueryContext(ctx,
		"SELECT "+progressColumns+" FROM progress WHERE round_id = ? ORDER BY target_date ASC", roundID)
	if err != nil {
		return nil, wrapErr(EntityProgress, "list round", roundID, err)
	}
	defer rows.Close()

	byGoal := make(map[int64][]models.GoalProgress)
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, wrapErr(EntityProgress, "list round", roundID, err)
		}
		byGoal[p.GoalID] = append(byGoal[p.GoalID], p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(EntityProgress, "list round", roundID, err)
	}
	return byGoal, nil
}

// DeleteProgress removes a single entry.
func (d *Database) DeleteProgress(ctx context.Context, id int64) error {
	res, err := d.DB.ExecContext(ctx, "DELETE FROM progress WHERE id = ?", id)
	if err != nil {
		return wrapErr(EntityProgress, "delete", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return wrapErr(EntityProgress, "delete", id, err)
	}
	if affected == 0 {
		return wrapErr(EntityProgress, "delete", id, ErrNotFound)
	}
	return nil
}
