package database

import (
	"context"
	"database/sql"

	"github.com/jmalherbe/cadence/internal/models"
)

const goalColumns = `id, round_id, title, frequency, duration_seconds, created_at`

func scanGoal(row rowScanner) (models.Goal, error) {
	var g models.Goal
	var rule string
	if err := row.Scan(&g.ID, &g.RoundID, &g.Title, &rule, &g.DurationSeconds, &g.CreatedAt); err != nil {
		return models.Goal{}, err
	}
	freq, err := models.ParseFrequency(rule)
	if err != nil {
		return models.Goal{}, err
	}
	g.Frequency = freq
	return g, nil
}

// AddGoal inserts a goal into a round.
func (d *Database) AddGoal(ctx context.Context, roundID int64, title string, frequency models.Frequency, durationSeconds int) (int64, error) {
	var exists int
	err := d.DB.QueryRowContext(ctx, "SELECT COUNT(1) FROM rounds WHERE id = ?", roundID).Scan(&exists)
	if err != nil {
		return 0, wrapErr(EntityGoal, "add", 0, err)
	}
	if exists == 0 {
		return 0, wrapErr(EntityGoal, "add", 0, ErrNotFound)
	}
	res, err := d.DB.ExecContext(ctx,
		"INSERT INTO goals (round_id, title, frequency, duration_seconds) VALUES (?, ?, ?, ?)",
		roundID, title, frequency.Rule(), durationSeconds)
	if err != nil {
		return 0, wrapErr(EntityGoal, "add", 0, err)
	}
	id, err := res.LastInsertId()
	return id, wrapErr(EntityGoal, "add", 0, err)
}

// GetGoal retrieves a goal by ID.
func (d *Database) GetGoal(ctx context.Context, id int64) (models.Goal, error) {
	row := d.DB.QueryRowContext(ctx, "SELECT "+goalColumns+" FROM goals WHERE id = ?", id)
	g, err := scanGoal(row)
	if err != nil {
		return models.Goal{}, wrapErr(EntityGoal, "get", id, err)
	}
	return g, nil
}

// GoalsForRound returns a round's goals in creation order.
func (d *Database) GoalsForRound(ctx context.Context, roundID int64) ([]models.Goal, error) {
	rows, err := d.DB.QueryContext(ctx,
		"SELECT "+goalColumns+" FROM goals WHERE round_id = ? ORDER BY created_at ASC, id ASC", roundID)
	if err != nil {
		return nil, wrapErr(EntityGoal, "list", 0, err)
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, wrapErr(EntityGoal, "list", 0, err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(EntityGoal, "list", 0, err)
	}
	return goals, nil
}

// UpdateGoal rewrites a goal's title, frequency, and expected duration.
// Past progress is left untouched; the engine reinterprets nothing
// retroactively beyond reclassifying dates under the new rule.
func (d *Database) UpdateGoal(ctx context.Context, id int64, title string, frequency models.Frequency, durationSeconds int) error {
	res, err := d.DB.ExecContext(ctx,
		"UPDATE goals SET title = ?, frequency = ?, duration_seconds = ? WHERE id = ?",
		title, frequency.Rule(), durationSeconds, id)
	if err != nil {
		return wrapErr(EntityGoal, "update", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return wrapErr(EntityGoal, "update", id, err)
	}
	if affected == 0 {
		return wrapErr(EntityGoal, "update", id, ErrNotFound)
	}
	return nil
}

// DeleteGoal removes a goal and its progress entries in one transaction.
func (d *Database) DeleteGoal(ctx context.Context, id int64) error {
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM progress WHERE goal_id = ?", id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, "DELETE FROM goals WHERE id = ?", id)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrNotFound
		}
		return nil
	})
	return wrapErr(EntityGoal, "delete", id, err)
}
