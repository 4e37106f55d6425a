package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmalherbe/cadence/internal/models"
)

const roundColumns = `id, title, start_date, end_date, created_at`

func scanRound(row rowScanner) (models.Round, error) {
	var r models.Round
	if err := row.Scan(&r.ID, &r.Title, &r.StartDate, &r.EndDate, &r.CreatedAt); err != nil {
		return models.Round{}, err
	}
	return r, nil
}

// CreateRound inserts a round after validating its date bounds.
func (d *Database) CreateRound(ctx context.Context, title, startDate, endDate string) (int64, error) {
	if endDate < startDate {
		return 0, wrapErr(EntityRound, "create", 0, fmt.Errorf("end date %s before start date %s", endDate, startDate))
	}
	res, err := d.DB.ExecContext(ctx,
		"INSERT INTO rounds (title, start_date, end_date) VALUES (?, ?, ?)",
		title, startDate, endDate)
	if err != nil {
		return 0, wrapErr(EntityRound, "create", 0, err)
	}
	id, err := res.LastInsertId()
	return id, wrapErr(EntityRound, "create", 0, err)
}

// GetRound retrieves a round by ID.
func (d *Database) GetRound(ctx context.Context, id int64) (models.Round, error) {
	row := d.DB.QueryRowContext(ctx, "SELECT "+roundColumns+" FROM rounds WHERE id = ?", id)
	r, err := scanRound(row)
	if err != nil {
		return models.Round{}, wrapErr(EntityRound, "get", id, err)
	}
	return r, nil
}

// ListRounds returns all rounds, newest start first.
func (d *Database) ListRounds(ctx context.Context) ([]models.Round, error) {
	rows, err := d.DB.QueryContext(ctx, "SELECT "+roundColumns+" FROM rounds ORDER BY start_date DESC, id DESC")
	if err != nil {
		return nil, wrapErr(EntityRound, "list", 0, err)
	}
	defer rows.Close()

	var rounds []models.Round
	for rows.Next() {
		r, err := scanRound(rows)
		if err != nil {
			return nil, wrapErr(EntityRound, "list", 0, err)
		}
		rounds = append(rounds, r)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(EntityRound, "list", 0, err)
	}
	return rounds, nil
}

// ActiveRound returns the round covering the given date, preferring the
// most recently started one when windows overlap.
func (d *Database) ActiveRound(ctx context.Context, date string) (models.Round, error) {
	row := d.DB.QueryRowContext(ctx,
		"SELECT "+roundColumns+" FROM rounds WHERE start_date <= ? AND end_date >= ? ORDER BY start_date DESC, id DESC LIMIT 1",
		date, date)
	r, err := scanRound(row)
	if err != nil {
		return models.Round{}, wrapErr(EntityRound, "active", 0, err)
	}
	return r, nil
}

// DeleteRound removes a round together with its goals and progress in one
// transaction.
func (d *Database) DeleteRound(ctx context.Context, id int64) error {
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM progress WHERE round_id = ?", id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM goals WHERE round_id = ?", id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, "DELETE FROM rounds WHERE id = ?", id)
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
	return wrapErr(EntityRound, "delete", id, err)
}
