package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmalherbe/cadence/internal/util"
)

// ErrNotFound marks a lookup whose row does not exist. Callers match it
// with errors.Is and attach their own entity context.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEntry marks an insert that would violate the one entry per
// (goal, target date) constraint.
var ErrDuplicateEntry = errors.New("progress already recorded for that date")

// Entity names the table an operation touched, for error context.
type Entity string

const (
	EntityRound    Entity = "round"
	EntityGoal     Entity = "goal"
	EntityProgress Entity = "progress"
)

// OpError wraps a storage failure with the operation, entity, and id.
type OpError struct {
	Entity Entity
	Op     string
	ID     int64
	Err    error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID > 0 {
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Entity, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(entity Entity, op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		err = ErrNotFound
	}
	return &OpError{Entity: entity, Op: op, ID: id, Err: err}
}

func rollbackWithLog(tx *sql.Tx, err error) error {
	if rbErr := tx.Rollback(); rbErr != nil {
		util.LogError("transaction rollback failed", rbErr)
	}
	return err
}
