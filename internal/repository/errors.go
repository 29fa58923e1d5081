package repository

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Domain-level errors I prefer to bubble up from repository implementations.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrConflict      = errors.New("conflict")
)

// MapPgError translates common Postgres error codes to domain errors.
// I only map what I expect to handle explicitly at higher layers; everything else passes through.
// The constraint name is kept on the wrapped error so callers can tell which key clashed.
func MapPgError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return &ConstraintError{Constraint: pgErr.ConstraintName, kind: ErrAlreadyExists}
		case pgerrcode.ForeignKeyViolation:
			return &ConstraintError{Constraint: pgErr.ConstraintName, kind: ErrConflict}
		}
	}
	return err
}

// ConstraintError is a mapped constraint violation. It unwraps to ErrAlreadyExists or ErrConflict.
type ConstraintError struct {
	Constraint string
	kind       error
}

func (e *ConstraintError) Error() string {
	if e.Constraint == "" {
		return e.kind.Error()
	}
	return e.kind.Error() + ": " + e.Constraint
}

func (e *ConstraintError) Unwrap() error { return e.kind }

// ViolatedConstraint returns the constraint name behind a mapped violation, or "".
func ViolatedConstraint(err error) string {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce.Constraint
	}
	return ""
}
