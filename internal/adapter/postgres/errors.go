package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/boxstock-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors. op names the failed
// operation, e.g. "inventory item 7f0c...".
// context.DeadlineExceeded and context.Canceled pass through unmapped.
func MapError(err error, op string) error {
	return mapError(err, op)
}

func mapError(err error, op string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s: %w", op, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s: %w", op, domain.NewValidationError(pgErr.ConstraintName, pgErr.Message))
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return &domain.StoreError{Op: op, Transient: true, Err: err}
		}
		if len(pgErr.Code) == 5 && pgErr.Code[:2] == "08" { // connection exception
			return &domain.StoreError{Op: op, Transient: true, Err: err}
		}
		return &domain.StoreError{Op: op, Err: err}
	}

	return &domain.StoreError{Op: op, Transient: pgconn.SafeToRetry(err), Err: err}
}
