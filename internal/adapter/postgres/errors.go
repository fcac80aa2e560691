package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// SQLSTATE codes translated into domain errors.
var pgCodeErrors = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation
	"23514": domain.ErrValidation,    // check_violation
	"22P02": domain.ErrValidation,    // invalid_text_representation
	"40001": domain.ErrConflict,      // serialization_failure
	"40P01": domain.ErrConflict,      // deadlock_detected
}

// MapError wraps a pgx error with the entity and ID it concerns and translates
// it into a domain error where one applies. Context errors pass through so
// callers can tell a timeout from a missing row.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}
	wrap := func(cause error) error { return fmt.Errorf("%s %s: %w", entity, id, cause) }

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return wrap(err)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return wrap(domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return wrap(err)
	}

	mapped, ok := pgCodeErrors[pgErr.Code]
	if !ok {
		return wrap(err)
	}
	if pgErr.Code == "23514" {
		if field := checkedColumn(pgErr); field != "" {
			return wrap(domain.NewValidationError(field, "out of range"))
		}
	}
	return wrap(mapped)
}

// checkedColumn recovers the column from a default CHECK constraint name
// such as "flashcards_front_check".
func checkedColumn(pgErr *pgconn.PgError) string {
	name := strings.TrimSuffix(pgErr.ConstraintName, "_check")
	if name == pgErr.ConstraintName || pgErr.TableName == "" {
		return ""
	}
	column, ok := strings.CutPrefix(name, pgErr.TableName+"_")
	if !ok {
		return ""
	}
	return column
}
