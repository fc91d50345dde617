package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Stable storage-agnostic errors. Services branch on these with errors.Is
// and must never see vendor error codes.
var (
	// ErrNotFound: the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrVersionConflict: a version-checked write lost an optimistic race.
	ErrVersionConflict = errors.New("stale reservation version")
	// ErrExclusionViolation: the database-level no-overlap guarantee fired.
	ErrExclusionViolation = errors.New("room exclusion constraint violated")
)

// Postgres SQLSTATE raised by EXCLUDE constraints.
const pgExclusionViolation = "23P01"

// translateError maps pgx failures onto the stable errors above.
// Unrecognized errors pass through unchanged so callers never mistake an
// unrelated integrity failure for a booking conflict.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
		return ErrExclusionViolation
	}
	return err
}
