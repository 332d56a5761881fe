package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrDuplicate reports a unique-constraint violation (duplicate access
	// code, duplicate apartment name within a project).
	ErrDuplicate = errors.New("unique constraint violation")

	// ErrAlreadyCompleted reports a write attempt against an apartment whose
	// status is already completed.
	ErrAlreadyCompleted = errors.New("apartment already completed")
)

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// isUniqueViolation recognizes unique-index failures from both backing
// stores: PostgreSQL reports SQLSTATE 23505 via pgconn, sqlite only exposes
// the constraint name in the error text.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "constraint failed")
}
