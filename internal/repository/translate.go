package repository

import (
	"database/sql/driver"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"reviewboard/internal/domain"
)

// translateError is the single boundary where driver-level failures become
// domain errors. It understands GORM's translated sentinels, raw Postgres
// SQLSTATEs via pgconn, and the message formats of the modernc SQLite driver
// used in development and tests. Unknown errors pass through unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrDuplicateKey
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.ErrForeignKeyViolation
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return &domain.ValidationError{Fields: map[string]string{"_": "check constraint violated"}}
	case errors.Is(err, driver.ErrBadConn):
		return domain.ErrConnectivity
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505":
			return domain.ErrDuplicateKey
		case pgErr.Code == "23503":
			return domain.ErrForeignKeyViolation
		case pgErr.Code == "23514":
			return &domain.ValidationError{Fields: map[string]string{"_": "check constraint violated"}}
		case strings.HasPrefix(pgErr.Code, "08"): // connection exception class
			return domain.ErrConnectivity
		}
		return err
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"),
		strings.Contains(msg, "duplicate key value violates unique constraint"),
		strings.Contains(msg, "SQLSTATE 23505"):
		return domain.ErrDuplicateKey
	case strings.Contains(msg, "FOREIGN KEY constraint failed"),
		strings.Contains(msg, "violates foreign key constraint"),
		strings.Contains(msg, "SQLSTATE 23503"):
		return domain.ErrForeignKeyViolation
	case strings.Contains(msg, "CHECK constraint failed"),
		strings.Contains(msg, "violates check constraint"),
		strings.Contains(msg, "SQLSTATE 23514"):
		return &domain.ValidationError{Fields: map[string]string{"_": "check constraint violated"}}
	case strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "connection reset"),
		strings.Contains(msg, "failed to connect"),
		strings.Contains(msg, "database is closed"):
		return domain.ErrConnectivity
	}

	return err
}

// translateDeleteError additionally remaps foreign-key violations to
// ErrDeleteConflict: on a delete path the violating side is the dependent
// rows, not a missing reference.
func translateDeleteError(err error) error {
	err = translateError(err)
	if errors.Is(err, domain.ErrForeignKeyViolation) {
		return domain.ErrDeleteConflict
	}
	return err
}
