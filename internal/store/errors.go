// Package store persists jobs, applications and companies with gorm.
package store

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"jobboard-backend/internal/apperr"
)

// postgres SQLSTATE codes
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// translate turns a gorm or driver error into a coded error.
// what names the entity for not found messages, e.g. "Job".
func translate(err error, what string, action string) error {
	if err == nil {
		return nil
	}
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFound(what + " not found")
	case isForeignKeyViolation(err):
		return apperr.New(apperr.CodeNotFound, "Referenced record not found", err)
	case isUniqueViolation(err):
		return apperr.New(apperr.CodeConflict, what+" already exists", err)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return apperr.Internal("Request cancelled while trying to "+action+" "+strings.ToLower(what), err)
	default:
		return apperr.Internal("Failed to "+action+" "+strings.ToLower(what), err)
	}
}
