package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/noah-isme/academy-api/pkg/database"
	appErrors "github.com/noah-isme/academy-api/pkg/errors"
)

// transactor runs fn inside one database transaction bound to the returned context.
type transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Cache key patterns shared by the services that read or invalidate them.
const (
	cacheCourses = "courses:*"
	cacheUsers   = "users:*"
	cacheMatrix  = "matrix:*"
)

// lookupError maps a missing row to NOT_FOUND and anything else to an opaque internal error.
func lookupError(err error, notFound, failed string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.Clone(appErrors.ErrNotFound, notFound)
	}
	return appErrors.Internal(err, failed)
}

// referenceError is lookupError for parent records named in a payload.
func referenceError(err error, missing, failed string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.Clone(appErrors.ErrReference, missing)
	}
	return appErrors.Internal(err, failed)
}

// writeError translates constraint violations raised by the database; the application checks
// run first, so these fire only when a concurrent write wins the race.
func writeError(err error, conflict, failed string) error {
	var appErr *appErrors.Error
	switch {
	case errors.As(err, &appErr):
		return appErr
	case database.IsUniqueViolation(err):
		return appErrors.Wrap(err, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, conflict)
	case database.IsForeignKeyViolation(err):
		return appErrors.Wrap(err, appErrors.ErrReference.Code, appErrors.ErrReference.Status, appErrors.ErrReference.Message)
	case errors.Is(err, sql.ErrNoRows):
		return appErrors.Clone(appErrors.ErrNotFound, "")
	default:
		return appErrors.Internal(err, failed)
	}
}

func ptr[T any](v T) *T {
	return &v
}
