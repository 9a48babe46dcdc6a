package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	appErrors "github.com/noah-isme/placement-api/pkg/errors"
)

// dashboardCachePattern matches every cached dashboard payload.
const dashboardCachePattern = "dashboard:*"

type txProvider interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

// storeError keeps typed store failures and wraps anything else as internal.
func storeError(err error, message string) error {
	var appErr *appErrors.Error
	if errors.As(err, &appErr) {
		return err
	}
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}

// invalidInput reports a validator failure as a domain constraint violation.
func invalidInput(err error, message string) error {
	return appErrors.Kind(appErrors.ErrDomainConstraint, err, message)
}

func notFound(message string) error {
	return appErrors.Clone(appErrors.ErrNotFound, message)
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
