package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/andy/piecework/internal/domain"
	sqlite3 "github.com/mutecomm/go-sqlcipher/v4"
)

// storeError maps a database/sql or driver error onto the domain's repository errors.
// op describes the failed operation, e.g. "failed to create employee".
// Cancellation and deadline errors belong to the caller and pass through unchanged.
func storeError(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintPrimaryKey, sqlite3.ErrConstraintUnique:
			return fmt.Errorf("%s: %w", op, domain.ErrDuplicateKey)
		case sqlite3.ErrConstraintForeignKey:
			return fmt.Errorf("%s: employee %w", op, domain.ErrNotFound)
		}
		return fmt.Errorf("%s: constraint violated: %w", op, err)
	}

	return fmt.Errorf("%s: %w: %v", op, domain.ErrStoreUnavailable, err)
}
