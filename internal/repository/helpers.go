package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// timeLayout is the format for storing times in SQLite; values are stored in UTC
const timeLayout = time.RFC3339Nano

// querier is satisfied by both *db.DB and *sql.Tx so statements can run inside a transaction
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// parseTime parses a stored time string
func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

// formatTime formats t for storage
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// toCents converts a pay amount to integer cents for exact SUMs
func toCents(pay decimal.Decimal) (int64, error) {
	if !pay.Equal(pay.Round(2)) {
		return 0, fmt.Errorf("pay %s has more than two decimal places", pay)
	}
	return pay.Shift(2).IntPart(), nil
}

// fromCents converts stored cents back to a decimal amount
func fromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
