package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/andy/piecework/internal/db"
	"github.com/andy/piecework/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerRepo is a SQLite implementation of LedgerRepository
type LedgerRepo struct {
	db *db.DB
}

// NewLedgerRepo creates a new LedgerRepo
func NewLedgerRepo(database *db.DB) *LedgerRepo {
	return &LedgerRepo{db: database}
}

// Append inserts a ledger entry for an existing employee
func (r *LedgerRepo) Append(ctx context.Context, entry *domain.LedgerEntry) error {
	return insertEntry(ctx, r.db, entry)
}

// ListByEmployee returns an employee's entries, oldest first
func (r *LedgerRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]*domain.LedgerEntry, error) {
	query := `
		SELECT id, reference, employee_id, units_sent, pay_cents, created_at
		FROM ledger_entries
		WHERE employee_id = ?
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, employeeID)
	if err != nil {
		return nil, storeError("failed to list ledger entries", err)
	}
	defer rows.Close()

	entries := make([]*domain.LedgerEntry, 0)
	for rows.Next() {
		entry := &domain.LedgerEntry{}
		var reference, createdAt string
		var payCents int64

		err := rows.Scan(
			&entry.ID,
			&reference,
			&entry.EmployeeID,
			&entry.UnitsSent,
			&payCents,
			&createdAt,
		)
		if err != nil {
			return nil, storeError("failed to scan ledger entry", err)
		}

		if entry.Reference, err = uuid.Parse(reference); err != nil {
			return nil, fmt.Errorf("failed to parse reference: %w", err)
		}
		if entry.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		entry.Pay = fromCents(payCents)

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, storeError("error iterating ledger entries", err)
	}

	return entries, nil
}

// SumMessages returns the total units across all ledger entries
func (r *LedgerRepo) SumMessages(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, "SELECT COALESCE(SUM(units_sent), 0) FROM ledger_entries").Scan(&total)
	if err != nil {
		return 0, storeError("failed to sum messages", err)
	}
	return total, nil
}

// SumPay returns the total pay across all ledger entries
func (r *LedgerRepo) SumPay(ctx context.Context) (decimal.Decimal, error) {
	var cents int64
	err := r.db.QueryRowContext(ctx, "SELECT COALESCE(SUM(pay_cents), 0) FROM ledger_entries").Scan(&cents)
	if err != nil {
		return decimal.Zero, storeError("failed to sum pay", err)
	}
	return fromCents(cents), nil
}

// Record creates the employee if needed and appends the entry atomically
func (r *LedgerRepo) Record(ctx context.Context, worker *domain.Worker) (*domain.LedgerEntry, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storeError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	existing, err := getEmployee(ctx, tx, worker.ID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if err := insertEmployee(ctx, tx, worker.Employee()); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	case existing.FullName() != worker.FullName():
		return nil, domain.ValidationErrors{domain.NewIdentityConflict(worker.ID, existing.FullName(), worker.FullName())}
	}

	entry := worker.LedgerEntry()
	if err := insertEntry(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, storeError("failed to commit transaction", err)
	}

	return entry, nil
}

// Reset deletes ledger rows, and employee rows for domain.ResetAll, in one transaction
func (r *LedgerRepo) Reset(ctx context.Context, scope domain.ResetScope) error {
	// Order matters due to foreign keys
	var tables []string
	switch scope {
	case domain.ResetLedger:
		tables = []string{"ledger_entries"}
	case domain.ResetAll:
		tables = []string{"ledger_entries", "employees"}
	default:
		return fmt.Errorf("unknown reset scope %q", scope)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return storeError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	for _, table := range tables {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			return storeError(fmt.Sprintf("failed to clear %s", table), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storeError("failed to commit reset", err)
	}

	return nil
}

func insertEntry(ctx context.Context, q querier, entry *domain.LedgerEntry) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("invalid ledger entry: %w", err)
	}

	cents, err := toCents(entry.Pay)
	if err != nil {
		return fmt.Errorf("invalid ledger entry: %w", err)
	}

	query := `
		INSERT INTO ledger_entries (reference, employee_id, units_sent, pay_cents, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := q.ExecContext(ctx, query,
		entry.Reference.String(),
		entry.EmployeeID,
		entry.UnitsSent,
		cents,
		formatTime(entry.CreatedAt),
	)
	if err != nil {
		return storeError("failed to append ledger entry", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return storeError("failed to get ledger entry ID", err)
	}

	entry.ID = id
	return nil
}
