package repository

import (
	"context"

	"github.com/andy/piecework/internal/domain"
	"github.com/shopspring/decimal"
)

// EmployeeRepository manages employee identity records
type EmployeeRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
	Name(ctx context.Context, id int64) (string, error) // domain.ErrNotFound if absent
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	Create(ctx context.Context, employee *domain.Employee) error // domain.ErrDuplicateKey if the ID is taken
	List(ctx context.Context) ([]*domain.Employee, error)
	Count(ctx context.Context) (int, error)
}

// LedgerRepository manages the append-only pay ledger
type LedgerRepository interface {
	Append(ctx context.Context, entry *domain.LedgerEntry) error
	ListByEmployee(ctx context.Context, employeeID int64) ([]*domain.LedgerEntry, error)
	SumMessages(ctx context.Context) (int64, error)
	SumPay(ctx context.Context) (decimal.Decimal, error)

	// Record creates the employee if absent and appends the worker's entry in one transaction.
	// A name that differs from the stored employee aborts with an identity conflict and writes nothing.
	Record(ctx context.Context, worker *domain.Worker) (*domain.LedgerEntry, error)

	// Reset clears the ledger, and employee records too for domain.ResetAll
	Reset(ctx context.Context, scope domain.ResetScope) error
}
