package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEntry is one immutable record of units submitted and pay earned
type LedgerEntry struct {
	ID         int64
	Reference  uuid.UUID // quoted on receipts
	EmployeeID int64
	UnitsSent  int
	Pay        decimal.Decimal
	CreatedAt  time.Time
}

// NewLedgerEntry creates an entry with a fresh reference
func NewLedgerEntry(employeeID int64, units int, pay decimal.Decimal, createdAt time.Time) *LedgerEntry {
	return &LedgerEntry{
		Reference:  uuid.New(),
		EmployeeID: employeeID,
		UnitsSent:  units,
		Pay:        pay,
		CreatedAt:  createdAt,
	}
}

// Validate returns an error if the entry is invalid
func (e *LedgerEntry) Validate() error {
	if e.EmployeeID <= 0 {
		return errors.New("employee ID is required")
	}
	if e.UnitsSent < MinUnits || e.UnitsSent > MaxUnits {
		return errors.New("units sent out of range")
	}
	if e.Pay.IsNegative() {
		return errors.New("pay cannot be negative")
	}
	if e.Reference == uuid.Nil {
		return errors.New("reference is required")
	}
	if e.CreatedAt.IsZero() {
		return errors.New("created at is required")
	}
	return nil
}

// ResetScope selects what a reset clears from the store
type ResetScope string

const (
	ResetLedger ResetScope = "ledger" // ledger entries only; employee records stay
	ResetAll    ResetScope = "all"    // ledger entries and employee records
)
