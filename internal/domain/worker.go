package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Worker is one validated piecework submission, ready to be persisted
type Worker struct {
	ID        int64
	FirstName string
	LastName  string
	UnitsSent int
	Rate      decimal.Decimal // derived from UnitsSent
	Pay       decimal.Decimal // derived from UnitsSent and Rate
	CreatedAt time.Time
}

// NewWorker validates raw form input with a combined "First Last" name.
// On failure it returns ValidationErrors listing every broken rule, never a partial Worker.
func NewWorker(idText, nameText, unitsText string) (*Worker, error) {
	var errs ValidationErrors

	id, verr := parseID(idText)
	if verr != nil {
		errs = append(errs, verr)
	}

	first, last, nameErrs := parseName(nameText)
	errs = append(errs, nameErrs...)

	units, verr := parseUnits(unitsText)
	if verr != nil {
		errs = append(errs, verr)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return newWorker(id, first, last, units), nil
}

// NewWorkerFromParts validates raw form input with first and last names in separate fields
func NewWorkerFromParts(idText, firstText, lastText, unitsText string) (*Worker, error) {
	var errs ValidationErrors

	id, verr := parseID(idText)
	if verr != nil {
		errs = append(errs, verr)
	}

	first, verr := validateNamePart("first name", firstText)
	if verr != nil {
		errs = append(errs, verr)
	}
	last, verr := validateNamePart("last name", lastText)
	if verr != nil {
		errs = append(errs, verr)
	}

	units, verr := parseUnits(unitsText)
	if verr != nil {
		errs = append(errs, verr)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return newWorker(id, first, last, units), nil
}

func newWorker(id int64, first, last string, units int) *Worker {
	return &Worker{
		ID:        id,
		FirstName: first,
		LastName:  last,
		UnitsSent: units,
		Rate:      RateFor(units),
		Pay:       PayFor(units),
		CreatedAt: time.Now(),
	}
}

// FullName returns "First Last", the form compared against stored employee records
func (w *Worker) FullName() string {
	return w.FirstName + " " + w.LastName
}

// Employee returns the employee record this submission creates if the ID is new
func (w *Worker) Employee() *Employee {
	return &Employee{
		ID:        w.ID,
		FirstName: w.FirstName,
		LastName:  w.LastName,
		StartDate: w.CreatedAt,
	}
}

// LedgerEntry returns the ledger row for this submission
func (w *Worker) LedgerEntry() *LedgerEntry {
	return NewLedgerEntry(w.ID, w.UnitsSent, w.Pay, w.CreatedAt)
}
