package domain

import (
	"errors"
	"strings"
	"time"
)

// Employee is the durable identity behind one or more ledger entries.
// Name fields never change once the record exists.
type Employee struct {
	ID        int64
	FirstName string
	LastName  string
	StartDate time.Time
}

// FullName returns "First Last"
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Validate returns an error if the employee is invalid
func (e *Employee) Validate() error {
	if e.ID <= 0 {
		return errors.New("employee ID must be positive")
	}
	if strings.TrimSpace(e.FirstName) == "" || strings.TrimSpace(e.LastName) == "" {
		return errors.New("employee first and last name are required")
	}
	if e.StartDate.IsZero() {
		return errors.New("start date is required")
	}
	return nil
}
