package repository

import (
	"context"
	"fmt"

	"github.com/andy/piecework/internal/db"
	"github.com/andy/piecework/internal/domain"
)

// EmployeeRepo is a SQLite implementation of EmployeeRepository
type EmployeeRepo struct {
	db *db.DB
}

// NewEmployeeRepo creates a new EmployeeRepo
func NewEmployeeRepo(database *db.DB) *EmployeeRepo {
	return &EmployeeRepo{db: database}
}

// Exists reports whether an employee record exists for id
func (r *EmployeeRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM employees WHERE id = ?)", id).Scan(&exists)
	if err != nil {
		return false, storeError("failed to check employee", err)
	}
	return exists, nil
}

// Name returns the stored "First Last" name for id
func (r *EmployeeRepo) Name(ctx context.Context, id int64) (string, error) {
	employee, err := getEmployee(ctx, r.db, id)
	if err != nil {
		return "", err
	}
	return employee.FullName(), nil
}

// GetByID retrieves an employee by ID
func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return getEmployee(ctx, r.db, id)
}

// Create inserts a new employee record
func (r *EmployeeRepo) Create(ctx context.Context, employee *domain.Employee) error {
	return insertEmployee(ctx, r.db, employee)
}

// List retrieves all employees ordered by ID
func (r *EmployeeRepo) List(ctx context.Context) ([]*domain.Employee, error) {
	query := `
		SELECT id, first_name, last_name, start_date
		FROM employees
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storeError("failed to list employees", err)
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		employee := &domain.Employee{}
		var startDate string

		if err := rows.Scan(&employee.ID, &employee.FirstName, &employee.LastName, &startDate); err != nil {
			return nil, storeError("failed to scan employee", err)
		}
		if employee.StartDate, err = parseTime(startDate); err != nil {
			return nil, fmt.Errorf("failed to parse start_date: %w", err)
		}

		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, storeError("error iterating employees", err)
	}

	return employees, nil
}

// Count returns the number of employee records
func (r *EmployeeRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM employees").Scan(&n); err != nil {
		return 0, storeError("failed to count employees", err)
	}
	return n, nil
}

func getEmployee(ctx context.Context, q querier, id int64) (*domain.Employee, error) {
	query := `
		SELECT id, first_name, last_name, start_date
		FROM employees
		WHERE id = ?
	`

	employee := &domain.Employee{}
	var startDate string

	err := q.QueryRowContext(ctx, query, id).Scan(
		&employee.ID,
		&employee.FirstName,
		&employee.LastName,
		&startDate,
	)
	if err != nil {
		return nil, storeError(fmt.Sprintf("failed to get employee %d", id), err)
	}

	if employee.StartDate, err = parseTime(startDate); err != nil {
		return nil, fmt.Errorf("failed to parse start_date: %w", err)
	}

	return employee, nil
}

func insertEmployee(ctx context.Context, q querier, employee *domain.Employee) error {
	if err := employee.Validate(); err != nil {
		return fmt.Errorf("invalid employee: %w", err)
	}

	query := `
		INSERT INTO employees (id, first_name, last_name, start_date)
		VALUES (?, ?, ?, ?)
	`

	_, err := q.ExecContext(ctx, query,
		employee.ID,
		employee.FirstName,
		employee.LastName,
		formatTime(employee.StartDate),
	)
	if err != nil {
		return storeError(fmt.Sprintf("failed to create employee %d", employee.ID), err)
	}

	return nil
}
