package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/andy/piecework/internal/domain"
	"github.com/andy/piecework/internal/repository"
	"go.uber.org/zap"
)

// PayrollService accepts pay-entry submissions and answers ledger lookups
type PayrollService interface {
	// Submit validates raw form input with a combined "First Last" name and records it.
	// Validation failures come back as domain.ValidationErrors; nothing is written in that case.
	Submit(ctx context.Context, idText, nameText, unitsText string) (*domain.Worker, *domain.LedgerEntry, error)

	// SubmitParts is Submit with first and last name entered separately
	SubmitParts(ctx context.Context, idText, firstText, lastText, unitsText string) (*domain.Worker, *domain.LedgerEntry, error)

	// Employees lists every employee record
	Employees(ctx context.Context) ([]*domain.Employee, error)

	// History returns an employee and their ledger entries, oldest first
	History(ctx context.Context, employeeID int64) (*domain.Employee, []*domain.LedgerEntry, error)

	// Reset clears the ledger, and employee records too for domain.ResetAll
	Reset(ctx context.Context, scope domain.ResetScope) error
}

type payrollService struct {
	employeeRepo repository.EmployeeRepository
	ledgerRepo   repository.LedgerRepository
	logger       *zap.Logger
}

// NewPayrollService creates a new payroll service
func NewPayrollService(
	employeeRepo repository.EmployeeRepository,
	ledgerRepo repository.LedgerRepository,
	logger *zap.Logger,
) PayrollService {
	return &payrollService{
		employeeRepo: employeeRepo,
		ledgerRepo:   ledgerRepo,
		logger:       logger,
	}
}

func (s *payrollService) Submit(ctx context.Context, idText, nameText, unitsText string) (*domain.Worker, *domain.LedgerEntry, error) {
	worker, err := domain.NewWorker(idText, nameText, unitsText)
	return s.record(ctx, worker, err)
}

func (s *payrollService) SubmitParts(ctx context.Context, idText, firstText, lastText, unitsText string) (*domain.Worker, *domain.LedgerEntry, error) {
	worker, err := domain.NewWorkerFromParts(idText, firstText, lastText, unitsText)
	return s.record(ctx, worker, err)
}

func (s *payrollService) record(ctx context.Context, worker *domain.Worker, err error) (*domain.Worker, *domain.LedgerEntry, error) {
	if err != nil {
		s.logRejected(err)
		return nil, nil, err
	}

	// Check identity up front so a conflict is reported without opening a write transaction.
	// Record repeats the check inside its transaction.
	if err := s.checkIdentity(ctx, worker); err != nil {
		s.logRejected(err)
		return nil, nil, err
	}

	entry, err := s.ledgerRepo.Record(ctx, worker)
	if err != nil {
		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			s.logRejected(err)
			return nil, nil, err
		}
		s.logger.Error("failed to record pay entry",
			zap.Int64("employee_id", worker.ID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	s.logger.Info("pay entry recorded",
		zap.Int64("employee_id", worker.ID),
		zap.Int("units_sent", worker.UnitsSent),
		zap.String("rate", worker.Rate.String()),
		zap.String("pay", worker.Pay.StringFixed(2)),
		zap.Stringer("reference", entry.Reference),
	)
	return worker, entry, nil
}

func (s *payrollService) checkIdentity(ctx context.Context, worker *domain.Worker) error {
	exists, err := s.employeeRepo.Exists(ctx, worker.ID)
	if err != nil {
		s.logger.Error("failed to check employee", zap.Int64("employee_id", worker.ID), zap.Error(err))
		return err
	}
	if !exists {
		return nil
	}

	stored, err := s.employeeRepo.Name(ctx, worker.ID)
	if err != nil {
		s.logger.Error("failed to read employee name", zap.Int64("employee_id", worker.ID), zap.Error(err))
		return err
	}
	if stored != worker.FullName() {
		return domain.ValidationErrors{domain.NewIdentityConflict(worker.ID, stored, worker.FullName())}
	}
	return nil
}

func (s *payrollService) logRejected(err error) {
	var verrs domain.ValidationErrors
	if !errors.As(err, &verrs) {
		return
	}
	kinds := make([]string, 0, len(verrs))
	for _, e := range verrs {
		kinds = append(kinds, string(e.Kind))
	}
	s.logger.Debug("submission rejected", zap.Strings("kinds", kinds))
}

func (s *payrollService) Employees(ctx context.Context) ([]*domain.Employee, error) {
	return s.employeeRepo.List(ctx)
}

func (s *payrollService) History(ctx context.Context, employeeID int64) (*domain.Employee, []*domain.LedgerEntry, error) {
	employee, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, nil, err
	}

	entries, err := s.ledgerRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, nil, err
	}

	return employee, entries, nil
}

func (s *payrollService) Reset(ctx context.Context, scope domain.ResetScope) error {
	if err := s.ledgerRepo.Reset(ctx, scope); err != nil {
		s.logger.Error("failed to reset payroll", zap.String("scope", string(scope)), zap.Error(err))
		return fmt.Errorf("failed to reset %s: %w", scope, err)
	}
	s.logger.Info("payroll reset", zap.String("scope", string(scope)))
	return nil
}
