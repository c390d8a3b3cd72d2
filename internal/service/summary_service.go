package service

import (
	"context"

	"github.com/andy/piecework/internal/domain"
	"github.com/andy/piecework/internal/repository"
)

// SummaryService computes payroll totals from the ledger on every call
type SummaryService interface {
	Summary(ctx context.Context) (*domain.Summary, error)
}

type summaryService struct {
	employeeRepo repository.EmployeeRepository
	ledgerRepo   repository.LedgerRepository
}

// NewSummaryService creates a new summary service
func NewSummaryService(
	employeeRepo repository.EmployeeRepository,
	ledgerRepo repository.LedgerRepository,
) SummaryService {
	return &summaryService{
		employeeRepo: employeeRepo,
		ledgerRepo:   ledgerRepo,
	}
}

func (s *summaryService) Summary(ctx context.Context) (*domain.Summary, error) {
	workers, err := s.employeeRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	messages, err := s.ledgerRepo.SumMessages(ctx)
	if err != nil {
		return nil, err
	}

	pay, err := s.ledgerRepo.SumPay(ctx)
	if err != nil {
		return nil, err
	}

	return domain.NewSummary(workers, messages, pay), nil
}
