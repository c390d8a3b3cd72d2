package domain

import "github.com/shopspring/decimal"

// Summary holds payroll totals computed from the ledger
type Summary struct {
	TotalWorkers  int
	TotalMessages int64
	TotalPay      decimal.Decimal
	AveragePay    decimal.Decimal
}

// NewSummary derives the average from the totals; with no workers the average is zero
func NewSummary(workers int, messages int64, pay decimal.Decimal) *Summary {
	s := &Summary{
		TotalWorkers:  workers,
		TotalMessages: messages,
		TotalPay:      pay,
		AveragePay:    decimal.Zero,
	}
	if workers > 0 {
		s.AveragePay = pay.Div(decimal.NewFromInt(int64(workers)))
	}
	return s
}
