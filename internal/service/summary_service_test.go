package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestSummary_Empty(t *testing.T) {
	employees, ledger := newTestRepos()
	svc := NewSummaryService(employees, ledger)

	s, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, s.TotalWorkers)
	assert.Equal(t, int64(0), s.TotalMessages)
	assert.True(t, s.TotalPay.IsZero())
	assert.True(t, s.AveragePay.IsZero())
}

func TestSummary_AfterSubmissions(t *testing.T) {
	employees, ledger := newTestRepos()
	payroll := NewPayrollService(employees, ledger, zaptest.NewLogger(t))
	ctx := context.Background()

	// 30.00 + 70.00 + 200.00 across two workers
	_, _, err := payroll.Submit(ctx, "1", "Ada Lovelace", "1250")
	require.NoError(t, err)
	_, _, err = payroll.Submit(ctx, "1", "Ada Lovelace", "2500")
	require.NoError(t, err)
	_, _, err = payroll.Submit(ctx, "2", "Alan Turing", "5000")
	require.NoError(t, err)

	s, err := NewSummaryService(employees, ledger).Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, s.TotalWorkers)
	assert.Equal(t, int64(8750), s.TotalMessages)
	assert.Equal(t, "300.00", s.TotalPay.StringFixed(2))
	assert.Equal(t, "150.00", s.AveragePay.StringFixed(2))
}
