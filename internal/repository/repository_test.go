package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/andy/piecework/internal/db"
	"github.com/andy/piecework/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "piecework.db"), "test-key")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations())
	t.Cleanup(func() { database.Close() })
	return database
}

func mustWorker(t *testing.T, id, name, units string) *domain.Worker {
	t.Helper()
	w, err := domain.NewWorker(id, name, units)
	require.NoError(t, err)
	return w
}

func TestEmployeeRepo_CreateAndLookup(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepo(openTestDB(t))

	exists, err := repo.Exists(ctx, 5)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.Name(ctx, 5)
	assert.True(t, errors.Is(err, domain.ErrNotFound), "got %v", err)

	start := time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &domain.Employee{ID: 5, FirstName: "Al", LastName: "Smith", StartDate: start}))

	exists, err = repo.Exists(ctx, 5)
	require.NoError(t, err)
	assert.True(t, exists)

	name, err := repo.Name(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Al Smith", name)

	emp, err := repo.GetByID(ctx, 5)
	require.NoError(t, err)
	assert.True(t, emp.StartDate.Equal(start))

	err = repo.Create(ctx, &domain.Employee{ID: 5, FirstName: "Bo", LastName: "Jones", StartDate: start})
	assert.True(t, errors.Is(err, domain.ErrDuplicateKey), "got %v", err)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestEmployeeRepo_CreateInvalid(t *testing.T) {
	repo := NewEmployeeRepo(openTestDB(t))
	err := repo.Create(context.Background(), &domain.Employee{ID: 0, FirstName: "Al", LastName: "Bo", StartDate: time.Now()})
	assert.Error(t, err)
}

func TestLedgerRepo_RecordCreatesEmployeeOnce(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)
	employees := NewEmployeeRepo(database)
	ledger := NewLedgerRepo(database)

	first, err := ledger.Record(ctx, mustWorker(t, "5", "Al Bo", "1250"))
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	_, err = ledger.Record(ctx, mustWorker(t, "5", "Al Bo", "5000"))
	require.NoError(t, err)

	n, err := employees.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	entries, err := ledger.ListByEmployee(ctx, 5)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, first.Reference, entries[0].Reference)
	assert.Equal(t, "30.00", entries[0].Pay.StringFixed(2))
	assert.Equal(t, 5000, entries[1].UnitsSent)
	assert.Equal(t, "200.00", entries[1].Pay.StringFixed(2))

	messages, err := ledger.SumMessages(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6250), messages)

	pay, err := ledger.SumPay(ctx)
	require.NoError(t, err)
	assert.Equal(t, "230.00", pay.StringFixed(2))
}

func TestLedgerRepo_RecordIdentityConflict(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)
	employees := NewEmployeeRepo(database)
	ledger := NewLedgerRepo(database)

	require.NoError(t, employees.Create(ctx, &domain.Employee{ID: 5, FirstName: "Al", LastName: "Smith", StartDate: time.Now()}))

	_, err := ledger.Record(ctx, mustWorker(t, "5", "Al Bo", "100"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrIdentityConflict), "got %v", err)

	var verrs domain.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, domain.FieldName, verrs[0].Field)

	entries, err := ledger.ListByEmployee(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, entries, "conflicting submission must not write a ledger entry")

	name, err := employees.Name(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Al Smith", name, "stored name must not change")
}

func TestLedgerRepo_AppendUnknownEmployee(t *testing.T) {
	ledger := NewLedgerRepo(openTestDB(t))

	w := mustWorker(t, "77", "Al Bo", "10")
	err := ledger.Append(context.Background(), w.LedgerEntry())
	assert.True(t, errors.Is(err, domain.ErrNotFound), "got %v", err)
}

func TestLedgerRepo_EmptySums(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedgerRepo(openTestDB(t))

	messages, err := ledger.SumMessages(ctx)
	require.NoError(t, err)
	assert.Zero(t, messages)

	pay, err := ledger.SumPay(ctx)
	require.NoError(t, err)
	assert.True(t, pay.IsZero())
}

func TestLedgerRepo_Reset(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)
	employees := NewEmployeeRepo(database)
	ledger := NewLedgerRepo(database)

	for _, w := range []*domain.Worker{
		mustWorker(t, "1", "Al Bo", "100"),
		mustWorker(t, "2", "Cy Di", "200"),
	} {
		_, err := ledger.Record(ctx, w)
		require.NoError(t, err)
	}

	require.NoError(t, ledger.Reset(ctx, domain.ResetLedger))
	messages, err := ledger.SumMessages(ctx)
	require.NoError(t, err)
	assert.Zero(t, messages)
	n, err := employees.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "ledger reset keeps employee records")

	require.NoError(t, ledger.Reset(ctx, domain.ResetAll))
	n, err = employees.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	assert.Error(t, ledger.Reset(ctx, domain.ResetScope("bogus")))
}

func TestEmployeeRepo_List(t *testing.T) {
	ctx := context.Background()
	database := openTestDB(t)
	employees := NewEmployeeRepo(database)
	ledger := NewLedgerRepo(database)

	for _, w := range []*domain.Worker{
		mustWorker(t, "9", "Zed Ray", "10"),
		mustWorker(t, "3", "Al Bo", "10"),
	} {
		_, err := ledger.Record(ctx, w)
		require.NoError(t, err)
	}

	list, err := employees.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(3), list[0].ID)
	assert.Equal(t, "Zed Ray", list[1].FullName())
}

func TestRepos_ContextErrorsPassThrough(t *testing.T) {
	database := openTestDB(t)
	employees := NewEmployeeRepo(database)
	ledger := NewLedgerRepo(database)

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := employees.Exists(canceled, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = ledger.Record(canceled, mustWorker(t, "1", "Al Smith", "100"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrStoreUnavailable)

	expired, cancelExpired := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancelExpired()

	_, err = ledger.SumMessages(expired)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, domain.ErrStoreUnavailable)

	// Nothing was written by the canceled record
	n, err := employees.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestStoreError_Unavailable(t *testing.T) {
	err := storeError("failed to sum pay", errors.New("disk I/O error"))
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Contains(t, err.Error(), "disk I/O error")
}
