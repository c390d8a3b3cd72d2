package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/andy/piecework/internal/app"
	"github.com/andy/piecework/internal/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) *app.App {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Database.Path = filepath.Join(dir, "piecework.db")
	cfg.Log.Path = ""

	a, err := app.Open(context.Background(), cfg, "test-key")
	require.NoError(t, err)
	t.Cleanup(func() {
		a.Close()
		SetApp(nil)
	})
	SetApp(a)
	return a
}

func execute(args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestSubmitCommand(t *testing.T) {
	a := setupApp(t)
	ctx := context.Background()

	require.NoError(t, execute("submit", "7", "Ada Lovelace", "2500"))

	s, err := a.SummaryService.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, s.TotalWorkers)
	assert.Equal(t, "70.00", s.TotalPay.StringFixed(2))

	err = execute("submit", "7", "Grace Hopper", "10")
	assert.EqualError(t, err, "submission rejected")

	err = execute("submit", "x", "Ada", "99999")
	assert.EqualError(t, err, "submission rejected")

	s, err = a.SummaryService.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2500), s.TotalMessages, "rejected submissions write nothing")
}

func TestEmployeesEntriesCommand(t *testing.T) {
	setupApp(t)

	require.NoError(t, execute("submit", "3", "Alan Turing", "10"))
	assert.NoError(t, execute("employees", "list"))
	assert.NoError(t, execute("employees", "entries", "3"))
	assert.EqualError(t, execute("employees", "entries", "4"), "employee 4 not found")
	assert.Error(t, execute("employees", "entries", "abc"))
}

func TestRatesCommand(t *testing.T) {
	assert.NoError(t, execute("rates"))
	assert.NoError(t, execute("rates", "3750"))
	assert.Error(t, execute("rates", "0"))
}

func TestNeedsApp(t *testing.T) {
	assert.True(t, NeedsApp(nil))
	assert.True(t, NeedsApp([]string{"submit", "1", "Ada Lovelace", "5"}))
	assert.False(t, NeedsApp([]string{"rates", "100"}))
	assert.False(t, NeedsApp([]string{"summary", "--help"}))
	assert.False(t, NeedsApp([]string{"completion", "bash"}))
	assert.False(t, NeedsApp([]string{"__complete", "submit", ""}))
	assert.False(t, NeedsApp([]string{"__completeNoDesc", "re"}))
	assert.True(t, NeedsApp([]string{"summary", "completion"}))
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "$1.50", money(decimal.RequireFromString("1.5")))

	a := setupApp(t)
	a.Config.Payroll.CurrencySymbol = "€"
	assert.Equal(t, "€0.00", money(decimal.Zero))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "Zoë Ka...", truncate("Zoë Kassandra", 9))
}
