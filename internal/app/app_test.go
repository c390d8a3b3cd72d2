package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/andy/piecework/internal/config"
	"github.com/andy/piecework/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

type storedKeyring struct{ key string }

func (k *storedKeyring) GetKey() (string, error) {
	if k.key == "" {
		return "", errors.New("not found")
	}
	return k.key, nil
}
func (k *storedKeyring) SetKey(password string) error { k.key = password; return nil }
func (k *storedKeyring) DeleteKey() error             { k.key = ""; return nil }
func (k *storedKeyring) IsAvailable() bool            { return true }

func testConfig(t *testing.T) *config.Config {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Database.Path = filepath.Join(dir, "piecework.db")
	cfg.Log.Path = filepath.Join(dir, "piecework.log")
	cfg.Log.Level = "debug"
	require.NoError(t, cfg.EnsureDirectories())
	return cfg
}

func TestOpen_SubmitAndSummarize(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	a, err := Open(ctx, cfg, "test-key")
	require.NoError(t, err)

	_, entry, err := a.PayrollService.Submit(ctx, "42", "Ada Lovelace", "1250")
	require.NoError(t, err)
	assert.Equal(t, "30.00", entry.Pay.StringFixed(2))

	s, err := a.SummaryService.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, s.TotalWorkers)
	assert.Equal(t, int64(1250), s.TotalMessages)
	require.NoError(t, a.Close())

	// Data survives a reopen with the same key
	a, err = Open(ctx, cfg, "test-key")
	require.NoError(t, err)
	defer a.Close()
	s, err = a.SummaryService.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, "30.00", s.TotalPay.StringFixed(2))

	logData, err := os.ReadFile(cfg.Log.Path)
	require.NoError(t, err)
	assert.Contains(t, string(logData), "pay entry recorded")
}

func TestOpen_WrongKey(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	a, err := Open(ctx, cfg, "right")
	require.NoError(t, err)
	require.NoError(t, a.Close())

	_, err = Open(ctx, cfg, "wrong")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestNewLogger(t *testing.T) {
	logger, level, err := NewLogger(config.LogConfig{})
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.Equal(t, zapcore.InfoLevel, level.Level())

	_, _, err = NewLogger(config.LogConfig{Path: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
	assert.Error(t, err)
}

func TestSetLogLevel_ChangesRunningLogger(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	cfg.Log.Level = "info"

	a, err := Open(ctx, cfg, "test-key")
	require.NoError(t, err)
	defer a.Close()

	a.Logger.Debug("hidden before change")
	require.NoError(t, a.SetLogLevel("debug"))
	assert.Equal(t, "debug", a.Config.Log.Level)
	assert.True(t, a.Logger.Core().Enabled(zapcore.DebugLevel))
	a.Logger.Debug("shown after change")
	require.NoError(t, a.Logger.Sync())

	logData, err := os.ReadFile(cfg.Log.Path)
	require.NoError(t, err)
	assert.NotContains(t, string(logData), "hidden before change")
	assert.Contains(t, string(logData), "shown after change")

	assert.Error(t, a.SetLogLevel("loud"))
	assert.Equal(t, "debug", a.Config.Log.Level)
	assert.Equal(t, zapcore.DebugLevel, a.LogLevel.Level())
}

func TestDatabaseKey_UsesStoredKey(t *testing.T) {
	key, err := databaseKey(&storedKeyring{key: "stored"})
	require.NoError(t, err)
	assert.Equal(t, "stored", key)
}
