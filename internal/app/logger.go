package app

import (
	"fmt"

	"github.com/andy/piecework/internal/config"
	"go.uber.org/zap"
)

// NewLogger builds a file-backed logger. Stdout belongs to the TUI, so nothing is written there.
// The returned level controls the logger while it runs.
func NewLogger(cfg config.LogConfig) (*zap.Logger, zap.AtomicLevel, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	if cfg.Path == "" {
		return zap.NewNop(), level, nil
	}

	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = level
	zcfg.OutputPaths = []string{cfg.Path}
	zcfg.ErrorOutputPaths = []string{cfg.Path}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger.Named("piecework"), level, nil
}
