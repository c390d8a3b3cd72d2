package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"syscall"

	"github.com/andy/piecework/internal/config"
	"github.com/andy/piecework/internal/crypto"
	"github.com/andy/piecework/internal/db"
	"github.com/andy/piecework/internal/repository"
	"github.com/andy/piecework/internal/service"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// App is the dependency injection container for all application components
type App struct {
	Config   *config.Config
	DB       *db.DB
	Logger   *zap.Logger
	LogLevel zap.AtomicLevel

	// Repositories
	EmployeeRepo repository.EmployeeRepository
	LedgerRepo   repository.LedgerRepository

	// Services
	PayrollService service.PayrollService
	SummaryService service.SummaryService
}

// New creates a new App instance, initializing all dependencies
// It handles:
// 1. Loading .env and config
// 2. Getting encryption key from keyring
// 3. Opening database
// 4. Running migrations
// 5. Creating repositories and services
func New(ctx context.Context) (*App, error) {
	// .env is optional; variables already set in the environment win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewWithConfig(ctx, cfg)
}

// NewWithConfig creates an App with a provided config (useful for testing)
func NewWithConfig(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	password, err := databaseKey(crypto.NewKeyring())
	if err != nil {
		return nil, err
	}

	return Open(ctx, cfg, password)
}

// Open wires the app against an explicit database key, bypassing the keyring
func Open(ctx context.Context, cfg *config.Config, password string) (*App, error) {
	logger, level, err := NewLogger(cfg.Log)
	if err != nil {
		return nil, err
	}

	database, err := db.Open(cfg.Database.Path, password)
	if err != nil {
		logger.Error("failed to open database", zap.String("path", cfg.Database.Path), zap.Error(err))
		_ = logger.Sync()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := database.RunMigrations(); err != nil {
		database.Close()
		logger.Error("failed to run migrations", zap.Error(err))
		_ = logger.Sync()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	employeeRepo := repository.NewEmployeeRepo(database)
	ledgerRepo := repository.NewLedgerRepo(database)

	payrollService := service.NewPayrollService(employeeRepo, ledgerRepo, logger)
	summaryService := service.NewSummaryService(employeeRepo, ledgerRepo)

	logger.Debug("app initialized", zap.String("database", cfg.Database.Path))

	return &App{
		Config:         cfg,
		DB:             database,
		Logger:         logger,
		LogLevel:       level,
		EmployeeRepo:   employeeRepo,
		LedgerRepo:     ledgerRepo,
		PayrollService: payrollService,
		SummaryService: summaryService,
	}, nil
}

// Close cleanly shuts down the application
func (a *App) Close() error {
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

// SaveConfig saves the current configuration to disk
func (a *App) SaveConfig() error {
	return a.Config.Save(config.DefaultConfigPath())
}

// SetLogLevel changes the configured level and the running logger's level together
func (a *App) SetLogLevel(level string) error {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	a.Config.Log.Level = level
	a.LogLevel.SetLevel(l)
	a.Logger.Info("log level changed", zap.Stringer("level", l))
	return nil
}

// databaseKey returns the stored key, or prompts for a new one on first run
func databaseKey(keyring crypto.Keyring) (string, error) {
	password, err := keyring.GetKey()
	if err == nil {
		return password, nil
	}

	fmt.Println("Setting up database encryption for the first time...")
	password, err = promptForPassword()
	if err != nil {
		return "", fmt.Errorf("failed to set password: %w", err)
	}

	if err := keyring.SetKey(password); err != nil {
		return "", fmt.Errorf("failed to store encryption key: %w", err)
	}
	return password, nil
}

// promptForPassword prompts user for a new database password (first run)
func promptForPassword() (string, error) {
	fmt.Println()
	fmt.Println("The payroll ledger will be encrypted with a password.")
	fmt.Println("This password will be stored securely in your system keyring.")
	fmt.Println()
	fmt.Print("Enter a password for database encryption: ")

	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if len(password) == 0 {
		return "", fmt.Errorf("password cannot be empty")
	}

	fmt.Print("Confirm password: ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read confirmation: %w", err)
	}

	if string(password) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}

	fmt.Println()
	fmt.Println("✓ Database encryption configured successfully")
	fmt.Println()

	return string(password), nil
}
