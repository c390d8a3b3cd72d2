package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Database settings
	Database DatabaseConfig `yaml:"database"`

	// Log file settings
	Log LogConfig `yaml:"log"`

	// Display settings for pay amounts
	Payroll PayrollConfig `yaml:"payroll"`

	// Values replaced by ApplyEnv, keyed by variable name; Save writes the file values back
	overrides map[string]envOverride
}

type envOverride struct {
	fileValue string
	envValue  string
}

type DatabaseConfig struct {
	Path string `yaml:"path"` // Path to SQLite database
}

type LogConfig struct {
	Path        string `yaml:"path"`        // Log file; the TUI owns stdout
	Level       string `yaml:"level"`       // debug, info, warn, error
	Development bool   `yaml:"development"` // Console encoding instead of JSON
}

type PayrollConfig struct {
	CurrencySymbol string `yaml:"currency_symbol"`
}

// configDir returns ~/.config/piecework
func configDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir unavailable
		homeDir = "."
	}
	return filepath.Join(homeDir, ".config", "piecework")
}

// DefaultConfigPath returns ~/.config/piecework/config.yaml
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	dir := configDir()

	return &Config{
		Database: DatabaseConfig{
			Path: filepath.Join(dir, "piecework.db"),
		},
		Log: LogConfig{
			Path:  filepath.Join(dir, "piecework.log"),
			Level: "info",
		},
		Payroll: PayrollConfig{
			CurrencySymbol: "$",
		},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't exist
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Keys missing from the file keep their defaults
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDefault loads from the default config path, then applies environment overrides
func LoadDefault() (*Config, error) {
	cfg, err := Load(DefaultConfigPath())
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// ApplyEnv overrides file settings with PIECEWORK_DB_PATH, PIECEWORK_LOG_PATH and PIECEWORK_LOG_LEVEL.
// Overrides last for this process only; Save keeps the file's own values.
func (c *Config) ApplyEnv() {
	for name, field := range c.envFields() {
		value := os.Getenv(name)
		if value == "" {
			continue
		}
		if c.overrides == nil {
			c.overrides = make(map[string]envOverride)
		}
		o, seen := c.overrides[name]
		if !seen {
			o.fileValue = *field
		}
		o.envValue = value
		c.overrides[name] = o
		*field = value
	}
}

func (c *Config) envFields() map[string]*string {
	return map[string]*string{
		"PIECEWORK_DB_PATH":   &c.Database.Path,
		"PIECEWORK_LOG_PATH":  &c.Log.Path,
		"PIECEWORK_LOG_LEVEL": &c.Log.Level,
	}
}

// persisted returns the config as it should be written: overridden fields get their
// file values back unless they were edited after the override was applied
func (c *Config) persisted() Config {
	out := *c
	out.overrides = nil
	for name, field := range out.envFields() {
		if o, ok := c.overrides[name]; ok && *field == o.envValue {
			*field = o.fileValue
		}
	}
	return out
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	out := c.persisted()
	data, err := yaml.Marshal(&out)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// EnsureDirectories creates the database and log directories
func (c *Config) EnsureDirectories() error {
	for _, p := range []string{c.Database.Path, c.Log.Path} {
		if p == "" {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
			return err
		}
	}
	return nil
}
