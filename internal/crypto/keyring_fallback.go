//go:build !darwin

package crypto

import (
	"errors"
	"fmt"
	"os"
)

type fallbackKeyring struct{}

func newPlatformKeyring() Keyring {
	return &fallbackKeyring{}
}

// GetKey retrieves the encryption key from the PIECEWORK_DB_KEY environment variable
func (k *fallbackKeyring) GetKey() (string, error) {
	key := os.Getenv(EnvKeyName)
	if key == "" {
		return "", fmt.Errorf("%s environment variable not set", EnvKeyName)
	}

	return key, nil
}

// SetKey returns an error suggesting to set the environment variable
func (k *fallbackKeyring) SetKey(password string) error {
	if password == "" {
		return errors.New("password cannot be empty")
	}

	return fmt.Errorf("keyring not available on this platform: add %s=<your password> to the environment or a .env file", EnvKeyName)
}

// DeleteKey returns an error suggesting to remove the variable by hand
func (k *fallbackKeyring) DeleteKey() error {
	return fmt.Errorf("keyring not available on this platform: remove %s from the environment or .env file manually", EnvKeyName)
}

// IsAvailable checks if the PIECEWORK_DB_KEY environment variable is set
func (k *fallbackKeyring) IsAvailable() bool {
	return os.Getenv(EnvKeyName) != ""
}
