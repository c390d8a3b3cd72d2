package crypto

import (
	"errors"
	"fmt"
	"os"

	"github.com/zalando/go-keyring"
)

// keychainKeyring keeps the ledger key in the system keyring. PIECEWORK_DB_KEY,
// from the environment or .env, takes precedence so scripted runs never touch the keyring.
type keychainKeyring struct{}

func (k *keychainKeyring) GetKey() (string, error) {
	if key := os.Getenv(EnvKeyName); key != "" {
		return key, nil
	}

	key, err := keyring.Get(ServiceName, KeyName)
	switch {
	case errors.Is(err, keyring.ErrNotFound):
		return "", fmt.Errorf("no ledger key in the system keyring and %s is not set: %w", EnvKeyName, err)
	case err != nil:
		return "", fmt.Errorf("failed to read ledger key from the system keyring: %w", err)
	case key == "":
		return "", errors.New("ledger key in the system keyring is empty")
	}
	return key, nil
}

func (k *keychainKeyring) SetKey(password string) error {
	if password == "" {
		return errors.New("password cannot be empty")
	}
	if err := keyring.Set(ServiceName, KeyName, password); err != nil {
		return fmt.Errorf("failed to store ledger key in the system keyring: %w", err)
	}
	return nil
}

// DeleteKey removes the stored key; a key supplied through the environment is left alone
func (k *keychainKeyring) DeleteKey() error {
	err := keyring.Delete(ServiceName, KeyName)
	if errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("no ledger key in the system keyring: %w", err)
	}
	if err != nil {
		return fmt.Errorf("failed to delete ledger key from the system keyring: %w", err)
	}
	return nil
}

// IsAvailable reports whether a key can be had without prompting: the environment
// supplies one, or the keyring already holds one
func (k *keychainKeyring) IsAvailable() bool {
	if os.Getenv(EnvKeyName) != "" {
		return true
	}
	_, err := keyring.Get(ServiceName, KeyName)
	return err == nil
}
