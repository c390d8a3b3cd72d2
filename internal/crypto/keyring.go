package crypto

// Keyring provides secure key storage abstraction
type Keyring interface {
	GetKey() (string, error)
	SetKey(password string) error
	DeleteKey() error
	IsAvailable() bool
}

const (
	ServiceName = "piecework"
	KeyName     = "ledger-encryption-key"

	// EnvKeyName holds the database key where no system keyring is available.
	// A .env file in the working directory is loaded into the environment at startup.
	EnvKeyName = "PIECEWORK_DB_KEY"
)

// NewKeyring returns the best available keyring implementation
func NewKeyring() Keyring {
	return newPlatformKeyring()
}
