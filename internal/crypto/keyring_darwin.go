//go:build darwin

package crypto

// macOS always has a Keychain
func newPlatformKeyring() Keyring {
	return &keychainKeyring{}
}
