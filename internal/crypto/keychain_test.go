package crypto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestKeychainKeyring_EnvironmentWins(t *testing.T) {
	keyring.MockInit()
	k := &keychainKeyring{}
	require.NoError(t, k.SetKey("from-keychain"))

	t.Setenv(EnvKeyName, "from-env")
	key, err := k.GetKey()
	require.NoError(t, err)
	assert.Equal(t, "from-env", key)
	assert.True(t, k.IsAvailable())

	t.Setenv(EnvKeyName, "")
	key, err = k.GetKey()
	require.NoError(t, err)
	assert.Equal(t, "from-keychain", key)
}

func TestKeychainKeyring_Missing(t *testing.T) {
	keyring.MockInit()
	t.Setenv(EnvKeyName, "")
	k := &keychainKeyring{}

	assert.False(t, k.IsAvailable())
	_, err := k.GetKey()
	assert.ErrorIs(t, err, keyring.ErrNotFound)
	assert.ErrorContains(t, err, EnvKeyName)

	assert.EqualError(t, k.SetKey(""), "password cannot be empty")
	require.NoError(t, k.SetKey("secret"))
	assert.True(t, k.IsAvailable())

	require.NoError(t, k.DeleteKey())
	assert.ErrorIs(t, k.DeleteKey(), keyring.ErrNotFound)
}

func TestKeychainKeyring_Unavailable(t *testing.T) {
	keyring.MockInitWithError(errors.New("no secret service"))
	t.Setenv(EnvKeyName, "")
	k := &keychainKeyring{}

	_, err := k.GetKey()
	assert.ErrorContains(t, err, "no secret service")
	assert.Error(t, k.SetKey("secret"))
	assert.False(t, k.IsAvailable())

	t.Setenv(EnvKeyName, "from-env")
	key, err := k.GetKey()
	require.NoError(t, err)
	assert.Equal(t, "from-env", key)
}

func TestNewKeyring_ReadsEnvironment(t *testing.T) {
	keyring.MockInit()
	t.Setenv(EnvKeyName, "hunter2")

	key, err := NewKeyring().GetKey()
	require.NoError(t, err)
	assert.Equal(t, "hunter2", key)
}
