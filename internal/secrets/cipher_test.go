package secrets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestDisabledCipher_Passthrough(t *testing.T) {
	cipher, err := New("")
	require.NoError(t, err)
	assert.False(t, cipher.Enabled())

	sealed, err := cipher.Seal("hunter2")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", sealed)

	opened, err := cipher.Open("hunter2")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", opened)
}

func TestSealOpen_RoundTrip(t *testing.T) {
	cipher, err := New(testKey)
	require.NoError(t, err)
	assert.True(t, cipher.Enabled())

	sealed, err := cipher.Seal("hunter2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sealed, "enc:"))
	assert.NotContains(t, sealed, "hunter2")

	opened, err := cipher.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", opened)
}

func TestOpen_LegacyPlaintextPassesThrough(t *testing.T) {
	cipher, err := New(testKey)
	require.NoError(t, err)

	opened, err := cipher.Open("stored-before-key-was-set")
	require.NoError(t, err)
	assert.Equal(t, "stored-before-key-was-set", opened)
}

func TestOpen_EncryptedWithoutKeyFails(t *testing.T) {
	enabled, err := New(testKey)
	require.NoError(t, err)
	sealed, err := enabled.Seal("hunter2")
	require.NoError(t, err)

	disabled, err := New("")
	require.NoError(t, err)
	_, err = disabled.Open(sealed)
	assert.Error(t, err)
}

func TestOpen_TamperedCiphertextFails(t *testing.T) {
	cipher, err := New(testKey)
	require.NoError(t, err)

	sealed, err := cipher.Seal("hunter2")
	require.NoError(t, err)

	tampered := sealed[:len(sealed)-4] + "AAA="
	_, err = cipher.Open(tampered)
	assert.Error(t, err)
}

func TestNew_RejectsBadKeys(t *testing.T) {
	_, err := New("not-hex")
	assert.Error(t, err)

	_, err = New("abcd")
	assert.Error(t, err)
}
