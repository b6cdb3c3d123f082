// Package secrets provides optional at-rest encryption for stored password
// values. Without a configured master key the cipher is a passthrough and the
// store keeps plaintext, matching the legacy deployment.
package secrets

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"
)

// sealedPrefix marks encrypted column values so a vault created before a key
// was configured stays readable after one is.
const sealedPrefix = "enc:"

// SecretCipher seals and opens secret values with XChaCha20-Poly1305.
type SecretCipher struct {
	aead cipher.AEAD
}

// New builds a SecretCipher from a hex-encoded 32-byte key. An empty key
// returns a disabled cipher that stores values verbatim.
func New(hexKey string) (*SecretCipher, error) {
	if hexKey == "" {
		return &SecretCipher{}, nil
	}

	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("master key is not valid hex: %w", err)
	}
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("master key must be %d hex-encoded bytes, got %d", chacha20poly1305.KeySize, len(key))
	}

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cipher: %w", err)
	}
	return &SecretCipher{aead: aead}, nil
}

// Enabled reports whether a master key is configured.
func (c *SecretCipher) Enabled() bool {
	return c.aead != nil
}

// Seal encrypts a plaintext secret for storage.
func (c *SecretCipher) Seal(plaintext string) (string, error) {
	if c.aead == nil {
		return plaintext, nil
	}

	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to read random source: %w", err)
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return sealedPrefix + base64.StdEncoding.EncodeToString(sealed), nil
}

// Open decrypts a stored secret value. Values without the sealed prefix are
// legacy plaintext and pass through unchanged.
func (c *SecretCipher) Open(stored string) (string, error) {
	if !strings.HasPrefix(stored, sealedPrefix) {
		return stored, nil
	}
	if c.aead == nil {
		return "", fmt.Errorf("secret is encrypted but no master key is configured")
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(stored, sealedPrefix))
	if err != nil {
		return "", fmt.Errorf("malformed sealed secret: %w", err)
	}
	if len(raw) < chacha20poly1305.NonceSizeX {
		return "", fmt.Errorf("sealed secret is truncated")
	}

	nonce, ciphertext := raw[:chacha20poly1305.NonceSizeX], raw[chacha20poly1305.NonceSizeX:]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt secret: %w", err)
	}
	return string(plaintext), nil
}
