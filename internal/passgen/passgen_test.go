package passgen

import (
	"strings"
	"testing"

	"github.com/isdelr/passpocket-be/internal/vault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_LengthAndPool(t *testing.T) {
	opts := Options{Length: 16, Upper: true, Lower: true, Digits: true, Symbols: true}
	pool := upperChars + lowerChars + digitChars + symbolChars

	for i := 0; i < 20; i++ {
		password, err := Generate(opts)
		require.NoError(t, err)
		assert.Len(t, password, 16)
		for _, c := range password {
			assert.True(t, strings.ContainsRune(pool, c), "unexpected character %q", c)
		}
	}
}

func TestGenerate_SingleClass(t *testing.T) {
	password, err := Generate(Options{Length: 32, Digits: true})
	require.NoError(t, err)
	assert.Len(t, password, 32)
	for _, c := range password {
		assert.True(t, strings.ContainsRune(digitChars, c), "unexpected character %q", c)
	}
}

func TestGenerate_FallsBackToLowercase(t *testing.T) {
	password, err := Generate(Options{Length: 24})
	require.NoError(t, err)
	assert.Len(t, password, 24)
	for _, c := range password {
		assert.True(t, strings.ContainsRune(lowerChars, c), "unexpected character %q", c)
	}
}

func TestGenerate_RejectsNonPositiveLength(t *testing.T) {
	for _, length := range []int{0, -1} {
		_, err := Generate(Options{Length: length, Lower: true})
		require.Error(t, err)

		var validationErr *vault.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	}
}

func TestGenerate_RejectsExcessiveLength(t *testing.T) {
	_, err := Generate(Options{Length: MaxLength + 1, Lower: true})
	var validationErr *vault.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestEstimateStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		score    int
		tier     Tier
	}{
		{"short lowercase only", "aaaaaaa", 1, TierWeak},
		{"empty", "", 0, TierWeak},
		{"all classes length twelve", "Aa1!Aa1!Aa1!", 6, TierStrong},
		{"all classes length sixteen", "Aa1!Aa1!Aa1!Aa1!", 7, TierStrong},
		{"multibyte shorter than eight chars", "äääääää", 1, TierWeak},
		{"three classes mid length", "Abcdefgh1234", 5, TierGood},
		{"two classes short", "Abcdefg1", 4, TierFair},
		{"lowercase 16", "aaaaaaaaaaaaaaaa", 4, TierFair},
		{"unicode counts as symbol", "pässwörd", 3, TierFair},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateStrength(tt.password)
			assert.Equal(t, tt.score, got.Score)
			assert.Equal(t, tt.tier, got.Tier)
		})
	}
}
