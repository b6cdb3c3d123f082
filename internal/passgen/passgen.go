// Package passgen generates random passwords from a character-class policy and
// classifies arbitrary passwords into a strength tier. It is stateless and has
// no dependency on storage.
package passgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/isdelr/passpocket-be/internal/vault"
)

const (
	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// MaxLength bounds generated passwords to keep request payloads sane.
const MaxLength = 512

// Options selects the length and character classes for a generated password.
type Options struct {
	Length  int  `json:"length"`
	Upper   bool `json:"uppercase"`
	Lower   bool `json:"lowercase"`
	Digits  bool `json:"numbers"`
	Symbols bool `json:"symbols"`
}

// Generate produces a password of exactly opts.Length characters, each drawn
// independently and uniformly from the pool of enabled character classes.
// With every class disabled the pool falls back to lowercase letters, so it
// is never empty.
func Generate(opts Options) (string, error) {
	if opts.Length <= 0 {
		return "", vault.NewValidationError("length", "must be a positive integer")
	}
	if opts.Length > MaxLength {
		return "", vault.NewValidationError("length", fmt.Sprintf("must be at most %d", MaxLength))
	}

	var pool string
	if opts.Upper {
		pool += upperChars
	}
	if opts.Lower {
		pool += lowerChars
	}
	if opts.Digits {
		pool += digitChars
	}
	if opts.Symbols {
		pool += symbolChars
	}
	if pool == "" {
		pool = lowerChars
	}

	buf := make([]byte, opts.Length)
	poolSize := big.NewInt(int64(len(pool)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, poolSize)
		if err != nil {
			return "", fmt.Errorf("failed to read random source: %w", err)
		}
		buf[i] = pool[n.Int64()]
	}
	return string(buf), nil
}

// Tier is a coarse password strength classification.
type Tier string

const (
	TierWeak   Tier = "Weak"
	TierFair   Tier = "Fair"
	TierGood   Tier = "Good"
	TierStrong Tier = "Strong"
)

// Strength is the result of scoring a password.
type Strength struct {
	Score int  `json:"score"`
	Tier  Tier `json:"tier"`
}

// EstimateStrength scores a password one point for each satisfied check:
// length thresholds 8, 12 and 16, plus presence of uppercase, lowercase,
// digit and non-alphanumeric characters. Maximum score is 7. Length is
// counted in characters, not bytes.
func EstimateStrength(password string) Strength {
	score := 0
	length := utf8.RuneCountInString(password)
	if length >= 8 {
		score++
	}
	if length >= 12 {
		score++
	}
	if length >= 16 {
		score++
	}
	if strings.ContainsAny(password, upperChars) {
		score++
	}
	if strings.ContainsAny(password, lowerChars) {
		score++
	}
	if strings.ContainsAny(password, digitChars) {
		score++
	}
	if containsNonAlphanumeric(password) {
		score++
	}

	var tier Tier
	switch {
	case score <= 2:
		tier = TierWeak
	case score <= 4:
		tier = TierFair
	case score == 5:
		tier = TierGood
	default:
		tier = TierStrong
	}
	return Strength{Score: score, Tier: tier}
}

func containsNonAlphanumeric(password string) bool {
	for _, r := range password {
		isAlnum := (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			return true
		}
	}
	return false
}
