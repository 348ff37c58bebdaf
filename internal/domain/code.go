package domain

import (
	"math/rand/v2"
)

const (
	// DefaultCodeLength is the length of generated short codes.
	DefaultCodeLength = 6

	codeAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// CodeGenerator produces candidate short codes.
type CodeGenerator func() string

// NewCodeGenerator returns a generator of lowercase base-36 codes of the
// given length. Non-positive lengths fall back to DefaultCodeLength.
func NewCodeGenerator(length int) CodeGenerator {
	if length <= 0 {
		length = DefaultCodeLength
	}
	return func() string {
		return RandomCode(length)
	}
}

// RandomCode returns length pseudo-random base-36 digits.
func RandomCode(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = codeAlphabet[rand.IntN(len(codeAlphabet))]
	}
	return string(b)
}

// IsBase36 reports whether s only contains lowercase base-36 digits.
func IsBase36(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}
