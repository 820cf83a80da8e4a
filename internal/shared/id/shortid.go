// Package id provides cryptographically random identifier generation.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	digits = "0123456789"

	// DefaultLength is the default length for generated short IDs
	DefaultLength = 12
)

// Generate creates a random short ID with the specified length using Base62 encoding.
// The generated ID is cryptographically random and URL-safe.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}
	return fromAlphabet(alphabet, length)
}

// MustGenerate creates a random short ID and panics on error.
func MustGenerate(length int) string {
	id, err := Generate(length)
	if err != nil {
		panic(err)
	}
	return id
}

// GenerateDigits creates a random numeric string of the specified length.
// It is used for human-readable codes read aloud over support channels,
// such as ticket protocol numbers.
func GenerateDigits(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("digit length must be positive, got %d", length)
	}
	return fromAlphabet(digits, length)
}

// MustGenerateDigits creates a random numeric string and panics on error.
func MustGenerateDigits(length int) string {
	id, err := GenerateDigits(length)
	if err != nil {
		panic(err)
	}
	return id
}

func fromAlphabet(chars string, length int) (string, error) {
	result := make([]byte, length)
	charsLen := big.NewInt(int64(len(chars)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, charsLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = chars[num.Int64()]
	}

	return string(result), nil
}
