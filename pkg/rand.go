package pkg

import (
	"math/rand"
	"strings"
)

func RandString(n int) string {
	var builder strings.Builder
	builder.Grow(n)

	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	for range n {
		letter := letters[rand.Intn(len(letters))] //nolint:gosec
		builder.WriteByte(letter)
	}

	return builder.String()
}

// RandHexString returns n random lowercase hex digits. Not cryptographically
// secure; intended for test fixtures such as account addresses.
func RandHexString(n int) string {
	var builder strings.Builder
	builder.Grow(n)

	const digits = "0123456789abcdef"
	for range n {
		builder.WriteByte(digits[rand.Intn(len(digits))]) //nolint:gosec
	}

	return builder.String()
}
