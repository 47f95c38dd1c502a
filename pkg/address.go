package pkg

import (
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	addressPrefix = "0x"
	addressHexLen = 40
)

// NormalizeHexAddress validates a 0x-prefixed 20-byte hex account address
// and returns it lowercased. Mixed-case input is accepted; the canonical
// form stored and compared everywhere else is lowercase.
func NormalizeHexAddress(address string) (string, error) {
	lower := strings.ToLower(address)
	if !strings.HasPrefix(lower, addressPrefix) {
		return "", fmt.Errorf("address %q missing %s prefix", address, addressPrefix)
	}

	body := lower[len(addressPrefix):]
	if len(body) != addressHexLen {
		return "", fmt.Errorf("address %q has %d hex digits, want %d", address, len(body), addressHexLen)
	}

	if _, err := hex.DecodeString(body); err != nil {
		return "", fmt.Errorf("address %q is not valid hex: %w", address, err)
	}

	return addressPrefix + body, nil
}
