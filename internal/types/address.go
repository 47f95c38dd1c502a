package types

import (
	"github.com/sdupi-network/sdupi-token-core/pkg"
)

// Address identifies a ledger account: "0x" followed by 40 hex digits,
// stored lowercase. The zero value "" and ZeroAddress are both treated as
// the null address.
type Address string

// ZeroAddress is the null account. It is never a valid recipient or owner;
// burns conceptually send to it and it reports a zero balance.
const ZeroAddress Address = "0x0000000000000000000000000000000000000000"

// NewAddress parses and normalizes a 0x-prefixed hex address.
func NewAddress(address string) (Address, error) {
	normalized, err := pkg.NormalizeHexAddress(address)
	if err != nil {
		return "", err
	}

	return Address(normalized), nil
}

func (a Address) String() string {
	return string(a)
}

// IsZero reports whether the address is the null account.
func (a Address) IsZero() bool {
	return a == "" || a == ZeroAddress
}
