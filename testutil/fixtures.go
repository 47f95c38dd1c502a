package testutil

import (
	"math/rand"

	"cosmossdk.io/math"
	"github.com/sdupi-network/sdupi-token-core/internal/core"
	"github.com/sdupi-network/sdupi-token-core/internal/types"
	"github.com/sdupi-network/sdupi-token-core/pkg"
)

// RandomAddress returns a well-formed random ledger address.
func RandomAddress() types.Address {
	return types.Address("0x" + pkg.RandHexString(40))
}

// RandomAmount returns a random whole-token amount between 1 and maxWhole
// tokens, expressed in base units.
func RandomAmount(maxWhole int64) math.Int {
	whole := rand.Int63n(maxWhole) + 1 //nolint:gosec
	return math.NewIntWithDecimal(whole, core.Decimals)
}
