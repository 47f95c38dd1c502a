package core

import (
	"time"

	"cosmossdk.io/math"

	"github.com/sdupi-network/sdupi-token-core/internal/types"
)

// Decimals is the number of fractional decimal places of the token; all
// amounts everywhere are expressed in the smallest unit (10^-18 tokens).
const Decimals = 18

// EscrowAddress is the reserve account holding staked principal under core
// custody. It is an ordinary ledger account, so conservation stays a plain
// sum over balances: sum(balances) == total supply at every point.
const EscrowAddress types.Address = "0x0000000000000000000000000000000000000001"

// Pool defaults at genesis.
const (
	DefaultAPYPercent uint64        = 15
	DefaultLockPeriod time.Duration = 30 * 24 * time.Hour
)

// MaxAPYPercent caps the pool APY an owner can set. Reward math multiplies
// the principal by the APY as a signed 64-bit factor, so values past this
// cap would wrap negative.
const MaxAPYPercent uint64 = 1_000_000

var (
	// GenesisSupply is 100,000,000,000 whole tokens in smallest units.
	GenesisSupply = math.NewIntWithDecimal(100_000_000_000, Decimals)

	// MinStakeAmount and MaxStakeAmount bound a single stake, inclusive:
	// 1,000,000 and 10,000,000,000 whole tokens in smallest units.
	MinStakeAmount = math.NewIntWithDecimal(1_000_000, Decimals)
	MaxStakeAmount = math.NewIntWithDecimal(10_000_000_000, Decimals)
)
