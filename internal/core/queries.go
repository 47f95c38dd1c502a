package core

import (
	"time"

	"cosmossdk.io/math"

	"github.com/sdupi-network/sdupi-token-core/internal/types"
)

// Read operations. None of them mutate state or take the reentrancy guard;
// cross-goroutine safety is the owning service's lock.

func (c *Core) Owner() types.Address {
	return c.owner
}

func (c *Core) Paused() bool {
	return c.paused
}

func (c *Core) TotalSupply() math.Int {
	return c.ledger.totalSupply
}

func (c *Core) BalanceOf(addr types.Address) math.Int {
	return c.ledger.balanceOf(addr)
}

// PoolInfo returns a copy of the pool aggregate.
func (c *Core) PoolInfo() Pool {
	return c.pool
}

// StakingInfo describes an account's stake position. For an account with
// no active stake it is zeroed with IsStaked false.
type StakingInfo struct {
	Account       types.Address
	Amount        math.Int
	StartTime     time.Time
	LockEndTime   time.Time
	CurrentReward math.Int
	IsStaked      bool
}

func (c *Core) StakingInfo(addr types.Address) StakingInfo {
	record := c.stakes.get(addr)
	if record == nil {
		return StakingInfo{
			Account:       addr,
			Amount:        math.ZeroInt(),
			CurrentReward: math.ZeroInt(),
		}
	}

	return StakingInfo{
		Account:       addr,
		Amount:        record.Amount,
		StartTime:     record.StartTime,
		LockEndTime:   record.LockEndTime(),
		CurrentReward: rewardAt(record, c.pool.APYPercent, c.now()),
		IsStaked:      true,
	}
}

// Stats aggregates the supply and staking totals. Circulating supply is
// total supply minus the escrowed principal held by the reserve account.
type Stats struct {
	TotalSupply       math.Int
	CirculatingSupply math.Int
	EscrowedSupply    math.Int
	TotalStaked       math.Int
	TotalRewardsPaid  math.Int
	ActiveStakes      int
	Accounts          int
}

func (c *Core) Stats() Stats {
	escrowed := c.ledger.balanceOf(EscrowAddress)

	return Stats{
		TotalSupply:       c.ledger.totalSupply,
		CirculatingSupply: c.ledger.totalSupply.Sub(escrowed),
		EscrowedSupply:    escrowed,
		TotalStaked:       c.pool.TotalStaked,
		TotalRewardsPaid:  c.pool.TotalRewardsPaid,
		ActiveStakes:      c.stakes.size(),
		Accounts:          c.ledger.accounts(),
	}
}
