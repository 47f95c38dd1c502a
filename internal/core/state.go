package core

import (
	"fmt"
	"time"

	"cosmossdk.io/math"

	"github.com/sdupi-network/sdupi-token-core/internal/types"
)

// StakeRecord is an account's single active stake. LockPeriod is frozen at
// stake creation from the pool's lock period then in force; later pool
// updates do not reopen or shorten an existing lock. SnapshotTime advances
// on each claim so rewards accrue only on the unclaimed window.
type StakeRecord struct {
	Amount       math.Int
	StartTime    time.Time
	LockPeriod   time.Duration
	SnapshotTime time.Time
	Active       bool
}

// LockEndTime is the first instant at which unstaking succeeds.
func (r *StakeRecord) LockEndTime() time.Time {
	return r.StartTime.Add(r.LockPeriod)
}

func (r *StakeRecord) clone() *StakeRecord {
	cp := *r
	return &cp
}

// Pool is the single global aggregate of all active stakes and the
// reward-payout parameters.
type Pool struct {
	TotalStaked      math.Int
	TotalRewardsPaid math.Int
	APYPercent       uint64
	LockPeriod       time.Duration
	Active           bool
}

// State is a deep snapshot of the full core state, used for persistence,
// export and restore.
type State struct {
	Owner       types.Address
	Paused      bool
	TotalSupply math.Int
	Balances    map[types.Address]math.Int
	Stakes      map[types.Address]*StakeRecord
	Pool        Pool
}

// Validate checks structural and conservation invariants of a snapshot
// before it is allowed to seed a core instance.
func (s *State) Validate() error {
	if s.Owner.IsZero() {
		return fmt.Errorf("owner is the null address")
	}
	if s.TotalSupply.IsNil() || s.TotalSupply.IsNegative() {
		return fmt.Errorf("total supply is nil or negative")
	}
	if s.Pool.TotalStaked.IsNil() || s.Pool.TotalRewardsPaid.IsNil() {
		return fmt.Errorf("pool totals are nil")
	}
	if s.Pool.LockPeriod < 0 {
		return fmt.Errorf("pool lock period is negative")
	}

	balanceSum := math.ZeroInt()
	for addr, balance := range s.Balances {
		if balance.IsNil() || balance.IsNegative() {
			return fmt.Errorf("balance of %s is nil or negative", addr)
		}
		balanceSum = balanceSum.Add(balance)
	}
	if !balanceSum.Equal(s.TotalSupply) {
		return fmt.Errorf(
			"conservation violated: balances sum to %s, total supply is %s",
			balanceSum, s.TotalSupply,
		)
	}

	stakedSum := math.ZeroInt()
	for addr, record := range s.Stakes {
		if record == nil || record.Amount.IsNil() || !record.Amount.IsPositive() {
			return fmt.Errorf("stake record of %s has no positive amount", addr)
		}
		if !record.Active {
			return fmt.Errorf("stake record of %s is not active", addr)
		}
		if record.LockPeriod < 0 {
			return fmt.Errorf("stake record of %s has negative lock period", addr)
		}
		stakedSum = stakedSum.Add(record.Amount)
	}
	if !stakedSum.Equal(s.Pool.TotalStaked) {
		return fmt.Errorf(
			"pool total staked %s does not match stake records sum %s",
			s.Pool.TotalStaked, stakedSum,
		)
	}

	escrowed, ok := s.Balances[EscrowAddress]
	if !ok {
		escrowed = math.ZeroInt()
	}
	if escrowed.LT(stakedSum) {
		return fmt.Errorf(
			"escrow balance %s is below staked principal %s",
			escrowed, stakedSum,
		)
	}

	return nil
}

// Clone returns a deep copy; mutating the copy never touches the original.
func (s *State) Clone() *State {
	balances := make(map[types.Address]math.Int, len(s.Balances))
	for addr, balance := range s.Balances {
		balances[addr] = balance
	}

	stakes := make(map[types.Address]*StakeRecord, len(s.Stakes))
	for addr, record := range s.Stakes {
		stakes[addr] = record.clone()
	}

	return &State{
		Owner:       s.Owner,
		Paused:      s.Paused,
		TotalSupply: s.TotalSupply,
		Balances:    balances,
		Stakes:      stakes,
		Pool:        s.Pool,
	}
}
