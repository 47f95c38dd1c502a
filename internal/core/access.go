package core

import (
	"time"

	"github.com/sdupi-network/sdupi-token-core/internal/types"
)

// Owner-gated administrative operations. All of them remain available
// while the system is paused; unpause would otherwise be unreachable.

func (c *Core) requireOwner(caller types.Address) error {
	if caller != c.owner {
		return ErrUnauthorized
	}

	return nil
}

// pause and unpause are idempotent: repeating the current state succeeds
// without emitting a duplicate event.

func (c *Core) pause(caller types.Address) (*Receipt, error) {
	if err := c.requireOwner(caller); err != nil {
		return nil, err
	}

	receipt := newReceipt(types.OpPause)
	if !c.paused {
		c.paused = true
		receipt.addEvent(types.PausedEvent{By: caller})
	}

	return receipt, nil
}

func (c *Core) unpause(caller types.Address) (*Receipt, error) {
	if err := c.requireOwner(caller); err != nil {
		return nil, err
	}

	receipt := newReceipt(types.OpUnpause)
	if c.paused {
		c.paused = false
		receipt.addEvent(types.UnpausedEvent{By: caller})
	}

	return receipt, nil
}

// updatePool applies new reward parameters immediately: the lock period
// binds stakes created from now on, while the APY retroactively covers the
// unclaimed window of existing stakes because reward math always reads the
// pool's current APY. That retroactivity is deliberate, documented policy.
func (c *Core) updatePool(caller types.Address, apyPercent uint64, lockPeriod time.Duration) (*Receipt, error) {
	if err := c.requireOwner(caller); err != nil {
		return nil, err
	}
	if apyPercent > MaxAPYPercent || lockPeriod < 0 {
		return nil, ErrInvalidAmount
	}

	c.pool.APYPercent = apyPercent
	c.pool.LockPeriod = lockPeriod

	receipt := newReceipt(types.OpUpdatePool)
	receipt.addEvent(types.PoolUpdatedEvent{
		APYPercent:        apyPercent,
		LockPeriodSeconds: int64(lockPeriod / time.Second),
	})

	return receipt, nil
}

// setStakingActive gates new stake calls only; unstake and claimRewards on
// existing positions are unaffected.
func (c *Core) setStakingActive(caller types.Address, active bool) (*Receipt, error) {
	if err := c.requireOwner(caller); err != nil {
		return nil, err
	}

	receipt := newReceipt(types.OpSetStakingActive)
	if c.pool.Active != active {
		c.pool.Active = active
		receipt.addEvent(types.StakingActiveEvent{Active: active})
	}

	return receipt, nil
}

func (c *Core) transferOwnership(caller, newOwner types.Address) (*Receipt, error) {
	if err := c.requireOwner(caller); err != nil {
		return nil, err
	}
	if newOwner.IsZero() {
		return nil, ErrInvalidRecipient
	}

	previous := c.owner
	c.owner = newOwner

	receipt := newReceipt(types.OpTransferOwnership)
	receipt.addEvent(types.OwnershipTransferredEvent{
		PreviousOwner: previous,
		NewOwner:      newOwner,
	})

	return receipt, nil
}
