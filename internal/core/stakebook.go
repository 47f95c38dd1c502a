package core

import (
	"cosmossdk.io/math"

	"github.com/sdupi-network/sdupi-token-core/internal/types"
)

// stakeBook owns the per-account stake records. A present record is always
// active; unstaking deletes it, so single-active-stake-per-account is
// enforced by map membership.
type stakeBook struct {
	records map[types.Address]*StakeRecord
}

func newStakeBook() *stakeBook {
	return &stakeBook{
		records: make(map[types.Address]*StakeRecord),
	}
}

func (b *stakeBook) get(addr types.Address) *StakeRecord {
	return b.records[addr]
}

func (b *stakeBook) put(addr types.Address, record *StakeRecord) {
	b.records[addr] = record
}

func (b *stakeBook) remove(addr types.Address) {
	delete(b.records, addr)
}

func (b *stakeBook) size() int {
	return len(b.records)
}

func (c *Core) stake(account types.Address, amount math.Int) (*Receipt, error) {
	if !c.pool.Active {
		return nil, ErrStakingInactive
	}
	if amount.IsNil() || amount.LT(MinStakeAmount) || amount.GT(MaxStakeAmount) {
		return nil, ErrAmountOutOfRange
	}
	if c.ledger.balanceOf(account).LT(amount) {
		return nil, ErrInsufficientBalance
	}
	if c.stakes.get(account) != nil {
		return nil, ErrAlreadyStaked
	}
	// The escrow move is a balance mutation, so it follows the pause gate.
	if c.paused {
		return nil, ErrSystemPaused
	}

	if err := c.ledger.move(account, EscrowAddress, amount); err != nil {
		return nil, err
	}

	now := c.now()
	record := &StakeRecord{
		Amount:       amount,
		StartTime:    now,
		LockPeriod:   c.pool.LockPeriod,
		SnapshotTime: now,
		Active:       true,
	}
	c.stakes.put(account, record)
	c.pool.TotalStaked = c.pool.TotalStaked.Add(amount)

	receipt := newReceipt(types.OpStake)
	receipt.addEvent(types.TransferEvent{From: account, To: EscrowAddress, Amount: amount})
	receipt.addEvent(types.StakedEvent{
		Account:    account,
		Amount:     amount,
		UnlockTime: record.LockEndTime().Unix(),
	})

	return receipt, nil
}

func (c *Core) unstake(account types.Address) (*Receipt, error) {
	record := c.stakes.get(account)
	if record == nil {
		return nil, ErrNoActiveStake
	}

	now := c.now()
	// Succeeds exactly at and after start_time + lock_period.
	if now.Before(record.LockEndTime()) {
		return nil, ErrLockNotElapsed
	}
	if c.paused {
		return nil, ErrSystemPaused
	}

	reward := rewardAt(record, c.pool.APYPercent, now)

	// The escrow move is the only fallible step; it runs before any other
	// mutation so a failure leaves all state untouched. It cannot fail
	// while escrow conservation holds.
	if err := c.ledger.move(EscrowAddress, account, record.Amount); err != nil {
		return nil, err
	}

	c.stakes.remove(account)
	c.pool.TotalStaked = c.pool.TotalStaked.Sub(record.Amount)
	c.pool.TotalRewardsPaid = c.pool.TotalRewardsPaid.Add(reward)

	receipt := newReceipt(types.OpUnstake)
	receipt.addEvent(types.TransferEvent{From: EscrowAddress, To: account, Amount: record.Amount})

	if reward.IsPositive() {
		c.ledger.mint(account, reward)
		receipt.addEvent(types.MintEvent{To: account, Amount: reward})
	}
	receipt.addEvent(types.UnstakedEvent{
		Account:   account,
		Principal: record.Amount,
		Reward:    reward,
	})
	receipt.Principal = record.Amount
	receipt.Reward = reward

	return receipt, nil
}

func (c *Core) claimRewards(account types.Address) (*Receipt, error) {
	record := c.stakes.get(account)
	if record == nil {
		return nil, ErrNoActiveStake
	}

	now := c.now()
	reward := rewardAt(record, c.pool.APYPercent, now)
	if !reward.IsPositive() {
		return nil, ErrNoRewardsAvailable
	}
	if c.paused {
		return nil, ErrSystemPaused
	}

	c.ledger.mint(account, reward)
	// Future rewards accrue only on the window after this claim.
	record.SnapshotTime = now
	c.pool.TotalRewardsPaid = c.pool.TotalRewardsPaid.Add(reward)

	receipt := newReceipt(types.OpClaimRewards)
	receipt.addEvent(types.MintEvent{To: account, Amount: reward})
	receipt.addEvent(types.RewardsClaimedEvent{Account: account, Reward: reward})
	receipt.Reward = reward

	return receipt, nil
}
