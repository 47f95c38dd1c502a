package types

import (
	"cosmossdk.io/math"
)

type EventTypes string

func (e EventTypes) String() string {
	return string(e)
}

const (
	EventTransfer       EventTypes = "token.v1.EventTransfer"
	EventMint           EventTypes = "token.v1.EventMint"
	EventBurn           EventTypes = "token.v1.EventBurn"
	EventStaked         EventTypes = "staking.v1.EventStaked"
	EventUnstaked       EventTypes = "staking.v1.EventUnstaked"
	EventRewardsClaimed EventTypes = "staking.v1.EventRewardsClaimed"
	EventPoolUpdated    EventTypes = "staking.v1.EventPoolUpdated"
	EventStakingActive  EventTypes = "staking.v1.EventStakingActiveSet"
)

const (
	EventPaused               EventTypes = "system.v1.EventPaused"
	EventUnpaused             EventTypes = "system.v1.EventUnpaused"
	EventOwnershipTransferred EventTypes = "system.v1.EventOwnershipTransferred"
)

// Event is the payload recorded for a single state change applied by the
// core. Events are emitted in application order and fan out to the journal
// and the configured sinks; amounts marshal as decimal strings.
type Event interface {
	EventType() EventTypes
}

type TransferEvent struct {
	From   Address  `json:"from"`
	To     Address  `json:"to"`
	Amount math.Int `json:"amount"`
}

func (TransferEvent) EventType() EventTypes { return EventTransfer }

type MintEvent struct {
	To     Address  `json:"to"`
	Amount math.Int `json:"amount"`
}

func (MintEvent) EventType() EventTypes { return EventMint }

type BurnEvent struct {
	From   Address  `json:"from"`
	Amount math.Int `json:"amount"`
}

func (BurnEvent) EventType() EventTypes { return EventBurn }

type StakedEvent struct {
	Account    Address  `json:"account"`
	Amount     math.Int `json:"amount"`
	UnlockTime int64    `json:"unlock_time"`
}

func (StakedEvent) EventType() EventTypes { return EventStaked }

type UnstakedEvent struct {
	Account   Address  `json:"account"`
	Principal math.Int `json:"principal"`
	Reward    math.Int `json:"reward"`
}

func (UnstakedEvent) EventType() EventTypes { return EventUnstaked }

type RewardsClaimedEvent struct {
	Account Address  `json:"account"`
	Reward  math.Int `json:"reward"`
}

func (RewardsClaimedEvent) EventType() EventTypes { return EventRewardsClaimed }

type PoolUpdatedEvent struct {
	APYPercent        uint64 `json:"apy_percent"`
	LockPeriodSeconds int64  `json:"lock_period_seconds"`
}

func (PoolUpdatedEvent) EventType() EventTypes { return EventPoolUpdated }

type StakingActiveEvent struct {
	Active bool `json:"active"`
}

func (StakingActiveEvent) EventType() EventTypes { return EventStakingActive }

type PausedEvent struct {
	By Address `json:"by"`
}

func (PausedEvent) EventType() EventTypes { return EventPaused }

type UnpausedEvent struct {
	By Address `json:"by"`
}

func (UnpausedEvent) EventType() EventTypes { return EventUnpaused }

type OwnershipTransferredEvent struct {
	PreviousOwner Address `json:"previous_owner"`
	NewOwner      Address `json:"new_owner"`
}

func (OwnershipTransferredEvent) EventType() EventTypes { return EventOwnershipTransferred }
