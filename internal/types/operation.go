package types

// OpKind labels the state-changing operations accepted by the core.
type OpKind string

const (
	OpTransfer          OpKind = "TRANSFER"
	OpMint              OpKind = "MINT"
	OpBurn              OpKind = "BURN"
	OpStake             OpKind = "STAKE"
	OpUnstake           OpKind = "UNSTAKE"
	OpClaimRewards      OpKind = "CLAIM_REWARDS"
	OpUpdatePool        OpKind = "UPDATE_POOL"
	OpSetStakingActive  OpKind = "SET_STAKING_ACTIVE"
	OpPause             OpKind = "PAUSE"
	OpUnpause           OpKind = "UNPAUSE"
	OpTransferOwnership OpKind = "TRANSFER_OWNERSHIP"
)

func (k OpKind) String() string {
	return string(k)
}

// OperationOutcome records whether an operation mutated state or was
// rejected with all state untouched.
type OperationOutcome string

const (
	OutcomeApplied  OperationOutcome = "APPLIED"
	OutcomeRejected OperationOutcome = "REJECTED"
)

func (o OperationOutcome) String() string {
	return string(o)
}
