package core

import (
	"time"

	"cosmossdk.io/math"

	"github.com/sdupi-network/sdupi-token-core/internal/types"
)

// Operation is the typed surface of the core: one variant per mutating
// operation, dispatched through Core.Apply. The apply method is unexported
// so the set of variants is sealed to this package.
type Operation interface {
	Kind() types.OpKind
	CallerAddress() types.Address
	apply(c *Core) (*Receipt, error)
}

// Receipt reports the effect of an applied operation: the events emitted in
// application order plus the derived outputs (returned principal, minted
// reward) where the operation has them.
type Receipt struct {
	Kind      types.OpKind
	Events    []types.Event
	Principal math.Int
	Reward    math.Int
}

func newReceipt(kind types.OpKind) *Receipt {
	return &Receipt{
		Kind:      kind,
		Principal: math.ZeroInt(),
		Reward:    math.ZeroInt(),
	}
}

func (r *Receipt) addEvent(event types.Event) {
	r.Events = append(r.Events, event)
}

type TransferOp struct {
	From   types.Address
	To     types.Address
	Amount math.Int
}

func (op TransferOp) Kind() types.OpKind           { return types.OpTransfer }
func (op TransferOp) CallerAddress() types.Address { return op.From }

func (op TransferOp) apply(c *Core) (*Receipt, error) {
	return c.transfer(op.From, op.To, op.Amount)
}

type MintOp struct {
	Caller types.Address
	To     types.Address
	Amount math.Int
}

func (op MintOp) Kind() types.OpKind           { return types.OpMint }
func (op MintOp) CallerAddress() types.Address { return op.Caller }

func (op MintOp) apply(c *Core) (*Receipt, error) {
	return c.mint(op.Caller, op.To, op.Amount)
}

type BurnOp struct {
	Caller types.Address
	Amount math.Int
}

func (op BurnOp) Kind() types.OpKind           { return types.OpBurn }
func (op BurnOp) CallerAddress() types.Address { return op.Caller }

func (op BurnOp) apply(c *Core) (*Receipt, error) {
	return c.burn(op.Caller, op.Amount)
}

type StakeOp struct {
	Account types.Address
	Amount  math.Int
}

func (op StakeOp) Kind() types.OpKind           { return types.OpStake }
func (op StakeOp) CallerAddress() types.Address { return op.Account }

func (op StakeOp) apply(c *Core) (*Receipt, error) {
	return c.stake(op.Account, op.Amount)
}

type UnstakeOp struct {
	Account types.Address
}

func (op UnstakeOp) Kind() types.OpKind           { return types.OpUnstake }
func (op UnstakeOp) CallerAddress() types.Address { return op.Account }

func (op UnstakeOp) apply(c *Core) (*Receipt, error) {
	return c.unstake(op.Account)
}

type ClaimRewardsOp struct {
	Account types.Address
}

func (op ClaimRewardsOp) Kind() types.OpKind           { return types.OpClaimRewards }
func (op ClaimRewardsOp) CallerAddress() types.Address { return op.Account }

func (op ClaimRewardsOp) apply(c *Core) (*Receipt, error) {
	return c.claimRewards(op.Account)
}

type UpdatePoolOp struct {
	Caller     types.Address
	APYPercent uint64
	LockPeriod time.Duration
}

func (op UpdatePoolOp) Kind() types.OpKind           { return types.OpUpdatePool }
func (op UpdatePoolOp) CallerAddress() types.Address { return op.Caller }

func (op UpdatePoolOp) apply(c *Core) (*Receipt, error) {
	return c.updatePool(op.Caller, op.APYPercent, op.LockPeriod)
}

type SetStakingActiveOp struct {
	Caller types.Address
	Active bool
}

func (op SetStakingActiveOp) Kind() types.OpKind           { return types.OpSetStakingActive }
func (op SetStakingActiveOp) CallerAddress() types.Address { return op.Caller }

func (op SetStakingActiveOp) apply(c *Core) (*Receipt, error) {
	return c.setStakingActive(op.Caller, op.Active)
}

type PauseOp struct {
	Caller types.Address
}

func (op PauseOp) Kind() types.OpKind           { return types.OpPause }
func (op PauseOp) CallerAddress() types.Address { return op.Caller }

func (op PauseOp) apply(c *Core) (*Receipt, error) {
	return c.pause(op.Caller)
}

type UnpauseOp struct {
	Caller types.Address
}

func (op UnpauseOp) Kind() types.OpKind           { return types.OpUnpause }
func (op UnpauseOp) CallerAddress() types.Address { return op.Caller }

func (op UnpauseOp) apply(c *Core) (*Receipt, error) {
	return c.unpause(op.Caller)
}

type TransferOwnershipOp struct {
	Caller   types.Address
	NewOwner types.Address
}

func (op TransferOwnershipOp) Kind() types.OpKind           { return types.OpTransferOwnership }
func (op TransferOwnershipOp) CallerAddress() types.Address { return op.Caller }

func (op TransferOwnershipOp) apply(c *Core) (*Receipt, error) {
	return c.transferOwnership(op.Caller, op.NewOwner)
}
