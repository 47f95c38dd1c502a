package core

import (
	"fmt"
	"time"

	"cosmossdk.io/math"

	"github.com/sdupi-network/sdupi-token-core/internal/types"
)

// Hook observes events synchronously inside the guarded section of Apply.
// A hook that calls back into Apply is rejected with ErrReentrancyDetected;
// this is the escrow-then-external-call surface the guard exists for.
type Hook func(event types.Event)

// Core is the token and staking state machine. It is strictly serialized:
// it performs no I/O, has no internal suspension points, and is not safe
// for concurrent use — the owning service holds a single lock around it.
type Core struct {
	owner  types.Address
	paused bool

	ledger *ledger
	stakes *stakeBook
	pool   Pool

	now  func() time.Time
	hook Hook

	// entered guards against reentrant Apply calls from hooks. A plain
	// bool suffices under the single-writer discipline.
	entered bool
}

type Option func(*Core)

// WithClock overrides the time source; tests drive accrual with it.
func WithClock(now func() time.Time) Option {
	return func(c *Core) {
		c.now = now
	}
}

func WithHook(hook Hook) Option {
	return func(c *Core) {
		c.hook = hook
	}
}

// WithPoolParams overrides the genesis pool parameters.
func WithPoolParams(apyPercent uint64, lockPeriod time.Duration) Option {
	return func(c *Core) {
		c.pool.APYPercent = apyPercent
		c.pool.LockPeriod = lockPeriod
	}
}

func WithStakingActive(active bool) Option {
	return func(c *Core) {
		c.pool.Active = active
	}
}

// New creates a core at genesis: the full supply minted to the owner, pool
// at default parameters and active, system not paused.
func New(owner types.Address, opts ...Option) (*Core, error) {
	if owner.IsZero() {
		return nil, fmt.Errorf("genesis owner is the null address")
	}

	c := &Core{
		owner:  owner,
		ledger: newLedger(),
		stakes: newStakeBook(),
		pool: Pool{
			TotalStaked:      math.ZeroInt(),
			TotalRewardsPaid: math.ZeroInt(),
			APYPercent:       DefaultAPYPercent,
			LockPeriod:       DefaultLockPeriod,
			Active:           true,
		},
		now: time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}
	if c.pool.LockPeriod < 0 {
		return nil, fmt.Errorf("genesis lock period is negative")
	}

	c.ledger.mint(owner, GenesisSupply)

	return c, nil
}

// NewFromState restores a core from a validated snapshot.
func NewFromState(state *State, opts ...Option) (*Core, error) {
	if err := state.Validate(); err != nil {
		return nil, fmt.Errorf("invalid state: %w", err)
	}

	state = state.Clone()
	c := &Core{
		owner:  state.Owner,
		paused: state.Paused,
		ledger: &ledger{
			balances:    state.Balances,
			totalSupply: state.TotalSupply,
		},
		stakes: &stakeBook{records: state.Stakes},
		pool:   state.Pool,
		now:    time.Now,
	}

	// Zero balances may appear in hand-built snapshots; the ledger keeps
	// only positive entries.
	for addr, balance := range c.ledger.balances {
		if balance.IsZero() {
			delete(c.ledger.balances, addr)
		}
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SetHook installs the event hook. Not safe to call concurrently with Apply.
func (c *Core) SetHook(hook Hook) {
	c.hook = hook
}

// Apply dispatches one operation. Either the operation fully applies and
// its receipt reports the emitted events, or it fails with a single error
// kind and no state changes. Hooks run inside the guarded section, so a
// hook calling back into Apply fails with ErrReentrancyDetected.
func (c *Core) Apply(op Operation) (*Receipt, error) {
	if c.entered {
		return nil, ErrReentrancyDetected
	}
	c.entered = true
	defer func() { c.entered = false }()

	receipt, err := op.apply(c)
	if err != nil {
		return nil, err
	}

	if c.hook != nil {
		for _, event := range receipt.Events {
			c.hook(event)
		}
	}

	return receipt, nil
}

// Snapshot returns a deep copy of the full state; the caller may hold it
// across later operations.
func (c *Core) Snapshot() *State {
	state := &State{
		Owner:       c.owner,
		Paused:      c.paused,
		TotalSupply: c.ledger.totalSupply,
		Balances:    c.ledger.balances,
		Stakes:      c.stakes.records,
		Pool:        c.pool,
	}

	return state.Clone()
}
