package core

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdupi-network/sdupi-token-core/internal/types"
)

const (
	testOwner types.Address = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	testAlice types.Address = "0xa11cea11cea11cea11cea11cea11cea11cea11ce"
	testBob   types.Address = "0xb0bb0bb0bb0bb0bb0bb0bb0bb0bb0bb0bb0bb0bb"
)

// whole converts whole tokens to smallest units.
func whole(n int64) math.Int {
	return math.NewIntWithDecimal(n, Decimals)
}

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1_700_000_000, 0).UTC()}
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func newTestCore(t *testing.T, opts ...Option) *Core {
	t.Helper()

	c, err := New(testOwner, opts...)
	require.NoError(t, err)

	return c
}

// requireConservation asserts sum(balances) == total supply; the escrow
// reserve is an ordinary balance, so staked principal is included.
func requireConservation(t *testing.T, c *Core) {
	t.Helper()

	state := c.Snapshot()
	sum := math.ZeroInt()
	for _, balance := range state.Balances {
		sum = sum.Add(balance)
	}
	require.True(
		t, sum.Equal(state.TotalSupply),
		"conservation violated: balances sum to %s, total supply is %s", sum, state.TotalSupply,
	)
}

func TestGenesis(t *testing.T) {
	c := newTestCore(t)

	assert.Equal(t, testOwner, c.Owner())
	assert.False(t, c.Paused())
	assert.True(t, c.TotalSupply().Equal(GenesisSupply))
	assert.True(t, c.BalanceOf(testOwner).Equal(GenesisSupply))

	pool := c.PoolInfo()
	assert.True(t, pool.Active)
	assert.Equal(t, DefaultAPYPercent, pool.APYPercent)
	assert.Equal(t, DefaultLockPeriod, pool.LockPeriod)
	assert.True(t, pool.TotalStaked.IsZero())
	assert.True(t, pool.TotalRewardsPaid.IsZero())

	requireConservation(t, c)
}

func TestGenesisNullOwner(t *testing.T) {
	_, err := New(types.ZeroAddress)
	require.Error(t, err)

	_, err = New("")
	require.Error(t, err)
}

func TestGenesisPoolOverrides(t *testing.T) {
	c := newTestCore(t,
		WithPoolParams(7, time.Second),
		WithStakingActive(false),
	)

	pool := c.PoolInfo()
	assert.Equal(t, uint64(7), pool.APYPercent)
	assert.Equal(t, time.Second, pool.LockPeriod)
	assert.False(t, pool.Active)
}

func TestTransferOwnership(t *testing.T) {
	c := newTestCore(t)

	_, err := c.Apply(TransferOwnershipOp{Caller: testAlice, NewOwner: testAlice})
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = c.Apply(TransferOwnershipOp{Caller: testOwner, NewOwner: types.ZeroAddress})
	require.ErrorIs(t, err, ErrInvalidRecipient)

	receipt, err := c.Apply(TransferOwnershipOp{Caller: testOwner, NewOwner: testAlice})
	require.NoError(t, err)
	require.Len(t, receipt.Events, 1)
	assert.Equal(t, types.OwnershipTransferredEvent{
		PreviousOwner: testOwner,
		NewOwner:      testAlice,
	}, receipt.Events[0])
	assert.Equal(t, testAlice, c.Owner())

	// The previous owner lost its privileges.
	_, err = c.Apply(PauseOp{Caller: testOwner})
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = c.Apply(PauseOp{Caller: testAlice})
	require.NoError(t, err)
}

func TestReentrancyRejected(t *testing.T) {
	clock := newFakeClock()
	c := newTestCore(t, WithClock(clock.Now))

	_, err := c.Apply(TransferOp{From: testOwner, To: testAlice, Amount: MinStakeAmount})
	require.NoError(t, err)

	// Crafted callback: on the escrow transfer of an in-progress stake,
	// try to unstake the same account.
	var hookErr error
	var hookCalls int
	c.SetHook(func(event types.Event) {
		if event.EventType() != types.EventTransfer {
			return
		}
		hookCalls++
		_, hookErr = c.Apply(UnstakeOp{Account: testAlice})
	})

	_, err = c.Apply(StakeOp{Account: testAlice, Amount: MinStakeAmount})
	require.NoError(t, err)

	require.Equal(t, 1, hookCalls)
	require.ErrorIs(t, hookErr, ErrReentrancyDetected)

	// The stake itself landed; the reentrant unstake did not.
	info := c.StakingInfo(testAlice)
	assert.True(t, info.IsStaked)
	assert.True(t, info.Amount.Equal(MinStakeAmount))
	requireConservation(t, c)
}

func TestHookObservesEventsInOrder(t *testing.T) {
	clock := newFakeClock()

	var seen []types.EventTypes
	c := newTestCore(t,
		WithClock(clock.Now),
		WithHook(func(event types.Event) {
			seen = append(seen, event.EventType())
		}),
	)

	_, err := c.Apply(StakeOp{Account: testOwner, Amount: MinStakeAmount})
	require.NoError(t, err)

	assert.Equal(t, []types.EventTypes{types.EventTransfer, types.EventStaked}, seen)
}

func TestSnapshotRoundTrip(t *testing.T) {
	clock := newFakeClock()
	c := newTestCore(t, WithClock(clock.Now))

	_, err := c.Apply(TransferOp{From: testOwner, To: testAlice, Amount: whole(2_000_000)})
	require.NoError(t, err)
	_, err = c.Apply(StakeOp{Account: testAlice, Amount: whole(1_500_000)})
	require.NoError(t, err)
	_, err = c.Apply(PauseOp{Caller: testOwner})
	require.NoError(t, err)

	state := c.Snapshot()

	restored, err := NewFromState(state, WithClock(clock.Now))
	require.NoError(t, err)

	assert.Equal(t, c.Owner(), restored.Owner())
	assert.Equal(t, c.Paused(), restored.Paused())
	assert.True(t, c.TotalSupply().Equal(restored.TotalSupply()))
	assert.True(t, c.BalanceOf(testAlice).Equal(restored.BalanceOf(testAlice)))
	assert.Equal(t, c.PoolInfo(), restored.PoolInfo())
	assert.Equal(t, c.StakingInfo(testAlice), restored.StakingInfo(testAlice))
	requireConservation(t, restored)

	// The restored stake keeps accruing and can be unstaked after the lock.
	clock.Advance(DefaultLockPeriod)
	receipt, err := restored.Apply(UnstakeOp{Account: testAlice})
	require.NoError(t, err)
	assert.True(t, receipt.Principal.Equal(whole(1_500_000)))
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	c := newTestCore(t)
	state := c.Snapshot()

	state.Balances[testAlice] = whole(1)
	state.TotalSupply = math.ZeroInt()

	assert.True(t, c.BalanceOf(testAlice).IsZero())
	assert.True(t, c.TotalSupply().Equal(GenesisSupply))
}

func TestNewFromStateRejectsCorruptState(t *testing.T) {
	clock := newFakeClock()

	base := func() *State {
		c := newTestCore(t, WithClock(clock.Now))
		_, err := c.Apply(TransferOp{From: testOwner, To: testAlice, Amount: whole(2_000_000)})
		require.NoError(t, err)
		_, err = c.Apply(StakeOp{Account: testAlice, Amount: whole(1_000_000)})
		require.NoError(t, err)

		return c.Snapshot()
	}

	testCases := []struct {
		name    string
		corrupt func(state *State)
	}{
		{
			name: "null owner",
			corrupt: func(state *State) {
				state.Owner = types.ZeroAddress
			},
		},
		{
			name: "negative balance",
			corrupt: func(state *State) {
				state.Balances[testBob] = math.NewInt(-1)
			},
		},
		{
			name: "conservation broken",
			corrupt: func(state *State) {
				state.TotalSupply = state.TotalSupply.Add(whole(1))
			},
		},
		{
			name: "pool total staked mismatch",
			corrupt: func(state *State) {
				state.Pool.TotalStaked = state.Pool.TotalStaked.Add(whole(1))
			},
		},
		{
			name: "inactive stake record",
			corrupt: func(state *State) {
				state.Stakes[testAlice].Active = false
			},
		},
		{
			name: "escrow below staked principal",
			corrupt: func(state *State) {
				escrowed := state.Balances[EscrowAddress]
				state.Balances[EscrowAddress] = escrowed.Sub(whole(1))
				state.Balances[testBob] = whole(1)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			state := base()
			tc.corrupt(state)

			_, err := NewFromState(state)
			require.Error(t, err)
		})
	}
}

func TestStatsAggregation(t *testing.T) {
	clock := newFakeClock()
	c := newTestCore(t, WithClock(clock.Now))

	_, err := c.Apply(TransferOp{From: testOwner, To: testAlice, Amount: whole(3_000_000)})
	require.NoError(t, err)
	_, err = c.Apply(StakeOp{Account: testAlice, Amount: whole(2_000_000)})
	require.NoError(t, err)

	stats := c.Stats()
	assert.True(t, stats.TotalSupply.Equal(GenesisSupply))
	assert.True(t, stats.EscrowedSupply.Equal(whole(2_000_000)))
	assert.True(t, stats.CirculatingSupply.Equal(GenesisSupply.Sub(whole(2_000_000))))
	assert.True(t, stats.TotalStaked.Equal(whole(2_000_000)))
	assert.True(t, stats.TotalRewardsPaid.IsZero())
	assert.Equal(t, 1, stats.ActiveStakes)
	// owner, alice, escrow
	assert.Equal(t, 3, stats.Accounts)
}
