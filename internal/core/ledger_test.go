package core

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdupi-network/sdupi-token-core/internal/types"
)

func TestTransfer(t *testing.T) {
	testCases := []struct {
		name    string
		setup   func(t *testing.T, c *Core)
		op      TransferOp
		wantErr error
	}{
		{
			name: "ok",
			op:   TransferOp{From: testOwner, To: testAlice, Amount: whole(5)},
		},
		{
			name: "zero amount is a no-op success",
			op:   TransferOp{From: testBob, To: testAlice, Amount: math.ZeroInt()},
		},
		{
			name:    "null recipient",
			op:      TransferOp{From: testOwner, To: types.ZeroAddress, Amount: whole(5)},
			wantErr: ErrInvalidRecipient,
		},
		{
			name:    "empty recipient",
			op:      TransferOp{From: testOwner, To: "", Amount: whole(5)},
			wantErr: ErrInvalidRecipient,
		},
		{
			name:    "escrow account as sender",
			op:      TransferOp{From: EscrowAddress, To: testAlice, Amount: whole(5)},
			wantErr: ErrUnauthorized,
		},
		{
			name:    "escrow account as recipient",
			op:      TransferOp{From: testOwner, To: EscrowAddress, Amount: whole(5)},
			wantErr: ErrInvalidRecipient,
		},
		{
			name:    "negative amount",
			op:      TransferOp{From: testOwner, To: testAlice, Amount: math.NewInt(-1)},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "nil amount",
			op:      TransferOp{From: testOwner, To: testAlice},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "insufficient balance",
			op:      TransferOp{From: testBob, To: testAlice, Amount: whole(1)},
			wantErr: ErrInsufficientBalance,
		},
		{
			name: "paused blocks transfer",
			setup: func(t *testing.T, c *Core) {
				_, err := c.Apply(PauseOp{Caller: testOwner})
				require.NoError(t, err)
			},
			op:      TransferOp{From: testOwner, To: testAlice, Amount: whole(5)},
			wantErr: ErrSystemPaused,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestCore(t)
			if tc.setup != nil {
				tc.setup(t, c)
			}

			fromBefore := c.BalanceOf(tc.op.From)
			toBefore := c.BalanceOf(tc.op.To)

			receipt, err := c.Apply(tc.op)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				// Rejection leaves balances untouched.
				assert.True(t, c.BalanceOf(tc.op.From).Equal(fromBefore))
				assert.True(t, c.BalanceOf(tc.op.To).Equal(toBefore))
			} else {
				require.NoError(t, err)
				require.Len(t, receipt.Events, 1)
				assert.Equal(t, types.TransferEvent{
					From:   tc.op.From,
					To:     tc.op.To,
					Amount: tc.op.Amount,
				}, receipt.Events[0])
				assert.True(t, c.BalanceOf(tc.op.From).Equal(fromBefore.Sub(tc.op.Amount)))
				assert.True(t, c.BalanceOf(tc.op.To).Equal(toBefore.Add(tc.op.Amount)))
			}

			requireConservation(t, c)
		})
	}
}

func TestMint(t *testing.T) {
	testCases := []struct {
		name    string
		op      MintOp
		wantErr error
	}{
		{
			name: "ok",
			op:   MintOp{Caller: testOwner, To: testAlice, Amount: whole(42)},
		},
		{
			name:    "non-owner caller",
			op:      MintOp{Caller: testAlice, To: testAlice, Amount: whole(42)},
			wantErr: ErrUnauthorized,
		},
		{
			name:    "zero amount",
			op:      MintOp{Caller: testOwner, To: testAlice, Amount: math.ZeroInt()},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "nil amount",
			op:      MintOp{Caller: testOwner, To: testAlice},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			op:      MintOp{Caller: testOwner, To: testAlice, Amount: math.NewInt(-5)},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "null recipient",
			op:      MintOp{Caller: testOwner, To: types.ZeroAddress, Amount: whole(42)},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "escrow recipient",
			op:      MintOp{Caller: testOwner, To: EscrowAddress, Amount: whole(42)},
			wantErr: ErrInvalidAmount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestCore(t)

			supplyBefore := c.TotalSupply()
			toBefore := c.BalanceOf(tc.op.To)

			receipt, err := c.Apply(tc.op)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.True(t, c.TotalSupply().Equal(supplyBefore))
				assert.True(t, c.BalanceOf(tc.op.To).Equal(toBefore))
			} else {
				require.NoError(t, err)
				require.Len(t, receipt.Events, 1)
				assert.Equal(t, types.MintEvent{To: tc.op.To, Amount: tc.op.Amount}, receipt.Events[0])
				assert.True(t, c.TotalSupply().Equal(supplyBefore.Add(tc.op.Amount)))
				assert.True(t, c.BalanceOf(tc.op.To).Equal(toBefore.Add(tc.op.Amount)))
			}

			requireConservation(t, c)
		})
	}
}

func TestBurn(t *testing.T) {
	testCases := []struct {
		name    string
		setup   func(t *testing.T, c *Core)
		op      BurnOp
		wantErr error
	}{
		{
			name: "ok",
			op:   BurnOp{Caller: testOwner, Amount: whole(7)},
		},
		{
			name: "zero amount is a no-op success",
			op:   BurnOp{Caller: testBob, Amount: math.ZeroInt()},
		},
		{
			name:    "negative amount",
			op:      BurnOp{Caller: testOwner, Amount: math.NewInt(-1)},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "insufficient balance",
			op:      BurnOp{Caller: testBob, Amount: whole(1)},
			wantErr: ErrInsufficientBalance,
		},
		{
			name:    "escrow caller",
			op:      BurnOp{Caller: EscrowAddress, Amount: whole(1)},
			wantErr: ErrUnauthorized,
		},
		{
			name: "paused blocks burn",
			setup: func(t *testing.T, c *Core) {
				_, err := c.Apply(PauseOp{Caller: testOwner})
				require.NoError(t, err)
			},
			op:      BurnOp{Caller: testOwner, Amount: whole(7)},
			wantErr: ErrSystemPaused,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestCore(t)
			if tc.setup != nil {
				tc.setup(t, c)
			}

			supplyBefore := c.TotalSupply()
			callerBefore := c.BalanceOf(tc.op.Caller)

			_, err := c.Apply(tc.op)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.True(t, c.TotalSupply().Equal(supplyBefore))
				assert.True(t, c.BalanceOf(tc.op.Caller).Equal(callerBefore))
			} else {
				require.NoError(t, err)
				assert.True(t, c.TotalSupply().Equal(supplyBefore.Sub(tc.op.Amount)))
				assert.True(t, c.BalanceOf(tc.op.Caller).Equal(callerBefore.Sub(tc.op.Amount)))
			}

			requireConservation(t, c)
		})
	}
}

// While paused, transfer fails for every account but owner mint still lands.
func TestPauseGate(t *testing.T) {
	c := newTestCore(t)

	_, err := c.Apply(TransferOp{From: testOwner, To: testAlice, Amount: whole(10)})
	require.NoError(t, err)

	_, err = c.Apply(PauseOp{Caller: testAlice})
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = c.Apply(PauseOp{Caller: testOwner})
	require.NoError(t, err)
	require.True(t, c.Paused())

	_, err = c.Apply(TransferOp{From: testOwner, To: testAlice, Amount: whole(1)})
	require.ErrorIs(t, err, ErrSystemPaused)
	_, err = c.Apply(TransferOp{From: testAlice, To: testBob, Amount: whole(1)})
	require.ErrorIs(t, err, ErrSystemPaused)

	receipt, err := c.Apply(MintOp{Caller: testOwner, To: testBob, Amount: whole(3)})
	require.NoError(t, err)
	require.Len(t, receipt.Events, 1)
	assert.True(t, c.BalanceOf(testBob).Equal(whole(3)))

	_, err = c.Apply(UnpauseOp{Caller: testAlice})
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = c.Apply(UnpauseOp{Caller: testOwner})
	require.NoError(t, err)
	require.False(t, c.Paused())

	_, err = c.Apply(TransferOp{From: testAlice, To: testBob, Amount: whole(1)})
	require.NoError(t, err)

	requireConservation(t, c)
}

func TestPauseIsIdempotent(t *testing.T) {
	c := newTestCore(t)

	receipt, err := c.Apply(PauseOp{Caller: testOwner})
	require.NoError(t, err)
	assert.Len(t, receipt.Events, 1)

	receipt, err = c.Apply(PauseOp{Caller: testOwner})
	require.NoError(t, err)
	assert.Empty(t, receipt.Events)
	assert.True(t, c.Paused())

	receipt, err = c.Apply(UnpauseOp{Caller: testOwner})
	require.NoError(t, err)
	assert.Len(t, receipt.Events, 1)

	receipt, err = c.Apply(UnpauseOp{Caller: testOwner})
	require.NoError(t, err)
	assert.Empty(t, receipt.Events)
	assert.False(t, c.Paused())
}

func TestBalancePruning(t *testing.T) {
	c := newTestCore(t)

	_, err := c.Apply(TransferOp{From: testOwner, To: testAlice, Amount: whole(2)})
	require.NoError(t, err)
	assert.Equal(t, 2, c.Stats().Accounts)

	_, err = c.Apply(TransferOp{From: testAlice, To: testBob, Amount: whole(2)})
	require.NoError(t, err)

	// Alice's zero balance entry is gone but still reads as zero.
	assert.Equal(t, 2, c.Stats().Accounts)
	assert.True(t, c.BalanceOf(testAlice).IsZero())
	requireConservation(t, c)
}
