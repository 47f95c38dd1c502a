package core

import (
	"cosmossdk.io/math"

	"github.com/sdupi-network/sdupi-token-core/internal/types"
)

// ledger owns account balances and total supply. It does no gating of its
// own beyond balance sufficiency; precondition ordering lives in the
// operation methods on Core.
type ledger struct {
	balances    map[types.Address]math.Int
	totalSupply math.Int
}

func newLedger() *ledger {
	return &ledger{
		balances:    make(map[types.Address]math.Int),
		totalSupply: math.ZeroInt(),
	}
}

func (l *ledger) balanceOf(addr types.Address) math.Int {
	if balance, ok := l.balances[addr]; ok {
		return balance
	}

	return math.ZeroInt()
}

func (l *ledger) credit(addr types.Address, amount math.Int) {
	if amount.IsZero() {
		return
	}
	l.balances[addr] = l.balanceOf(addr).Add(amount)
}

// debit removes amount from addr, pruning the entry when it reaches zero.
// It is the single place balance sufficiency is enforced.
func (l *ledger) debit(addr types.Address, amount math.Int) error {
	balance := l.balanceOf(addr)
	if balance.LT(amount) {
		return ErrInsufficientBalance
	}

	remaining := balance.Sub(amount)
	if remaining.IsZero() {
		delete(l.balances, addr)
	} else {
		l.balances[addr] = remaining
	}

	return nil
}

func (l *ledger) move(from, to types.Address, amount math.Int) error {
	if err := l.debit(from, amount); err != nil {
		return err
	}
	l.credit(to, amount)

	return nil
}

func (l *ledger) mint(to types.Address, amount math.Int) {
	l.credit(to, amount)
	l.totalSupply = l.totalSupply.Add(amount)
}

func (l *ledger) burn(from types.Address, amount math.Int) error {
	if err := l.debit(from, amount); err != nil {
		return err
	}
	l.totalSupply = l.totalSupply.Sub(amount)

	return nil
}

// accounts is the number of addresses holding a positive balance.
func (l *ledger) accounts() int {
	return len(l.balances)
}

// Operation methods. Each validates every precondition before the first
// mutation, so a failed operation leaves all state untouched.

func (c *Core) transfer(from, to types.Address, amount math.Int) (*Receipt, error) {
	if c.paused {
		return nil, ErrSystemPaused
	}
	// The escrow account is core custody; only stake and unstake may move
	// funds through it. A user transfer from it would drain the principal
	// backing active stakes, and one into it would strand the funds.
	if from == EscrowAddress {
		return nil, ErrUnauthorized
	}
	if to.IsZero() || to == EscrowAddress {
		return nil, ErrInvalidRecipient
	}
	if amount.IsNil() || amount.IsNegative() {
		return nil, ErrInvalidAmount
	}
	if err := c.ledger.move(from, to, amount); err != nil {
		return nil, err
	}

	receipt := newReceipt(types.OpTransfer)
	receipt.addEvent(types.TransferEvent{From: from, To: to, Amount: amount})

	return receipt, nil
}

func (c *Core) mint(caller, to types.Address, amount math.Int) (*Receipt, error) {
	if caller != c.owner {
		return nil, ErrUnauthorized
	}
	// Mint-to-null, mint-to-escrow and mint-zero are all amount errors.
	// Owner mint stays available while the system is paused.
	if to.IsZero() || to == EscrowAddress || amount.IsNil() || !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	c.ledger.mint(to, amount)

	receipt := newReceipt(types.OpMint)
	receipt.addEvent(types.MintEvent{To: to, Amount: amount})

	return receipt, nil
}

func (c *Core) burn(caller types.Address, amount math.Int) (*Receipt, error) {
	if c.paused {
		return nil, ErrSystemPaused
	}
	if caller == EscrowAddress {
		return nil, ErrUnauthorized
	}
	if amount.IsNil() || amount.IsNegative() {
		return nil, ErrInvalidAmount
	}
	if err := c.ledger.burn(caller, amount); err != nil {
		return nil, err
	}

	receipt := newReceipt(types.OpBurn)
	receipt.addEvent(types.BurnEvent{From: caller, Amount: amount})

	return receipt, nil
}
