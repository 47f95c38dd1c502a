package core

import (
	"errors"

	"github.com/sdupi-network/sdupi-token-core/internal/types"
)

// Operation errors. Every rejected precondition surfaces exactly one of
// these kinds, so callers and tests can assert on cause with errors.Is.
// Rejections never leave partial state behind.
var (
	ErrUnauthorized        = errors.New("caller is not the owner")
	ErrSystemPaused        = errors.New("system is paused")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidRecipient    = errors.New("invalid recipient")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrStakingInactive     = errors.New("staking pool is not active")
	ErrAmountOutOfRange    = errors.New("stake amount out of range")
	ErrAlreadyStaked       = errors.New("account already has an active stake")
	ErrNoActiveStake       = errors.New("account has no active stake")
	ErrLockNotElapsed      = errors.New("lock period has not elapsed")
	ErrNoRewardsAvailable  = errors.New("no rewards available")
	ErrReentrancyDetected  = errors.New("reentrant call detected")
)

// CodeFor maps an operation error to its stable machine-readable code.
// Unknown errors map to InternalServiceError.
func CodeFor(err error) types.ErrorCode {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return types.Unauthorized
	case errors.Is(err, ErrSystemPaused):
		return types.SystemPaused
	case errors.Is(err, ErrInvalidAmount):
		return types.InvalidAmount
	case errors.Is(err, ErrInvalidRecipient):
		return types.InvalidRecipient
	case errors.Is(err, ErrInsufficientBalance):
		return types.InsufficientBalance
	case errors.Is(err, ErrStakingInactive):
		return types.StakingInactive
	case errors.Is(err, ErrAmountOutOfRange):
		return types.AmountOutOfRange
	case errors.Is(err, ErrAlreadyStaked):
		return types.AlreadyStaked
	case errors.Is(err, ErrNoActiveStake):
		return types.NoActiveStake
	case errors.Is(err, ErrLockNotElapsed):
		return types.LockNotElapsed
	case errors.Is(err, ErrNoRewardsAvailable):
		return types.NoRewardsAvailable
	case errors.Is(err, ErrReentrancyDetected):
		return types.ReentrancyDetected
	default:
		return types.InternalServiceError
	}
}
