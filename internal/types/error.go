package types

import (
	"fmt"
	"net/http"
)

type ErrorCode string

func (e ErrorCode) String() string {
	return string(e)
}

const (
	// Codes surfaced by core operation preconditions.
	Unauthorized        ErrorCode = "UNAUTHORIZED"
	SystemPaused        ErrorCode = "SYSTEM_PAUSED"
	InvalidAmount       ErrorCode = "INVALID_AMOUNT"
	InvalidRecipient    ErrorCode = "INVALID_RECIPIENT"
	InsufficientBalance ErrorCode = "INSUFFICIENT_BALANCE"
	StakingInactive     ErrorCode = "STAKING_INACTIVE"
	AmountOutOfRange    ErrorCode = "AMOUNT_OUT_OF_RANGE"
	AlreadyStaked       ErrorCode = "ALREADY_STAKED"
	NoActiveStake       ErrorCode = "NO_ACTIVE_STAKE"
	LockNotElapsed      ErrorCode = "LOCK_NOT_ELAPSED"
	NoRewardsAvailable  ErrorCode = "NO_REWARDS_AVAILABLE"
	ReentrancyDetected  ErrorCode = "REENTRANCY_DETECTED"

	// Codes originating outside the core.
	ValidationError      ErrorCode = "VALIDATION_ERROR"
	InternalServiceError ErrorCode = "INTERNAL_SERVICE_ERROR"
)

// Error pairs an HTTP status and a stable machine-readable code with the
// underlying cause. The API layer serializes it as the error envelope.
type Error struct {
	Err        error
	StatusCode int
	ErrorCode  ErrorCode
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}

	return e.ErrorCode.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(statusCode int, errorCode ErrorCode, err error) *Error {
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Err:        err,
	}
}

func NewErrorWithMsg(statusCode int, errorCode ErrorCode, msg string) *Error {
	return NewError(statusCode, errorCode, fmt.Errorf("%s", msg))
}

func NewInternalServiceError(err error) *Error {
	return NewError(http.StatusInternalServerError, InternalServiceError, err)
}

func NewValidationFailedError(err error) *Error {
	return NewError(http.StatusBadRequest, ValidationError, err)
}
