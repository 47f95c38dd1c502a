package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/sdupi-network/sdupi-token-core/internal/core"
	"github.com/sdupi-network/sdupi-token-core/internal/types"
)

// errorResponse is the error envelope returned on every failed request.
type errorResponse struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	//nolint:errcheck
	json.NewEncoder(w).Encode(payload)
}

func writeError(ctx context.Context, w http.ResponseWriter, apiErr *types.Error) {
	if apiErr.StatusCode >= http.StatusInternalServerError {
		log.Ctx(ctx).Error().Err(apiErr.Err).
			Str("error_code", apiErr.ErrorCode.String()).
			Msg("Request failed")
	}

	writeJSON(w, apiErr.StatusCode, errorResponse{
		ErrorCode: apiErr.ErrorCode.String(),
		Message:   apiErr.Error(),
	})
}

// operationError maps a failed operation onto its HTTP status and stable
// error code. Errors already carrying an envelope pass through unchanged.
func operationError(err error) *types.Error {
	var apiErr *types.Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	code := core.CodeFor(err)
	return types.NewError(statusForCode(code), code, err)
}

func statusForCode(code types.ErrorCode) int {
	switch code {
	case types.InvalidAmount, types.InvalidRecipient, types.AmountOutOfRange, types.ValidationError:
		return http.StatusBadRequest
	case types.Unauthorized:
		return http.StatusForbidden
	case types.InsufficientBalance, types.AlreadyStaked, types.NoActiveStake,
		types.LockNotElapsed, types.NoRewardsAvailable, types.StakingInactive:
		return http.StatusConflict
	case types.SystemPaused:
		return http.StatusLocked
	default:
		return http.StatusInternalServerError
	}
}
