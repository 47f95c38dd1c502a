package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"cosmossdk.io/math"

	"github.com/sdupi-network/sdupi-token-core/internal/types"
)

func decodeBody(r *http.Request, dst any) *types.Error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return types.NewValidationFailedError(fmt.Errorf("invalid request body: %w", err))
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return types.NewValidationFailedError(errors.New("request body must be a single JSON object"))
	}

	return nil
}

// parseAddress validates a 0x-prefixed hex address from a request field.
func parseAddress(field, raw string) (types.Address, *types.Error) {
	addr, err := types.NewAddress(raw)
	if err != nil {
		return "", types.NewValidationFailedError(fmt.Errorf("invalid %s: %w", field, err))
	}

	return addr, nil
}

// parseAmount parses a base-10 amount in smallest units. Sign and range
// checks belong to the core; only unparseable input is rejected here.
func parseAmount(raw string) (math.Int, *types.Error) {
	amount, ok := math.NewIntFromString(raw)
	if !ok {
		return math.Int{}, types.NewValidationFailedError(
			fmt.Errorf("invalid amount %q: must be a base-10 integer in smallest units", raw),
		)
	}

	return amount, nil
}
