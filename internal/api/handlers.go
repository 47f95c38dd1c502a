package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sdupi-network/sdupi-token-core/internal/core"
	"github.com/sdupi-network/sdupi-token-core/internal/types"
)

// operationResponse reports an applied operation: its kind, the derived
// outputs where the operation has them, and the events it emitted in
// application order.
type operationResponse struct {
	Kind      string         `json:"kind"`
	Principal string         `json:"principal,omitempty"`
	Reward    string         `json:"reward,omitempty"`
	Events    []eventPayload `json:"events"`
}

type eventPayload struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// execute runs one operation through the service and writes either the
// operation response or the mapped error envelope.
func (s *Server) execute(w http.ResponseWriter, r *http.Request, op core.Operation) {
	receipt, err := s.svc.Execute(r.Context(), op)
	if err != nil {
		writeError(r.Context(), w, operationError(err))
		return
	}

	resp, apiErr := newOperationResponse(receipt)
	if apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func newOperationResponse(receipt *core.Receipt) (*operationResponse, *types.Error) {
	resp := &operationResponse{
		Kind:   receipt.Kind.String(),
		Events: make([]eventPayload, 0, len(receipt.Events)),
	}
	if receipt.Principal.IsPositive() {
		resp.Principal = receipt.Principal.String()
	}
	if receipt.Reward.IsPositive() {
		resp.Reward = receipt.Reward.String()
	}

	for _, event := range receipt.Events {
		data, err := json.Marshal(event)
		if err != nil {
			return nil, types.NewInternalServiceError(fmt.Errorf("failed to encode %s event: %w", event.EventType(), err))
		}
		resp.Events = append(resp.Events, eventPayload{
			Type: event.EventType().String(),
			Data: data,
		})
	}

	return resp, nil
}
