package consumer

import (
	"context"
	"encoding/json"
)

// OperationEvent is the payload delivered to downstream consumers for
// every ledger event produced by an applied operation.
type OperationEvent struct {
	ID        string          `json:"id"`     // uuid of the journaled operation
	Kind      string          `json:"kind"`   // operation kind, e.g. TRANSFER
	Caller    string          `json:"caller"` // address that invoked the operation
	Type      string          `json:"type"`   // event type, e.g. token.v1.EventTransfer
	Data      json.RawMessage `json:"data"`   // event-specific fields
	Timestamp int64           `json:"timestamp"`
}

// EventSink delivers operation events to an external system. Delivery is
// best effort: a failing sink never rolls back the ledger operation that
// produced the event.
type EventSink interface {
	Start() error
	Push(ctx context.Context, ev *OperationEvent) error
	Stop() error
}
