package model

const OperationCollection = "operations"

// OperationDocument is one journaled ledger operation, applied or
// rejected. The journal is an audit trail only; state is recovered from
// the snapshot collections, never replayed from here.
type OperationDocument struct {
	ID        string            `bson:"_id"` // uuid assigned by the service
	Kind      string            `bson:"kind"`
	Caller    string            `bson:"caller"`
	Params    map[string]string `bson:"params,omitempty"` // operation arguments, amounts as decimal strings
	Outcome   string            `bson:"outcome"`
	ErrorCode string            `bson:"error_code,omitempty"` // set when the outcome is a rejection
	Principal string            `bson:"principal,omitempty"`  // principal returned by an unstake
	Reward    string            `bson:"reward,omitempty"`     // reward minted by an unstake or claim
	TraceID   string            `bson:"trace_id,omitempty"`
	Timestamp int64             `bson:"timestamp"` // Unix timestamp when the operation was applied
}
