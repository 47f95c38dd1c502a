package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/sdupi-network/sdupi-token-core/internal/db/model"
	"github.com/sdupi-network/sdupi-token-core/internal/types"
)

func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.HealthCheck(r.Context()); err != nil {
		writeError(r.Context(), w, types.NewInternalServiceError(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type statsResponse struct {
	Owner             types.Address `json:"owner"`
	Paused            bool          `json:"paused"`
	TotalSupply       string        `json:"total_supply"`
	CirculatingSupply string        `json:"circulating_supply"`
	EscrowedSupply    string        `json:"escrowed_supply"`
	TotalStaked       string        `json:"total_staked"`
	TotalRewardsPaid  string        `json:"total_rewards_paid"`
	ActiveStakes      int           `json:"active_stakes"`
	Accounts          int           `json:"accounts"`
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	stats := s.svc.Stats()

	writeJSON(w, http.StatusOK, statsResponse{
		Owner:             s.svc.Owner(),
		Paused:            s.svc.Paused(),
		TotalSupply:       stats.TotalSupply.String(),
		CirculatingSupply: stats.CirculatingSupply.String(),
		EscrowedSupply:    stats.EscrowedSupply.String(),
		TotalStaked:       stats.TotalStaked.String(),
		TotalRewardsPaid:  stats.TotalRewardsPaid.String(),
		ActiveStakes:      stats.ActiveStakes,
		Accounts:          stats.Accounts,
	})
}

const (
	defaultOperationsLimit = 50
	maxOperationsLimit     = 500
)

type operationRecord struct {
	ID        string            `json:"id"`
	Kind      string            `json:"kind"`
	Caller    string            `json:"caller"`
	Params    map[string]string `json:"params,omitempty"`
	Outcome   string            `json:"outcome"`
	ErrorCode string            `json:"error_code,omitempty"`
	Principal string            `json:"principal,omitempty"`
	Reward    string            `json:"reward,omitempty"`
	TraceID   string            `json:"trace_id,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

type operationsResponse struct {
	Operations []operationRecord `json:"operations"`
}

// operations returns the newest journal entries, newest first.
func (s *Server) operations(w http.ResponseWriter, r *http.Request) {
	limit := int64(defaultOperationsLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 || parsed > maxOperationsLimit {
			writeError(r.Context(), w, types.NewValidationFailedError(
				fmt.Errorf("invalid limit %q: must be an integer in [1, %d]", raw, maxOperationsLimit),
			))
			return
		}
		limit = parsed
	}

	docs, err := s.svc.RecentOperations(r.Context(), limit)
	if err != nil {
		writeError(r.Context(), w, types.NewInternalServiceError(err))
		return
	}

	resp := operationsResponse{Operations: make([]operationRecord, 0, len(docs))}
	for _, doc := range docs {
		resp.Operations = append(resp.Operations, newOperationRecord(doc))
	}

	writeJSON(w, http.StatusOK, resp)
}

func newOperationRecord(doc *model.OperationDocument) operationRecord {
	return operationRecord{
		ID:        doc.ID,
		Kind:      doc.Kind,
		Caller:    doc.Caller,
		Params:    doc.Params,
		Outcome:   doc.Outcome,
		ErrorCode: doc.ErrorCode,
		Principal: doc.Principal,
		Reward:    doc.Reward,
		TraceID:   doc.TraceID,
		Timestamp: doc.Timestamp,
	}
}
