package api

import (
	"net/http"
	"time"

	"github.com/sdupi-network/sdupi-token-core/internal/core"
)

type callerRequest struct {
	Caller string `json:"caller"`
}

func (s *Server) pause(w http.ResponseWriter, r *http.Request) {
	var req callerRequest
	if apiErr := decodeBody(r, &req); apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}

	caller, apiErr := parseAddress("caller", req.Caller)
	if apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}

	s.execute(w, r, core.PauseOp{Caller: caller})
}

func (s *Server) unpause(w http.ResponseWriter, r *http.Request) {
	var req callerRequest
	if apiErr := decodeBody(r, &req); apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}

	caller, apiErr := parseAddress("caller", req.Caller)
	if apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}

	s.execute(w, r, core.UnpauseOp{Caller: caller})
}

type updatePoolRequest struct {
	Caller            string `json:"caller"`
	APYPercent        uint64 `json:"apy_percent"`
	LockPeriodSeconds int64  `json:"lock_period_seconds"`
}

func (s *Server) updatePool(w http.ResponseWriter, r *http.Request) {
	var req updatePoolRequest
	if apiErr := decodeBody(r, &req); apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}

	caller, apiErr := parseAddress("caller", req.Caller)
	if apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}

	s.execute(w, r, core.UpdatePoolOp{
		Caller:     caller,
		APYPercent: req.APYPercent,
		LockPeriod: time.Duration(req.LockPeriodSeconds) * time.Second,
	})
}

type setStakingActiveRequest struct {
	Caller string `json:"caller"`
	Active bool   `json:"active"`
}

func (s *Server) setStakingActive(w http.ResponseWriter, r *http.Request) {
	var req setStakingActiveRequest
	if apiErr := decodeBody(r, &req); apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}

	caller, apiErr := parseAddress("caller", req.Caller)
	if apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}

	s.execute(w, r, core.SetStakingActiveOp{Caller: caller, Active: req.Active})
}

type transferOwnershipRequest struct {
	Caller   string `json:"caller"`
	NewOwner string `json:"new_owner"`
}

func (s *Server) transferOwnership(w http.ResponseWriter, r *http.Request) {
	var req transferOwnershipRequest
	if apiErr := decodeBody(r, &req); apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}

	caller, apiErr := parseAddress("caller", req.Caller)
	if apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}
	newOwner, apiErr := parseAddress("new_owner", req.NewOwner)
	if apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}

	s.execute(w, r, core.TransferOwnershipOp{Caller: caller, NewOwner: newOwner})
}
