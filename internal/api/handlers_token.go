package api

import (
	"net/http"

	"github.com/sdupi-network/sdupi-token-core/internal/core"
	"github.com/sdupi-network/sdupi-token-core/internal/types"
)

type balanceResponse struct {
	Address types.Address `json:"address"`
	Balance string        `json:"balance"`
}

func (s *Server) balance(w http.ResponseWriter, r *http.Request) {
	addr, apiErr := parseAddress("address", r.URL.Query().Get("address"))
	if apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}

	writeJSON(w, http.StatusOK, balanceResponse{
		Address: addr,
		Balance: s.svc.BalanceOf(addr).String(),
	})
}

type transferRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

func (s *Server) transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if apiErr := decodeBody(r, &req); apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}

	from, apiErr := parseAddress("from", req.From)
	if apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}
	to, apiErr := parseAddress("to", req.To)
	if apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}
	amount, apiErr := parseAmount(req.Amount)
	if apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}

	s.execute(w, r, core.TransferOp{From: from, To: to, Amount: amount})
}

type mintRequest struct {
	Caller string `json:"caller"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

func (s *Server) mint(w http.ResponseWriter, r *http.Request) {
	var req mintRequest
	if apiErr := decodeBody(r, &req); apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}

	caller, apiErr := parseAddress("caller", req.Caller)
	if apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}
	to, apiErr := parseAddress("to", req.To)
	if apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}
	amount, apiErr := parseAmount(req.Amount)
	if apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}

	s.execute(w, r, core.MintOp{Caller: caller, To: to, Amount: amount})
}

type burnRequest struct {
	Caller string `json:"caller"`
	Amount string `json:"amount"`
}

func (s *Server) burn(w http.ResponseWriter, r *http.Request) {
	var req burnRequest
	if apiErr := decodeBody(r, &req); apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}

	caller, apiErr := parseAddress("caller", req.Caller)
	if apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}
	amount, apiErr := parseAmount(req.Amount)
	if apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}

	s.execute(w, r, core.BurnOp{Caller: caller, Amount: amount})
}
