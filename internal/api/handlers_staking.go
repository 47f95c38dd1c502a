package api

import (
	"net/http"
	"time"

	"github.com/sdupi-network/sdupi-token-core/internal/core"
	"github.com/sdupi-network/sdupi-token-core/internal/types"
)

type stakeRequest struct {
	Account string `json:"account"`
	Amount  string `json:"amount"`
}

func (s *Server) stake(w http.ResponseWriter, r *http.Request) {
	var req stakeRequest
	if apiErr := decodeBody(r, &req); apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}

	account, apiErr := parseAddress("account", req.Account)
	if apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}
	amount, apiErr := parseAmount(req.Amount)
	if apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}

	s.execute(w, r, core.StakeOp{Account: account, Amount: amount})
}

type accountRequest struct {
	Account string `json:"account"`
}

func (s *Server) unstake(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if apiErr := decodeBody(r, &req); apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}

	account, apiErr := parseAddress("account", req.Account)
	if apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}

	s.execute(w, r, core.UnstakeOp{Account: account})
}

func (s *Server) claimRewards(w http.ResponseWriter, r *http.Request) {
	var req accountRequest
	if apiErr := decodeBody(r, &req); apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}

	account, apiErr := parseAddress("account", req.Account)
	if apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}

	s.execute(w, r, core.ClaimRewardsOp{Account: account})
}

type stakingInfoResponse struct {
	Account       types.Address `json:"account"`
	IsStaked      bool          `json:"is_staked"`
	Amount        string        `json:"amount"`
	StartTime     int64         `json:"start_time,omitempty"`
	LockEndTime   int64         `json:"lock_end_time,omitempty"`
	CurrentReward string        `json:"current_reward"`
}

func (s *Server) stakingInfo(w http.ResponseWriter, r *http.Request) {
	addr, apiErr := parseAddress("address", r.URL.Query().Get("address"))
	if apiErr != nil {
		writeError(r.Context(), w, apiErr)
		return
	}

	info := s.svc.StakingInfo(addr)
	resp := stakingInfoResponse{
		Account:       info.Account,
		IsStaked:      info.IsStaked,
		Amount:        info.Amount.String(),
		CurrentReward: info.CurrentReward.String(),
	}
	if info.IsStaked {
		resp.StartTime = info.StartTime.Unix()
		resp.LockEndTime = info.LockEndTime.Unix()
	}

	writeJSON(w, http.StatusOK, resp)
}

type poolResponse struct {
	TotalStaked       string `json:"total_staked"`
	TotalRewardsPaid  string `json:"total_rewards_paid"`
	APYPercent        uint64 `json:"apy_percent"`
	LockPeriodSeconds int64  `json:"lock_period_seconds"`
	Active            bool   `json:"active"`
	MinStakeAmount    string `json:"min_stake_amount"`
	MaxStakeAmount    string `json:"max_stake_amount"`
}

func (s *Server) stakingPool(w http.ResponseWriter, r *http.Request) {
	pool := s.svc.PoolInfo()

	writeJSON(w, http.StatusOK, poolResponse{
		TotalStaked:       pool.TotalStaked.String(),
		TotalRewardsPaid:  pool.TotalRewardsPaid.String(),
		APYPercent:        pool.APYPercent,
		LockPeriodSeconds: int64(pool.LockPeriod / time.Second),
		Active:            pool.Active,
		MinStakeAmount:    core.MinStakeAmount.String(),
		MaxStakeAmount:    core.MaxStakeAmount.String(),
	})
}
