package services

import (
	"context"
	"math/big"

	"cosmossdk.io/math"
	"github.com/rs/zerolog/log"
	"github.com/sdupi-network/sdupi-token-core/internal/core"
	"github.com/sdupi-network/sdupi-token-core/internal/observability/metrics"
	"github.com/sdupi-network/sdupi-token-core/internal/utils/poller"
)

// StartStatsPoller starts periodic refresh of the ledger gauges.
func (s *Service) StartStatsPoller(ctx context.Context) {
	statsPoller := poller.NewPoller(
		s.cfg.Poller.StatsPollingInterval,
		metrics.RecordPollerDuration("stats", s.refreshStats),
	)
	go statsPoller.Start(ctx)
}

// refreshStats publishes the current supply and staking aggregates as
// prometheus gauges.
func (s *Service) refreshStats(ctx context.Context) error {
	stats := s.Stats()

	metrics.RecordLedgerStats(
		amountToTokens(stats.TotalSupply),
		amountToTokens(stats.TotalStaked),
		amountToTokens(stats.TotalRewardsPaid),
		stats.ActiveStakes,
		stats.Accounts,
	)

	log.Ctx(ctx).Debug().
		Str("total_supply", stats.TotalSupply.String()).
		Int("active_stakes", stats.ActiveStakes).
		Msg("Refreshed ledger stats")

	return nil
}

var tokenUnit = new(big.Float).SetInt(math.NewIntWithDecimal(1, core.Decimals).BigInt())

// amountToTokens converts a base-unit amount to whole tokens for gauges.
// Gauges are float64, so precision loss above 2^53 tokens is accepted.
func amountToTokens(amount math.Int) float64 {
	value := new(big.Float).SetInt(amount.BigInt())
	value.Quo(value, tokenUnit)

	tokens, _ := value.Float64()
	return tokens
}
