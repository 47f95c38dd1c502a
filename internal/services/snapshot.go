package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sdupi-network/sdupi-token-core/internal/observability/metrics"
	"github.com/sdupi-network/sdupi-token-core/internal/utils/poller"
)

// StartSnapshotPoller starts periodic persistence of the in-memory state.
func (s *Service) StartSnapshotPoller(ctx context.Context) {
	snapshotPoller := poller.NewPoller(
		s.cfg.Poller.SnapshotPollingInterval,
		metrics.RecordPollerDuration("snapshot", s.PersistSnapshot),
	)
	go snapshotPoller.Start(ctx)
}

// PersistSnapshot writes the current state to the snapshot collections.
// It is also called once on shutdown so the last interval is not lost.
func (s *Service) PersistSnapshot(ctx context.Context) error {
	s.mu.RLock()
	state := s.core.Snapshot()
	s.mu.RUnlock()

	accounts, stakes, pool, system := stateToDocuments(state, time.Now())

	// The system state document doubles as the bootstrap marker, so it is
	// written last: a crash mid-snapshot leaves either the previous marker
	// with the previous collections or the full new snapshot, and in the
	// worst case the conservation check on restore rejects a torn write.
	if err := s.db.ReplaceAccounts(ctx, accounts); err != nil {
		return fmt.Errorf("failed to persist accounts: %w", err)
	}
	if err := s.db.ReplaceStakes(ctx, stakes); err != nil {
		return fmt.Errorf("failed to persist stakes: %w", err)
	}
	if err := s.db.SavePool(ctx, pool); err != nil {
		return fmt.Errorf("failed to persist staking pool: %w", err)
	}
	if err := s.db.SaveSystemState(ctx, system); err != nil {
		return fmt.Errorf("failed to persist system state: %w", err)
	}

	log.Ctx(ctx).Debug().
		Int("accounts", len(accounts)).
		Int("active_stakes", len(stakes)).
		Msg("Persisted ledger snapshot")

	return nil
}
