package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sdupi-network/sdupi-token-core/internal/core"
	"github.com/sdupi-network/sdupi-token-core/internal/db"
	"github.com/sdupi-network/sdupi-token-core/internal/types"
)

// Bootstrap brings up the in-memory core. On the very first run (no
// persisted system state) it creates the ledger at genesis from the
// configured owner and immediately persists it; on every later run it
// restores the last snapshot and re-validates its invariants.
func (s *Service) Bootstrap(ctx context.Context) error {
	log := log.Ctx(ctx)

	system, err := s.db.GetSystemState(ctx)
	if err != nil {
		if !db.IsNotFoundError(err) {
			return fmt.Errorf("failed to load system state: %w", err)
		}
		return s.bootstrapGenesis(ctx)
	}

	accounts, err := s.db.GetAccounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}
	stakes, err := s.db.GetStakes(ctx)
	if err != nil {
		return fmt.Errorf("failed to load stakes: %w", err)
	}
	pool, err := s.db.GetPool(ctx)
	if err != nil {
		return fmt.Errorf("failed to load staking pool: %w", err)
	}

	state, err := documentsToState(accounts, stakes, pool, system)
	if err != nil {
		return fmt.Errorf("failed to rebuild state from snapshot: %w", err)
	}

	c, err := core.NewFromState(state)
	if err != nil {
		return fmt.Errorf("failed to restore core from snapshot: %w", err)
	}

	s.mu.Lock()
	s.core = c
	s.mu.Unlock()

	log.Info().
		Str("owner", string(c.Owner())).
		Int("accounts", len(accounts)).
		Int("active_stakes", len(stakes)).
		Time("snapshot_time", time.Unix(system.UpdatedAt, 0).UTC()).
		Msg("Restored ledger state from snapshot")

	return nil
}

func (s *Service) bootstrapGenesis(ctx context.Context) error {
	log := log.Ctx(ctx)

	owner, err := types.NewAddress(s.cfg.Genesis.OwnerAddress)
	if err != nil {
		return fmt.Errorf("invalid genesis owner address: %w", err)
	}

	opts := make([]core.Option, 0, 2)
	if s.cfg.Genesis.APYPercent != nil || s.cfg.Genesis.LockPeriod != nil {
		apy := core.DefaultAPYPercent
		if s.cfg.Genesis.APYPercent != nil {
			apy = *s.cfg.Genesis.APYPercent
		}
		lock := core.DefaultLockPeriod
		if s.cfg.Genesis.LockPeriod != nil {
			lock = *s.cfg.Genesis.LockPeriod
		}
		opts = append(opts, core.WithPoolParams(apy, lock))
	}
	if s.cfg.Genesis.PoolActive != nil {
		opts = append(opts, core.WithStakingActive(*s.cfg.Genesis.PoolActive))
	}

	c, err := core.New(owner, opts...)
	if err != nil {
		return fmt.Errorf("failed to create genesis ledger: %w", err)
	}

	s.mu.Lock()
	s.core = c
	s.mu.Unlock()

	// Persist before serving so a crash right after startup cannot lose
	// the genesis allocation.
	if err := s.PersistSnapshot(ctx); err != nil {
		return fmt.Errorf("failed to persist genesis snapshot: %w", err)
	}

	log.Info().
		Str("owner", string(owner)).
		Str("total_supply", c.TotalSupply().String()).
		Msg("Initialized ledger at genesis")

	return nil
}
