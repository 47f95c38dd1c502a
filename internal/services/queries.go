package services

import (
	"context"
	"fmt"

	"cosmossdk.io/math"

	"github.com/sdupi-network/sdupi-token-core/internal/core"
	"github.com/sdupi-network/sdupi-token-core/internal/db/model"
	"github.com/sdupi-network/sdupi-token-core/internal/types"
)

// Read queries. All of them observe a consistent core under the read lock.

func (s *Service) BalanceOf(addr types.Address) math.Int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.core.BalanceOf(addr)
}

func (s *Service) StakingInfo(addr types.Address) core.StakingInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.core.StakingInfo(addr)
}

func (s *Service) PoolInfo() core.Pool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.core.PoolInfo()
}

func (s *Service) Stats() core.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.core.Stats()
}

func (s *Service) Owner() types.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.core.Owner()
}

func (s *Service) Paused() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.core.Paused()
}

// RecentOperations reads the newest journal entries; it never touches the
// core so it takes no lock.
func (s *Service) RecentOperations(ctx context.Context, limit int64) ([]*model.OperationDocument, error) {
	ops, err := s.db.GetRecentOperations(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read operation journal: %w", err)
	}
	return ops, nil
}

// HealthCheck verifies the snapshot store is reachable.
func (s *Service) HealthCheck(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}
