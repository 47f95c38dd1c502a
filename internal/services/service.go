package services

import (
	"sync"

	"github.com/sdupi-network/sdupi-token-core/consumer"
	"github.com/sdupi-network/sdupi-token-core/internal/config"
	"github.com/sdupi-network/sdupi-token-core/internal/core"
	"github.com/sdupi-network/sdupi-token-core/internal/db"
)

// Service owns the in-memory ledger core and everything around it:
// persistence snapshots, the operation journal and event fan-out.
type Service struct {
	cfg   *config.Config
	db    db.DbInterface
	sinks []consumer.EventSink

	// mu serializes all core access. Write operations take the write
	// lock, so every operation observes and produces complete state;
	// reads share the read lock.
	mu   sync.RWMutex
	core *core.Core
}

func NewService(cfg *config.Config, db db.DbInterface, sinks ...consumer.EventSink) *Service {
	return &Service{
		cfg:   cfg,
		db:    db,
		sinks: sinks,
	}
}
