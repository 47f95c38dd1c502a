package config

import (
	"errors"
	"time"
)

const defaultStatsPollingInterval = 5 * time.Minute

type PollerConfig struct {
	SnapshotPollingInterval time.Duration `mapstructure:"snapshot-polling-interval"`
	StatsPollingInterval    time.Duration `mapstructure:"stats-polling-interval"`
}

func (cfg *PollerConfig) Validate() error {
	if cfg.SnapshotPollingInterval <= 0 {
		return errors.New("snapshot-polling-interval must be positive")
	}

	if cfg.StatsPollingInterval <= 0 {
		cfg.StatsPollingInterval = defaultStatsPollingInterval
	}

	return nil
}
