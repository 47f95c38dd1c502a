package config

import (
	"fmt"
	"time"

	"github.com/sdupi-network/sdupi-token-core/internal/core"
	"github.com/sdupi-network/sdupi-token-core/pkg"
)

// GenesisConfig seeds the very first bootstrap. Once state has been
// persisted, only OwnerAddress consistency matters; the optional pool
// overrides exist mainly for test deployments with short lock periods.
type GenesisConfig struct {
	OwnerAddress string `mapstructure:"owner-address"`

	APYPercent *uint64        `mapstructure:"apy-percent"`
	LockPeriod *time.Duration `mapstructure:"lock-period"`
	PoolActive *bool          `mapstructure:"pool-active"`
}

func (cfg *GenesisConfig) Validate() error {
	if cfg.OwnerAddress == "" {
		return fmt.Errorf("genesis owner-address must be set")
	}
	if _, err := pkg.NormalizeHexAddress(cfg.OwnerAddress); err != nil {
		return fmt.Errorf("genesis owner-address is invalid: %w", err)
	}

	if cfg.APYPercent != nil && *cfg.APYPercent > core.MaxAPYPercent {
		return fmt.Errorf("genesis apy-percent must not exceed %d", core.MaxAPYPercent)
	}
	if cfg.LockPeriod != nil && *cfg.LockPeriod < 0 {
		return fmt.Errorf("genesis lock-period must not be negative")
	}

	return nil
}
