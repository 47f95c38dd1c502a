package config

import (
	"fmt"
)

type MetricsConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

func (cfg *MetricsConfig) Validate() error {
	if cfg.Host == "" {
		return fmt.Errorf("metrics host must be set")
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("metrics port must be in the range 1-65535")
	}

	return nil
}

func (cfg *MetricsConfig) GetMetricsPort() int {
	return cfg.Port
}
