package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Db      DbConfig      `mapstructure:"db"`
	Genesis GenesisConfig `mapstructure:"genesis"`
	Poller  PollerConfig  `mapstructure:"poller"`
	Metrics MetricsConfig `mapstructure:"metrics"`

	// Optional sections; nil disables the corresponding sink.
	Queue   *QueueConfig   `mapstructure:"queue"`
	Webhook *WebhookConfig `mapstructure:"webhook"`
}

func (cfg *Config) Validate() error {
	if err := cfg.Server.Validate(); err != nil {
		return err
	}
	if err := cfg.Db.Validate(); err != nil {
		return err
	}
	if err := cfg.Genesis.Validate(); err != nil {
		return err
	}
	if err := cfg.Poller.Validate(); err != nil {
		return err
	}
	if err := cfg.Metrics.Validate(); err != nil {
		return err
	}

	if cfg.Queue != nil {
		if err := cfg.Queue.Validate(); err != nil {
			return err
		}
	}
	if cfg.Webhook != nil {
		if err := cfg.Webhook.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// New loads and validates the config file at the given path.
func New(cfgFile string) (*Config, error) {
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file %s: %w", cfgFile, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", cfgFile, err)
	}

	return &cfg, nil
}
