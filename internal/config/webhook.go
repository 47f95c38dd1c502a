package config

import (
	"fmt"
	"net/url"
	"time"
)

// WebhookConfig configures HTTP delivery of operation events to a single
// downstream collaborator. The whole section is optional.
type WebhookConfig struct {
	URL           string        `mapstructure:"url"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxRetryTimes uint          `mapstructure:"max-retry-times"`
	RetryInterval time.Duration `mapstructure:"retry-interval"`
}

func (cfg *WebhookConfig) Validate() error {
	if cfg.URL == "" {
		return fmt.Errorf("webhook url must be set")
	}
	if _, err := url.ParseRequestURI(cfg.URL); err != nil {
		return fmt.Errorf("webhook url is invalid: %w", err)
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("webhook timeout must be positive")
	}
	if cfg.MaxRetryTimes == 0 {
		return fmt.Errorf("webhook max-retry-times must be positive")
	}
	if cfg.RetryInterval <= 0 {
		return fmt.Errorf("webhook retry-interval must be positive")
	}

	return nil
}
