package config

import (
	"fmt"
	"time"
)

const defaultPublishTimeout = 5 * time.Second

// QueueConfig configures the RabbitMQ operation-event publisher. The whole
// section is optional; without it no events are published to the broker.
type QueueConfig struct {
	URL            string        `mapstructure:"url"`
	Exchange       string        `mapstructure:"exchange"`
	PublishTimeout time.Duration `mapstructure:"publish-timeout"`
}

func (cfg *QueueConfig) Validate() error {
	if cfg.URL == "" {
		return fmt.Errorf("queue url must be set")
	}
	if cfg.Exchange == "" {
		return fmt.Errorf("queue exchange must be set")
	}

	if cfg.PublishTimeout <= 0 {
		cfg.PublishTimeout = defaultPublishTimeout
	}

	return nil
}
