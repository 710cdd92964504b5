package config

import (
	"fmt"
	"net/url"
)

// QueueConfig defines the rabbitmq connection used to publish ledger events
// for external indexers.
type QueueConfig struct {
	Url          string `mapstructure:"url"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	ExchangeName string `mapstructure:"exchange-name"`
}

func (cfg *QueueConfig) Validate() error {
	if cfg.Url == "" {
		return fmt.Errorf("missing queue url")
	}

	u, err := url.Parse(fmt.Sprintf("amqp://%s", cfg.Url))
	if err != nil {
		return fmt.Errorf("invalid queue url: %w", err)
	}

	if u.Host == "" {
		return fmt.Errorf("missing host in queue url")
	}

	if cfg.User == "" {
		return fmt.Errorf("missing queue user")
	}

	if cfg.Password == "" {
		return fmt.Errorf("missing queue password")
	}

	if cfg.ExchangeName == "" {
		return fmt.Errorf("missing queue exchange name")
	}

	return nil
}
