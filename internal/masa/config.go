package masa

import (
	"errors"
	"time"
)

// Config holds the Masa data API client configuration. It is built once at
// startup and treated as read-only afterwards.
type Config struct {
	// BaseURL is the API base address, e.g. https://data.dev.masalabs.ai/api
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// APIKey is the bearer credential sent with every request
	APIKey string `mapstructure:"api_key" yaml:"api_key"`

	// Timeout is the per-request HTTP timeout
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`

	// PollInterval is the fixed wait between live-search status polls
	PollInterval time.Duration `mapstructure:"poll_interval" yaml:"poll_interval"`

	// MaxPollAttempts bounds the live-search polling loop. The worst-case
	// wait for a stuck job is MaxPollAttempts * PollInterval.
	MaxPollAttempts int `mapstructure:"max_poll_attempts" yaml:"max_poll_attempts"`

	// SourceType is the data source identifier sent on live-search submits
	SourceType string `mapstructure:"source_type" yaml:"source_type"`
}

// Validate checks required fields and applies defaults
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return errors.New("masa: base_url is required")
	}
	if c.APIKey == "" {
		return errors.New("masa: api_key is required")
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	if c.PollInterval <= 0 {
		c.PollInterval = 2 * time.Second
	}
	if c.MaxPollAttempts <= 0 {
		c.MaxPollAttempts = 30
	}
	if c.SourceType == "" {
		c.SourceType = "twitter-scraper"
	}
	return nil
}

// DefaultConfig returns the default client configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL:         "https://data.dev.masalabs.ai/api",
		Timeout:         30 * time.Second,
		PollInterval:    2 * time.Second,
		MaxPollAttempts: 30,
		SourceType:      "twitter-scraper",
	}
}
