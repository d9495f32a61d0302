package conf

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Masa   MasaConfig   `mapstructure:"masa"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Host               string `mapstructure:"host"`
	Port               int    `mapstructure:"port"`
	RateLimitPerMinute int    `mapstructure:"rate_limit_per_minute"`
	DefaultMaxResults  int    `mapstructure:"default_max_results"`
}

type MasaConfig struct {
	BaseURL         string        `mapstructure:"base_url"`
	APIKey          string        `mapstructure:"api_key"`
	Timeout         time.Duration `mapstructure:"timeout"`
	PollInterval    time.Duration `mapstructure:"poll_interval"`
	MaxPollAttempts int           `mapstructure:"max_poll_attempts"`
	SourceType      string        `mapstructure:"source_type"`
}

type LogConfig struct {
	Level            string        `mapstructure:"level"`
	Format           string        `mapstructure:"format"`
	Output           string        `mapstructure:"output"`
	File             FileLogConfig `mapstructure:"file"`
	EnableCaller     bool          `mapstructure:"enablecaller"`
	EnableStacktrace bool          `mapstructure:"enablestacktrace"`
}

type FileLogConfig struct {
	Filename   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"maxsize"`
	MaxAge     int    `mapstructure:"maxage"`
	MaxBackups int    `mapstructure:"maxbackups"`
	Compress   bool   `mapstructure:"compress"`
}

func LoadConfig(path string) (*Config, error) {
	viper.SetConfigFile(path)
	viper.SetEnvPrefix("KOLSENSE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Unmarshal only sees env values for explicitly bound keys.
	for _, key := range []string{
		"server.host",
		"server.port",
		"server.rate_limit_per_minute",
		"server.default_max_results",
		"masa.base_url",
		"masa.api_key",
		"log.level",
	} {
		if err := viper.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&config)
	return &config, nil
}

func applyDefaults(c *Config) {
	if c.Server.Port == 0 {
		c.Server.Port = 5000
	}
	if c.Server.RateLimitPerMinute == 0 {
		c.Server.RateLimitPerMinute = 100
	}
	if c.Server.DefaultMaxResults == 0 {
		c.Server.DefaultMaxResults = 10
	}
	if c.Masa.BaseURL == "" {
		c.Masa.BaseURL = "https://data.dev.masalabs.ai/api"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
	if c.Log.Output == "" {
		c.Log.Output = "console"
	}
}
