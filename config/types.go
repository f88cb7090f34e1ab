package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	FrontGo FrontGoConfig `mapstructure:"frontgo"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
	Update  UpdateConfig  `mapstructure:"update"`
}

// FrontGoConfig holds FrontGo API connection details
type FrontGoConfig struct {
	APIKey       string        `mapstructure:"api_key"`
	Demo         bool          `mapstructure:"demo"`
	BaseURL      string        `mapstructure:"base_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
	MaxRetries   int           `mapstructure:"max_retries"`
	RetryWaitMin time.Duration `mapstructure:"retry_wait_min"`
	RetryWaitMax time.Duration `mapstructure:"retry_wait_max"`
}

// OutputConfig controls how API responses are printed
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Pretty bool   `mapstructure:"pretty"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// UpdateConfig holds self-update settings
type UpdateConfig struct {
	// Repository is the GitHub "owner/name" slug releases are fetched from.
	Repository string `mapstructure:"repository"`
}
