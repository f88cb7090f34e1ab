package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Environment variables that override file settings
var envBindings = map[string]string{
	"frontgo.api_key":  "FRONTGO_API_KEY",
	"frontgo.demo":     "FRONTGO_DEMO",
	"frontgo.base_url": "FRONTGO_BASE_URL",
}

// Load loads the configuration from file and environment. When configPath is
// empty the standard locations are searched and a missing file is not an
// error, so the CLI can run on environment variables alone.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("error binding %s: %w", env, err)
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".frontgo"))
		}

		v.AddConfigPath("/etc/frontgo/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// FrontGo defaults
	v.SetDefault("frontgo.demo", false)
	v.SetDefault("frontgo.timeout", "30s")
	v.SetDefault("frontgo.max_retries", 2)
	v.SetDefault("frontgo.retry_wait_min", "50ms")
	v.SetDefault("frontgo.retry_wait_max", "2s")

	// Output defaults
	v.SetDefault("output.format", "json")
	v.SetDefault("output.pretty", true)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)

	v.SetDefault("update.repository", "s0up4200/frontgo")
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.FrontGo.APIKey == "" || cfg.FrontGo.APIKey == "your-api-key-here" {
		return fmt.Errorf("frontgo.api_key must be set to a valid API key (or FRONTGO_API_KEY)")
	}

	if cfg.FrontGo.MaxRetries < 0 {
		return fmt.Errorf("frontgo.max_retries must not be negative: %d", cfg.FrontGo.MaxRetries)
	}

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	validOutputs := map[string]bool{
		"json": true,
		"yaml": true,
	}
	if !validOutputs[cfg.Output.Format] {
		return fmt.Errorf("invalid output format: %s (must be 'json' or 'yaml')", cfg.Output.Format)
	}

	return nil
}
