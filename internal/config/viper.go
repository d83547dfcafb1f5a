// Viper-based hierarchical configuration: defaults, then an optional YAML
// config file, then ILTRACKER_-prefixed environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	API struct {
		BaseURL           string  `mapstructure:"base_url" yaml:"base_url"`
		SportID           int     `mapstructure:"sport_id" yaml:"sport_id"`
		TimeoutSeconds    int     `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		MaxAttempts       int     `mapstructure:"max_attempts" yaml:"max_attempts"`
		RetryPauseSeconds float64 `mapstructure:"retry_pause_seconds" yaml:"retry_pause_seconds"`
	} `mapstructure:"api" yaml:"api"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Output struct {
		Directory string `mapstructure:"directory" yaml:"directory"`
	} `mapstructure:"output" yaml:"output"`
}

// InitializeConfig loads the configuration with hierarchical precedence.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.iltracker")
	v.AddConfigPath(".iltracker")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("ILTRACKER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets the built-in configuration values.
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Stats API defaults
	v.SetDefault("api.base_url", "https://statsapi.mlb.com/api/v1/transactions")
	v.SetDefault("api.sport_id", 1)
	v.SetDefault("api.timeout_seconds", 120)
	v.SetDefault("api.max_attempts", 3)
	v.SetDefault("api.retry_pause_seconds", 1.5)

	// CSV defaults
	v.SetDefault("csv.delimiter", ",")

	// Output defaults
	v.SetDefault("output.directory", "data")
}

// validateConfig validates the configuration values.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}

	if config.API.SportID < 1 {
		return fmt.Errorf("api.sport_id must be positive, got: %d", config.API.SportID)
	}

	if config.API.TimeoutSeconds < 1 || config.API.TimeoutSeconds > 600 {
		return fmt.Errorf("api.timeout_seconds must be between 1 and 600, got: %d", config.API.TimeoutSeconds)
	}

	if config.API.MaxAttempts < 1 || config.API.MaxAttempts > 10 {
		return fmt.Errorf("api.max_attempts must be between 1 and 10, got: %d", config.API.MaxAttempts)
	}

	if config.API.RetryPauseSeconds < 0 {
		return fmt.Errorf("api.retry_pause_seconds must not be negative, got: %f", config.API.RetryPauseSeconds)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	return nil
}

// ConfigureLoggingFromConfig builds a logger from the Config struct.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
