// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Storage struct {
		Path string `mapstructure:"path" yaml:"path"`
	} `mapstructure:"storage" yaml:"storage"`

	Rules struct {
		File string `mapstructure:"file" yaml:"file"` // optional YAML rule table, built-ins used when empty
	} `mapstructure:"rules" yaml:"rules"`

	Classifier struct {
		Enabled          bool   `mapstructure:"enabled" yaml:"enabled"`
		Provider         string `mapstructure:"provider" yaml:"provider"` // "gemini" or "remote"
		Endpoint         string `mapstructure:"endpoint" yaml:"endpoint"` // remote provider only
		Model            string `mapstructure:"model" yaml:"model"`       // gemini provider only
		APIKey           string `mapstructure:"api_key" yaml:"-"`         // never serialize the API key
		TimeoutSeconds   int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		FallbackCategory string `mapstructure:"fallback_category" yaml:"fallback_category"`
	} `mapstructure:"classifier" yaml:"classifier"`
}

// InitializeConfig loads configuration hierarchically: defaults, then an
// optional config file, then environment variables with the STMT prefix.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.statement-analyzer")
	v.AddConfigPath(".statement-analyzer")
	v.AddConfigPath(".")

	v.SetEnvPrefix("STMT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Keep going with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// The Gemini key always comes from the conventional env var, unprefixed
	if err := v.BindEnv("classifier.api_key", "GEMINI_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("storage.path", "transactions.db")

	v.SetDefault("rules.file", "")

	v.SetDefault("classifier.enabled", false)
	v.SetDefault("classifier.provider", "remote")
	v.SetDefault("classifier.endpoint", "http://127.0.0.1:5001/classify")
	v.SetDefault("classifier.model", "gemini-1.5-flash")
	v.SetDefault("classifier.timeout_seconds", 5)
	v.SetDefault("classifier.fallback_category", "Miscellaneous")
}

func validateConfig(config *Config) error {
	switch config.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", config.Log.Level)
	}

	switch config.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", config.Log.Format)
	}

	if config.Storage.Path == "" {
		return fmt.Errorf("storage.path must not be empty")
	}

	if config.Classifier.Enabled {
		switch config.Classifier.Provider {
		case "remote":
			if config.Classifier.Endpoint == "" {
				return fmt.Errorf("classifier.endpoint is required for the remote provider")
			}
		case "gemini":
			if config.Classifier.Model == "" {
				return fmt.Errorf("classifier.model is required for the gemini provider")
			}
		default:
			return fmt.Errorf("unknown classifier provider %q", config.Classifier.Provider)
		}
		if config.Classifier.TimeoutSeconds <= 0 {
			return fmt.Errorf("classifier.timeout_seconds must be positive")
		}
	}

	return nil
}
