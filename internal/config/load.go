package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. VOCAB_SERVER_PORT.
const EnvPrefix = "VOCAB"

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables take
// precedence over values from the file.
func Load() (*Config, error) {
	return LoadFromFile("")
}

// LoadFromFile is Load with an explicit config file path. An empty path
// searches the working directory for config.yaml and ignores its absence.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("vocabulary.seed", 0)
	v.SetDefault("vocabulary.fetch_timeout_seconds", 30)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("cors.max_age", 300)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindEnvs := []struct {
		key    string
		envVar string
	}{
		{"server.port", "VOCAB_SERVER_PORT"},
		{"server.log_level", "VOCAB_SERVER_LOG_LEVEL"},
		{"vocabulary.source", "VOCAB_VOCABULARY_SOURCE"},
		{"vocabulary.seed", "VOCAB_VOCABULARY_SEED"},
		{"vocabulary.fetch_timeout_seconds", "VOCAB_VOCABULARY_FETCH_TIMEOUT_SECONDS"},
		{"cors.allowed_origins", "VOCAB_CORS_ALLOWED_ORIGINS"},
		{"cors.max_age", "VOCAB_CORS_MAX_AGE"},
	}

	for _, env := range bindEnvs {
		if err := v.BindEnv(env.key, env.envVar); err != nil {
			return nil, fmt.Errorf("error binding environment variable %s: %w", env.envVar, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
