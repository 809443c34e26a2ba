package config

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	Vocabulary VocabularyConfig `mapstructure:"vocabulary" validate:"required"`
	CORS       CORSConfig       `mapstructure:"cors"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// VocabularyConfig describes where the word list comes from and how decks
// are shuffled.
type VocabularyConfig struct {
	// Source is a file path or an http(s) URL.
	Source string `mapstructure:"source" validate:"required"`
	// Seed fixes the shuffle order. Zero means a fresh random seed per run.
	Seed uint64 `mapstructure:"seed"`
	// FetchTimeoutSeconds bounds a remote fetch. Zero disables the timeout.
	FetchTimeoutSeconds int `mapstructure:"fetch_timeout_seconds" validate:"gte=0"`
}

// CORSConfig controls which browser origins may call the API.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	MaxAge         int      `mapstructure:"max_age" validate:"gte=0"`
}
