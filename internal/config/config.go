// Package config reads tool settings from the environment, with an
// optional .env file for development setups.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config holds everything the tool reads from its environment. Every
// field has a working default; a bare invocation needs no setup.
type Config struct {
	// TablePath is the sizing table the tool loads at startup and the
	// scraper writes.
	TablePath string `env:"RINGTOOL_TABLE" envDefault:"data/ring_sizes.yaml" validate:"required"`
	// DefaultSystem is preselected in the system prompt.
	DefaultSystem string `env:"RINGTOOL_DEFAULT_SYSTEM" envDefault:"UK" validate:"required"`
	// SourceURL is the reference page the scraper fetches.
	SourceURL string `env:"RINGTOOL_SOURCE_URL" envDefault:"https://en.wikipedia.org/wiki/Ring_size" validate:"required,url"`
	LogLevel  string `env:"RINGTOOL_LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
}

// Load reads the environment into a Config. A missing .env file is fine;
// a malformed or out-of-range value is not.
func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}
	if err := validate.Struct(&config); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return config, nil
}

// SlogLevel maps the configured level name onto slog's scale.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
