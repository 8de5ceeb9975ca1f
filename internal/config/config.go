// Package config loads runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig is returned when the environment cannot be parsed.
var ErrParsingConfig = errors.New("failed to parse environment variables into config")

// Config is the configuration shared by the Lambda and the CLI.
type Config struct {
	APIKey      string        `env:"GOOGLE_TRANSLATE_API_KEY"`
	BaseURL     string        `env:"GOOGLE_TRANSLATE_BASE_URL"`
	PrettyPrint *bool         `env:"GOOGLE_TRANSLATE_PRETTY_PRINT"`
	LargeQuery  bool          `env:"GOOGLE_TRANSLATE_LARGE_QUERY" envDefault:"false"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`

	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	Environment  string `env:"ENVIRONMENT" envDefault:"dev"`
	FunctionName string `env:"AWS_LAMBDA_FUNCTION_NAME"`
}

// Load reads a .env file when present, then parses the environment.
func Load() (Config, error) {
	// The .env file is optional.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// Validate reports configuration that cannot produce a working client.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("GOOGLE_TRANSLATE_API_KEY is required")
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("HTTP_TIMEOUT must not be negative, got %s", c.HTTPTimeout)
	}
	return nil
}
