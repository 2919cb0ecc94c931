package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	App AppConfig `envPrefix:"CREWDESK_"`
}

// AppConfig holds application configuration
type AppConfig struct {
	// DataDir is where the durable key-value files live. Defaults to
	// <user config dir>/crewdesk.
	DataDir  string `env:"DATA_DIR"`
	Env      string `env:"ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	// A .env file is optional for a local tool
	_ = godotenv.Load()

	config := &Config{}
	if err := env.Parse(config); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	if config.App.DataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve user config dir: %w", err)
		}
		config.App.DataDir = filepath.Join(base, "crewdesk")
	}

	return config, nil
}
