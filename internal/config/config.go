package config

import (
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"strings"
)

const (
	// BackendOrdered selects the linked hash map container
	BackendOrdered = "ordered"

	// BackendIndexed selects the go-memdb backed container
	BackendIndexed = "indexed"
)

// ErrUnknownBackend is returned by Validate if the configured container backend does not exist
var ErrUnknownBackend = errors.New("unknown container backend")

// Config represents the application configuration structure
type Config struct {
	Environment string `default:"development"`
	SeedFile    string `split_words:"true"`
	Ordered     bool   `default:"true"`
	Backend     string `default:"ordered"`
	Clone       bool   `default:"true"`
}

// LoadFromEnv loads a new configuration structure using environment variables and an optional .env file
func LoadFromEnv() (*Config, error) {
	// Load a .env file if it exists
	_ = godotenv.Overload()

	// Load a new configuration structure using environment variables
	config := new(Config)
	if err := envconfig.Process("datamap", config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// IsEnvProduction returns whether the application runs in production mode
func (config *Config) IsEnvProduction() bool {
	return strings.ToLower(config.Environment) == "production"
}

// Validate checks the values envconfig can not check on its own
func (config *Config) Validate() error {
	switch config.Backend {
	case BackendOrdered, BackendIndexed:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, config.Backend)
	}
}
