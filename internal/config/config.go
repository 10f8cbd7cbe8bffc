// Package config loads the process configuration from environment variables
// once at startup; components receive it by reference.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds the configuration for the API process.
type Config struct {
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:":3000"`
	MongoURI      string `env:"MONGO_URI"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"real_estate"`

	// ClientURL is the base URL of the single-page client; password reset
	// links point into it.
	ClientURL string `env:"CLIENT_URL" envDefault:"http://localhost:5173"`

	// GoogleClientID enables server-side verification of Google ID tokens
	// when set; otherwise the federated assertion is trusted as delivered.
	GoogleClientID string `env:"GOOGLE_CLIENT_ID"`

	Token TokenConfig
}

// TokenConfig holds the signing parameters for session and reset tokens.
type TokenConfig struct {
	Secret                      string        `env:"JWT_SECRET"`
	Issuer                      string        `env:"JWT_ISSUER"                      envDefault:"real-estate-api"`
	PasswordResetTokenExpiresIn time.Duration `env:"PASSWORD_RESET_TOKEN_EXPIRES_IN" envDefault:"24h"`
}

// New parses the configuration from the environment.
func New(logger *zerolog.Logger) *Config {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to parse environment variables")
	}

	if err := cfg.validate(); err != nil {
		logger.Fatal().Err(err).Msg("failed to validate configuration")
	}

	return &cfg
}

func (c *Config) validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("missing MONGO_URI environment variable")
	}
	if c.Token.Secret == "" {
		return fmt.Errorf("missing JWT_SECRET environment variable")
	}

	return nil
}
