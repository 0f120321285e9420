package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config holds the storefront API configuration.
type Config struct {
	ServerAddr      string        `env:"SERVER_ADDR"      envDefault:":8080"`
	MongoURI        string        `env:"MONGO_URI"`
	MongoDatabase   string        `env:"MONGO_DATABASE"   envDefault:"storefront"`
	JWTSecret       string        `env:"JWT_SECRET"`
	TokenIssuer     string        `env:"TOKEN_ISSUER"     envDefault:"storefront-api"`
	TokenExpiresIn  time.Duration `env:"TOKEN_EXPIRES_IN" envDefault:"720h"`
	FrontendURL     string        `env:"FRONTEND_URL"     envDefault:"http://localhost:5173"`
	ContactInbox    string        `env:"CONTACT_INBOX"`
	CatalogPageSize int           `env:"CATALOG_PAGE_SIZE" envDefault:"12"`
}

// New creates a Config instance from environment variables.
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

// validate checks if the configuration is valid.
func (c *Config) validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("missing MONGO_URI environment variable")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("missing JWT_SECRET environment variable")
	}
	if c.ContactInbox == "" {
		return fmt.Errorf("missing CONTACT_INBOX environment variable")
	}

	return nil
}
