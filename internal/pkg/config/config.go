package config

import (
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
	AdminToken        string        `env:"ADMIN_TOKEN,required"`
	ServerAddr        string        `env:"SERVER_ADDR" envDefault:":3000"`
	UpstreamVerifyURL string        `env:"UPSTREAM_VERIFY_URL" envDefault:"https://www.google.com/recaptcha/api/siteverify"`
	UpstreamTimeout   time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"10s"`
}

// Load reads configuration from environment variables. A missing ADMIN_TOKEN
// is an error: the process must not serve without an admin gate.
func Load() (*Config, error) {
	// Attempt to load .env file for local development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
