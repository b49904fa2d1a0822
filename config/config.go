package config

import (
	"context"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig `env:",prefix=SERVER_"`
	Offers OffersConfig `env:",prefix=OFFERS_"`
	App    AppConfig    `env:",prefix=APP_"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port string `env:"PORT,default=8080"`
	Host string `env:"HOST,default=0.0.0.0"`
}

// OffersConfig holds the collaborator offers API configuration
type OffersConfig struct {
	APIURL          string        `env:"API_URL,default=http://localhost:9090/api/offers"`
	FetchTimeout    time.Duration `env:"FETCH_TIMEOUT,default=10s"`
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL,default=5m"`
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Env          string `env:"ENV,default=development"`
	CurrencyCode string `env:"CURRENCY_CODE,default=INR"`
}

// LoadConfig loads configuration from a .env file when present, falling back
// to the process environment
func LoadConfig(ctx context.Context) (*Config, error) {
	// A missing .env file is fine; deployments set real environment variables
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	return &cfg, nil
}

// Addr returns the listen address for the HTTP server
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsProduction returns true if running in production environment
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}
