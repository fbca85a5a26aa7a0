// Package config loads application configuration from defaults, an optional
// YAML file and BISTRO_-prefixed environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Log       LogConfig       `koanf:"log"`
	JWT       JWTConfig       `koanf:"jwt"`
	CORS      CORSConfig      `koanf:"cors"`
	Stripe    StripeConfig    `koanf:"stripe"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              string        `koanf:"port"`
	MetricsPort       string        `koanf:"metrics_port"`
	ReadTimeout       time.Duration `koanf:"read_timeout"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	WriteTimeout      time.Duration `koanf:"write_timeout"`
	IdleTimeout       time.Duration `koanf:"idle_timeout"`
}

// DatabaseConfig contains PostgreSQL settings.
type DatabaseConfig struct {
	URL             string        `koanf:"url"`
	MaxConns        int           `koanf:"max_conns"`
	MinConns        int           `koanf:"min_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnectTimeout  time.Duration `koanf:"connect_timeout"`
	ConnectAttempts int           `koanf:"connect_attempts"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// JWTConfig contains token signing settings.
type JWTConfig struct {
	SecretKey     string        `koanf:"secret_key"`
	TokenDuration time.Duration `koanf:"token_duration"`
}

// CORSConfig contains CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// StripeConfig contains payment gateway settings.
type StripeConfig struct {
	SecretKey string `koanf:"secret_key"`
	Currency  string `koanf:"currency"`
}

// RateLimitConfig throttles token issuance.
type RateLimitConfig struct {
	TokenRequestsPerSecond float64 `koanf:"token_requests_per_second"`
	TokenBurst             int     `koanf:"token_burst"`
}

// envSections are the top-level config sections addressable through the
// BISTRO_ environment overlay.
var envSections = []string{
	"server",
	"database",
	"log",
	"jwt",
	"cors",
	"stripe",
	"rate_limit",
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"server.host":                          "0.0.0.0",
		"server.port":                          "5000",
		"server.metrics_port":                  "9090",
		"server.read_timeout":                  "15s",
		"server.read_header_timeout":           "5s",
		"server.write_timeout":                 "15s",
		"server.idle_timeout":                  "60s",
		"database.max_conns":                   25,
		"database.min_conns":                   5,
		"database.conn_max_lifetime":           "30m",
		"database.connect_timeout":             "30s",
		"database.connect_attempts":            5,
		"log.level":                            "info",
		"log.format":                           "json",
		"jwt.token_duration":                   "6h",
		"cors.allowed_origins":                 []string{"*"},
		"stripe.currency":                      "usd",
		"rate_limit.token_requests_per_second": 5.0,
		"rate_limit.token_burst":               10,
	}
}

// Load reads configuration. path may be empty; a missing file at a
// non-empty path is an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %q: %w", path, err)
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	// BISTRO_DATABASE_URL -> database.url. Section names can themselves
	// contain underscores (rate_limit), so the split point comes from the
	// known section list, not the first underscore.
	err := k.Load(env.Provider("BISTRO_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "BISTRO_"))
		for _, section := range envSections {
			if strings.HasPrefix(key, section+"_") {
				return section + "." + strings.TrimPrefix(key, section+"_")
			}
		}
		return key
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	var errs []error

	if c.Database.URL == "" {
		errs = append(errs, errors.New("database url is required (BISTRO_DATABASE_URL)"))
	}
	if c.JWT.SecretKey == "" {
		errs = append(errs, errors.New("jwt secret key is required (BISTRO_JWT_SECRET_KEY)"))
	}
	if c.Stripe.SecretKey == "" {
		errs = append(errs, errors.New("stripe secret key is required (BISTRO_STRIPE_SECRET_KEY)"))
	}

	return errors.Join(errs...)
}
