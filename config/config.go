package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`
	// Log level understood by zap: debug, info, warn, error
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Database
	DBUrl             string        `env:"DATABASE_URL"`
	DBMaxConns        int32         `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns        int32         `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBAutoMigrate     bool          `env:"DB_AUTO_MIGRATE" envDefault:"true"`

	// Accounts
	JWTSecret string        `env:"JWT_SECRET"`
	JWTExpiry time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`

	// Redis (optional, rate limiting falls back to memory without it)
	RedisURL      string `env:"REDIS_URL"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Rate Limiting
	RateLimitWindow          time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
	RateLimitGlobalThreshold int           `env:"RATE_LIMIT_GLOBAL_THRESHOLD" envDefault:"100"`
	RateLimitLoginThreshold  int           `env:"RATE_LIMIT_LOGIN_THRESHOLD" envDefault:"10"`

	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://127.0.0.1:3000"`
}

func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables always win
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	for i, origin := range cfg.AllowedOrigins {
		cfg.AllowedOrigins[i] = strings.TrimRight(strings.TrimSpace(origin), "/")
	}

	return cfg, nil
}

// Warnings lists settings that are missing but not fatal at startup.
func (c *Config) Warnings() []string {
	var warnings []string
	if c.DBUrl == "" {
		warnings = append(warnings, "DATABASE_URL is missing. Application may fail to connect.")
	}
	if c.JWTSecret == "" {
		warnings = append(warnings, "JWT_SECRET is missing. Login and /accounts/me will be unavailable.")
	}
	if c.RedisURL == "" {
		warnings = append(warnings, "REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}
	return warnings
}
