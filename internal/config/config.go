// Package config loads runtime settings from the environment, with
// development defaults for everything except the session signing secret.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds runtime settings for the forum server.
//
// Fields:
//   - Port: HTTP listen port.
//   - DatabasePath: path of the SQLite database file.
//   - SessionSecret: HMAC secret for signing session tokens (HS256).
//   - SessionTTL: how long a session stays valid.
//   - BcryptCost: work factor for password hashing.
//   - CookieSecure: whether session cookies are marked Secure.
type Config struct {
	Port          string
	DatabasePath  string
	SessionSecret string
	SessionTTL    time.Duration
	BcryptCost    int
	CookieSecure  bool
}

// Load builds a Config from environment variables. SESSION_SECRET is
// required and must be at least 32 bytes for HMAC-SHA256.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          envOrDefault("PORT", "8080"),
		DatabasePath:  envOrDefault("DATABASE_PATH", "forum.db"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		SessionTTL:    24 * time.Hour,
		BcryptCost:    12,
		// Default to secure cookies; disable only for local development.
		CookieSecure: os.Getenv("COOKIE_SECURE") != "false",
	}

	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET environment variable is required")
	}
	if len(cfg.SessionSecret) < 32 {
		return nil, fmt.Errorf("SESSION_SECRET must be at least 32 characters")
	}

	if v := os.Getenv("SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
		}
		if ttl <= 0 {
			return nil, fmt.Errorf("SESSION_TTL must be positive, got %s", ttl)
		}
		cfg.SessionTTL = ttl
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		if cost < 4 || cost > 14 {
			return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", cost)
		}
		cfg.BcryptCost = cost
	}

	return cfg, nil
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
