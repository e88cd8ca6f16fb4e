package config_test

import (
	"testing"
	"time"

	"github.com/kaiyuskis/Hackit2023-KITSNS/internal/config"
)

const validSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", validSecret)
	for _, key := range []string{"PORT", "DATABASE_PATH", "SESSION_TTL", "BCRYPT_COST", "COOKIE_SECURE"} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.DatabasePath != "forum.db" {
		t.Fatalf("expected default database path forum.db, got %s", cfg.DatabasePath)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Fatalf("expected default session TTL 24h, got %s", cfg.SessionTTL)
	}
	if cfg.BcryptCost != 12 {
		t.Fatalf("expected default bcrypt cost 12, got %d", cfg.BcryptCost)
	}
	if !cfg.CookieSecure {
		t.Fatal("expected secure cookies by default")
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for missing SESSION_SECRET")
	}
}

func TestLoad_ShortSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "too-short")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for short SESSION_SECRET")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", validSecret)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_PATH", "/tmp/other.db")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("COOKIE_SECURE", "false")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != "9000" {
		t.Fatalf("expected port 9000, got %s", cfg.Port)
	}
	if cfg.DatabasePath != "/tmp/other.db" {
		t.Fatalf("expected overridden database path, got %s", cfg.DatabasePath)
	}
	if cfg.SessionTTL != time.Hour {
		t.Fatalf("expected session TTL 1h, got %s", cfg.SessionTTL)
	}
	if cfg.BcryptCost != 4 {
		t.Fatalf("expected bcrypt cost 4, got %d", cfg.BcryptCost)
	}
	if cfg.CookieSecure {
		t.Fatal("expected insecure cookies when COOKIE_SECURE=false")
	}
}

func TestLoad_InvalidBcryptCost(t *testing.T) {
	t.Setenv("SESSION_SECRET", validSecret)

	for _, v := range []string{"3", "15", "abc"} {
		t.Setenv("BCRYPT_COST", v)
		if _, err := config.Load(); err == nil {
			t.Fatalf("expected error for BCRYPT_COST=%s", v)
		}
	}
}

func TestLoad_InvalidSessionTTL(t *testing.T) {
	t.Setenv("SESSION_SECRET", validSecret)

	for _, v := range []string{"bogus", "-1h", "0s"} {
		t.Setenv("SESSION_TTL", v)
		if _, err := config.Load(); err == nil {
			t.Fatalf("expected error for SESSION_TTL=%s", v)
		}
	}
}
