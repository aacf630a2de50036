package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.LoginDelayMillis != 1000 || cfg.PaymentDelayMs != 2000 {
		t.Fatalf("unexpected simulated delays: %+v", cfg)
	}
	if cfg.ClampCartToStock {
		t.Fatalf("expected stock clamping off by default")
	}
}

func TestEnvOverridesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.toml")
	contents := "port = \"9000\"\nredis_addr = \"file-redis:6379\"\nclamp_cart_to_stock = true\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "7000")
	t.Setenv("REDIS_ADDR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "7000" {
		t.Fatalf("expected env to win over file, got %q", cfg.Port)
	}
	if cfg.RedisAddr != "file-redis:6379" {
		t.Fatalf("expected file value when env unset, got %q", cfg.RedisAddr)
	}
	if !cfg.ClampCartToStock {
		t.Fatalf("expected clamp enabled from file")
	}
}

func TestLoadRejectsUnreadableConfigFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))
	if _, err := Load(); err == nil {
		t.Fatalf("expected missing config file to be an error")
	}
}

func TestTokenTTLFallsBackWhenNonPositive(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("TOKEN_TTL_MINUTES", "-5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TokenTTLMinutes != 1440 {
		t.Fatalf("expected fallback TTL 1440, got %d", cfg.TokenTTLMinutes)
	}
}
