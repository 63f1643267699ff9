package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Addr != ":8080" {
		t.Fatalf("unexpected default addr %q", cfg.Server.Addr)
	}
	if cfg.WordPress.PostStatus != "publish" {
		t.Fatalf("unexpected default post status %q", cfg.WordPress.PostStatus)
	}
	if len(cfg.Scrape.Sources) != 7 {
		t.Fatalf("expected 7 default sources, got %d", len(cfg.Scrape.Sources))
	}
	if cfg.Scrape.Delay() != 1500*time.Millisecond {
		t.Fatalf("unexpected default delay %v", cfg.Scrape.Delay())
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := []byte(`
logging:
  level: debug
server:
  addr: ":9090"
scrape:
  requestDelay: 3s
  sources:
    - tnh1.com.br
`)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(configPathEnv, path)

	cfg := Load()

	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected debug level, got %q", cfg.Logging.Level)
	}
	if cfg.Server.Addr != ":9090" {
		t.Fatalf("expected addr from file, got %q", cfg.Server.Addr)
	}
	if cfg.Scrape.Delay() != 3*time.Second {
		t.Fatalf("expected 3s delay, got %v", cfg.Scrape.Delay())
	}
	if len(cfg.Scrape.Sources) != 1 || cfg.Scrape.Sources[0] != "tnh1.com.br" {
		t.Fatalf("expected sources from file, got %v", cfg.Scrape.Sources)
	}
	// Untouched sections keep their defaults.
	if cfg.WordPress.PostStatus != "publish" {
		t.Fatalf("expected default post status, got %q", cfg.WordPress.PostStatus)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  addr: \":9090\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(configPathEnv, path)
	t.Setenv(listenAddrEnv, ":7070")
	t.Setenv(databaseDSNEnv, "postgres://env")
	t.Setenv(apiSecretKeyEnv, "topsecret")

	cfg := Load()

	if cfg.Server.Addr != ":7070" {
		t.Fatalf("env must win over file, got %q", cfg.Server.Addr)
	}
	if cfg.Database.DSN != "postgres://env" {
		t.Fatalf("expected DSN from env, got %q", cfg.Database.DSN)
	}
	if cfg.Server.SecretKey != "topsecret" {
		t.Fatalf("expected secret from env, got %q", cfg.Server.SecretKey)
	}
}

func TestDelayInvalidFallsBack(t *testing.T) {
	s := ScrapeConfig{RequestDelay: "quickly"}
	if s.Delay() != defaultRequestDelay {
		t.Fatalf("expected fallback delay, got %v", s.Delay())
	}
	s = ScrapeConfig{RequestDelay: "-2s"}
	if s.Delay() != defaultRequestDelay {
		t.Fatalf("negative delay must fall back, got %v", s.Delay())
	}
}
