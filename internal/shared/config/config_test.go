package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"ENV", "PORT", "LLM_PROVIDER", "RATE_LIMIT_BURST", "TEXTGEN_CACHE_TTL", "CORS_ALLOW_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Env != "dev" {
		t.Fatalf("expected dev env, got %q", cfg.Env)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected port 8080, got %q", cfg.Port)
	}
	if cfg.TextGenEnabled() {
		t.Fatalf("expected text generation disabled by default")
	}
	if cfg.TextGenCacheTTL != time.Hour {
		t.Fatalf("expected 1h cache ttl, got %s", cfg.TextGenCacheTTL)
	}
	if len(cfg.CORSAllowOrigin) != 1 {
		t.Fatalf("expected single default origin, got %v", cfg.CORSAllowOrigin)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ENV", "prod")
	t.Setenv("LLM_PROVIDER", "OpenAI")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, ,https://b.example")

	cfg := Load()
	if cfg.Env != "production" {
		t.Fatalf("expected production env, got %q", cfg.Env)
	}
	if !cfg.TextGenEnabled() || cfg.LLMProvider != "openai" {
		t.Fatalf("expected openai provider, got %q", cfg.LLMProvider)
	}
	if cfg.RateLimitRPS != 2.5 {
		t.Fatalf("expected rps 2.5, got %v", cfg.RateLimitRPS)
	}
	if cfg.RateLimitBurst != 10 {
		t.Fatalf("expected invalid burst to fall back to 10, got %d", cfg.RateLimitBurst)
	}
	if len(cfg.CORSAllowOrigin) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.CORSAllowOrigin)
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("PORT", "")
	_ = os.Unsetenv("PORT")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=9191\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg := Load()
	if cfg.Port != "9191" {
		t.Fatalf("expected port from .env, got %q", cfg.Port)
	}
}
