package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.APIPort != "8080" {
		t.Errorf("APIPort = %q", cfg.APIPort)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.ScoringURL != "http://localhost:8000" {
		t.Errorf("ScoringURL = %q", cfg.ScoringURL)
	}
	if cfg.ScoringTimeout != 30*time.Second {
		t.Errorf("ScoringTimeout = %v", cfg.ScoringTimeout)
	}
	if cfg.EnrichmentTimeout != 15*time.Second {
		t.Errorf("EnrichmentTimeout = %v", cfg.EnrichmentTimeout)
	}
	if cfg.APIRateLimitRPS != 10 {
		t.Errorf("APIRateLimitRPS = %v", cfg.APIRateLimitRPS)
	}
	if cfg.RetryMaxAttempts != 3 {
		t.Errorf("RetryMaxAttempts = %d", cfg.RetryMaxAttempts)
	}
	if !cfg.BreakerEnabled {
		t.Error("BreakerEnabled should default to true")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("SCORING_URL", "http://scoring:9000")
	t.Setenv("SCORING_TIMEOUT", "5s")
	t.Setenv("API_RATE_LIMIT_RPS", "2.5")
	t.Setenv("API_RATE_LIMIT_BURST", "5")
	t.Setenv("BREAKER_ENABLED", "false")

	cfg := Load()

	if cfg.APIPort != "9090" {
		t.Errorf("APIPort = %q", cfg.APIPort)
	}
	if cfg.ScoringURL != "http://scoring:9000" {
		t.Errorf("ScoringURL = %q", cfg.ScoringURL)
	}
	if cfg.ScoringTimeout != 5*time.Second {
		t.Errorf("ScoringTimeout = %v", cfg.ScoringTimeout)
	}
	if cfg.APIRateLimitRPS != 2.5 {
		t.Errorf("APIRateLimitRPS = %v", cfg.APIRateLimitRPS)
	}
	if cfg.APIRateLimitBurst != 5 {
		t.Errorf("APIRateLimitBurst = %d", cfg.APIRateLimitBurst)
	}
	if cfg.BreakerEnabled {
		t.Error("BreakerEnabled should be false")
	}
}

func TestLoadFallsBackOnMalformedValues(t *testing.T) {
	t.Setenv("SCORING_TIMEOUT", "soon")
	t.Setenv("API_RATE_LIMIT_BURST", "many")
	t.Setenv("BREAKER_ENABLED", "maybe")

	cfg := Load()

	if cfg.ScoringTimeout != 30*time.Second {
		t.Errorf("ScoringTimeout = %v", cfg.ScoringTimeout)
	}
	if cfg.APIRateLimitBurst != 20 {
		t.Errorf("APIRateLimitBurst = %d", cfg.APIRateLimitBurst)
	}
	if !cfg.BreakerEnabled {
		t.Error("malformed BREAKER_ENABLED should keep default true")
	}
}
