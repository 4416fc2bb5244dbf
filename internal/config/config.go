package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	APIPort  string
	LogLevel string

	ScoringURL    string
	SimilarityURL string

	ScoringTimeout    time.Duration
	EnrichmentTimeout time.Duration

	APIRateLimitRPS   float64
	APIRateLimitBurst int

	RetryMaxAttempts int
	BreakerEnabled   bool
}

func Load() Config {
	return Config{
		APIPort:  mustEnv("API_PORT", "8080"),
		LogLevel: mustEnv("LOG_LEVEL", "info"),

		ScoringURL:    mustEnv("SCORING_URL", "http://localhost:8000"),
		SimilarityURL: mustEnv("SIMILARITY_URL", "http://localhost:8000"),

		ScoringTimeout:    mustEnvDuration("SCORING_TIMEOUT", 30*time.Second),
		EnrichmentTimeout: mustEnvDuration("ENRICHMENT_TIMEOUT", 15*time.Second),

		APIRateLimitRPS:   mustEnvFloat("API_RATE_LIMIT_RPS", 10),
		APIRateLimitBurst: mustEnvInt("API_RATE_LIMIT_BURST", 20),

		RetryMaxAttempts: mustEnvInt("RETRY_MAX_ATTEMPTS", 3),
		BreakerEnabled:   mustEnvBool("BREAKER_ENABLED", true),
	}
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func mustEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func mustEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
