// ABOUTME: Configuration loader for the BFF service
// ABOUTME: Loads settings from environment variables with dev-friendly defaults

package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// DevSecret is the signing secret used when JWT_SECRET is unset.
// It exists so the BFF runs out of the box against the mock upstream;
// a production deployment must always set its own secret.
const DevSecret = "dev-secret-do-not-use-in-production"

type Config struct {
	// Server
	Port               string
	CORSAllowedOrigins []string // allowed CORS origins (empty = allow all, dev mode)

	// Session tokens
	JWTSecret string
	DevSecret bool // true when JWTSecret fell back to the dev default

	// Upstream (retirement administration API)
	UpstreamBaseURL string // includes any fixed base path segment, e.g. /API_RETRAITE_V2
	UpstreamTimeout int    // seconds, per relay call (default 30)

	// Rate Limiting
	RateLimitEnabled bool // Enable rate limiting (default: true)
	RateLimitAuth    int  // Requests per minute for /auth/login (default: 5)
	RateLimitRefresh int  // Requests per minute for /auth/refresh (default: 10)
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("BFF_PORT", "3000"),
		CORSAllowedOrigins: getEnvStringList("CORS_ALLOWED_ORIGINS"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		UpstreamBaseURL: getEnv("UPSTREAM_URL", "http://localhost:3001/API_RETRAITE_V2"),
		UpstreamTimeout: getEnvInt("UPSTREAM_TIMEOUT", 30),

		RateLimitEnabled: getEnvBool("RATE_LIMIT_ENABLED", true),
		RateLimitAuth:    getEnvInt("RATE_LIMIT_AUTH", 5),
		RateLimitRefresh: getEnvInt("RATE_LIMIT_REFRESH", 10),
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = DevSecret
		cfg.DevSecret = true
	}

	// Format validation only; upstream reachability is checked lazily per call
	u, err := url.Parse(cfg.UpstreamBaseURL)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("UPSTREAM_URL must be an absolute http(s) URL, got %q", cfg.UpstreamBaseURL)
	}

	if cfg.UpstreamTimeout < 1 || cfg.UpstreamTimeout > 300 {
		return nil, fmt.Errorf("UPSTREAM_TIMEOUT must be between 1 and 300 seconds, got %d", cfg.UpstreamTimeout)
	}

	for _, rl := range []struct {
		name  string
		value int
	}{
		{"RATE_LIMIT_AUTH", cfg.RateLimitAuth},
		{"RATE_LIMIT_REFRESH", cfg.RateLimitRefresh},
	} {
		if rl.value < 1 || rl.value > 10000 {
			return nil, fmt.Errorf("%s must be between 1 and 10000, got %d", rl.name, rl.value)
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvStringList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
