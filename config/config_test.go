// ABOUTME: Tests for the environment-driven configuration loader

package config

import (
	"os"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Port != "3000" {
		t.Errorf("Expected default port 3000, got %s", cfg.Port)
	}
	if cfg.UpstreamBaseURL != "http://localhost:3001/API_RETRAITE_V2" {
		t.Errorf("Expected default upstream URL, got %s", cfg.UpstreamBaseURL)
	}
	if cfg.UpstreamTimeout != 30 {
		t.Errorf("Expected default upstream timeout 30, got %d", cfg.UpstreamTimeout)
	}
	if !cfg.RateLimitEnabled {
		t.Error("Expected rate limiting enabled by default")
	}
	if cfg.RateLimitAuth != 5 || cfg.RateLimitRefresh != 10 {
		t.Errorf("Expected default rate limits 5/10, got %d/%d", cfg.RateLimitAuth, cfg.RateLimitRefresh)
	}
}

func TestLoadConfig_DevSecretFallback(t *testing.T) {
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !cfg.DevSecret {
		t.Error("Expected DevSecret flag when JWT_SECRET is unset")
	}
	if cfg.JWTSecret != DevSecret {
		t.Errorf("Expected dev secret fallback, got %s", cfg.JWTSecret)
	}

	os.Setenv("JWT_SECRET", "prod-secret")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.DevSecret {
		t.Error("Expected DevSecret flag unset when JWT_SECRET is provided")
	}
	if cfg.JWTSecret != "prod-secret" {
		t.Errorf("Expected JWT_SECRET value, got %s", cfg.JWTSecret)
	}
}

func TestLoadConfig_InvalidUpstreamURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"relative", "localhost:3001"},
		{"bad scheme", "ftp://upstream.example.com"},
		{"empty host", "http://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			os.Setenv("UPSTREAM_URL", tt.url)

			_, err := Load()
			if err == nil {
				t.Errorf("Expected error for UPSTREAM_URL %q, got nil", tt.url)
			}
		})
	}
}

func TestLoadConfig_TimeoutBounds(t *testing.T) {
	os.Clearenv()
	os.Setenv("UPSTREAM_TIMEOUT", "0")

	if _, err := Load(); err == nil {
		t.Error("Expected error for UPSTREAM_TIMEOUT 0, got nil")
	}

	os.Setenv("UPSTREAM_TIMEOUT", "301")
	if _, err := Load(); err == nil {
		t.Error("Expected error for UPSTREAM_TIMEOUT 301, got nil")
	}
}

func TestLoadConfig_RateLimitBounds(t *testing.T) {
	os.Clearenv()
	os.Setenv("RATE_LIMIT_AUTH", "0")

	if _, err := Load(); err == nil {
		t.Error("Expected error for RATE_LIMIT_AUTH 0, got nil")
	}
}

func TestLoadConfig_CORSOriginList(t *testing.T) {
	os.Clearenv()
	os.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.fr, https://staging.example.fr ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("Expected 2 origins, got %d", len(cfg.CORSAllowedOrigins))
	}
	if cfg.CORSAllowedOrigins[0] != "https://app.example.fr" {
		t.Errorf("Expected trimmed first origin, got %q", cfg.CORSAllowedOrigins[0])
	}
}
