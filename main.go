// ABOUTME: Entry point for the retirement savings mobile BFF
// ABOUTME: Wires config, session tokens, upstream relay and the route table

package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/fmartineau/retraite-mobile-bff/config"
	"github.com/fmartineau/retraite-mobile-bff/handlers"
	"github.com/fmartineau/retraite-mobile-bff/logger"
	"github.com/fmartineau/retraite-mobile-bff/middleware"
	"github.com/fmartineau/retraite-mobile-bff/token"
	"github.com/fmartineau/retraite-mobile-bff/upstream"
)

func main() {
	// .env is optional; real deployments set the environment directly
	godotenv.Load()

	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting retraite-mobile-bff")
	slog.Info("Upstream configured", "url", cfg.UpstreamBaseURL, "timeout_s", cfg.UpstreamTimeout)
	if cfg.DevSecret {
		slog.Warn("JWT_SECRET not set, using development secret")
	}

	codec := token.NewCodec(cfg.JWTSecret)
	relay := upstream.New(cfg)
	h := handlers.NewHandler(cfg, relay, codec)

	var limiters handlers.Limiters
	if cfg.RateLimitEnabled {
		limiters = handlers.Limiters{
			Auth:    middleware.NewRateLimiter(cfg.RateLimitAuth, time.Minute),
			Refresh: middleware.NewRateLimiter(cfg.RateLimitRefresh, time.Minute),
		}
		slog.Info("Rate limiting enabled", "auth_per_min", cfg.RateLimitAuth, "refresh_per_min", cfg.RateLimitRefresh)
	}

	mux := handlers.BuildMux(h, codec, cfg.CORSAllowedOrigins, limiters)

	addr := ":" + cfg.Port
	slog.Info("Server listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
