package rest

import (
	"log/slog"
	"net/http"

	"github.com/bibbank/routing-service/pkg/auth"
)

// publicPaths bypass JWT authentication.
var publicPaths = []string{"/healthz", "/readyz", "/metrics"}

// RouterConfig collects the handlers served by the HTTP listener.
type RouterConfig struct {
	Health     *HealthHandler
	Validation *ValidationHandler
	// Metrics serves GET /metrics when set.
	Metrics http.Handler
	// JWT enables bearer authentication on every non-public path when set.
	JWT    *auth.JWTService
	Logger *slog.Logger
}

// NewRouter builds the HTTP handler chain: logging, then auth, then routes.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	cfg.Health.RegisterRoutes(mux)
	cfg.Validation.RegisterRoutes(mux)
	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", cfg.Metrics)
	}

	var handler http.Handler = mux
	if cfg.JWT != nil {
		handler = auth.HTTPMiddleware(cfg.JWT, publicPaths)(handler)
	}
	return LoggingMiddleware(cfg.Logger)(handler)
}
