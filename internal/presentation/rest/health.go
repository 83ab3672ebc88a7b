package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/bibbank/routing-service/pkg/postgres"
)

// HealthHandler provides HTTP health check endpoints.
type HealthHandler struct {
	startedAt   time.Time
	db          postgres.Pinger
	logger      *slog.Logger
	serviceName string
}

// NewHealthHandler creates a new HealthHandler. db may be nil when the
// service runs without an audit database.
func NewHealthHandler(serviceName string, db postgres.Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		startedAt:   time.Now(),
		db:          db,
		logger:      logger,
	}
}

// healthResponse is the JSON response for health check endpoints.
type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Uptime  string `json:"uptime"`
}

// readinessResponse is the JSON response for the readiness endpoint.
type readinessResponse struct {
	Checks  map[string]string `json:"checks"`
	Status  string            `json:"status"`
	Service string            `json:"service"`
}

// Liveness handles the liveness probe endpoint (GET /healthz).
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Service: h.serviceName,
		Uptime:  time.Since(h.startedAt).String(),
	})
}

// Readiness handles the readiness probe endpoint (GET /readyz).
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp := readinessResponse{
		Status:  "ok",
		Service: h.serviceName,
		Checks:  map[string]string{"validator": "ok"},
	}
	code := http.StatusOK

	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := postgres.HealthCheck(ctx, h.db); err != nil {
			h.logger.WarnContext(ctx, "readiness check failed", "check", "database", "error", err)
			resp.Checks["database"] = "unavailable"
			resp.Status = "unavailable"
			code = http.StatusServiceUnavailable
		} else {
			resp.Checks["database"] = "ok"
		}
	}

	writeJSON(w, code, resp)
}

// RegisterRoutes registers health check routes on the provided ServeMux.
func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.Liveness)
	mux.HandleFunc("GET /readyz", h.Readiness)
}
