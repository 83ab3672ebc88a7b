package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bibbank/routing-service/internal/application/dto"
	"github.com/bibbank/routing-service/internal/application/usecase"
	"github.com/bibbank/routing-service/pkg/auth"
)

// ValidationHandler serves the routing-number REST API.
type ValidationHandler struct {
	validate *usecase.ValidateRoutingNumberUseCase
	batch    *usecase.ValidateBatchUseCase
	list     *usecase.ListValidationsUseCase
	stats    *usecase.GetValidationStatsUseCase
	logger   *slog.Logger
	// enforceRoles requires role claims; off when auth is disabled.
	enforceRoles bool
}

// NewValidationHandler creates a ValidationHandler. With enforceRoles set,
// callers need RoleValidator to validate and RoleAuditor to read the audit log.
func NewValidationHandler(
	validate *usecase.ValidateRoutingNumberUseCase,
	batch *usecase.ValidateBatchUseCase,
	list *usecase.ListValidationsUseCase,
	stats *usecase.GetValidationStatsUseCase,
	enforceRoles bool,
	logger *slog.Logger,
) *ValidationHandler {
	return &ValidationHandler{
		validate:     validate,
		batch:        batch,
		list:         list,
		stats:        stats,
		enforceRoles: enforceRoles,
		logger:       logger,
	}
}

type validateReq struct {
	RoutingNumber *string `json:"routing_number"`
}

type validateBatchReq struct {
	RoutingNumbers []string `json:"routing_numbers"`
}

// RegisterRoutes registers the API routes on the provided ServeMux.
func (h *ValidationHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/routing-numbers/validate", h.Validate)
	mux.HandleFunc("POST /api/v1/routing-numbers/validate-batch", h.ValidateBatch)
	mux.HandleFunc("GET /api/v1/routing-numbers/validations", h.ListValidations)
	mux.HandleFunc("GET /api/v1/routing-numbers/stats", h.Stats)
}

// Validate handles POST /api/v1/routing-numbers/validate. Every validation
// outcome is a 200; only undecodable requests are rejected.
func (h *ValidationHandler) Validate(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, auth.RoleValidator) {
		return
	}

	var req validateReq
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.RoutingNumber == nil {
		writeError(w, http.StatusBadRequest, "routing_number is required")
		return
	}

	result := h.validate.Execute(r.Context(), dto.ValidateRoutingNumberRequest{RoutingNumber: *req.RoutingNumber})
	writeJSON(w, http.StatusOK, result)
}

// ValidateBatch handles POST /api/v1/routing-numbers/validate-batch.
func (h *ValidationHandler) ValidateBatch(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, auth.RoleValidator) {
		return
	}

	var req validateBatchReq
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.batch.Execute(r.Context(), dto.ValidateBatchRequest{RoutingNumbers: req.RoutingNumbers})
	switch {
	case errors.Is(err, usecase.ErrEmptyBatch):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, usecase.ErrBatchTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
		return
	case err != nil:
		h.logger.ErrorContext(r.Context(), "batch validation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListValidations handles GET /api/v1/routing-numbers/validations?limit=N.
func (h *ValidationHandler) ListValidations(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, auth.RoleAuditor) {
		return
	}

	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	resp, err := h.list.Execute(r.Context(), dto.ListValidationsRequest{Limit: limit})
	if err != nil {
		h.writeAuditError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Stats handles GET /api/v1/routing-numbers/stats.
func (h *ValidationHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r, auth.RoleAuditor) {
		return
	}

	resp, err := h.stats.Execute(r.Context())
	if err != nil {
		h.writeAuditError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *ValidationHandler) authorize(w http.ResponseWriter, r *http.Request, role string) bool {
	if !h.enforceRoles || auth.RequireRole(r.Context(), role) {
		return true
	}
	writeError(w, http.StatusForbidden, "missing required role "+role)
	return false
}

func (h *ValidationHandler) writeAuditError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, usecase.ErrAuditDisabled) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	h.logger.ErrorContext(r.Context(), "audit query failed", "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}
