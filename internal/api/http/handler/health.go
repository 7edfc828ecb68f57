package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/storytrails-server/internal/logger"
)

// HealthChecker reports database reachability and schema version.
type HealthChecker interface {
	Ping(ctx context.Context) error
	SchemaVersion(ctx context.Context) (int64, error)
}

type healthResponse struct {
	Status        string `json:"status"`
	SchemaVersion int64  `json:"schemaVersion"`
}

// Health serves the liveness endpoint.
type Health struct {
	checker HealthChecker
	logger  *logger.Logger
}

func NewHealth(checker HealthChecker, logger *logger.Logger) *Health {
	return &Health{checker: checker, logger: logger}
}

// Check handles GET /health.
func (h *Health) Check(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.checker.Ping(ctx); err != nil {
		h.logger.Error("Health handler: database ping failed", "error", err.Error())
		writeDetails(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	version, err := h.checker.SchemaVersion(ctx)
	if err != nil {
		h.logger.Error("Health handler: failed to read schema version", "error", err.Error())
		writeDetails(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", SchemaVersion: version})
}
