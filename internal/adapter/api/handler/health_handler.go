package handler

import (
	"context"
	"log/slog"
	"net/http"
)

// SiteCounter reports how many distinct siteKeys are registered.
type SiteCounter interface {
	Count(ctx context.Context) (int, error)
}

// HealthHandler reports process liveness and the current registry size.
type HealthHandler struct {
	counter SiteCounter
	logger  *slog.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(counter SiteCounter, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{counter: counter, logger: logger}
}

// ServeHTTP handles GET /health.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	count, err := h.counter.Count(r.Context())
	if err != nil {
		h.logger.Error("failed to count sites", "error", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"sites":  count,
	})
}
