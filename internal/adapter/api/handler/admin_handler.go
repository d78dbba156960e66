package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/user/captcha-relay/internal/domain"
)

// SiteAdmin is the use case surface the admin handler depends on.
type SiteAdmin interface {
	Register(ctx context.Context, siteKey, siteDomain, secretKey string) error
	List(ctx context.Context) ([]domain.SiteSummary, error)
	Count(ctx context.Context) (int, error)
}

// AdminHandler handles HTTP requests for site administration. Authorization
// is enforced by the AdminAuth middleware before these methods run.
type AdminHandler struct {
	uc     SiteAdmin
	logger *slog.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(uc SiteAdmin, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, logger: logger}
}

type registerRequest struct {
	Domain    string `json:"domain"`
	SiteKey   string `json:"siteKey"`
	SecretKey string `json:"secretKey"`
}

// RegisterSite handles POST /api/admin/register. The payload fields are
// stored as given; a siteKey that already exists is overwritten.
func (h *AdminHandler) RegisterSite(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	if err := h.uc.Register(r.Context(), req.SiteKey, req.Domain, req.SecretKey); err != nil {
		h.logger.Error("failed to register site", "error", err, "site_key", req.SiteKey)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"domain":  req.Domain,
		"siteKey": req.SiteKey,
	})
}

// ListSites handles GET /api/admin/sites. Summaries never carry secrets.
func (h *AdminHandler) ListSites(w http.ResponseWriter, r *http.Request) {
	sites, err := h.uc.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list sites", "error", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"sites": sites,
		"count": len(sites),
	})
}
