package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/user/captcha-relay/internal/domain"
)

// ChallengeVerifier is the use case surface the verify handler depends on.
type ChallengeVerifier interface {
	Verify(ctx context.Context, siteKey, token string) (domain.VerificationOutcome, error)
}

// VerifyHandler handles HTTP requests for challenge verification.
type VerifyHandler struct {
	uc     ChallengeVerifier
	logger *slog.Logger
}

// NewVerifyHandler creates a new VerifyHandler.
func NewVerifyHandler(uc ChallengeVerifier, logger *slog.Logger) *VerifyHandler {
	return &VerifyHandler{uc: uc, logger: logger}
}

type verifyRequest struct {
	Token   string `json:"token"`
	SiteKey string `json:"siteKey"`
}

type verifyError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ServeHTTP processes POST /api/verify requests.
func (h *VerifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, verifyError{Error: "Invalid request body"})
		return
	}

	outcome, err := h.uc.Verify(r.Context(), req.SiteKey, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingParams):
			respondJSON(w, http.StatusBadRequest, verifyError{Error: "Missing token or siteKey"})
		case errors.Is(err, domain.ErrSiteNotFound):
			respondJSON(w, http.StatusBadRequest, verifyError{Error: "Invalid siteKey"})
		default:
			respondJSON(w, http.StatusInternalServerError, verifyError{Error: "Verification failed"})
		}
		return
	}

	respondJSON(w, http.StatusOK, outcome)
}
