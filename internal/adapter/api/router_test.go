package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/user/captcha-relay/internal/adapter/registry/memory"
	"github.com/user/captcha-relay/internal/domain/mocks"
	"github.com/user/captcha-relay/internal/pkg/config"
	"github.com/user/captcha-relay/internal/usecase"
)

func newTestRouter(t *testing.T, verifier *mocks.MockChallengeVerifier) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{AdminToken: "admin-secret"}

	registry := memory.NewSiteRegistry(nil)
	siteAdmin := usecase.NewSiteAdminUseCase(registry, logger)
	verify := usecase.NewVerifyChallengeUseCase(registry, verifier, logger, nil)

	return NewRouter(cfg, logger, nil, siteAdmin, verify)
}

func doJSON(t *testing.T, router http.Handler, method, path, body, adminToken string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if adminToken != "" {
		req.Header.Set("X-Admin-Token", adminToken)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestRouter_AdminGate(t *testing.T) {
	router := newTestRouter(t, &mocks.MockChallengeVerifier{})

	// A wrong credential is rejected regardless of payload validity.
	rr := doJSON(t, router, http.MethodPost, "/api/admin/register",
		`{"domain": "a.com", "siteKey": "k", "secretKey": "s"}`, "wrong")
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("register with wrong token: got %d, want 401", rr.Code)
	}

	rr = doJSON(t, router, http.MethodGet, "/api/admin/sites", "", "")
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("list with no token: got %d, want 401", rr.Code)
	}
}

func TestRouter_RegisterListVerifyFlow(t *testing.T) {
	verifier := &mocks.MockChallengeVerifier{}
	verifier.Result.Success = true
	verifier.Result.Score = 0.7
	verifier.Result.Action = "login"
	router := newTestRouter(t, verifier)

	// Register the same siteKey twice: the second write wins and the site
	// counts once.
	rr := doJSON(t, router, http.MethodPost, "/api/admin/register",
		`{"domain": "x.com", "siteKey": "a", "secretKey": "s1"}`, "admin-secret")
	if rr.Code != http.StatusOK {
		t.Fatalf("first register: got %d, want 200", rr.Code)
	}
	rr = doJSON(t, router, http.MethodPost, "/api/admin/register",
		`{"domain": "y.com", "siteKey": "a", "secretKey": "s2"}`, "admin-secret")
	if rr.Code != http.StatusOK {
		t.Fatalf("second register: got %d, want 200", rr.Code)
	}

	rr = doJSON(t, router, http.MethodGet, "/api/admin/sites", "", "admin-secret")
	if rr.Code != http.StatusOK {
		t.Fatalf("list: got %d, want 200", rr.Code)
	}
	var listResp struct {
		Sites []map[string]any `json:"sites"`
		Count int              `json:"count"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &listResp); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if listResp.Count != 1 || len(listResp.Sites) != 1 {
		t.Fatalf("expected one site after overwrite, got count=%d", listResp.Count)
	}
	if listResp.Sites[0]["domain"] != "y.com" {
		t.Errorf("expected last-registered domain, got %v", listResp.Sites[0]["domain"])
	}
	if strings.Contains(strings.ToLower(rr.Body.String()), "secret") {
		t.Error("listing must not contain any secret field")
	}

	// Health reflects the overwrite as a single site.
	rr = doJSON(t, router, http.MethodGet, "/health", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("health: got %d, want 200", rr.Code)
	}
	var health struct {
		Status string `json:"status"`
		Sites  int    `json:"sites"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &health); err != nil {
		t.Fatalf("failed to decode health: %v", err)
	}
	if health.Status != "ok" || health.Sites != 1 {
		t.Errorf("unexpected health: %+v", health)
	}

	// Verification uses the last-registered secret.
	rr = doJSON(t, router, http.MethodPost, "/api/verify",
		`{"token": "tok", "siteKey": "a"}`, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("verify: got %d, want 200", rr.Code)
	}
	if verifier.Calls != 1 {
		t.Errorf("expected one upstream call, got %d", verifier.Calls)
	}
	if verifier.LastKey != "s2" {
		t.Errorf("expected rotated secret s2 upstream, got %q", verifier.LastKey)
	}

	// Unregistered siteKey is rejected without an upstream call.
	rr = doJSON(t, router, http.MethodPost, "/api/verify",
		`{"token": "tok", "siteKey": "bogus"}`, "")
	if rr.Code != http.StatusBadRequest {
		t.Errorf("verify bogus site: got %d, want 400", rr.Code)
	}
	if verifier.Calls != 1 {
		t.Errorf("expected no extra upstream call, got %d", verifier.Calls)
	}
}
