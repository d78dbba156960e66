package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAdminAuth(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	protected := AdminAuth("correct-token", logger, nil)(next)

	tests := []struct {
		name           string
		token          string
		expectedStatus int
	}{
		{"Correct Token", "correct-token", http.StatusOK},
		{"Wrong Token", "wrong-token", http.StatusUnauthorized},
		{"Missing Token", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/sites", nil)
			if tt.token != "" {
				req.Header.Set(AdminTokenHeader, tt.token)
			}
			rr := httptest.NewRecorder()

			protected.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("status: got %d, want %d", rr.Code, tt.expectedStatus)
			}
		})
	}
}
