package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/user/captcha-relay/internal/adapter/metrics"
)

const AdminTokenHeader = "X-Admin-Token"

// AdminAuth is a middleware factory that gates admin routes behind the
// process-wide admin credential. The comparison is constant-time and the
// presented value is never logged.
func AdminAuth(adminToken string, logger *slog.Logger, m *metrics.RelayMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := r.Header.Get(AdminTokenHeader)
			if subtle.ConstantTimeCompare([]byte(presented), []byte(adminToken)) != 1 {
				logger.Warn("rejected admin request", "path", r.URL.Path, "remote_addr", r.RemoteAddr)
				if m != nil {
					m.AdminAuthFailures.Inc()
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
