package api

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/user/captcha-relay/internal/adapter/api/handler"
	"github.com/user/captcha-relay/internal/adapter/api/middleware"
	"github.com/user/captcha-relay/internal/adapter/metrics"
	"github.com/user/captcha-relay/internal/pkg/config"
	"github.com/user/captcha-relay/internal/usecase"
)

// NewRouter creates and configures the main HTTP router for the relay.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	m *metrics.RelayMetrics,
	siteAdmin *usecase.SiteAdminUseCase,
	verify *usecase.VerifyChallengeUseCase,
) http.Handler {
	mux := http.NewServeMux()

	adminHandler := handler.NewAdminHandler(siteAdmin, logger)
	verifyHandler := handler.NewVerifyHandler(verify, logger)
	healthHandler := handler.NewHealthHandler(siteAdmin, logger)

	adminAuth := middleware.AdminAuth(cfg.AdminToken, logger, m)

	mux.Handle("POST /api/admin/register", adminAuth(http.HandlerFunc(adminHandler.RegisterSite)))
	mux.Handle("GET /api/admin/sites", adminAuth(http.HandlerFunc(adminHandler.ListSites)))

	mux.Handle("POST /api/verify", verifyHandler)

	mux.Handle("GET /health", healthHandler)
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}
