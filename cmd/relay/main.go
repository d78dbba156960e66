package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/user/captcha-relay/internal/adapter/api"
	"github.com/user/captcha-relay/internal/adapter/api/middleware"
	"github.com/user/captcha-relay/internal/adapter/metrics"
	"github.com/user/captcha-relay/internal/adapter/registry/memory"
	"github.com/user/captcha-relay/internal/adapter/upstream"
	"github.com/user/captcha-relay/internal/pkg/config"
	"github.com/user/captcha-relay/internal/pkg/logger"
	"github.com/user/captcha-relay/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Refusing to start without an admin token is deliberate: without
		// one the registry would be either open or unusable.
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logger.New(cfg.LogLevel)
	slog.SetDefault(logger)

	m := metrics.NewRelayMetrics()

	// --- Graceful Shutdown Context ---
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Core components ---
	registry := memory.NewSiteRegistry(m)
	verifier := upstream.NewClient(cfg.UpstreamVerifyURL, cfg.UpstreamTimeout, logger, m)

	siteAdmin := usecase.NewSiteAdminUseCase(registry, logger)
	verify := usecase.NewVerifyChallengeUseCase(registry, verifier, logger, m)

	// --- HTTP server ---
	router := api.NewRouter(cfg, logger, m, siteAdmin, verify)
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      middleware.Logging(logger)(router),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.UpstreamTimeout + 5*time.Second,
		IdleTimeout:  15 * time.Second,
	}

	go func() {
		logger.Info("starting relay server", "addr", server.Addr, "upstream", cfg.UpstreamVerifyURL)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("relay server failed", "error", err)
			stop() // Trigger shutdown on server error
		}
	}()

	// --- Wait for shutdown signal ---
	<-ctx.Done()
	logger.Info("shutting down server...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}

	logger.Info("server shut down gracefully")
}
