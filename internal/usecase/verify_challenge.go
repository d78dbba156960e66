package usecase

import (
	"context"
	"log/slog"

	"github.com/user/captcha-relay/internal/adapter/metrics"
	"github.com/user/captcha-relay/internal/domain"
)

// humanScoreThreshold is the minimum upstream score for a response to be
// considered human. success=true with a score of exactly 0.5 passes.
const humanScoreThreshold = 0.5

// VerifyChallengeUseCase reduces a (siteKey, token) pair to a trust decision
// by resolving the site's secret and making a single upstream call.
type VerifyChallengeUseCase struct {
	registry domain.SiteRegistry
	verifier domain.ChallengeVerifier
	logger   *slog.Logger
	metrics  *metrics.RelayMetrics
}

// NewVerifyChallengeUseCase creates a new VerifyChallengeUseCase.
func NewVerifyChallengeUseCase(
	registry domain.SiteRegistry,
	verifier domain.ChallengeVerifier,
	logger *slog.Logger,
	m *metrics.RelayMetrics,
) *VerifyChallengeUseCase {
	return &VerifyChallengeUseCase{
		registry: registry,
		verifier: verifier,
		logger:   logger,
		metrics:  m,
	}
}

// Verify validates the inputs, resolves the site's secret, and relays the
// token upstream. Requests with missing fields or an unregistered siteKey
// are rejected before any upstream call, so bogus site keys never consume
// upstream quota. The registry read completes before the network call
// starts, so no lock is held while waiting on upstream.
func (uc *VerifyChallengeUseCase) Verify(ctx context.Context, siteKey, token string) (domain.VerificationOutcome, error) {
	if token == "" || siteKey == "" {
		uc.countStatus("missing_params")
		return domain.VerificationOutcome{}, domain.ErrMissingParams
	}

	site, err := uc.registry.Lookup(ctx, siteKey)
	if err != nil {
		uc.countStatus("unknown_site")
		return domain.VerificationOutcome{}, domain.ErrSiteNotFound
	}

	result, err := uc.verifier.Verify(ctx, site.SecretKey, token)
	if err != nil {
		uc.logger.Error("upstream verification failed", "error", err, "site_key", siteKey, "domain", site.Domain)
		uc.countStatus("upstream_error")
		return domain.VerificationOutcome{}, domain.ErrUpstream
	}

	uc.logger.Info("verified challenge", "domain", site.Domain, "score", result.Score, "action", result.Action)
	uc.countStatus("ok")

	return domain.VerificationOutcome{
		Success: result.Success,
		Score:   result.Score,
		Action:  result.Action,
		IsHuman: result.Success && result.Score >= humanScoreThreshold,
	}, nil
}

func (uc *VerifyChallengeUseCase) countStatus(status string) {
	if uc.metrics != nil {
		uc.metrics.VerificationsTotal.WithLabelValues(status).Inc()
	}
}
