package usecase

import (
	"context"
	"log/slog"

	"github.com/user/captcha-relay/internal/domain"
)

// SiteAdminUseCase provides the admin-facing registry operations. The admin
// credential itself is checked at the HTTP boundary; by the time these
// methods run the caller is already authorized.
type SiteAdminUseCase struct {
	registry domain.SiteRegistry
	logger   *slog.Logger
}

// NewSiteAdminUseCase creates a new SiteAdminUseCase.
func NewSiteAdminUseCase(registry domain.SiteRegistry, logger *slog.Logger) *SiteAdminUseCase {
	return &SiteAdminUseCase{registry: registry, logger: logger}
}

// Register stores or replaces the site registration. The inputs are opaque
// strings: whatever the admin supplies is stored as-is, and re-registering
// an existing siteKey overwrites the prior record.
func (uc *SiteAdminUseCase) Register(ctx context.Context, siteKey, siteDomain, secretKey string) error {
	record := domain.SiteRecord{
		SiteKey:   siteKey,
		Domain:    siteDomain,
		SecretKey: secretKey,
	}

	if err := uc.registry.Register(ctx, record); err != nil {
		return err
	}

	uc.logger.Info("registered site", "site_key", siteKey, "domain", siteDomain)
	return nil
}

// List returns summaries of every registered site, without secrets.
func (uc *SiteAdminUseCase) List(ctx context.Context) ([]domain.SiteSummary, error) {
	return uc.registry.List(ctx)
}

// Count returns the number of distinct registered siteKeys.
func (uc *SiteAdminUseCase) Count(ctx context.Context) (int, error) {
	return uc.registry.Count(ctx)
}
