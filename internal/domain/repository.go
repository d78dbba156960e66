package domain

import "context"

// SiteRegistry defines the interface for the tenant credential store.
// Registrations are last-write-wins on SiteKey; the store is volatile and
// lives only for the lifetime of the process.
type SiteRegistry interface {
	// Register inserts or overwrites the record keyed by record.SiteKey.
	Register(ctx context.Context, record SiteRecord) error

	// Lookup returns the current record for siteKey, or ErrSiteNotFound.
	Lookup(ctx context.Context, siteKey string) (SiteRecord, error)

	// List returns a summary per stored record, in no guaranteed order.
	List(ctx context.Context) ([]SiteSummary, error)

	// Count returns the number of distinct registered siteKeys.
	Count(ctx context.Context) (int, error)
}

// ChallengeVerifier defines the interface for the upstream verification
// service. Implementations make exactly one outbound call per invocation
// and must bound it with a timeout.
type ChallengeVerifier interface {
	Verify(ctx context.Context, secretKey, token string) (UpstreamResult, error)
}
