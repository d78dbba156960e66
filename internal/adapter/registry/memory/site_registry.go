package memory

import (
	"context"
	"sync"
	"time"

	"github.com/user/captcha-relay/internal/adapter/metrics"
	"github.com/user/captcha-relay/internal/domain"
)

// SiteRegistry implements domain.SiteRegistry with a mutex-guarded map.
// The store is volatile: it starts empty and lives only as long as the
// process. Records are written whole under the write lock, so readers
// always observe the full snapshot of a single registration.
type SiteRegistry struct {
	mu      sync.RWMutex
	sites   map[string]domain.SiteRecord
	metrics *metrics.RelayMetrics
	now     func() time.Time
}

// NewSiteRegistry creates an empty registry.
func NewSiteRegistry(m *metrics.RelayMetrics) *SiteRegistry {
	return &SiteRegistry{
		sites:   make(map[string]domain.SiteRecord),
		metrics: m,
		now:     time.Now,
	}
}

// Register inserts or overwrites the record keyed by record.SiteKey,
// stamping CreatedAt at the moment of the call. Re-registering an existing
// siteKey replaces the whole record (last-write-wins), which is how secret
// rotation works in the absence of a dedicated rotation operation.
func (r *SiteRegistry) Register(ctx context.Context, record domain.SiteRecord) error {
	record.CreatedAt = r.now().UTC()

	r.mu.Lock()
	r.sites[record.SiteKey] = record
	n := len(r.sites)
	r.mu.Unlock()

	if r.metrics != nil {
		r.metrics.RegisteredSites.Set(float64(n))
	}
	return nil
}

// Lookup returns the current record for siteKey.
func (r *SiteRegistry) Lookup(ctx context.Context, siteKey string) (domain.SiteRecord, error) {
	r.mu.RLock()
	record, ok := r.sites[siteKey]
	r.mu.RUnlock()

	if !ok {
		return domain.SiteRecord{}, domain.ErrSiteNotFound
	}
	return record, nil
}

// List returns one summary per stored record. Iteration order of the map is
// unspecified and callers must not depend on it.
func (r *SiteRegistry) List(ctx context.Context) ([]domain.SiteSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := make([]domain.SiteSummary, 0, len(r.sites))
	for _, record := range r.sites {
		summaries = append(summaries, record.Summary())
	}
	return summaries, nil
}

// Count returns the number of distinct registered siteKeys.
func (r *SiteRegistry) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sites), nil
}
