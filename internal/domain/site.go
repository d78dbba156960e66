package domain

import "time"

// SiteRecord is the canonical registration of a single tenant site.
// The secret is only ever used server-side for upstream verification and
// must never appear in any API response.
type SiteRecord struct {
	SiteKey   string    `json:"siteKey"`
	Domain    string    `json:"domain"`
	SecretKey string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// SiteSummary is the listing view of a registered site. It deliberately has
// no secret field, so a registry implementation cannot leak one by accident.
type SiteSummary struct {
	SiteKey   string    `json:"siteKey"`
	Domain    string    `json:"domain"`
	CreatedAt time.Time `json:"createdAt"`
}

// Summary returns the listing view of the record.
func (r SiteRecord) Summary() SiteSummary {
	return SiteSummary{
		SiteKey:   r.SiteKey,
		Domain:    r.Domain,
		CreatedAt: r.CreatedAt,
	}
}
