package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RelayMetrics holds all Prometheus metrics for the relay service.
type RelayMetrics struct {
	VerificationsTotal *prometheus.CounterVec
	UpstreamLatency    prometheus.Histogram
	UpstreamResponses  *prometheus.CounterVec
	RegisteredSites    prometheus.Gauge
	AdminAuthFailures  prometheus.Counter
}

// NewRelayMetrics initializes and registers the Prometheus metrics.
func NewRelayMetrics() *RelayMetrics {
	return &RelayMetrics{
		VerificationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "captcha_relay",
			Subsystem: "verify",
			Name:      "requests_total",
			Help:      "Total number of verification requests by status.",
		}, []string{"status"}), // status: ok, missing_params, unknown_site, upstream_error
		UpstreamLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: "captcha_relay",
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Latency of upstream siteverify calls.",
			Buckets:   prometheus.DefBuckets,
		}),
		UpstreamResponses: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "captcha_relay",
			Subsystem: "upstream",
			Name:      "responses_total",
			Help:      "Total number of upstream responses by outcome.",
		}, []string{"outcome"}), // outcome: ok, transport_error, bad_status, bad_body
		RegisteredSites: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "captcha_relay",
			Subsystem: "registry",
			Name:      "sites_gauge",
			Help:      "Number of distinct siteKeys currently registered.",
		}),
		AdminAuthFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "captcha_relay",
			Subsystem: "auth",
			Name:      "admin_failures_total",
			Help:      "Total number of rejected admin requests.",
		}),
	}
}
