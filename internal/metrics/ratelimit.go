package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// emailQuotaExceeded counts sends refused by the outbound provider quota.
	// Labels:
	// - provider: smtp | brevo
	emailQuotaExceeded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "notifier",
			Subsystem: "email",
			Name:      "quota_exceeded_total",
			Help:      "Outbound emails refused because the provider quota window was full.",
		},
		[]string{"provider"},
	)

	// rateLimitExceeded counts HTTP 429 responses from the ops API.
	rateLimitExceeded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "notifier",
			Subsystem: "http",
			Name:      "rate_limit_exceeded_total",
			Help:      "Number of requests rejected due to rate limiting (HTTP 429)",
		},
		[]string{"endpoint"},
	)
)

// IncEmailQuotaExceeded increments the quota counter for provider.
func IncEmailQuotaExceeded(provider string) {
	if provider == "" {
		provider = "unknown"
	}
	emailQuotaExceeded.WithLabelValues(provider).Inc()
}

// IncRateLimitExceeded increments the 429 counter for the given endpoint.
func IncRateLimitExceeded(endpoint string) {
	if endpoint == "" {
		endpoint = "unknown"
	}
	rateLimitExceeded.WithLabelValues(endpoint).Inc()
}
