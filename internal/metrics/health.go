package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// dependencyUp is 1 when the last ping to a dependency succeeded, else 0.
	dependencyUp = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "notifier",
		Subsystem: "dependency",
		Name:      "up",
		Help:      "Dependency availability (1=up, 0=down).",
	}, []string{"dependency"})

	dependencyPingSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "notifier",
		Subsystem: "dependency",
		Name:      "ping_seconds",
		Help:      "Dependency ping latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"dependency"})
)

// PingFunc checks one dependency.
type PingFunc func(ctx context.Context) error

// Probe pings each named dependency, records up/latency and returns "ok" or "down" per name.
// A nil PingFunc reports "disabled".
func Probe(ctx context.Context, deps map[string]PingFunc) map[string]string {
	out := make(map[string]string, len(deps))
	for name, ping := range deps {
		if ping == nil {
			out[name] = "disabled"
			continue
		}
		start := time.Now()
		err := ping(ctx)
		dependencyPingSeconds.WithLabelValues(name).Observe(time.Since(start).Seconds())
		if err != nil {
			dependencyUp.WithLabelValues(name).Set(0)
			out[name] = "down"
			continue
		}
		dependencyUp.WithLabelValues(name).Set(1)
		out[name] = "ok"
	}
	return out
}
