package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// jobRunsTotal counts job runs by job and result.
	// Labels:
	// - job: reminder | feedback
	// - result: success | failure
	jobRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "notifier",
			Subsystem: "job",
			Name:      "runs_total",
			Help:      "Notification job runs by job and result.",
		},
		[]string{"job", "result"},
	)

	// jobItemsTotal counts per-booking outcomes.
	// Labels:
	// - job: reminder | feedback
	// - outcome: sent | skipped | failed
	jobItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "notifier",
			Subsystem: "job",
			Name:      "items_total",
			Help:      "Per-booking outcomes of notification jobs.",
		},
		[]string{"job", "outcome"},
	)

	jobDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "notifier",
			Subsystem: "job",
			Name:      "duration_seconds",
			Help:      "Wall time of a notification job run.",
			Buckets:   []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300},
		},
		[]string{"job"},
	)
)

// ObserveJobRun records the result and duration of one run.
func ObserveJobRun(job string, success bool, d time.Duration) {
	if job == "" {
		job = "unknown"
	}
	result := "success"
	if !success {
		result = "failure"
	}
	jobRunsTotal.WithLabelValues(job, result).Inc()
	jobDurationSeconds.WithLabelValues(job).Observe(d.Seconds())
}

// IncJobItem increments the per-item outcome counter.
func IncJobItem(job, outcome string) {
	if job == "" {
		job = "unknown"
	}
	if outcome == "" {
		outcome = "unknown"
	}
	jobItemsTotal.WithLabelValues(job, outcome).Inc()
}
