package sequencer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK       = "ok"
	outcomeError    = "error"
	outcomeStale    = "stale"
	outcomeFallback = "fallback"
)

var (
	// lookupsTotal counts candidate-pool lookups by slot and outcome
	lookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "configurator_catalog_lookups_total",
		Help: "Candidate pool lookups by slot and outcome",
	}, []string{"slot", "outcome"})

	lookupDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "configurator_catalog_lookup_duration_seconds",
		Help:    "Candidate pool lookup duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~2s
	}, []string{"slot"})

	submissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "configurator_submissions_total",
		Help: "Build submissions by mode and result",
	}, []string{"mode", "result"})
)
