// Package metrics holds the Prometheus counters exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ShotsRecorded counts accepted shot writes, batch or single.
	ShotsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "golftrack_shots_recorded_total",
		Help: "Number of shots accepted and persisted.",
	})

	// HoleScoreUpserts counts hole score creates and replacements.
	HoleScoreUpserts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "golftrack_hole_score_upserts_total",
		Help: "Number of hole score upserts.",
	})

	// RoundRecalcFailures counts round-total recalculations that failed.
	// These are logged and swallowed, so the counter is the only
	// aggregate signal that totals may be stale.
	RoundRecalcFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "golftrack_round_recalc_failures_total",
		Help: "Number of failed round total recalculations.",
	})
)
