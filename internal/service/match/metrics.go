package match

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MatchesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "matches_created_total",
			Help: "Total number of match candidates persisted",
		},
		[]string{"trigger"},
	)

	MatchCandidatesSkippedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_candidates_skipped_total",
			Help: "Total number of candidate pairs skipped during generation",
		},
		[]string{"trigger", "reason"},
	)

	MatchGenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "match_generation_duration_seconds",
			Help:    "Duration of a single match generation run",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"trigger"},
	)
)
