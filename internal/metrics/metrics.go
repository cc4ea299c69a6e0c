// Package metrics exposes Prometheus instrumentation for the assignment
// engine. The search loop is the only hot path in the system, so the
// counters here are its primary observability surface.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// SearchMetrics instruments one assignment engine. A nil *SearchMetrics is
// valid and records nothing, so callers that do not scrape metrics can pass
// nil instead of a registry.
type SearchMetrics struct {
	triplesEvaluated prometheus.Counter
	triplesPruned    prometheus.Counter
	bestReplacements prometheus.Counter
	assignDuration   prometheus.Histogram
}

// NewSearchMetrics creates and registers the engine metrics with the given
// registerer.
func NewSearchMetrics(reg prometheus.Registerer) *SearchMetrics {
	m := &SearchMetrics{
		triplesEvaluated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mod_assigner_triples_evaluated_total",
			Help: "Number of permutation triples fully evaluated by the search.",
		}),
		triplesPruned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mod_assigner_triples_pruned_total",
			Help: "Number of permutation triples abandoned early because they could not beat the best-so-far unassigned count.",
		}),
		bestReplacements: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mod_assigner_best_replacements_total",
			Help: "Number of times the search replaced its best-so-far candidate.",
		}),
		assignDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mod_assigner_assign_duration_seconds",
			Help:    "Wall-clock duration of complete Assign invocations.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
	reg.MustRegister(m.triplesEvaluated, m.triplesPruned, m.bestReplacements, m.assignDuration)
	return m
}

// TripleEvaluated records one fully evaluated triple.
func (m *SearchMetrics) TripleEvaluated() {
	if m != nil {
		m.triplesEvaluated.Inc()
	}
}

// TriplePruned records one early-abandoned triple.
func (m *SearchMetrics) TriplePruned() {
	if m != nil {
		m.triplesPruned.Inc()
	}
}

// BestReplaced records one best-so-far replacement.
func (m *SearchMetrics) BestReplaced() {
	if m != nil {
		m.bestReplacements.Inc()
	}
}

// ObserveAssignDuration records the duration of one Assign invocation.
func (m *SearchMetrics) ObserveAssignDuration(seconds float64) {
	if m != nil {
		m.assignDuration.Observe(seconds)
	}
}
