package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for store mutations.
const (
	OutcomeApplied = "applied"
	OutcomeIgnored = "ignored"
)

// Metrics holds the various metrics used for monitoring the roster.
// It includes counters for store mutations and form submissions,
// a gauge for the current number of records, and a histogram for view rendering.
type Metrics struct {
	StoreMutations  *prometheus.CounterVec
	Records         prometheus.Gauge
	FormSubmissions *prometheus.CounterVec
	SortToggles     *prometheus.CounterVec
	RenderDuration  *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance with the provided Registerer.
//
// Parameters:
//   - reg: A prometheus.Registerer used to register the metrics.
//
// Returns:
//   - A pointer to the newly created Metrics instance.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		StoreMutations: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "roster_store_mutations_total",
			Help: "Total number of record store mutations by operation and outcome.",
		}, []string{"op", "outcome"}), // op: 'append', 'update', 'delete'
		Records: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "roster_records",
			Help: "Current number of records in the roster.",
		}),
		FormSubmissions: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "roster_form_submissions_total",
			Help: "Total number of entry form submissions by kind.",
		}, []string{"kind"}), // kind: 'add', 'edit', 'rejected'
		SortToggles: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "roster_sort_toggles_total",
			Help: "Total number of sort header clicks by column.",
		}, []string{"field"}),
		RenderDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "roster_view_render_duration_seconds",
			Help:    "Duration of roster view rendering.",
			Buckets: prometheus.DefBuckets,
		}, []string{"surface"}), // surface: 'web', 'tui'
	}

	for _, op := range []string{"append", "update", "delete"} {
		metrics.StoreMutations.WithLabelValues(op, OutcomeApplied)
		metrics.StoreMutations.WithLabelValues(op, OutcomeIgnored)
	}

	return metrics
}
