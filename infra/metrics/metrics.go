package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "arcadia"

// Components reported in the component label.
const (
	Registry    = "registry"
	Leaderboard = "leaderboard"
	Auction     = "auction"
)

// Results reported in the result label.
const (
	ResultOK    = "ok"
	ResultMiss  = "miss"
	ResultError = "error"
)

// Metrics groups the arcade collectors.
type Metrics struct {
	// operations counts calls by component, operation and result
	operations *prometheus.CounterVec
	// entries tracks live entries per component
	entries *prometheus.GaugeVec
	// duration tracks operation latency
	duration *prometheus.HistogramVec
}

// New registers the collectors on reg. Registering twice on the same
// registerer panics, as promauto does.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		operations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Arcade operations by component, operation and result",
		}, []string{"component", "operation", "result"}),
		entries: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "entries",
			Help:      "Live entries held by each component",
		}, []string{"component"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Arcade operation latency in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 10), // 1µs to ~260ms
		}, []string{"component", "operation"}),
	}
}

// Observe records one finished operation that started at start.
func (m *Metrics) Observe(component, operation, result string, start time.Time) {
	m.operations.WithLabelValues(component, operation, result).Inc()
	m.duration.WithLabelValues(component, operation).Observe(time.Since(start).Seconds())
}

// SetEntries publishes the current size of a component.
func (m *Metrics) SetEntries(component string, n int) {
	m.entries.WithLabelValues(component).Set(float64(n))
}

// Operations exposes the counter for inspection.
func (m *Metrics) Operations() *prometheus.CounterVec { return m.operations }

// Entries exposes the gauge for inspection.
func (m *Metrics) Entries() *prometheus.GaugeVec { return m.entries }
