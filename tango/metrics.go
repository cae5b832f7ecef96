package tango

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// metricsCollector wraps the optional Prometheus instrumentation enabled
// by WithMetrics. A Tree built without that option carries a nil
// *metricsCollector and every call site guards on it, so metrics impose no
// cost when unused.
type metricsCollector struct {
	logRecords         *prometheus.CounterVec
	searchDuration     prometheus.Histogram
	boundaryCrossings  prometheus.Counter
}

func newMetricsCollector(reg prometheus.Registerer, treeID string) *metricsCollector {
	m := &metricsCollector{
		logRecords: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "tango",
			Name:        "log_records_total",
			Help:        "Count of operation log records emitted, by kind.",
			ConstLabels: prometheus.Labels{"tree_id": treeID},
		}, []string{"kind"}),
		searchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   "tango",
			Name:        "search_duration_seconds",
			Help:        "Wall-clock duration of completed Search calls.",
			ConstLabels: prometheus.Labels{"tree_id": treeID},
			Buckets:     prometheus.DefBuckets,
		}),
		boundaryCrossings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "tango",
			Name:        "boundary_crossings_total",
			Help:        "Count of preferred-path boundary crossings (cut/join pairs) during Search.",
			ConstLabels: prometheus.Labels{"tree_id": treeID},
		}),
	}
	reg.MustRegister(m.logRecords, m.searchDuration, m.boundaryCrossings)
	return m
}

func (m *metricsCollector) recordLogRecord(kind Kind) {
	m.logRecords.WithLabelValues(kind.String()).Inc()
}

func (m *metricsCollector) recordSearch(d time.Duration) {
	m.searchDuration.Observe(d.Seconds())
}

func (m *metricsCollector) recordBoundaryCrossing() {
	m.boundaryCrossings.Inc()
}
