// Package metrics implements the core metrics contract on prometheus
// collectors for installs that scrape.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"tqmcore/internal/core"
)

// Recorder counts persistence writes and artifact renders.
type Recorder struct {
	persistTotal    *prometheus.CounterVec
	persistErrors   *prometheus.CounterVec
	persistDuration *prometheus.HistogramVec
	exportTotal     *prometheus.CounterVec
	exportErrors    *prometheus.CounterVec
	exportDuration  *prometheus.HistogramVec
}

var _ core.MetricsRecorder = (*Recorder)(nil)

// NewRecorder registers collectors on reg. Pass prometheus.DefaultRegisterer
// for the process-wide registry.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		persistTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tqmcore_persist_total",
			Help: "Collection snapshot writes, by collection key.",
		}, []string{"key"}),
		persistErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tqmcore_persist_errors_total",
			Help: "Failed collection snapshot writes, by collection key.",
		}, []string{"key"}),
		persistDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tqmcore_persist_duration_seconds",
			Help:    "Collection snapshot write latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"key"}),
		exportTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tqmcore_export_total",
			Help: "Artifact renders, by kind.",
		}, []string{"kind"}),
		exportErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tqmcore_export_errors_total",
			Help: "Failed artifact renders, by kind.",
		}, []string{"kind"}),
		exportDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tqmcore_export_duration_seconds",
			Help:    "Artifact render latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),
	}
}

func (r *Recorder) ObservePersist(key string, duration time.Duration, err error) {
	r.persistTotal.WithLabelValues(key).Inc()
	r.persistDuration.WithLabelValues(key).Observe(duration.Seconds())
	if err != nil {
		r.persistErrors.WithLabelValues(key).Inc()
	}
}

func (r *Recorder) ObserveExport(kind string, duration time.Duration, err error) {
	r.exportTotal.WithLabelValues(kind).Inc()
	r.exportDuration.WithLabelValues(kind).Observe(duration.Seconds())
	if err != nil {
		r.exportErrors.WithLabelValues(kind).Inc()
	}
}
