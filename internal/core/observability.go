package core

import (
	"expvar"
	"time"
)

// MetricsRecorder receives timing signals from persistence writes and report
// rendering. Implementations must be safe for concurrent use.
type MetricsRecorder interface {
	// ObservePersist records one store write for the given collection key.
	ObservePersist(key string, duration time.Duration, err error)
	// ObserveExport records one report or backup render.
	ObserveExport(kind string, duration time.Duration, err error)
}

// NoopMetricsRecorder drops every observation.
type NoopMetricsRecorder struct{}

func (NoopMetricsRecorder) ObservePersist(string, time.Duration, error) {}
func (NoopMetricsRecorder) ObserveExport(string, time.Duration, error)  {}

// ExpvarMetricsRecorder exposes counters through the expvar registry, enough
// for ad-hoc inspection without an external metrics stack.
type ExpvarMetricsRecorder struct {
	persistTotal  *expvar.Map
	persistErrors *expvar.Map
	persistNanos  *expvar.Map
	exportTotal   *expvar.Map
	exportErrors  *expvar.Map
}

var _ MetricsRecorder = (*ExpvarMetricsRecorder)(nil)

// NewExpvarMetricsRecorder publishes counters under the given prefix. The
// prefix must be unique per process; expvar rejects duplicate names.
func NewExpvarMetricsRecorder(prefix string) *ExpvarMetricsRecorder {
	return &ExpvarMetricsRecorder{
		persistTotal:  expvar.NewMap(prefix + "_persist_total"),
		persistErrors: expvar.NewMap(prefix + "_persist_errors"),
		persistNanos:  expvar.NewMap(prefix + "_persist_nanos"),
		exportTotal:   expvar.NewMap(prefix + "_export_total"),
		exportErrors:  expvar.NewMap(prefix + "_export_errors"),
	}
}

func (r *ExpvarMetricsRecorder) ObservePersist(key string, duration time.Duration, err error) {
	r.persistTotal.Add(key, 1)
	r.persistNanos.Add(key, duration.Nanoseconds())
	if err != nil {
		r.persistErrors.Add(key, 1)
	}
}

func (r *ExpvarMetricsRecorder) ObserveExport(kind string, duration time.Duration, err error) {
	r.exportTotal.Add(kind, 1)
	if err != nil {
		r.exportErrors.Add(kind, 1)
	}
}
