package reports

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"tqmcore/internal/blob"
	"tqmcore/internal/core"
)

// Kind names one renderable artifact.
type Kind string

// Artifact kinds.
const (
	KindChecklist Kind = "checklist"
	KindTopLoad   Kind = "topload"
	KindWeight    Kind = "weight"
	KindProducts  Kind = "products"
	KindKPI       Kind = "kpi"
	KindBackup    Kind = "backup"
)

// JobStatus tracks an export job through its lifecycle.
type JobStatus string

// Job lifecycle states.
const (
	JobQueued    JobStatus = "queued"
	JobRunning   JobStatus = "running"
	JobSucceeded JobStatus = "succeeded"
	JobFailed    JobStatus = "failed"
)

// Request asks for one artifact. Date and Shift are required for the
// per-shift grid kinds and ignored otherwise.
type Request struct {
	Kind  Kind
	Date  string
	Shift core.Shift
}

// Job is the tracked execution of one Request.
type Job struct {
	ID         string
	Request    Request
	Status     JobStatus
	ObjectKey  string
	Error      string
	EnqueuedAt time.Time
	StartedAt  time.Time
	FinishedAt time.Time
}

const queueCapacity = 64

// Worker renders artifacts off the caller's goroutine and stores them in the
// artifact store. One worker goroutine keeps renders serialized, so reports
// never observe a half-applied mutation.
type Worker struct {
	state     StateReader
	artifacts blob.Store
	logger    *zap.Logger
	metrics   core.MetricsRecorder
	nowFn     func() time.Time

	mu   sync.RWMutex
	jobs map[string]*Job
	seq  int

	queue   chan string
	started bool
	done    chan struct{}
}

// WorkerOption configures a Worker.
type WorkerOption func(*Worker)

// WithLogger overrides the default nop logger.
func WithLogger(l *zap.Logger) WorkerOption {
	return func(w *Worker) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithMetrics overrides the default nop metrics recorder.
func WithMetrics(m core.MetricsRecorder) WorkerOption {
	return func(w *Worker) {
		if m != nil {
			w.metrics = m
		}
	}
}

// WithNowFunc overrides the clock, used by tests.
func WithNowFunc(now func() time.Time) WorkerOption {
	return func(w *Worker) {
		if now != nil {
			w.nowFn = now
		}
	}
}

// NewWorker builds an idle worker; call Start before enqueuing.
func NewWorker(state StateReader, artifacts blob.Store, opts ...WorkerOption) *Worker {
	w := &Worker{
		state:     state,
		artifacts: artifacts,
		logger:    zap.NewNop(),
		metrics:   core.NoopMetricsRecorder{},
		nowFn:     time.Now,
		jobs:      make(map[string]*Job),
		queue:     make(chan string, queueCapacity),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start launches the worker goroutine. It drains until ctx is done.
func (w *Worker) Start(ctx context.Context) {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return
	}
	w.started = true
	w.mu.Unlock()

	go func() {
		defer close(w.done)
		for {
			select {
			case <-ctx.Done():
				return
			case id := <-w.queue:
				w.process(ctx, id)
			}
		}
	}()
}

// Wait blocks until the worker goroutine has exited.
func (w *Worker) Wait() { <-w.done }

// Enqueue registers a job and queues it for rendering. It fails when the
// queue is full rather than blocking the caller.
func (w *Worker) Enqueue(req Request) (Job, error) {
	switch req.Kind {
	case KindChecklist, KindTopLoad, KindWeight:
		if req.Date == "" || req.Shift == "" {
			return Job{}, fmt.Errorf("enqueue %s: date and shift are required", req.Kind)
		}
	case KindProducts, KindKPI, KindBackup:
	default:
		return Job{}, fmt.Errorf("enqueue: unknown kind %q", req.Kind)
	}

	w.mu.Lock()
	w.seq++
	job := &Job{
		ID:         fmt.Sprintf("job-%d", w.seq),
		Request:    req,
		Status:     JobQueued,
		EnqueuedAt: w.nowFn(),
	}
	w.jobs[job.ID] = job
	w.mu.Unlock()

	select {
	case w.queue <- job.ID:
	default:
		w.mu.Lock()
		job.Status = JobFailed
		job.Error = "queue full"
		w.mu.Unlock()
		return *job, fmt.Errorf("enqueue %s: queue full", req.Kind)
	}
	w.logger.Info("export queued",
		zap.String("job", job.ID), zap.String("kind", string(req.Kind)))
	return w.snapshotJob(job.ID), nil
}

// Job returns a copy of the tracked job.
func (w *Worker) Job(id string) (Job, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	job, ok := w.jobs[id]
	if !ok {
		return Job{}, false
	}
	return *job, true
}

// Jobs returns copies of every tracked job.
func (w *Worker) Jobs() []Job {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]Job, 0, len(w.jobs))
	for _, job := range w.jobs {
		out = append(out, *job)
	}
	return out
}

func (w *Worker) snapshotJob(id string) Job {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return *w.jobs[id]
}

func (w *Worker) process(ctx context.Context, id string) {
	w.mu.Lock()
	job, ok := w.jobs[id]
	if !ok {
		w.mu.Unlock()
		return
	}
	job.Status = JobRunning
	job.StartedAt = w.nowFn()
	req := job.Request
	w.mu.Unlock()

	start := w.nowFn()
	key, err := w.render(ctx, req)
	w.metrics.ObserveExport(string(req.Kind), w.nowFn().Sub(start), err)

	w.mu.Lock()
	job.FinishedAt = w.nowFn()
	if err != nil {
		job.Status = JobFailed
		job.Error = err.Error()
	} else {
		job.Status = JobSucceeded
		job.ObjectKey = key
	}
	w.mu.Unlock()

	if err != nil {
		w.logger.Error("export failed",
			zap.String("job", id), zap.String("kind", string(req.Kind)), zap.Error(err))
		return
	}
	w.logger.Info("export stored",
		zap.String("job", id), zap.String("kind", string(req.Kind)), zap.String("object", key))
}

func (w *Worker) render(ctx context.Context, req Request) (string, error) {
	var (
		data        []byte
		filename    string
		contentType = "text/csv; charset=utf-8"
		prefix      = "reports/"
	)
	switch req.Kind {
	case KindChecklist:
		data, filename = ChecklistCSV(w.state, req.Date, req.Shift)
	case KindTopLoad:
		data, filename = TopLoadCSV(w.state, req.Date, req.Shift)
	case KindWeight:
		data, filename = WeightCSV(w.state, req.Date, req.Shift)
	case KindProducts:
		data, filename = ProductsCSV(w.state, w.nowFn())
	case KindKPI:
		data, filename = KPICSV(w.state, w.nowFn())
	case KindBackup:
		payload, err := w.state.ExportJSON()
		if err != nil {
			return "", err
		}
		data = payload
		filename = core.ExportFilename(w.nowFn())
		contentType = "application/json"
		prefix = "backups/"
	default:
		return "", fmt.Errorf("unknown kind %q", req.Kind)
	}

	key := prefix + filename
	if _, err := w.artifacts.Put(ctx, key, bytes.NewReader(data), contentType); err != nil {
		return "", err
	}
	return key, nil
}
