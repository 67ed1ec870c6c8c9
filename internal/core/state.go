package core

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tqmcore/pkg/domain"
)

// StateContainer owns the working copy of every collection and writes each
// collection back to the persistent store as a whole snapshot after a
// mutation. Reads are served from memory; the store is only consulted at
// startup.
type StateContainer struct {
	store   domain.Store
	logger  *zap.Logger
	metrics MetricsRecorder
	nowFn   func() time.Time

	mu    sync.RWMutex
	ready bool

	products     []Product
	team         []Employee
	documents    []DocumentFile
	kpiData      []KPIRecord
	company      CompanySettings
	reserved     []ReservedItem
	labEquipment []LabDevice

	machines        []string
	standards       []TopLoadStandard
	defectCodes     []DefectCode
	supervisors     domain.ShiftSupervisors
	machineProducts domain.MachineProducts

	checklist map[string]ChecklistEntry
	topLoad   map[string]TopLoadEntry
	weights   map[string]WeightEntry
}

// Option configures a StateContainer.
type Option func(*StateContainer)

// WithLogger overrides the default nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *StateContainer) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics overrides the default nop metrics recorder.
func WithMetrics(m MetricsRecorder) Option {
	return func(s *StateContainer) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithNowFunc overrides the clock, used by tests and the demo session gate.
func WithNowFunc(now func() time.Time) Option {
	return func(s *StateContainer) {
		if now != nil {
			s.nowFn = now
		}
	}
}

// NewStateContainer builds a container with seeded defaults. Call Load before
// use to hydrate from the store.
func NewStateContainer(store domain.Store, opts ...Option) *StateContainer {
	s := &StateContainer{
		store:   store,
		logger:  zap.NewNop(),
		metrics: NoopMetricsRecorder{},
		nowFn:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.applyDefaultsLocked()
	return s
}

func (s *StateContainer) applyDefaultsLocked() {
	s.products = nil
	s.team = nil
	s.documents = nil
	s.kpiData = nil
	s.company = domain.InitialCompanySettings()
	s.reserved = nil
	s.labEquipment = nil
	s.machines = domain.DefaultMachines()
	s.standards = domain.DefaultTopLoadStandards()
	s.defectCodes = domain.DefaultDefectCodes()
	s.supervisors = domain.ShiftSupervisors{}
	s.machineProducts = domain.MachineProducts{}
	s.checklist = map[string]ChecklistEntry{}
	s.topLoad = map[string]TopLoadEntry{}
	s.weights = map[string]WeightEntry{}
}

// Load hydrates every collection from the store in parallel. A missing key or
// an undecodable payload falls back to the collection's default; only the
// store itself failing is reported to the caller.
func (s *StateContainer) Load(ctx context.Context) error {
	type loaded struct {
		payload []byte
		ok      bool
	}
	results := make(map[CollectionKey]loaded, len(domain.CollectionKeys()))
	var resMu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, key := range domain.CollectionKeys() {
		key := key
		g.Go(func() error {
			payload, ok, err := s.store.Load(ctx, key)
			if err != nil {
				return fmt.Errorf("load %s: %w", key, err)
			}
			resMu.Lock()
			results[key] = loaded{payload: payload, ok: ok}
			resMu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for key, res := range results {
		if !res.ok {
			continue
		}
		if err := s.applyPayloadLocked(key, res.payload); err != nil {
			s.logger.Warn("discarding undecodable collection payload",
				zap.String("key", string(key)), zap.Error(err))
		}
	}
	s.ready = true
	s.logger.Info("state hydrated", zap.Int("collections", len(results)))
	return nil
}

func (s *StateContainer) applyPayloadLocked(key CollectionKey, payload []byte) error {
	switch key {
	case domain.KeyProducts:
		return json.Unmarshal(payload, &s.products)
	case domain.KeyTeam:
		return json.Unmarshal(payload, &s.team)
	case domain.KeyDocuments:
		return json.Unmarshal(payload, &s.documents)
	case domain.KeyKPIData:
		return json.Unmarshal(payload, &s.kpiData)
	case domain.KeyCompany:
		return json.Unmarshal(payload, &s.company)
	case domain.KeyReserved:
		return json.Unmarshal(payload, &s.reserved)
	case domain.KeyLabEquipment:
		return json.Unmarshal(payload, &s.labEquipment)
	case domain.KeyMachines:
		return json.Unmarshal(payload, &s.machines)
	case domain.KeyStandards:
		return json.Unmarshal(payload, &s.standards)
	case domain.KeyDefectCodes:
		return json.Unmarshal(payload, &s.defectCodes)
	case domain.KeySupervisors:
		return json.Unmarshal(payload, &s.supervisors)
	case domain.KeyMachineProducts:
		return json.Unmarshal(payload, &s.machineProducts)
	case domain.KeyChecklist:
		var entries []ChecklistEntry
		if err := json.Unmarshal(payload, &entries); err != nil {
			return err
		}
		s.checklist = indexChecklist(entries)
		return nil
	case domain.KeyTopLoad:
		var entries []TopLoadEntry
		if err := json.Unmarshal(payload, &entries); err != nil {
			return err
		}
		s.topLoad = indexTopLoad(entries)
		return nil
	case domain.KeyWeightEntries:
		var entries []WeightEntry
		if err := json.Unmarshal(payload, &entries); err != nil {
			return err
		}
		s.weights = indexWeights(entries)
		return nil
	default:
		return fmt.Errorf("unknown collection key %q", key)
	}
}

// encodeLocked serializes the named collection. Observation maps serialize as
// deterministically ordered slices so snapshots are stable across runs.
func (s *StateContainer) encodeLocked(key CollectionKey) ([]byte, error) {
	switch key {
	case domain.KeyProducts:
		return json.Marshal(emptyAsList(s.products))
	case domain.KeyTeam:
		return json.Marshal(emptyAsList(s.team))
	case domain.KeyDocuments:
		return json.Marshal(emptyAsList(s.documents))
	case domain.KeyKPIData:
		return json.Marshal(emptyAsList(s.kpiData))
	case domain.KeyCompany:
		return json.Marshal(s.company)
	case domain.KeyReserved:
		return json.Marshal(emptyAsList(s.reserved))
	case domain.KeyLabEquipment:
		return json.Marshal(emptyAsList(s.labEquipment))
	case domain.KeyMachines:
		return json.Marshal(emptyAsList(s.machines))
	case domain.KeyStandards:
		return json.Marshal(emptyAsList(s.standards))
	case domain.KeyDefectCodes:
		return json.Marshal(emptyAsList(s.defectCodes))
	case domain.KeySupervisors:
		if s.supervisors == nil {
			return json.Marshal(domain.ShiftSupervisors{})
		}
		return json.Marshal(s.supervisors)
	case domain.KeyMachineProducts:
		if s.machineProducts == nil {
			return json.Marshal(domain.MachineProducts{})
		}
		return json.Marshal(s.machineProducts)
	case domain.KeyChecklist:
		return json.Marshal(sortedChecklist(s.checklist))
	case domain.KeyTopLoad:
		return json.Marshal(sortedTopLoad(s.topLoad))
	case domain.KeyWeightEntries:
		return json.Marshal(sortedWeights(s.weights))
	default:
		return nil, fmt.Errorf("unknown collection key %q", key)
	}
}

// persist writes one collection back to the store. Writes before Load has
// completed are suppressed so a partially hydrated container never clobbers
// stored data.
func (s *StateContainer) persist(ctx context.Context, key CollectionKey) error {
	s.mu.RLock()
	if !s.ready {
		s.mu.RUnlock()
		return nil
	}
	payload, err := s.encodeLocked(key)
	s.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	start := s.nowFn()
	err = s.store.Save(ctx, key, payload)
	s.metrics.ObservePersist(string(key), s.nowFn().Sub(start), err)
	if err != nil {
		s.logger.Error("persist failed",
			zap.String("key", string(key)), zap.Error(err))
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

// persistAll writes every collection; the first failure wins.
func (s *StateContainer) persistAll(ctx context.Context) error {
	for _, key := range domain.CollectionKeys() {
		if err := s.persist(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// Reset discards every collection and restores seeded defaults, then writes
// the defaults back so the store matches memory.
func (s *StateContainer) Reset(ctx context.Context) error {
	s.mu.Lock()
	s.applyDefaultsLocked()
	s.mu.Unlock()
	s.logger.Info("state reset to defaults")
	return s.persistAll(ctx)
}

func (s *StateContainer) newID() string {
	return fmt.Sprintf("%d", s.nowFn().UnixMilli())
}

// emptyAsList keeps nil slices serializing as [] instead of null.
func emptyAsList[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
