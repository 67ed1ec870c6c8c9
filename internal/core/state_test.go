package core

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"tqmcore/internal/infra/persistence/memory"
	"tqmcore/pkg/domain"
)

func newLoadedContainer(t *testing.T, store domain.Store) *StateContainer {
	t.Helper()
	s := NewStateContainer(store)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return s
}

func TestLoadEmptyStoreSeedsDefaults(t *testing.T) {
	s := newLoadedContainer(t, memory.NewStore())
	if got := len(s.Machines()); got != 26 {
		t.Fatalf("machines = %d, want seeded 26", got)
	}
	if got := len(s.Products()); got != 0 {
		t.Fatalf("products = %d, want 0", got)
	}
	if got := len(s.DefectCodes()); got != 29 {
		t.Fatalf("defect codes = %d, want seeded 29", got)
	}
}

func TestLoadUsesStoredCollections(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	payload, _ := json.Marshal([]string{"M1", "M2"})
	if err := store.Save(ctx, domain.KeyMachines, payload); err != nil {
		t.Fatalf("Save: %v", err)
	}

	s := newLoadedContainer(t, store)
	machines := s.Machines()
	if len(machines) != 2 || machines[0] != "M1" || machines[1] != "M2" {
		t.Fatalf("machines = %v, want stored [M1 M2]", machines)
	}
}

func TestLoadDiscardsUndecodablePayload(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	if err := store.Save(ctx, domain.KeyMachines, []byte("{not json")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	s := newLoadedContainer(t, store)
	if got := len(s.Machines()); got != 26 {
		t.Fatalf("machines = %d, want seeded 26 after bad payload", got)
	}
}

func TestWriteSuppressedBeforeLoad(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	s := NewStateContainer(store)

	if _, err := s.AddMachine(ctx, "EARLY"); err != nil {
		t.Fatalf("AddMachine: %v", err)
	}
	if _, ok, _ := store.Load(ctx, domain.KeyMachines); ok {
		t.Fatal("persist before Load must be suppressed")
	}
}

func TestMutationPersistsWholeCollection(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	s := newLoadedContainer(t, store)

	if _, err := s.AddMachine(ctx, "NEW-1"); err != nil {
		t.Fatalf("AddMachine: %v", err)
	}
	payload, ok, err := store.Load(ctx, domain.KeyMachines)
	if err != nil || !ok {
		t.Fatalf("Load after mutation: ok=%v err=%v", ok, err)
	}
	var stored []string
	if err := json.Unmarshal(payload, &stored); err != nil {
		t.Fatalf("stored payload: %v", err)
	}
	if len(stored) != 27 || stored[26] != "NEW-1" {
		t.Fatalf("stored machines = %v, want 27 entries ending NEW-1", stored)
	}
}

func TestResetRestoresSeeds(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	s := newLoadedContainer(t, store)

	if _, err := s.AddProduct(ctx, Product{Name: "jar"}); err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	if err := s.DeleteMachine(ctx, "P0"); err != nil {
		t.Fatalf("DeleteMachine: %v", err)
	}
	if err := s.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	if got := len(s.Products()); got != 0 {
		t.Fatalf("products after reset = %d, want 0", got)
	}
	if got := len(s.Machines()); got != 26 {
		t.Fatalf("machines after reset = %d, want 26", got)
	}
	payload, ok, _ := store.Load(ctx, domain.KeyProducts)
	if !ok || string(payload) != "[]" {
		t.Fatalf("stored products after reset = %q, want []", payload)
	}
}

func TestPersistRecordsMetrics(t *testing.T) {
	ctx := context.Background()
	rec := &captureMetrics{}
	s := NewStateContainer(memory.NewStore(), WithMetrics(rec))
	if err := s.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := s.AddMachine(ctx, "M-OBS"); err != nil {
		t.Fatalf("AddMachine: %v", err)
	}
	if len(rec.persisted) != 1 || rec.persisted[0] != string(domain.KeyMachines) {
		t.Fatalf("observed persists = %v, want one %s", rec.persisted, domain.KeyMachines)
	}
}

type captureMetrics struct {
	persisted []string
	exported  []string
}

func (c *captureMetrics) ObservePersist(key string, _ time.Duration, _ error) {
	c.persisted = append(c.persisted, key)
}

func (c *captureMetrics) ObserveExport(kind string, _ time.Duration, _ error) {
	c.exported = append(c.exported, kind)
}
