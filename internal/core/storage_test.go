package core

import (
	"context"
	"path/filepath"
	"testing"

	"tqmcore/pkg/domain"
)

func TestOpenStoreFromEnvMemory(t *testing.T) {
	t.Setenv(EnvStorageDriver, "memory")
	store, err := OpenStoreFromEnv()
	if err != nil {
		t.Fatalf("OpenStoreFromEnv: %v", err)
	}
	defer store.Close()
	if err := store.Save(context.Background(), domain.KeyProducts, []byte("[]")); err != nil {
		t.Fatalf("Save: %v", err)
	}
}

func TestOpenStoreFromEnvSQLiteDefault(t *testing.T) {
	t.Setenv(EnvStorageDriver, "")
	t.Setenv(EnvSQLitePath, filepath.Join(t.TempDir(), "state.db"))
	store, err := OpenStoreFromEnv()
	if err != nil {
		t.Fatalf("OpenStoreFromEnv: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Save(ctx, domain.KeyTeam, []byte("[]")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, ok, err := store.Load(ctx, domain.KeyTeam); err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
}

func TestOpenStoreFromEnvPostgresNeedsDSN(t *testing.T) {
	t.Setenv(EnvStorageDriver, "postgres")
	t.Setenv(EnvPostgresDSN, "")
	if _, err := OpenStoreFromEnv(); err == nil {
		t.Fatal("expected error without DSN")
	}
}

func TestOpenStoreFromEnvUnknownDriver(t *testing.T) {
	t.Setenv(EnvStorageDriver, "etcd")
	if _, err := OpenStoreFromEnv(); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestExpvarMetricsRecorder(t *testing.T) {
	rec := NewExpvarMetricsRecorder("tqmcore_test")
	rec.ObservePersist("tqm_products", 0, nil)
	rec.ObserveExport("kpi", 0, nil)
	if got := rec.persistTotal.Get("tqm_products").String(); got != "1" {
		t.Fatalf("persist total = %s, want 1", got)
	}
	if got := rec.exportTotal.Get("kpi").String(); got != "1" {
		t.Fatalf("export total = %s, want 1", got)
	}
	if rec.persistErrors.Get("tqm_products") != nil {
		t.Fatal("no error recorded, error counter must stay unset")
	}
}
