package tqmcore

import (
	"context"
	"errors"
	"testing"

	"tqmcore/internal/adapters/reports"
	"tqmcore/internal/blob"
	"tqmcore/internal/core"
)

func openTestSystem(t *testing.T) *System {
	t.Helper()
	t.Setenv(core.EnvStorageDriver, "memory")
	t.Setenv(blob.EnvDriver, "memory")
	sys, err := Open(context.Background())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { sys.Close() })
	return sys
}

func TestOpenWiresComponents(t *testing.T) {
	sys := openTestSystem(t)
	if got := len(sys.State.Machines()); got != 26 {
		t.Fatalf("machines = %d, want hydrated seeds", got)
	}
	if sys.Artifacts.Driver() != "memory" {
		t.Fatalf("artifact driver = %q", sys.Artifacts.Driver())
	}
	if sys.Gate.LoggedIn() {
		t.Fatal("gate must start logged out")
	}
}

func TestGatedMutationEndToEnd(t *testing.T) {
	ctx := context.Background()
	sys := openTestSystem(t)

	if _, err := sys.Gate.Login(ctx, "1"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	err := sys.Gate.Require(ctx, "add machine", func(ctx context.Context) error {
		_, err := sys.State.AddMachine(ctx, "NEW")
		return err
	})
	if !errors.Is(err, core.ErrElevationRequired) {
		t.Fatalf("Require err = %v", err)
	}
	if err := sys.Gate.Unlock(ctx, "305060"); err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if got := len(sys.State.Machines()); got != 27 {
		t.Fatalf("machines = %d, want 27 after unlocked command", got)
	}
}

func TestExportThroughWorker(t *testing.T) {
	sys := openTestSystem(t)
	if _, err := sys.Exports.Enqueue(reports.Request{Kind: reports.KindBackup}); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
}
