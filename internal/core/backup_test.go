package core

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"tqmcore/internal/infra/persistence/memory"
	"tqmcore/pkg/domain"
)

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newLoadedContainer(t, memory.NewStore())

	if _, err := src.AddProduct(ctx, Product{Name: "jar 30ml", Specs: "PET"}); err != nil {
		t.Fatalf("AddProduct: %v", err)
	}
	if err := src.SetChecklistStatus(ctx, testDate, ShiftA, "P0", "08:00 ص", "OK"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := src.SetSupervisor(ctx, testDate, ShiftA, "ahmed"); err != nil {
		t.Fatalf("SetSupervisor: %v", err)
	}

	doc, err := src.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	dst := newLoadedContainer(t, memory.NewStore())
	if err := dst.ImportJSON(ctx, doc); err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if !reflect.DeepEqual(src.Snapshot(), dst.Snapshot()) {
		t.Fatal("snapshot after import differs from exported state")
	}
}

func TestImportRejectsDocumentWithoutAnchors(t *testing.T) {
	s := newLoadedContainer(t, memory.NewStore())
	err := s.ImportJSON(context.Background(), []byte(`{"checklistMachines":["M1"]}`))
	if !errors.Is(err, ErrInvalidBackup) {
		t.Fatalf("err = %v, want ErrInvalidBackup", err)
	}
	if got := len(s.Machines()); got != 26 {
		t.Fatal("rejected import must not touch state")
	}
}

func TestImportKeepsOmittedCollections(t *testing.T) {
	ctx := context.Background()
	s := newLoadedContainer(t, memory.NewStore())
	if err := s.SetSupervisor(ctx, testDate, ShiftA, "ahmed"); err != nil {
		t.Fatalf("SetSupervisor: %v", err)
	}

	doc := `{"products":[{"id":"1","name":"jar","specs":"","defects":"","image":""}]}`
	if err := s.ImportJSON(ctx, []byte(doc)); err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if got := len(s.Products()); got != 1 {
		t.Fatalf("products = %d, want imported 1", got)
	}
	if got := s.Supervisor(testDate, ShiftA); got != "ahmed" {
		t.Fatalf("supervisor = %q, want kept ahmed", got)
	}
	if got := len(s.Machines()); got != 26 {
		t.Fatalf("machines = %d, want kept seeds", got)
	}
}

func TestImportWritesTouchedCollectionsToStore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	s := newLoadedContainer(t, store)

	doc := `{"team":[{"id":"7","name":"mona","role":"inspector","department":"qc","joinedDate":"2023-01-01","email":"","phone":""}]}`
	if err := s.ImportJSON(ctx, []byte(doc)); err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	payload, ok, _ := store.Load(ctx, domain.KeyTeam)
	if !ok {
		t.Fatal("imported team not written to store")
	}
	var team []Employee
	if err := json.Unmarshal(payload, &team); err != nil {
		t.Fatalf("stored team: %v", err)
	}
	if len(team) != 1 || team[0].Name != "mona" {
		t.Fatalf("stored team = %+v, want mona", team)
	}
}

func TestImportUndecodableCollectionFails(t *testing.T) {
	s := newLoadedContainer(t, memory.NewStore())
	err := s.ImportJSON(context.Background(), []byte(`{"products":"not a list"}`))
	if err == nil {
		t.Fatal("expected decode error")
	}
}

func TestImportFailureLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	s := newLoadedContainer(t, store)
	before := s.Snapshot()

	doc := `{"team":[{"id":"7","name":"mona","role":"inspector","department":"qc","joinedDate":"2023-01-01","email":"","phone":""}],"products":"not a list"}`
	if err := s.ImportJSON(ctx, []byte(doc)); err == nil {
		t.Fatal("expected decode error")
	}
	if got := len(s.Team()); got != 0 {
		t.Fatalf("team = %d, want untouched 0 after failed import", got)
	}
	if !reflect.DeepEqual(before, s.Snapshot()) {
		t.Fatal("failed import mutated state")
	}
	if _, ok, _ := store.Load(ctx, domain.KeyTeam); ok {
		t.Fatal("failed import wrote to store")
	}
}

func TestImportRejectsNullAnchors(t *testing.T) {
	s := newLoadedContainer(t, memory.NewStore())
	err := s.ImportJSON(context.Background(), []byte(`{"products":null,"team":null}`))
	if !errors.Is(err, ErrInvalidBackup) {
		t.Fatalf("err = %v, want ErrInvalidBackup", err)
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2024, 3, 15, 13, 30, 0, 0, time.UTC)
	if got := ExportFilename(now); got != "tqm_full_backup_2024-03-15.json" {
		t.Fatalf("filename = %q", got)
	}
}

func TestExportedDocumentFieldNames(t *testing.T) {
	s := newLoadedContainer(t, memory.NewStore())
	doc, err := s.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	for field := range backupFields {
		if !strings.Contains(string(doc), `"`+field+`"`) {
			t.Fatalf("export missing field %q", field)
		}
	}
}
