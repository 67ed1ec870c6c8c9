package domain

import "testing"

func TestSeedRosterSizes(t *testing.T) {
	if got := len(DefaultMachines()); got != 26 {
		t.Fatalf("default machines = %d, want 26", got)
	}
	if got := len(DefaultTopLoadStandards()); got != 24 {
		t.Fatalf("default standards = %d, want 24", got)
	}
	if got := len(DefaultDefectCodes()); got != 29 {
		t.Fatalf("default defect codes = %d, want 29", got)
	}
}

func TestSeedDefectCodesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, dc := range DefaultDefectCodes() {
		if dc.Code == "" {
			t.Fatal("seed defect code with empty code")
		}
		if seen[dc.Code] {
			t.Fatalf("duplicate seed defect code %q", dc.Code)
		}
		seen[dc.Code] = true
	}
}

func TestTimeSlotShapes(t *testing.T) {
	if got := len(ChecklistTimeSlots); got != 12 {
		t.Fatalf("checklist slots = %d, want 12", got)
	}
	if got := len(TopLoadTimeSlots); got != 3 {
		t.Fatalf("top-load slots = %d, want 3", got)
	}
	if len(WeightTimeSlots) != len(ChecklistTimeSlots) {
		t.Fatal("weight slots should mirror checklist slots")
	}
}

func TestCollectionKeysExcludeDemoStart(t *testing.T) {
	keys := CollectionKeys()
	if got := len(keys); got != 15 {
		t.Fatalf("collection keys = %d, want 15", got)
	}
	seen := map[CollectionKey]bool{}
	for _, key := range keys {
		if key == KeyDemoStart {
			t.Fatal("demo start must not be part of collection state")
		}
		if seen[key] {
			t.Fatalf("duplicate collection key %q", key)
		}
		seen[key] = true
	}
}

func TestSupervisorNamesBshiftAccess(t *testing.T) {
	var names SupervisorNames
	names.Set(ShiftB, "samir")
	if got := names.Get(ShiftB); got != "samir" {
		t.Fatalf("Get(ShiftB) = %q, want samir", got)
	}
	if got := names.Get(ShiftA); got != "" {
		t.Fatalf("Get(ShiftA) = %q, want empty", got)
	}
	names.Set("X", "ignored")
	if names.A != "" || names.C != "" {
		t.Fatal("unknown shift must not touch other slots")
	}
}
