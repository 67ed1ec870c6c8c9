package memory

import (
	"context"
	"testing"

	"tqmcore/pkg/domain"
)

func TestLoadMissingKey(t *testing.T) {
	s := NewStore()
	payload, ok, err := s.Load(context.Background(), domain.KeyProducts)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok || payload != nil {
		t.Fatalf("Load missing = (%q, %v), want (nil, false)", payload, ok)
	}
}

func TestSaveThenLoad(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	if err := s.Save(ctx, domain.KeyProducts, []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	payload, ok, err := s.Load(ctx, domain.KeyProducts)
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if string(payload) != `[{"id":"1"}]` {
		t.Fatalf("payload = %q", payload)
	}
}

func TestSaveReplacesPriorValue(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	if err := s.Save(ctx, domain.KeyTeam, []byte(`[1]`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(ctx, domain.KeyTeam, []byte(`[2]`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	payload, _, _ := s.Load(ctx, domain.KeyTeam)
	if string(payload) != `[2]` {
		t.Fatalf("payload = %q, want [2]", payload)
	}
}

func TestStoredBytesAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	input := []byte(`[1]`)
	if err := s.Save(ctx, domain.KeyTeam, input); err != nil {
		t.Fatalf("Save: %v", err)
	}
	input[1] = '9'

	payload, _, _ := s.Load(ctx, domain.KeyTeam)
	if string(payload) != `[1]` {
		t.Fatalf("payload = %q, caller mutation leaked in", payload)
	}
	payload[1] = '8'
	again, _, _ := s.Load(ctx, domain.KeyTeam)
	if string(again) != `[1]` {
		t.Fatalf("payload = %q, reader mutation leaked in", again)
	}
}
