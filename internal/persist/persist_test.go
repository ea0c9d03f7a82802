package persist

import (
	"context"
	"errors"
	"testing"

	"github.com/faizmokh/prio/internal/kv"
	"github.com/faizmokh/prio/internal/priority"
)

func TestBridgeRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	bridge := NewBridge(store)

	entries := []priority.Entry{
		{Title: "Ship release", Date: "01/05", Duration: "2h", Tag: priority.Red},
		{Title: "Ship release", Date: "02/29", Duration: "45m", Tag: priority.NoTag},
		{Title: "Plan quarter", Date: "12/01", Duration: "12h 30m", Tag: priority.Blue},
	}
	if err := bridge.Save(ctx, entries, "rendered table"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, snapshot, err := bridge.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if snapshot != "rendered table" {
		t.Fatalf("snapshot = %q, want %q", snapshot, "rendered table")
	}
	if len(got) != len(entries) {
		t.Fatalf("entries len = %d, want %d", len(got), len(entries))
	}
	for i := range entries {
		if got[i] != entries[i] {
			t.Fatalf("entries[%d] = %+v, want %+v", i, got[i], entries[i])
		}
	}
}

func TestBridgeLoadEmptyStore(t *testing.T) {
	bridge := NewBridge(kv.NewMemory())

	entries, snapshot, err := bridge.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 0 || snapshot != "" {
		t.Fatalf("Load() = %v, %q, want empty", entries, snapshot)
	}
}

func TestBridgeStoredFormat(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	bridge := NewBridge(store)

	if err := bridge.Save(ctx, []priority.Entry{{Title: "a", Date: "03/04", Duration: "5h"}}, ""); err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw, ok, err := store.Get(ctx, EntriesKey)
	if err != nil || !ok {
		t.Fatalf("Get(entries) = %v, %v", ok, err)
	}
	want := `[{"title":"a","date":"03/04","time":"5h","tag":"no tag"}]`
	if raw != want {
		t.Fatalf("stored entries = %s, want %s", raw, want)
	}

	if err := bridge.Save(ctx, nil, ""); err != nil {
		t.Fatalf("Save empty: %v", err)
	}
	raw, _, _ = store.Get(ctx, EntriesKey)
	if raw != "[]" {
		t.Fatalf("stored empty entries = %s, want []", raw)
	}
}

func TestBridgeLoadMissingTagDefaults(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	if err := store.Set(ctx, EntriesKey, `[{"title":"old","date":"05/06","time":"10h"}]`); err != nil {
		t.Fatalf("Set: %v", err)
	}

	entries, _, err := NewBridge(store).Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 1 || entries[0].Tag != priority.NoTag {
		t.Fatalf("Load() = %+v, want one entry tagged %q", entries, priority.NoTag)
	}
}

func TestBridgeLoadCorruptEntries(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	if err := store.Set(ctx, EntriesKey, `{not json`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set(ctx, SnapshotKey, "old table"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	entries, snapshot, err := NewBridge(store).Load(ctx)
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("Load error = %v, want ErrCorrupt", err)
	}
	if entries != nil {
		t.Fatalf("entries = %v, want nil", entries)
	}
	if snapshot != "old table" {
		t.Fatalf("snapshot = %q, want %q", snapshot, "old table")
	}
}

func TestBridgeClearWipesNamespace(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	bridge := NewBridge(store)

	if err := store.Set(ctx, "unrelated", "x"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := bridge.Save(ctx, []priority.Entry{{Title: "a", Date: "01/01", Duration: "1h"}}, "s"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := bridge.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if keys := store.Keys(); len(keys) != 0 {
		t.Fatalf("keys after Clear = %v, want none", keys)
	}

	entries, snapshot, err := bridge.Load(ctx)
	if err != nil || len(entries) != 0 || snapshot != "" {
		t.Fatalf("Load after Clear = %v, %q, %v", entries, snapshot, err)
	}
}
