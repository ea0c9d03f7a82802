package list

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/faizmokh/prio/internal/kv"
	"github.com/faizmokh/prio/internal/persist"
	"github.com/faizmokh/prio/internal/priority"
)

func countRenderer() Renderer {
	return RendererFunc(func(entries []priority.Entry) string {
		return fmt.Sprintf("%d entries", len(entries))
	})
}

func openStore(t *testing.T, store kv.Store, opts ...Option) *Store {
	t.Helper()
	s, err := Open(context.Background(), persist.NewBridge(store), opts...)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func mustAdd(t *testing.T, s *Store, title, date, duration string, tag priority.Tag) {
	t.Helper()
	form := &priority.Form{Title: title, Date: date, Duration: duration}
	ok, err := s.Add(context.Background(), form, tag)
	if err != nil {
		t.Fatalf("Add(%q): %v", title, err)
	}
	if !ok {
		t.Fatalf("Add(%q) rejected: %v", title, form.Errors.Err())
	}
}

func titlesOf(entries []priority.Entry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.Title
	}
	return strings.Join(parts, ",")
}

func TestAddKeepsDateOrderAndPersists(t *testing.T) {
	mem := kv.NewMemory()
	s := openStore(t, mem, WithRenderer(countRenderer()))

	mustAdd(t, s, "late", "12/01", "1h", "")
	mustAdd(t, s, "early", "01/05", "45m", priority.Red)
	mustAdd(t, s, "middle", "01/20", "2h 30m", "")

	if got := titlesOf(s.Entries()); got != "early,middle,late" {
		t.Fatalf("Entries() = %s, want early,middle,late", got)
	}
	if s.Entries()[1].Tag != priority.NoTag {
		t.Fatalf("untagged entry tag = %q, want %q", s.Entries()[1].Tag, priority.NoTag)
	}
	if s.Snapshot() != "3 entries" {
		t.Fatalf("Snapshot() = %q, want %q", s.Snapshot(), "3 entries")
	}

	reopened := openStore(t, mem)
	if got := titlesOf(reopened.Entries()); got != "early,middle,late" {
		t.Fatalf("reopened Entries() = %s", got)
	}
	if reopened.Snapshot() != "3 entries" {
		t.Fatalf("reopened Snapshot() = %q", reopened.Snapshot())
	}
}

func TestAddRejectsInvalidFormWithoutStoring(t *testing.T) {
	mem := kv.NewMemory()
	s := openStore(t, mem)

	form := &priority.Form{Title: "", Date: "2/5", Duration: "5m"}
	ok, err := s.Add(context.Background(), form, priority.Blue)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if ok {
		t.Fatalf("Add() = true, want rejection")
	}
	if !errors.Is(form.Errors.Title, priority.ErrEmptyTitle) ||
		!errors.Is(form.Errors.Date, priority.ErrInvalidDate) ||
		!errors.Is(form.Errors.Duration, priority.ErrInvalidDuration) {
		t.Fatalf("form errors = %+v, want all three", form.Errors)
	}
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
	if len(mem.Keys()) != 0 {
		t.Fatalf("rejected add wrote keys %v", mem.Keys())
	}
}

func TestAddResetsFormOnSuccess(t *testing.T) {
	s := openStore(t, kv.NewMemory())

	form := &priority.Form{Title: "Read", Date: "04/04", Duration: "30m"}
	ok, err := s.Add(context.Background(), form, "")
	if err != nil || !ok {
		t.Fatalf("Add() = %v, %v", ok, err)
	}
	if *form != (priority.Form{}) {
		t.Fatalf("form after Add = %+v, want reset", *form)
	}
}

func TestDeleteByTitleRemovesEveryMatch(t *testing.T) {
	mem := kv.NewMemory()
	s := openStore(t, mem)

	mustAdd(t, s, "X", "03/01", "1h", "")
	mustAdd(t, s, "Y", "02/01", "1h", "")
	mustAdd(t, s, "X", "01/01", "1h", priority.Green)
	mustAdd(t, s, "x", "04/01", "1h", "")

	removed, err := s.DeleteByTitle(context.Background(), "X")
	if err != nil {
		t.Fatalf("DeleteByTitle: %v", err)
	}
	if removed != 2 {
		t.Fatalf("removed = %d, want 2", removed)
	}
	if got := titlesOf(s.Entries()); got != "Y,x" {
		t.Fatalf("Entries() = %s, want Y,x", got)
	}

	reopened := openStore(t, mem)
	if got := titlesOf(reopened.Entries()); got != "Y,x" {
		t.Fatalf("reopened Entries() = %s, want Y,x", got)
	}
}

func TestDeleteByTitleMissingIsNoop(t *testing.T) {
	s := openStore(t, kv.NewMemory())
	mustAdd(t, s, "keep", "05/05", "5h", "")

	removed, err := s.DeleteByTitle(context.Background(), "keep ")
	if err != nil {
		t.Fatalf("DeleteByTitle: %v", err)
	}
	if removed != 0 {
		t.Fatalf("removed = %d, want 0", removed)
	}
	if got := titlesOf(s.Entries()); got != "keep" {
		t.Fatalf("Entries() = %s, want keep", got)
	}
}

func TestClearAllWipesNamespace(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	if err := mem.Set(ctx, "legacy", "stale"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	s := openStore(t, mem, WithRenderer(countRenderer()))
	mustAdd(t, s, "a", "01/01", "1h", "")
	mustAdd(t, s, "b", "01/02", "2h", "")

	if err := s.ClearAll(ctx); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
	if _, ok, _ := mem.Get(ctx, "legacy"); ok {
		t.Fatalf("ClearAll kept unrelated key")
	}

	entries, _, err := persist.NewBridge(mem).Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("Load after ClearAll = %v, want empty", entries)
	}
	if s.Snapshot() != "0 entries" {
		t.Fatalf("Snapshot() = %q, want %q", s.Snapshot(), "0 entries")
	}
}

type clearFailure struct {
	kv.Store
	err error
}

func (c clearFailure) Clear(context.Context) error { return c.err }

func TestClearAllKeepsEntriesWhenEraseFails(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk full")
	mem := kv.NewMemory()
	s := openStore(t, clearFailure{Store: mem, err: boom})
	mustAdd(t, s, "a", "01/01", "1h", "")
	mustAdd(t, s, "b", "01/02", "2h", "")

	if err := s.ClearAll(ctx); !errors.Is(err, boom) {
		t.Fatalf("ClearAll() error = %v, want %v", err, boom)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 after failed clear", s.Len())
	}

	entries, _, err := persist.NewBridge(mem).Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if titlesOf(entries) != "a,b" {
		t.Fatalf("persisted = %q, want a,b", titlesOf(entries))
	}
}

func TestSetTagAndFilter(t *testing.T) {
	mem := kv.NewMemory()
	s := openStore(t, mem)
	mustAdd(t, s, "one", "01/01", "1h", "")
	mustAdd(t, s, "two", "02/02", "2h", "")
	mustAdd(t, s, "three", "03/03", "3h", "")

	entry, err := s.SetTag(context.Background(), 1, priority.Purple)
	if err != nil {
		t.Fatalf("SetTag: %v", err)
	}
	if entry.Title != "two" || entry.Tag != priority.Purple {
		t.Fatalf("SetTag() = %+v", entry)
	}

	if got := titlesOf(s.Filter(priority.Purple)); got != "two" {
		t.Fatalf("Filter(purple) = %s, want two", got)
	}
	if got := titlesOf(s.Filter(priority.NoTag)); got != "one,three" {
		t.Fatalf("Filter(no tag) = %s, want one,three", got)
	}

	reopened := openStore(t, mem)
	if got := titlesOf(reopened.Filter(priority.Purple)); got != "two" {
		t.Fatalf("reopened Filter(purple) = %s, want two", got)
	}
}

func TestSetTagOutOfRange(t *testing.T) {
	s := openStore(t, kv.NewMemory())
	mustAdd(t, s, "one", "01/01", "1h", "")

	for _, index := range []int{-1, 1, 5} {
		if _, err := s.SetTag(context.Background(), index, priority.Red); !errors.Is(err, priority.ErrInvalidIndex) {
			t.Fatalf("SetTag(%d) error = %v, want ErrInvalidIndex", index, err)
		}
	}
}

func TestOpenRecoversFromCorruptEntries(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	if err := mem.Set(ctx, persist.EntriesKey, "not json"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	buf := &bytes.Buffer{}
	logger := log.NewWithOptions(buf, log.Options{Level: log.WarnLevel})
	s := openStore(t, mem, WithLogger(logger))

	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
	if !strings.Contains(buf.String(), "ignoring unreadable saved entries") {
		t.Fatalf("expected warning, got %q", buf.String())
	}

	mustAdd(t, s, "fresh", "06/06", "6h", "")
	reopened := openStore(t, mem)
	if got := titlesOf(reopened.Entries()); got != "fresh" {
		t.Fatalf("reopened Entries() = %s, want fresh", got)
	}
}

func TestOpenSortsLoadedEntries(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	payload := `[{"title":"b","date":"12/01","time":"1h","tag":"red"},{"title":"a","date":"01/05","time":"1h","tag":"no tag"}]`
	if err := mem.Set(ctx, persist.EntriesKey, payload); err != nil {
		t.Fatalf("Set: %v", err)
	}

	s := openStore(t, mem)
	if got := titlesOf(s.Entries()); got != "a,b" {
		t.Fatalf("Entries() = %s, want a,b", got)
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	s := openStore(t, kv.NewMemory())
	mustAdd(t, s, "one", "01/01", "1h", "")

	entries := s.Entries()
	entries[0].Title = "mutated"
	if s.Entries()[0].Title != "one" {
		t.Fatalf("Entries() exposed internal slice")
	}
}
