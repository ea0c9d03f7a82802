// Package list holds the in-memory priority list and mirrors every change
// into the persisted store.
package list

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/faizmokh/prio/internal/logging"
	"github.com/faizmokh/prio/internal/persist"
	"github.com/faizmokh/prio/internal/priority"
)

// Renderer produces the snapshot string saved alongside the entries.
type Renderer interface {
	Render(entries []priority.Entry) string
}

// RendererFunc adapts a plain function to Renderer.
type RendererFunc func(entries []priority.Entry) string

func (f RendererFunc) Render(entries []priority.Entry) string { return f(entries) }

// Option customizes a Store.
type Option func(*Store)

// WithLogger sets the logger used for mutation and recovery messages.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRenderer sets the renderer producing the persisted snapshot.
func WithRenderer(renderer Renderer) Option {
	return func(s *Store) {
		s.renderer = renderer
	}
}

// Store is the date-sorted collection of entries. It is not safe for
// concurrent use; callers run one operation at a time.
type Store struct {
	bridge   *persist.Bridge
	renderer Renderer
	logger   *log.Logger

	entries  []priority.Entry
	snapshot string
}

// Open loads the persisted collection through bridge. A collection that
// cannot be decoded is replaced by an empty one.
func Open(ctx context.Context, bridge *persist.Bridge, opts ...Option) (*Store, error) {
	if bridge == nil {
		return nil, errors.New("list: persistence bridge is required")
	}

	s := &Store{
		bridge: bridge,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}

	entries, snapshot, err := bridge.Load(ctx)
	if err != nil {
		if !errors.Is(err, persist.ErrCorrupt) {
			return nil, err
		}
		s.logger.Warn("ignoring unreadable saved entries", "err", err)
		entries = nil
		snapshot = ""
	}

	s.entries = entries
	s.snapshot = snapshot
	priority.SortByDate(s.entries)
	s.logger.Debug("loaded entries", "count", len(s.entries))
	return s, nil
}

// Add validates form and, when every field passes, appends the entry with
// tag (NoTag when empty). It reports false without error when validation
// fails; the form then carries the field errors and its invalid fields are
// cleared. The error result only reports persistence failures.
func (s *Store) Add(ctx context.Context, form *priority.Form, tag priority.Tag) (bool, error) {
	if form == nil {
		return false, errors.New("list: form is required")
	}
	if !form.Validate() {
		s.logger.Debug("rejected entry", "err", form.Errors.Err())
		return false, nil
	}

	entry := form.Entry(tag)
	s.entries = append(s.entries, entry)
	form.Reset()

	s.logger.Debug("added entry", "title", entry.Title, "date", entry.Date, "tag", entry.Tag)
	if err := s.commit(ctx); err != nil {
		return true, err
	}
	return true, nil
}

// DeleteByTitle removes every entry whose title equals title exactly and
// returns how many were removed.
func (s *Store) DeleteByTitle(ctx context.Context, title string) (int, error) {
	kept := s.entries[:0]
	removed := 0
	for _, entry := range s.entries {
		if entry.Title == title {
			removed++
			continue
		}
		kept = append(kept, entry)
	}
	clear(s.entries[len(kept):])
	s.entries = kept

	s.logger.Debug("deleted entries", "title", title, "count", removed)
	if err := s.commit(ctx); err != nil {
		return removed, err
	}
	return removed, nil
}

// ClearAll empties the list and erases the whole persisted namespace before
// saving the empty state.
func (s *Store) ClearAll(ctx context.Context) error {
	if err := s.bridge.Clear(ctx); err != nil {
		return err
	}
	s.entries = nil
	s.logger.Debug("cleared entries")
	return s.commit(ctx)
}

// SetTag assigns tag to the entry at index (0-based) of the date-sorted list.
func (s *Store) SetTag(ctx context.Context, index int, tag priority.Tag) (priority.Entry, error) {
	if index < 0 || index >= len(s.entries) {
		return priority.Entry{}, fmt.Errorf("%w: %d", priority.ErrInvalidIndex, index+1)
	}
	s.entries[index].Tag = tag.Normalize()
	entry := s.entries[index]

	s.logger.Debug("tagged entry", "title", entry.Title, "tag", entry.Tag)
	if err := s.commit(ctx); err != nil {
		return entry, err
	}
	return entry, nil
}

// Entries returns a copy of the date-sorted list.
func (s *Store) Entries() []priority.Entry {
	out := make([]priority.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len reports how many entries the list holds.
func (s *Store) Len() int {
	return len(s.entries)
}

// Filter returns the entries carrying tag, in date order.
func (s *Store) Filter(tag priority.Tag) []priority.Entry {
	return priority.FilterByTag(s.entries, tag)
}

// Snapshot returns the most recently saved rendering of the list.
func (s *Store) Snapshot() string {
	return s.snapshot
}

func (s *Store) commit(ctx context.Context) error {
	priority.SortByDate(s.entries)
	s.snapshot = ""
	if s.renderer != nil {
		s.snapshot = s.renderer.Render(s.Entries())
	}
	if err := s.bridge.Save(ctx, s.entries, s.snapshot); err != nil {
		s.logger.Error("saving entries failed", "err", err)
		return err
	}
	return nil
}
