// Package persist mirrors the priority list into a key/value namespace.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/faizmokh/prio/internal/kv"
	"github.com/faizmokh/prio/internal/priority"
)

const (
	// EntriesKey holds the JSON encoded entry collection.
	EntriesKey = "entries"
	// SnapshotKey holds the last rendered list.
	SnapshotKey = "snapshot"
)

// ErrCorrupt is returned by Load when the stored collection cannot be decoded.
var ErrCorrupt = errors.New("persisted entries are corrupt")

// record is the stored shape of an entry. The estimate is kept under "time".
type record struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	Tag   string `json:"tag"`
}

// Bridge reads and writes the entry collection and its rendered snapshot.
type Bridge struct {
	store kv.Store
}

// NewBridge wires a Bridge on top of store.
func NewBridge(store kv.Store) *Bridge {
	return &Bridge{store: store}
}

// Save writes the full collection and the snapshot under their keys.
func (b *Bridge) Save(ctx context.Context, entries []priority.Entry, snapshot string) error {
	if b == nil || b.store == nil {
		return errors.New("bridge not initialized with a store")
	}

	payload, err := Encode(entries)
	if err != nil {
		return err
	}
	if err := b.store.Set(ctx, SnapshotKey, snapshot); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := b.store.Set(ctx, EntriesKey, payload); err != nil {
		return fmt.Errorf("save entries: %w", err)
	}
	return nil
}

// Load reads the collection and snapshot. Missing keys yield an empty
// collection and an empty snapshot.
func (b *Bridge) Load(ctx context.Context) ([]priority.Entry, string, error) {
	if b == nil || b.store == nil {
		return nil, "", errors.New("bridge not initialized with a store")
	}

	snapshot, _, err := b.store.Get(ctx, SnapshotKey)
	if err != nil {
		return nil, "", fmt.Errorf("load snapshot: %w", err)
	}

	payload, ok, err := b.store.Get(ctx, EntriesKey)
	if err != nil {
		return nil, "", fmt.Errorf("load entries: %w", err)
	}
	if !ok {
		return nil, snapshot, nil
	}

	entries, err := Decode(payload)
	if err != nil {
		return nil, snapshot, err
	}
	return entries, snapshot, nil
}

// Clear erases the whole namespace, including keys this package never wrote.
func (b *Bridge) Clear(ctx context.Context) error {
	if b == nil || b.store == nil {
		return errors.New("bridge not initialized with a store")
	}
	if err := b.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear store: %w", err)
	}
	return nil
}

// Encode renders entries as the stored JSON array.
func Encode(entries []priority.Entry) (string, error) {
	records := make([]record, 0, len(entries))
	for _, entry := range entries {
		records = append(records, record{
			Title: entry.Title,
			Date:  entry.Date,
			Time:  entry.Duration,
			Tag:   string(entry.Tag.Normalize()),
		})
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("encode entries: %w", err)
	}
	return string(data), nil
}

// Decode parses the stored JSON array. Blank input is an empty collection.
func Decode(payload string) ([]priority.Entry, error) {
	if len(payload) == 0 {
		return nil, nil
	}
	var records []record
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	entries := make([]priority.Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, priority.Entry{
			Title:    r.Title,
			Date:     r.Date,
			Duration: r.Time,
			Tag:      priority.Tag(r.Tag).Normalize(),
		})
	}
	return entries, nil
}
