// Package durable maps an in-memory collection onto one slot of a
// key-value store. Reads never fail and writes never surface errors: a
// corrupt slot reads as empty and a failed write leaves the in-memory list
// authoritative for the rest of the session.
package durable

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

// KV is the subset of the key-value store a Slot needs.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Slot is the sole reader and writer of one key.
type Slot struct {
	kv  KV
	key string
	log *slog.Logger
}

func NewSlot(kv KV, key string, log *slog.Logger) *Slot {
	if log == nil {
		log = slog.Default()
	}
	return &Slot{kv: kv, key: key, log: log.With("slot", key)}
}

func (s *Slot) Key() string { return s.key }

// Load returns the stored list, or an empty list when the slot is absent,
// unreadable, or does not hold a JSON array of trimmed non-empty strings.
func (s *Slot) Load() []string {
	raw, ok, err := s.kv.Get(s.key)
	if err != nil {
		s.log.Warn("read failed, starting empty", "error", err)
		return []string{}
	}
	if !ok {
		return []string{}
	}
	items, err := decode(raw)
	if err != nil {
		s.log.Warn("discarding malformed record", "error", err)
		return []string{}
	}
	return items
}

// Save overwrites the slot with items.
func (s *Slot) Save(items []string) {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		s.log.Warn("encode failed", "error", err)
		return
	}
	if err := s.kv.Set(s.key, string(b)); err != nil {
		s.log.Warn("write failed, keeping in-memory state", "error", err, "items", len(items))
	}
}

type shapeError struct {
	index int
}

func (e shapeError) Error() string {
	return fmt.Sprintf("element %d is empty or not trimmed", e.index)
}

func decode(raw string) ([]string, error) {
	// Unmarshalling into []string rejects objects, numbers and
	// non-string elements; a literal null decodes to nil.
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	for i, it := range items {
		if it == "" || strings.TrimSpace(it) != it {
			return nil, shapeError{index: i}
		}
	}
	if items == nil {
		items = []string{}
	}
	return items, nil
}
