// Package store owns the in-memory feast dataset: loading it from the
// JSON dataset file, indexing it by calendar key, and answering key and
// enumeration queries. A Store is immutable once built, so reads need
// no locking.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/couchcryptid/feast-calendar/datekey"
	"github.com/couchcryptid/feast-calendar/feast"
)

// Sentinel errors distinguishing the two load failure kinds.
var (
	// ErrNotFound is returned when the dataset file is missing or
	// cannot be read.
	ErrNotFound = errors.New("dataset not found")

	// ErrMalformed is returned when the dataset exists but cannot be
	// decoded or contains a schema-invalid record.
	ErrMalformed = errors.New("dataset malformed")
)

// Store is the read-only feast index: calendar key to the ordered
// feasts of that day, plus the flattened calendar-order list.
type Store struct {
	byKey map[datekey.Key][]feast.Feast
	keys  []datekey.Key // ascending
	all   []feast.Feast // ascending key, insertion order within a day
}

// Load reads and indexes the dataset file at path.
// A missing or unreadable file wraps ErrNotFound; an undecodable or
// schema-invalid file wraps ErrMalformed. Every load error carries one
// of the two sentinels, so errors.Is callers always get a classified
// failure. On error no partial store is returned.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w: %w", path, ErrNotFound, err)
	}
	return FromBytes(data, path)
}

// FromBytes decodes and indexes a JSON dataset held in memory.
// The name is used only for error context.
func FromBytes(data []byte, name string) (*Store, error) {
	var records []feast.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w: %w", name, ErrMalformed, err)
	}

	s, err := FromRecords(records)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", name, err)
	}
	return s, nil
}

// FromRecords builds a Store from decoded records. Each record's date
// label is normalized to its calendar key, so the dataset and query
// paths share one date parser. Records are grouped per key in file
// order; keys sort ascending.
func FromRecords(records []feast.Record) (*Store, error) {
	byKey := make(map[datekey.Key][]feast.Feast, len(records))
	var keys []datekey.Key

	for i, r := range records {
		f, err := feast.FromRecord(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w: %w", i, ErrMalformed, err)
		}

		key, err := datekey.Normalize(f.Date)
		if err != nil {
			return nil, fmt.Errorf("record %d (%q): %w: %w", i, f.Title, ErrMalformed, err)
		}

		if _, seen := byKey[key]; !seen {
			keys = append(keys, key)
		}
		byKey[key] = append(byKey[key], f)
	}

	slices.Sort(keys)

	all := make([]feast.Feast, 0, len(records))
	for _, key := range keys {
		all = append(all, byKey[key]...)
	}

	return &Store{byKey: byKey, keys: keys, all: all}, nil
}

// Get returns the feasts celebrated on the given calendar key, in
// dataset order. A day with no feasts yields an empty (non-nil) slice,
// not an error.
func (s *Store) Get(key datekey.Key) []feast.Feast {
	feasts := s.byKey[key]
	return append(make([]feast.Feast, 0, len(feasts)), feasts...)
}

// All returns every feast in calendar order: ascending key, dataset
// insertion order within a day.
func (s *Store) All() []feast.Feast {
	return slices.Clone(s.all)
}

// Keys returns all calendar keys with at least one feast, ascending.
func (s *Store) Keys() []datekey.Key {
	return slices.Clone(s.keys)
}

// Count returns the total number of feast records, not distinct days.
func (s *Store) Count() int {
	return len(s.all)
}
