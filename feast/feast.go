// Package feast defines the Feast entity and its dataset wire form.
//
// A Feast is one liturgical celebration occurring on a specific calendar
// day. Feasts are constructed once at dataset load time and never mutated;
// all functions return copies, so callers cannot alias shared state.
package feast

import (
	"errors"
	"slices"
)

// Feast is a single celebration on the liturgical calendar.
type Feast struct {
	Date           string   // human-readable label, e.g. "January 9"
	Title          string   // display name, never empty
	Description    string   // free text, may be empty
	Color          string   // liturgical color, open vocabulary
	Type           string   // liturgical rank, e.g. "Solemnity", "Memorial"
	Classification string   // single-letter class code (A-E observed)
	Tags           []string // insertion order from the dataset, duplicates allowed
}

// Record is the JSON shape of a feast entry in the dataset file.
type Record struct {
	Date           string   `json:"date"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Color          string   `json:"color"`
	Type           string   `json:"type"`
	Classification string   `json:"classification"`
	Tags           []string `json:"tags"`
}

// ErrEmptyTitle is returned by FromRecord when a record has no title.
var ErrEmptyTitle = errors.New("feast record has empty title")

// FromRecord converts a dataset record into a Feast.
// The tag slice is copied so the Feast does not alias decoder buffers.
func FromRecord(r Record) (Feast, error) {
	if r.Title == "" {
		return Feast{}, ErrEmptyTitle
	}
	return Feast{
		Date:           r.Date,
		Title:          r.Title,
		Description:    r.Description,
		Color:          r.Color,
		Type:           r.Type,
		Classification: r.Classification,
		Tags:           slices.Clone(r.Tags),
	}, nil
}

// ToRecord converts a Feast back to its dataset wire form.
// ToRecord composed with FromRecord is the identity for every field.
func (f Feast) ToRecord() Record {
	return Record{
		Date:           f.Date,
		Title:          f.Title,
		Description:    f.Description,
		Color:          f.Color,
		Type:           f.Type,
		Classification: f.Classification,
		Tags:           slices.Clone(f.Tags),
	}
}

// Equal reports structural equality: every field, tags in order.
func (f Feast) Equal(other Feast) bool {
	return f.Date == other.Date &&
		f.Title == other.Title &&
		f.Description == other.Description &&
		f.Color == other.Color &&
		f.Type == other.Type &&
		f.Classification == other.Classification &&
		slices.Equal(f.Tags, other.Tags)
}
