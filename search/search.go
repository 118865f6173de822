// Package search filters the feast collection by title, tag, or
// liturgical type. Matching is a linear scan over the calendar-ordered
// collection; the dataset is a few hundred records, so no index is kept.
package search

import (
	"strings"

	"github.com/couchcryptid/feast-calendar/feast"
	"github.com/couchcryptid/feast-calendar/store"
)

// Engine answers keyword queries against a loaded store. Results keep
// calendar order and an empty result is a normal outcome, never an
// error.
type Engine struct {
	store *store.Store
}

// New creates an Engine over the given store.
func New(s *store.Store) *Engine {
	return &Engine{store: s}
}

// ByTitle returns feasts whose title contains keyword as a substring.
// The empty keyword matches every feast.
func (e *Engine) ByTitle(keyword string, caseSensitive bool) []feast.Feast {
	keyword = fold(keyword, caseSensitive)
	return e.filter(func(f feast.Feast) bool {
		return strings.Contains(fold(f.Title, caseSensitive), keyword)
	})
}

// ByTag returns feasts carrying a tag exactly equal to tag. Substring
// overlap ("opus dei" vs "opus dei founder") does not match.
func (e *Engine) ByTag(tag string, caseSensitive bool) []feast.Feast {
	tag = fold(tag, caseSensitive)
	return e.filter(func(f feast.Feast) bool {
		for _, t := range f.Tags {
			if fold(t, caseSensitive) == tag {
				return true
			}
		}
		return false
	})
}

// ByType returns feasts whose liturgical type equals typ exactly.
func (e *Engine) ByType(typ string, caseSensitive bool) []feast.Feast {
	typ = fold(typ, caseSensitive)
	return e.filter(func(f feast.Feast) bool {
		return fold(f.Type, caseSensitive) == typ
	})
}

func (e *Engine) filter(match func(feast.Feast) bool) []feast.Feast {
	matches := make([]feast.Feast, 0)
	for _, f := range e.store.All() {
		if match(f) {
			matches = append(matches, f)
		}
	}
	return matches
}

// fold lower-cases s for case-insensitive comparison. strings.ToLower
// applies the locale-independent Unicode simple mapping, so comparisons
// do not vary with the host locale.
func fold(s string, caseSensitive bool) string {
	if caseSensitive {
		return s
	}
	return strings.ToLower(s)
}
