// Package feastcal is the public query surface over the Catholic feast
// day calendar: lookup by date (flexible human date input) and search
// by title, tag, or liturgical type.
//
// The backing dataset is loaded into a process-wide store on first use.
// By default the embedded dataset ships with the library; set
// FEAST_DATASET_PATH to load an external file instead. The dataset is
// read-only at runtime: after the first successful load no further I/O
// happens and no query can observe partial state.
package feastcal

import (
	"sync"
	"time"

	"github.com/couchcryptid/feast-calendar/data"
	"github.com/couchcryptid/feast-calendar/datekey"
	"github.com/couchcryptid/feast-calendar/feast"
	"github.com/couchcryptid/feast-calendar/internal/config"
	"github.com/couchcryptid/feast-calendar/internal/observability"
	"github.com/couchcryptid/feast-calendar/search"
	"github.com/couchcryptid/feast-calendar/store"
)

var (
	mu            sync.Mutex
	defaultStore  *store.Store
	defaultEngine *search.Engine

	metricsOnce sync.Once
	metrics     *observability.Metrics
)

// current returns the process-wide store and search engine, loading the
// dataset on first use. The mutex guarantees exactly one load runs even
// under concurrent first callers. A failed load caches nothing, so a
// later call may retry; the first success wins and is never re-read.
func current() (*store.Store, *search.Engine, error) {
	mu.Lock()
	defer mu.Unlock()

	if defaultStore != nil {
		return defaultStore, defaultEngine, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger := observability.NewLogger(cfg)
	m := getMetrics()

	var (
		s      *store.Store
		source string
	)
	if cfg.DatasetPath != "" {
		source = cfg.DatasetPath
		s, err = store.Load(cfg.DatasetPath)
	} else {
		source = data.FeastDaysName
		s, err = store.FromBytes(data.FeastDays, data.FeastDaysName)
	}
	if err != nil {
		m.DatasetLoads.WithLabelValues("error").Inc()
		logger.Error("feast dataset load failed", "source", source, "error", err)
		return nil, nil, err
	}

	m.DatasetLoads.WithLabelValues("success").Inc()
	m.FeastsLoaded.Set(float64(s.Count()))
	logger.Info("feast dataset loaded",
		"source", source,
		"feasts", s.Count(),
		"days", len(s.Keys()),
	)

	defaultStore = s
	defaultEngine = search.New(s)
	return defaultStore, defaultEngine, nil
}

func getMetrics() *observability.Metrics {
	metricsOnce.Do(func() {
		metrics = observability.NewMetrics()
	})
	return metrics
}

// Use installs an explicitly loaded store as the process-wide dataset,
// replacing whatever current holds. Intended for tests and for hosts
// that manage dataset loading themselves.
func Use(s *store.Store) {
	mu.Lock()
	defer mu.Unlock()
	defaultStore = s
	defaultEngine = search.New(s)
}

// Reset discards the cached store so the next query reloads the
// dataset. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	defaultStore = nil
	defaultEngine = nil
}

// FeastsForDate normalizes a date string and returns the feasts of
// that day. The input may be "MM-DD", "Month Day", or "Day Month",
// with optional ordinal suffix and ignored year. A valid day with no
// feasts yields an empty slice. Errors are *datekey.ParseError for
// unparsable input, or a store load error on the first call.
func FeastsForDate(date string) ([]feast.Feast, error) {
	key, err := datekey.Normalize(date)
	if err != nil {
		return nil, err
	}
	return feastsForKey(key)
}

// FeastsForTime returns the feasts for the calendar day of t. The year
// is ignored; structured input never produces a parse error.
func FeastsForTime(t time.Time) ([]feast.Feast, error) {
	return feastsForKey(datekey.FromTime(t))
}

// FeastsForToday returns the feasts for the host's current local
// calendar date.
func FeastsForToday() ([]feast.Feast, error) {
	return feastsForKey(datekey.FromTime(clock.Now()))
}

func feastsForKey(key datekey.Key) ([]feast.Feast, error) {
	s, _, err := current()
	if err != nil {
		return nil, err
	}
	getMetrics().DateLookups.Inc()
	return s.Get(key), nil
}

// SearchByTitle returns feasts whose title contains keyword as a
// substring, in calendar order.
func SearchByTitle(keyword string, caseSensitive bool) ([]feast.Feast, error) {
	_, e, err := current()
	if err != nil {
		return nil, err
	}
	getMetrics().Searches.WithLabelValues("title").Inc()
	return e.ByTitle(keyword, caseSensitive), nil
}

// SearchByTag returns feasts carrying a tag exactly equal to tag, in
// calendar order.
func SearchByTag(tag string, caseSensitive bool) ([]feast.Feast, error) {
	_, e, err := current()
	if err != nil {
		return nil, err
	}
	getMetrics().Searches.WithLabelValues("tag").Inc()
	return e.ByTag(tag, caseSensitive), nil
}

// SearchByType returns feasts whose liturgical type equals typ, in
// calendar order.
func SearchByType(typ string, caseSensitive bool) ([]feast.Feast, error) {
	_, e, err := current()
	if err != nil {
		return nil, err
	}
	getMetrics().Searches.WithLabelValues("type").Inc()
	return e.ByType(typ, caseSensitive), nil
}

// AllFeasts returns every feast in calendar order.
func AllFeasts() ([]feast.Feast, error) {
	s, _, err := current()
	if err != nil {
		return nil, err
	}
	return s.All(), nil
}

// DatesWithFeasts returns all calendar keys with at least one feast,
// ascending.
func DatesWithFeasts() ([]datekey.Key, error) {
	s, _, err := current()
	if err != nil {
		return nil, err
	}
	return s.Keys(), nil
}

// Count returns the total number of feast records in the dataset.
func Count() (int, error) {
	s, _, err := current()
	if err != nil {
		return 0, err
	}
	return s.Count(), nil
}
