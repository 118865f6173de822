package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/feast-calendar/data"
	"github.com/couchcryptid/feast-calendar/datekey"
	"github.com/couchcryptid/feast-calendar/feast"
)

func testRecords() []feast.Record {
	return []feast.Record{
		{Date: "June 26", Title: "St. Josemaria Escriva", Type: "Optional Memorial", Classification: "D", Tags: []string{"opus dei", "founder"}},
		{Date: "June 26", Title: "Sts. John and Paul", Type: "Commemoration", Classification: "E", Tags: []string{"martyr"}},
		{Date: "January 9", Title: "St. Basil the Great", Type: "Memorial", Classification: "C"},
	}
}

func TestFromRecords_Indexing(t *testing.T) {
	s, err := FromRecords(testRecords())
	require.NoError(t, err)

	t.Run("count is records, not days", func(t *testing.T) {
		assert.Equal(t, 3, s.Count())
	})

	t.Run("keys ascending", func(t *testing.T) {
		assert.Equal(t, []datekey.Key{"01-09", "06-26"}, s.Keys())
	})

	t.Run("all in calendar order, insertion order within a day", func(t *testing.T) {
		all := s.All()
		require.Len(t, all, 3)
		assert.Equal(t, "St. Basil the Great", all[0].Title)
		assert.Equal(t, "St. Josemaria Escriva", all[1].Title)
		assert.Equal(t, "Sts. John and Paul", all[2].Title)
	})

	t.Run("get co-celebration day", func(t *testing.T) {
		feasts := s.Get("06-26")
		require.Len(t, feasts, 2)
		assert.Equal(t, "St. Josemaria Escriva", feasts[0].Title)
	})

	t.Run("feast-less day is empty, not an error", func(t *testing.T) {
		feasts := s.Get("07-04")
		assert.NotNil(t, feasts)
		assert.Empty(t, feasts)
	})
}

func TestFromRecords_BadRecords(t *testing.T) {
	t.Run("empty title", func(t *testing.T) {
		_, err := FromRecords([]feast.Record{{Date: "January 1"}})
		require.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("unparsable date label", func(t *testing.T) {
		_, err := FromRecords([]feast.Record{{Date: "Smarch 1", Title: "Feast"}})
		require.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("out-of-range day", func(t *testing.T) {
		_, err := FromRecords([]feast.Record{{Date: "February 30", Title: "Feast"}})
		require.ErrorIs(t, err, ErrMalformed)
	})
}

func TestFromBytes_Malformed(t *testing.T) {
	_, err := FromBytes([]byte(`{"not":"an array"`), "test.json")
	require.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), "test.json")
}

func TestLoad_File(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "feasts.json"))
	require.NoError(t, err)

	assert.Equal(t, 4, s.Count())
	assert.Equal(t, []datekey.Key{"01-01", "01-09", "06-26"}, s.Keys())
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "no_such_file.json"))
	require.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrMalformed)
}

func TestLoad_UnreadableClassified(t *testing.T) {
	// A read failure that is not ENOENT (here: reading a directory)
	// still classifies as ErrNotFound, so every load error carries one
	// of the two sentinels.
	_, err := Load(t.TempDir())
	require.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrMalformed)
}

func TestGet_ReturnsCopies(t *testing.T) {
	s, err := FromRecords(testRecords())
	require.NoError(t, err)

	got := s.Get("01-09")
	require.Len(t, got, 1)
	got[0].Title = "mutated"

	again := s.Get("01-09")
	assert.Equal(t, "St. Basil the Great", again[0].Title)
}

func TestEmbeddedDataset_Loads(t *testing.T) {
	s, err := FromBytes(data.FeastDays, data.FeastDaysName)
	require.NoError(t, err)

	assert.Greater(t, s.Count(), 0)
	assert.LessOrEqual(t, len(s.Keys()), s.Count())

	// January 9 holds exactly one feast, St. Basil the Great.
	feasts := s.Get("01-09")
	require.Len(t, feasts, 1)
	assert.Equal(t, "St. Basil the Great", feasts[0].Title)
}
