package feast

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var basilRecord = Record{
	Date:           "January 9",
	Title:          "St. Basil the Great",
	Description:    "Bishop of Caesarea, Doctor of the Church.",
	Color:          "White",
	Type:           "Memorial",
	Classification: "C",
	Tags:           []string{"bishop", "doctor of the church"},
}

func TestFromRecord_ToRecord_Identity(t *testing.T) {
	f, err := FromRecord(basilRecord)
	require.NoError(t, err)

	back := f.ToRecord()
	assert.Equal(t, basilRecord, back)
}

func TestFromRecord_EmptyTitle(t *testing.T) {
	r := basilRecord
	r.Title = ""

	_, err := FromRecord(r)
	require.ErrorIs(t, err, ErrEmptyTitle)
}

func TestFromRecord_CopiesTags(t *testing.T) {
	r := basilRecord
	r.Tags = []string{"bishop"}

	f, err := FromRecord(r)
	require.NoError(t, err)

	r.Tags[0] = "mutated"
	assert.Equal(t, []string{"bishop"}, f.Tags)
}

func TestFromRecord_EmptyOptionalFields(t *testing.T) {
	f, err := FromRecord(Record{Date: "July 4", Title: "Test Feast"})
	require.NoError(t, err)

	assert.Empty(t, f.Description)
	assert.Empty(t, f.Color)
	assert.Empty(t, f.Tags)
}

func TestEqual(t *testing.T) {
	a, err := FromRecord(basilRecord)
	require.NoError(t, err)
	b, err := FromRecord(basilRecord)
	require.NoError(t, err)

	t.Run("structural equality", func(t *testing.T) {
		assert.True(t, a.Equal(b))
	})

	t.Run("differs on title", func(t *testing.T) {
		c := b
		c.Title = "St. Gregory Nazianzen"
		assert.False(t, a.Equal(c))
	})

	t.Run("differs on tag order", func(t *testing.T) {
		c := b
		c.Tags = []string{"doctor of the church", "bishop"}
		assert.False(t, a.Equal(c))
	})
}

func TestRecord_JSONFieldNames(t *testing.T) {
	out, err := json.Marshal(basilRecord)
	require.NoError(t, err)

	for _, field := range []string{
		`"date"`, `"title"`, `"description"`, `"color"`,
		`"type"`, `"classification"`, `"tags"`,
	} {
		assert.Contains(t, string(out), field)
	}
}
