package ics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/feast-calendar/feast"
)

func TestExport(t *testing.T) {
	feasts := []feast.Feast{
		{Date: "January 9", Title: "St. Basil the Great", Description: "Doctor of the Church.", Type: "Memorial", Tags: []string{"bishop", "doctor of the church"}},
		{Date: "June 26", Title: "St. Josemaria Escriva", Type: "Optional Memorial", Tags: []string{"opus dei"}},
		{Date: "June 26", Title: "Sts. John and Paul", Type: "Commemoration"},
	}

	out, err := Export(feasts)
	require.NoError(t, err)

	t.Run("calendar envelope", func(t *testing.T) {
		assert.Contains(t, out, "BEGIN:VCALENDAR")
		assert.Contains(t, out, "END:VCALENDAR")
		assert.Contains(t, out, "METHOD:PUBLISH")
	})

	t.Run("one event per feast", func(t *testing.T) {
		assert.Equal(t, 3, strings.Count(out, "BEGIN:VEVENT"))
	})

	t.Run("all-day start in reference year", func(t *testing.T) {
		assert.Contains(t, out, "20010109")
		assert.Contains(t, out, "20010626")
	})

	t.Run("yearly recurrence", func(t *testing.T) {
		assert.Equal(t, 3, strings.Count(out, "RRULE:FREQ=YEARLY"))
	})

	t.Run("summaries", func(t *testing.T) {
		assert.Contains(t, out, "SUMMARY:St. Basil the Great")
		assert.Contains(t, out, "SUMMARY:Sts. John and Paul")
	})

	t.Run("tags become categories", func(t *testing.T) {
		assert.Contains(t, out, "CATEGORIES:opus dei")
	})

	t.Run("distinct UIDs for co-celebrations", func(t *testing.T) {
		assert.Contains(t, out, "06-26-1@feast-calendar")
		assert.Contains(t, out, "06-26-2@feast-calendar")
	})
}

func TestExport_BadDateLabel(t *testing.T) {
	_, err := Export([]feast.Feast{{Date: "Smarch 13", Title: "Nonsense"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Nonsense")
}

func TestExport_Empty(t *testing.T) {
	out, err := Export(nil)
	require.NoError(t, err)
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.NotContains(t, out, "BEGIN:VEVENT")
}
