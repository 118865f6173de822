// Package ics renders the feast calendar as an iCalendar document.
// Every feast becomes an all-day event in a fixed reference year with a
// yearly recurrence rule, so any calendar client shows it on the right
// day of every year. Dates come straight from the static calendar keys;
// no moveable-feast computation is involved.
package ics

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/couchcryptid/feast-calendar/datekey"
	"github.com/couchcryptid/feast-calendar/feast"
)

// referenceYear anchors the recurring events. Any non-leap year works;
// the calendar is year-agnostic and has no February 29 entries.
const referenceYear = 2001

const productID = "-//couchcryptid//feast-calendar//EN"

// Export serializes feasts into an iCalendar document. The input order
// is preserved in the output. Fails if a feast's date label does not
// normalize to a calendar key.
func Export(feasts []feast.Feast) (string, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for i, f := range feasts {
		key, err := datekey.Normalize(f.Date)
		if err != nil {
			return "", fmt.Errorf("export feast %q: %w", f.Title, err)
		}
		start := dayStart(key)

		// Index in the UID keeps co-celebrations on one day distinct.
		event := cal.AddEvent(fmt.Sprintf("%s-%d@feast-calendar", key, i))
		event.SetDtStampTime(start)
		event.SetAllDayStartAt(start)
		event.SetAllDayEndAt(start.AddDate(0, 0, 1))
		event.SetSummary(f.Title)
		if f.Description != "" {
			event.SetDescription(f.Description)
		}
		event.AddRrule("FREQ=YEARLY")
		if len(f.Tags) > 0 {
			event.SetProperty(ical.ComponentProperty(ical.PropertyCategories), strings.Join(f.Tags, ","))
		}
	}

	return cal.Serialize(), nil
}

// dayStart maps a calendar key to midnight UTC in the reference year.
func dayStart(key datekey.Key) time.Time {
	month, _ := strconv.Atoi(string(key)[:2])
	day, _ := strconv.Atoi(string(key)[3:])
	return time.Date(referenceYear, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
