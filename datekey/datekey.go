// Package datekey normalizes heterogeneous human date input into the
// canonical "MM-DD" calendar key used to index the feast dataset.
//
// The calendar is year-agnostic: years in the input are accepted and
// ignored, and day-of-month validation uses non-leap month lengths
// (February has 28 days).
package datekey

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Key is a canonical zero-padded "MM-DD" calendar key.
type Key string

func (k Key) String() string { return string(k) }

var (
	// numericRe matches strict numeric input, e.g. "01-09" or "1-9".
	// Numeric input is always month-first; "01-09" is never read as
	// the 1st of September. This is a fixed policy, not locale-derived.
	numericRe = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})$`)

	// monthFirstRe matches "Month Day[suffix] [Year]", e.g. "Jan 9",
	// "January 9th 2024". The ordinal suffix is accepted without
	// grammar checking ("2th" parses like "2nd").
	monthFirstRe = regexp.MustCompile(`(?i)^([a-z]+)\.?\s+(\d{1,2})(?:st|nd|rd|th)?(?:\s+(\d{4}))?$`)

	// dayFirstRe matches "Day[suffix] Month [Year]", e.g. "9 January",
	// "9th Jan 2024".
	dayFirstRe = regexp.MustCompile(`(?i)^(\d{1,2})(?:st|nd|rd|th)?\s+([a-z]+)\.?(?:\s+(\d{4}))?$`)

	// spaceRe collapses runs of inner whitespace before matching.
	spaceRe = regexp.MustCompile(`\s+`)
)

// daysInMonth holds non-leap month lengths, January first.
var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// monthNames maps lowercase full English month names to month numbers.
var monthNames = map[string]int{
	"january": 1, "february": 2, "march": 3, "april": 4,
	"may": 5, "june": 6, "july": 7, "august": 8,
	"september": 9, "october": 10, "november": 11, "december": 12,
}

// ParseError reports date input that matched no supported format or
// resolved to an invalid calendar day. It retains the original input
// for caller diagnostics.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse date %q: %s", e.Input, e.Reason)
}

// normalizeCache memoizes successful normalizations. Date strings repeat
// heavily in practice (the same few feast-day spellings), so repeated
// regexp work is avoided for hot inputs. Failures are not cached.
var normalizeCache = newLRUCache(256)

// Normalize converts a date string to its canonical Key.
//
// Format families are tried in order, first match wins:
//  1. strict numeric "MM-DD"
//  2. "Month Day[suffix] [Year]"
//  3. "Day[suffix] Month [Year]"
//
// Month names are case-insensitive; full names and unambiguous
// abbreviations of at least three letters are recognized. A trailing
// 4-digit year is ignored. Returns *ParseError on failure.
func Normalize(input string) (Key, error) {
	s := spaceRe.ReplaceAllString(strings.TrimSpace(input), " ")

	if key, ok := normalizeCache.get(s); ok {
		return key, nil
	}

	key, err := normalize(input, s)
	if err != nil {
		return "", err
	}
	normalizeCache.put(s, key)
	return key, nil
}

func normalize(original, s string) (Key, error) {
	if m := numericRe.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		return makeKey(original, month, day)
	}

	if m := monthFirstRe.FindStringSubmatch(s); m != nil {
		month, err := resolveMonth(original, m[1])
		if err != nil {
			return "", err
		}
		day, _ := strconv.Atoi(m[2])
		return makeKey(original, month, day)
	}

	if m := dayFirstRe.FindStringSubmatch(s); m != nil {
		month, err := resolveMonth(original, m[2])
		if err != nil {
			return "", err
		}
		day, _ := strconv.Atoi(m[1])
		return makeKey(original, month, day)
	}

	return "", &ParseError{Input: original, Reason: "unsupported date format"}
}

// FromTime extracts the calendar key from a structured time value.
// The year is ignored; FromTime never fails.
func FromTime(t time.Time) Key {
	return Key(fmt.Sprintf("%02d-%02d", int(t.Month()), t.Day()))
}

// makeKey validates the month/day pair and renders the canonical key.
func makeKey(input string, month, day int) (Key, error) {
	if month < 1 || month > 12 {
		return "", &ParseError{Input: input, Reason: fmt.Sprintf("month %d out of range", month)}
	}
	if max := daysInMonth[month-1]; day < 1 || day > max {
		return "", &ParseError{Input: input, Reason: fmt.Sprintf("day %d out of range for month %d", day, month)}
	}
	return Key(fmt.Sprintf("%02d-%02d", month, day)), nil
}

// resolveMonth maps a month name or abbreviation to its number.
// Abbreviations need at least three letters and must be an unambiguous
// prefix of exactly one month name ("sep" and "sept" both resolve to 9).
func resolveMonth(input, name string) (int, error) {
	name = strings.ToLower(name)

	if m, ok := monthNames[name]; ok {
		return m, nil
	}

	if len(name) >= 3 {
		found := 0
		month := 0
		for full, m := range monthNames {
			if strings.HasPrefix(full, name) {
				found++
				month = m
			}
		}
		if found == 1 {
			return month, nil
		}
	}

	return 0, &ParseError{Input: input, Reason: fmt.Sprintf("unrecognized month name %q", name)}
}
