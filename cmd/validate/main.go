// Command validate performs integrity checks on a feast dataset file:
// it decodes the JSON, validates every record (title presence, date
// label normalization, classification shape, tag hygiene), and reports
// calendar statistics including co-celebration days.
//
// Usage:
//
//	go run ./cmd/validate -dataset data/feast_days.json
//
// With no -dataset flag the embedded default dataset is checked.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/couchcryptid/feast-calendar/data"
	"github.com/couchcryptid/feast-calendar/datekey"
	"github.com/couchcryptid/feast-calendar/feast"
	"github.com/couchcryptid/feast-calendar/store"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	dataset := flag.String("dataset", "", "path to a feast dataset JSON file (default: embedded dataset)")
	flag.Parse()

	if code := run(*dataset); code != 0 {
		os.Exit(code)
	}
}

func run(path string) int {
	fmt.Println("=== Feast Dataset Validation ===")
	fmt.Println()

	raw, name, err := readDataset(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: read dataset: %v\n", err)
		return 1
	}

	var records []feast.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: decode %s: %v\n", name, err)
		return 1
	}

	phases := []*phase{
		validateRecords(records),
		validateStore(records),
	}

	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-32s %s\n", p.name, status)
	}

	fmt.Println()
	reportStats(name, records)

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  %3d. %s\n", i+1, e)
		}
	}

	if !allPassed {
		return 1
	}
	return 0
}

func readDataset(path string) ([]byte, string, error) {
	if path == "" {
		return data.FeastDays, data.FeastDaysName, nil
	}
	raw, err := os.ReadFile(path)
	return raw, path, err
}

// validateRecords checks each record in isolation.
func validateRecords(records []feast.Record) *phase {
	p := &phase{name: "record validation"}

	for i, r := range records {
		if r.Title == "" {
			p.errorf("record %d: empty title", i)
		}
		if _, err := datekey.Normalize(r.Date); err != nil {
			p.errorf("record %d (%q): %v", i, r.Title, err)
		}
		if len(r.Classification) != 1 || r.Classification[0] < 'A' || r.Classification[0] > 'E' {
			p.errorf("record %d (%q): classification %q is not a single letter A-E", i, r.Title, r.Classification)
		}
		if r.Type == "" {
			p.errorf("record %d (%q): empty type", i, r.Title)
		}
		for j, tag := range r.Tags {
			if tag == "" {
				p.errorf("record %d (%q): tag %d is empty", i, r.Title, j)
			}
		}

		f, err := feast.FromRecord(r)
		if err != nil {
			continue
		}
		if back := f.ToRecord(); !mustFromRecord(back).Equal(f) {
			p.errorf("record %d (%q): record round-trip is not the identity", i, r.Title)
		}
	}

	return p
}

// validateStore checks that the records build a coherent store.
func validateStore(records []feast.Record) *phase {
	p := &phase{name: "store construction"}

	s, err := store.FromRecords(records)
	if err != nil {
		p.errorf("build store: %v", err)
		return p
	}

	if s.Count() != len(records) {
		p.errorf("store has %d feasts, dataset has %d records", s.Count(), len(records))
	}
	if len(s.Keys()) > s.Count() {
		p.errorf("store has more keys (%d) than feasts (%d)", len(s.Keys()), s.Count())
	}

	for _, key := range s.Keys() {
		if len(s.Get(key)) == 0 {
			p.errorf("key %s is listed but has no feasts", key)
		}
	}

	return p
}

func reportStats(name string, records []feast.Record) {
	s, err := store.FromRecords(records)
	if err != nil {
		fmt.Printf("Dataset: %s, %d records (store unavailable)\n", name, len(records))
		return
	}

	fmt.Printf("Dataset: %s\n", name)
	fmt.Printf("Records: %d feasts across %d days\n", s.Count(), len(s.Keys()))

	perMonth := make(map[string]int)
	for _, key := range s.Keys() {
		perMonth[string(key)[:2]] += len(s.Get(key))
	}
	fmt.Print("Per month:")
	for m := 1; m <= 12; m++ {
		fmt.Printf(" %02d:%d", m, perMonth[fmt.Sprintf("%02d", m)])
	}
	fmt.Println()

	for _, key := range s.Keys() {
		if feasts := s.Get(key); len(feasts) > 1 {
			fmt.Printf("Co-celebration on %s: %d feasts\n", key, len(feasts))
		}
	}
}

func mustFromRecord(r feast.Record) feast.Feast {
	f, err := feast.FromRecord(r)
	if err != nil {
		panic(err)
	}
	return f
}
