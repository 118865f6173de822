// Package data ships the default feast dataset embedded in the binary,
// used when no external dataset path is configured.
package data

import _ "embed"

// FeastDays is the embedded default dataset: a JSON array of feast
// records covering the fixed-date sample of the Roman calendar.
//
//go:embed feast_days.json
var FeastDays []byte

// FeastDaysName labels the embedded dataset in error messages.
const FeastDaysName = "embedded:feast_days.json"
