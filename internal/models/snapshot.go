package models

import "encoding/json"

// HistoricalSnapshot is the raw body of the upstream historical endpoint for one date.
// Rates is kept raw so a malformed rates value can be told apart from an empty one.
type HistoricalSnapshot struct {
	Base      string          `json:"base"`
	Date      string          `json:"date"`
	Timestamp *int64          `json:"timestamp,omitempty"`
	Rates     json.RawMessage `json:"rates,omitempty"`
}
