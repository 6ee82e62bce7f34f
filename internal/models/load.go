package models

import "time"

// LoadResult summarizes one fact load batch.
type LoadResult struct {
	DatesInserted int      `json:"dates_inserted"`
	FactsInserted int      `json:"facts_inserted"`
	Duplicates    int      `json:"duplicates"` // Facts already present and skipped
	Unmatched     []string `json:"unmatched"`  // Quote codes absent from dim_currency
}

// LoadEvent is published after a day has been loaded into the warehouse.
type LoadEvent struct {
	RunID         string   `json:"run_id"`
	Date          string   `json:"date"`
	BaseCurrency  string   `json:"base_currency"`
	DatesInserted int      `json:"dates_inserted"`
	FactsInserted int      `json:"facts_inserted"`
	Unmatched     []string `json:"unmatched,omitempty"`
	LoadedAt      int64    `json:"loaded_at"`
}

// RunSummary describes the outcome of one incremental run.
type RunSummary struct {
	RunID         string
	Start         time.Time
	End           time.Time
	DaysAttempted int
	DaysFailed    int
	DaysEmpty     int
	FactsInserted int
	Unmatched     []string
}
