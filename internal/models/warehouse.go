package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used by the upstream API and warehouse keys.
const DateLayout = "2006-01-02"

// DateDim represents a dim_date row
type DateDim struct {
	DateID int64     `db:"date_id"`
	Date   time.Time `db:"date"`
	Year   int       `db:"year"`
	Month  int       `db:"month"`
	Day    int       `db:"day"`
}

// NewDateDim decomposes a calendar date into a dim_date row with the given key.
func NewDateDim(id int64, date time.Time) DateDim {
	return DateDim{
		DateID: id,
		Date:   date,
		Year:   date.Year(),
		Month:  int(date.Month()),
		Day:    date.Day(),
	}
}

// ExchangeRateFact represents a fact_exchange_rate row
type ExchangeRateFact struct {
	FactID       int64           `db:"fact_id"`
	DateID       int64           `db:"date_id"`
	CurrencyID   int64           `db:"currency_id"`
	Rate         decimal.Decimal `db:"rate"`
	BaseCurrency string          `db:"base_currency"`
	Timestamp    int64           `db:"timestamp"`
}

// FactKey identifies a fact by its natural key.
type FactKey struct {
	DateID       int64  `db:"date_id"`
	CurrencyID   int64  `db:"currency_id"`
	BaseCurrency string `db:"base_currency"`
}

// ColumnSpec describes a column to add to a warehouse table.
type ColumnSpec struct {
	Name string
	Type string // Empty means TEXT
}

// CalendarDate truncates t to midnight UTC of its calendar day.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
