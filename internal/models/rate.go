package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateRow is one quote currency of a daily snapshot, normalized for loading.
type RateRow struct {
	CurrencyCode string          `json:"currency_code"`
	Rate         decimal.Decimal `json:"rate"`
	BaseCurrency string          `json:"base_currency"`
	Date         time.Time       `json:"date"`      // Calendar date, UTC midnight
	Timestamp    int64           `json:"timestamp"` // Epoch seconds of the snapshot
}
