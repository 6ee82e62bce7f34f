package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/fx-rates-warehouse/internal/models"
)

func TestTransformer_Transform(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	requested := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	ts := int64(1577836800)

	tests := []struct {
		name     string
		raw      *models.HistoricalSnapshot
		expected []models.RateRow
	}{
		{
			name:     "nil_snapshot",
			raw:      nil,
			expected: nil,
		},
		{
			name:     "rates_absent",
			raw:      &models.HistoricalSnapshot{Base: "USD", Date: "2020-01-01"},
			expected: nil,
		},
		{
			name:     "rates_empty",
			raw:      &models.HistoricalSnapshot{Base: "USD", Date: "2020-01-01", Rates: json.RawMessage(`{}`)},
			expected: nil,
		},
		{
			name:     "rates_not_an_object",
			raw:      &models.HistoricalSnapshot{Base: "USD", Date: "2020-01-01", Rates: json.RawMessage(`[1,2]`)},
			expected: nil,
		},
		{
			name: "rows_sorted_by_code",
			raw: &models.HistoricalSnapshot{
				Base:      "USD",
				Date:      "2020-01-01",
				Timestamp: &ts,
				Rates:     json.RawMessage(`{"JPY":108.5,"EUR":0.89,"GBP":"0.75"}`),
			},
			expected: []models.RateRow{
				{CurrencyCode: "EUR", Rate: decimal.RequireFromString("0.89"), BaseCurrency: "USD", Date: requested, Timestamp: ts},
				{CurrencyCode: "GBP", Rate: decimal.RequireFromString("0.75"), BaseCurrency: "USD", Date: requested, Timestamp: ts},
				{CurrencyCode: "JPY", Rate: decimal.RequireFromString("108.5"), BaseCurrency: "USD", Date: requested, Timestamp: ts},
			},
		},
		{
			name: "missing_date_uses_requested_and_missing_timestamp_uses_now",
			raw: &models.HistoricalSnapshot{
				Base:  "USD",
				Rates: json.RawMessage(`{"EUR":0.89}`),
			},
			expected: []models.RateRow{
				{CurrencyCode: "EUR", Rate: decimal.RequireFromString("0.89"), BaseCurrency: "USD", Date: requested, Timestamp: now.Unix()},
			},
		},
		{
			name: "rfc3339_date_truncated_and_default_base",
			raw: &models.HistoricalSnapshot{
				Date:      "2020-01-01T23:59:59Z",
				Timestamp: &ts,
				Rates:     json.RawMessage(`{"EUR":0.89}`),
			},
			expected: []models.RateRow{
				{CurrencyCode: "EUR", Rate: decimal.RequireFromString("0.89"), BaseCurrency: "USD", Date: requested, Timestamp: ts},
			},
		},
		{
			name: "unparsable_rate_skipped",
			raw: &models.HistoricalSnapshot{
				Base:      "USD",
				Date:      "2020-01-01",
				Timestamp: &ts,
				Rates:     json.RawMessage(`{"EUR":0.89,"XXX":null,"YYY":"n/a"}`),
			},
			expected: []models.RateRow{
				{CurrencyCode: "EUR", Rate: decimal.RequireFromString("0.89"), BaseCurrency: "USD", Date: requested, Timestamp: ts},
			},
		},
	}

	transformer := NewTransformer("USD", func() time.Time { return now })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := transformer.Transform(tt.raw, requested)
			require.Len(t, rows, len(tt.expected))
			for i := range tt.expected {
				assert.Equal(t, tt.expected[i].CurrencyCode, rows[i].CurrencyCode)
				assert.True(t, tt.expected[i].Rate.Equal(rows[i].Rate), "rate of %s", rows[i].CurrencyCode)
				assert.Equal(t, tt.expected[i].BaseCurrency, rows[i].BaseCurrency)
				assert.True(t, tt.expected[i].Date.Equal(rows[i].Date))
				assert.Equal(t, tt.expected[i].Timestamp, rows[i].Timestamp)
			}
		})
	}
}

func TestTransformer_SnapshotDateWins(t *testing.T) {
	transformer := NewTransformer("USD", nil)
	raw := &models.HistoricalSnapshot{Base: "USD", Date: "2019-12-31", Rates: json.RawMessage(`{"EUR":1}`)}

	rows := transformer.Transform(raw, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	require.Len(t, rows, 1)
	assert.Equal(t, "2019-12-31", rows[0].Date.Format(models.DateLayout))
}
