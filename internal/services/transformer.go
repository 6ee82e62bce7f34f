package services

import (
	"bytes"
	"encoding/json"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/fx-rates-warehouse/internal/apperrors"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/logger"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/models"
)

// Transformer flattens a daily snapshot into one row per quote currency.
type Transformer struct {
	base string
	now  func() time.Time
}

// NewTransformer creates a transformer. base is used when a snapshot does not name its base
// currency, and now supplies the timestamp of snapshots that carry none.
func NewTransformer(base string, now func() time.Time) *Transformer {
	if now == nil {
		now = time.Now
	}
	return &Transformer{base: base, now: now}
}

// Transform returns the rows of raw sorted by currency code. A snapshot without rates
// yields no rows. Rows are dated with the snapshot date, or with requested when the
// snapshot date is missing.
func (t *Transformer) Transform(raw *models.HistoricalSnapshot, requested time.Time) []models.RateRow {
	if raw == nil {
		logger.Log.Warnw("no rates in snapshot", "date", requested.Format(models.DateLayout), "error", apperrors.ErrDataShape)
		return nil
	}

	rates, ok := decodeRates(raw.Rates)
	if !ok {
		logger.Log.Warnw("rates is not an object",
			"date", requested.Format(models.DateLayout),
			"error", apperrors.ErrDataShape,
		)
		return nil
	}
	if len(rates) == 0 {
		logger.Log.Warnw("no rates in snapshot", "date", requested.Format(models.DateLayout), "error", apperrors.ErrDataShape)
		return nil
	}

	date, err := parseSnapshotDate(raw.Date)
	if err != nil {
		date = models.CalendarDate(requested)
		logger.Log.Warnw("snapshot date missing or invalid, using requested date",
			"raw_date", raw.Date,
			"date", date.Format(models.DateLayout),
		)
	}

	var ts int64
	if raw.Timestamp != nil {
		ts = *raw.Timestamp
	} else {
		ts = t.now().Unix()
	}

	base := raw.Base
	if base == "" {
		base = t.base
	}

	codes := make([]string, 0, len(rates))
	for code := range rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	rows := make([]models.RateRow, 0, len(codes))
	for _, code := range codes {
		rate, err := parseRate(rates[code])
		if err != nil {
			logger.Log.Warnw("skipping unparsable rate",
				"currency", code,
				"value", string(rates[code]),
				"error", err,
			)
			continue
		}
		rows = append(rows, models.RateRow{
			CurrencyCode: code,
			Rate:         rate,
			BaseCurrency: base,
			Date:         date,
			Timestamp:    ts,
		})
	}

	return rows
}

// decodeRates reports false when rates is present but not a JSON object.
func decodeRates(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, true
	}
	var rates map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &rates); err != nil {
		return nil, false
	}
	return rates, true
}

func parseRate(raw json.RawMessage) (decimal.Decimal, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return decimal.NewFromString(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromString(n.String())
}

func parseSnapshotDate(s string) (time.Time, error) {
	if d, err := time.Parse(models.DateLayout, s); err == nil {
		return d, nil
	}
	d, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return models.CalendarDate(d), nil
}
