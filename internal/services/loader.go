package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sbilibin2017/fx-rates-warehouse/internal/apperrors"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/logger"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/models"
)

//go:generate mockgen -source=loader.go -destination=loader_mock.go -package=services

// DateStore reads and extends the date dimension.
type DateStore interface {
	MaxDateID(ctx context.Context) (int64, error)
	FindIDsByDates(ctx context.Context, dates []time.Time) (map[string]int64, error)
	Insert(ctx context.Context, rows []models.DateDim) error
}

// CurrencyKeyReader resolves currency short codes to dimension keys.
type CurrencyKeyReader interface {
	FindIDsByShortCodes(ctx context.Context, codes []string) (map[string]int64, error)
}

// FactStore reads and extends the fact table.
type FactStore interface {
	MaxFactID(ctx context.Context) (int64, error)
	ExistingKeys(ctx context.Context, dateIDs []int64) (map[models.FactKey]struct{}, error)
	Insert(ctx context.Context, facts []models.ExchangeRateFact) error
}

// FactLoader writes transformed rate rows into the star schema.
type FactLoader struct {
	dates      DateStore
	currencies CurrencyKeyReader
	facts      FactStore
	tx         TxRunner
}

// NewFactLoader creates a new loader instance
func NewFactLoader(dates DateStore, currencies CurrencyKeyReader, facts FactStore, tx TxRunner) *FactLoader {
	return &FactLoader{
		dates:      dates,
		currencies: currencies,
		facts:      facts,
		tx:         tx,
	}
}

// Load inserts the dates and facts carried by rows in one transaction.
// New dates get keys after the current maximum in chronological order, facts whose
// currency is not in dim_currency are reported in Unmatched, and facts already stored
// are skipped so that reloading a day adds nothing.
func (l *FactLoader) Load(ctx context.Context, rows []models.RateRow) (models.LoadResult, error) {
	var result models.LoadResult
	if len(rows) == 0 {
		return result, nil
	}

	err := l.tx.WithTx(ctx, func(ctx context.Context) error {
		result = models.LoadResult{}

		dateIDs, newDateIDs, err := l.resolveDates(ctx, rows)
		if err != nil {
			return err
		}
		result.DatesInserted = len(newDateIDs)

		codes := distinctCodes(rows)
		currencyIDs, err := l.currencies.FindIDsByShortCodes(ctx, codes)
		if err != nil {
			return err
		}
		for _, code := range codes {
			if _, ok := currencyIDs[code]; !ok {
				result.Unmatched = append(result.Unmatched, code)
			}
		}

		var known []int64
		for _, id := range dateIDs {
			if _, isNew := newDateIDs[id]; !isNew {
				known = append(known, id)
			}
		}
		sort.Slice(known, func(i, j int) bool { return known[i] < known[j] })

		existing := map[models.FactKey]struct{}{}
		if len(known) > 0 {
			existing, err = l.facts.ExistingKeys(ctx, known)
			if err != nil {
				return err
			}
		}

		facts := make([]models.ExchangeRateFact, 0, len(rows))
		for _, row := range rows {
			currencyID, ok := currencyIDs[row.CurrencyCode]
			if !ok {
				continue
			}
			key := models.FactKey{
				DateID:       dateIDs[row.Date.Format(models.DateLayout)],
				CurrencyID:   currencyID,
				BaseCurrency: row.BaseCurrency,
			}
			if _, dup := existing[key]; dup {
				result.Duplicates++
				continue
			}
			existing[key] = struct{}{}

			facts = append(facts, models.ExchangeRateFact{
				DateID:       key.DateID,
				CurrencyID:   key.CurrencyID,
				Rate:         row.Rate,
				BaseCurrency: row.BaseCurrency,
				Timestamp:    row.Timestamp,
			})
		}
		if len(facts) == 0 {
			return nil
		}

		maxFactID, err := l.facts.MaxFactID(ctx)
		if err != nil {
			return err
		}
		for i := range facts {
			facts[i].FactID = maxFactID + int64(i) + 1
		}
		if err := l.facts.Insert(ctx, facts); err != nil {
			return err
		}
		result.FactsInserted = len(facts)
		return nil
	})
	if err != nil {
		return models.LoadResult{}, fmt.Errorf("load facts: %w", err)
	}

	if len(result.Unmatched) > 0 {
		logger.Log.Warnw("unmatched currencies excluded from load",
			"currencies", result.Unmatched,
			"error", apperrors.ErrReconciliation,
		)
	}
	logger.Log.Infow("facts loaded",
		"dates_inserted", result.DatesInserted,
		"facts_inserted", result.FactsInserted,
		"duplicates", result.Duplicates,
	)

	return result, nil
}

// resolveDates returns date_id by calendar date for every row date, inserting the
// dates not yet in dim_date. newIDs holds the keys assigned by this call.
func (l *FactLoader) resolveDates(ctx context.Context, rows []models.RateRow) (map[string]int64, map[int64]struct{}, error) {
	seen := make(map[string]time.Time)
	for _, row := range rows {
		d := models.CalendarDate(row.Date)
		seen[d.Format(models.DateLayout)] = d
	}
	dates := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	ids, err := l.dates.FindIDsByDates(ctx, dates)
	if err != nil {
		return nil, nil, err
	}

	var missing []time.Time
	for _, d := range dates {
		if _, ok := ids[d.Format(models.DateLayout)]; !ok {
			missing = append(missing, d)
		}
	}

	newIDs := make(map[int64]struct{}, len(missing))
	if len(missing) == 0 {
		return ids, newIDs, nil
	}

	maxID, err := l.dates.MaxDateID(ctx)
	if err != nil {
		return nil, nil, err
	}
	dims := make([]models.DateDim, len(missing))
	for i, d := range missing {
		id := maxID + int64(i) + 1
		dims[i] = models.NewDateDim(id, d)
		ids[d.Format(models.DateLayout)] = id
		newIDs[id] = struct{}{}
	}
	if err := l.dates.Insert(ctx, dims); err != nil {
		return nil, nil, err
	}

	return ids, newIDs, nil
}

func distinctCodes(rows []models.RateRow) []string {
	seen := make(map[string]struct{}, len(rows))
	codes := make([]string, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.CurrencyCode]; ok {
			continue
		}
		seen[row.CurrencyCode] = struct{}{}
		codes = append(codes, row.CurrencyCode)
	}
	sort.Strings(codes)
	return codes
}
