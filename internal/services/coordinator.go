package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/fx-rates-warehouse/internal/logger"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/models"
)

//go:generate mockgen -source=coordinator.go -destination=coordinator_mock.go -package=services

// SchemaEnsurer creates the warehouse tables when they are missing.
type SchemaEnsurer interface {
	EnsureSchema(ctx context.Context) error
}

// CurrencyCounter counts rows of the currency dimension.
type CurrencyCounter interface {
	Count(ctx context.Context) (int64, error)
}

// CurrencyRefresher reloads the currency dimension from upstream.
type CurrencyRefresher interface {
	RefreshCurrencies(ctx context.Context) (int, error)
}

// DateCursor returns the latest loaded calendar date, or nil for an empty warehouse.
type DateCursor interface {
	MaxDate(ctx context.Context) (*time.Time, error)
}

// SnapshotFetcher returns the raw snapshot for a day.
type SnapshotFetcher interface {
	Fetch(ctx context.Context, date time.Time) (*models.HistoricalSnapshot, error)
}

// RateTransformer turns a snapshot into rate rows.
type RateTransformer interface {
	Transform(raw *models.HistoricalSnapshot, requested time.Time) []models.RateRow
}

// RateLoader writes rate rows into the warehouse.
type RateLoader interface {
	Load(ctx context.Context, rows []models.RateRow) (models.LoadResult, error)
}

// LoadEventPublisher announces a loaded day.
type LoadEventPublisher interface {
	Publish(ctx context.Context, event models.LoadEvent) error
}

// RunObserver records per-day and per-run outcomes.
type RunObserver interface {
	ObserveDay(date time.Time, result models.LoadResult, err error, duration time.Duration)
	ObserveRun(summary models.RunSummary)
}

// CoordinatorConfig holds the run settings of a Coordinator.
type CoordinatorConfig struct {
	BaseCurrency       string
	InitialStartDate   time.Time
	AlwaysRefreshCodes bool
}

// Coordinator drives an incremental run: it resumes after the last loaded date
// and loads every day up to yesterday, one day at a time.
type Coordinator struct {
	cfg       CoordinatorConfig
	schema    SchemaEnsurer
	counter   CurrencyCounter
	refresher CurrencyRefresher
	cursor    DateCursor
	fetcher   SnapshotFetcher
	transform RateTransformer
	loader    RateLoader
	publisher LoadEventPublisher
	observer  RunObserver
	now       func() time.Time
}

// NewCoordinator creates a coordinator. publisher and observer may be nil.
func NewCoordinator(
	cfg CoordinatorConfig,
	schema SchemaEnsurer,
	counter CurrencyCounter,
	refresher CurrencyRefresher,
	cursor DateCursor,
	fetcher SnapshotFetcher,
	transform RateTransformer,
	loader RateLoader,
	publisher LoadEventPublisher,
	observer RunObserver,
	now func() time.Time,
) *Coordinator {
	if now == nil {
		now = time.Now
	}
	return &Coordinator{
		cfg:       cfg,
		schema:    schema,
		counter:   counter,
		refresher: refresher,
		cursor:    cursor,
		fetcher:   fetcher,
		transform: transform,
		loader:    loader,
		publisher: publisher,
		observer:  observer,
		now:       now,
	}
}

// Run executes one incremental load. It returns an error only when the run cannot
// proceed at all: the schema cannot be ensured or the cursor cannot be read.
// Failures of a single day are logged and the run moves on to the next day.
func (c *Coordinator) Run(ctx context.Context) (models.RunSummary, error) {
	summary := models.RunSummary{RunID: uuid.NewString()}
	log := logger.Log.With("run_id", summary.RunID)

	if err := c.schema.EnsureSchema(ctx); err != nil {
		return summary, fmt.Errorf("ensure schema: %w", err)
	}

	c.refreshCurrenciesIfNeeded(ctx)

	start, err := c.DetermineStart(ctx)
	if err != nil {
		return summary, err
	}
	yesterday := models.CalendarDate(c.now().UTC()).AddDate(0, 0, -1)
	summary.Start = start
	summary.End = yesterday

	dates := PendingDates(start, yesterday)
	if len(dates) == 0 {
		log.Infow("no new data to load, already up to date",
			"start", start.Format(models.DateLayout),
			"yesterday", yesterday.Format(models.DateLayout),
		)
		c.observeRun(summary)
		return summary, nil
	}
	log.Infow("incremental load started",
		"start", start.Format(models.DateLayout),
		"end", yesterday.Format(models.DateLayout),
		"days", len(dates),
	)

	unmatched := make(map[string]struct{})
	for _, date := range dates {
		if err := ctx.Err(); err != nil {
			log.Warnw("run interrupted, stopping before next day",
				"next_date", date.Format(models.DateLayout),
				"error", err,
			)
			break
		}

		summary.DaysAttempted++
		result, err := c.loadDay(ctx, summary.RunID, date)
		switch {
		case err != nil:
			summary.DaysFailed++
			log.Errorw("failed to load day", "date", date.Format(models.DateLayout), "error", err)
		case result == nil:
			summary.DaysEmpty++
		default:
			summary.FactsInserted += result.FactsInserted
			for _, code := range result.Unmatched {
				unmatched[code] = struct{}{}
			}
		}
	}

	for code := range unmatched {
		summary.Unmatched = append(summary.Unmatched, code)
	}
	sort.Strings(summary.Unmatched)

	log.Infow("incremental load finished",
		"days_attempted", summary.DaysAttempted,
		"days_failed", summary.DaysFailed,
		"days_empty", summary.DaysEmpty,
		"facts_inserted", summary.FactsInserted,
		"unmatched", summary.Unmatched,
	)
	c.observeRun(summary)
	return summary, nil
}

// DetermineStart returns the day after the last loaded date, or the initial start
// date when the warehouse holds no dates.
func (c *Coordinator) DetermineStart(ctx context.Context) (time.Time, error) {
	maxDate, err := c.cursor.MaxDate(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("determine start date: %w", err)
	}
	if maxDate == nil {
		logger.Log.Infow("warehouse is empty, starting from initial date",
			"start", c.cfg.InitialStartDate.Format(models.DateLayout),
		)
		return models.CalendarDate(c.cfg.InitialStartDate), nil
	}
	return models.CalendarDate(*maxDate).AddDate(0, 0, 1), nil
}

// PendingDates lists every calendar day from start to end inclusive, ascending.
// It is empty when start is after end.
func PendingDates(start, end time.Time) []time.Time {
	start = models.CalendarDate(start)
	end = models.CalendarDate(end)

	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

func (c *Coordinator) refreshCurrenciesIfNeeded(ctx context.Context) {
	if !c.cfg.AlwaysRefreshCodes {
		count, err := c.counter.Count(ctx)
		if err != nil {
			logger.Log.Errorw("failed to count currencies, continuing without refresh", "error", err)
			return
		}
		if count > 0 {
			logger.Log.Infow("currency dimension already populated", "count", count)
			return
		}
	}

	n, err := c.refresher.RefreshCurrencies(ctx)
	if err != nil {
		logger.Log.Errorw("currency refresh failed, continuing", "error", err)
		return
	}
	logger.Log.Infow("currency dimension refreshed", "count", n)
}

// loadDay fetches, transforms and loads one day. A nil result means the day had no rates.
func (c *Coordinator) loadDay(ctx context.Context, runID string, date time.Time) (result *models.LoadResult, err error) {
	started := time.Now()
	defer func() {
		if c.observer == nil {
			return
		}
		var observed models.LoadResult
		if result != nil {
			observed = *result
		}
		c.observer.ObserveDay(date, observed, err, time.Since(started))
	}()

	logger.Log.Infow("fetching historical data", "date", date.Format(models.DateLayout))

	snapshot, err := c.fetcher.Fetch(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", date.Format(models.DateLayout), err)
	}

	rows := c.transform.Transform(snapshot, date)
	if len(rows) == 0 {
		logger.Log.Warnw("no data for date, skipping", "date", date.Format(models.DateLayout))
		return nil, nil
	}

	loaded, err := c.loader.Load(ctx, rows)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", date.Format(models.DateLayout), err)
	}

	if c.publisher != nil && loaded.FactsInserted > 0 {
		event := models.LoadEvent{
			RunID:         runID,
			Date:          date.Format(models.DateLayout),
			BaseCurrency:  rows[0].BaseCurrency,
			DatesInserted: loaded.DatesInserted,
			FactsInserted: loaded.FactsInserted,
			Unmatched:     loaded.Unmatched,
			LoadedAt:      c.now().Unix(),
		}
		if err := c.publisher.Publish(ctx, event); err != nil {
			logger.Log.Warnw("load event not published", "date", event.Date, "error", err)
		}
	}

	return &loaded, nil
}

func (c *Coordinator) observeRun(summary models.RunSummary) {
	if c.observer != nil {
		c.observer.ObserveRun(summary)
	}
}
