package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/fx-rates-warehouse/internal/apperrors"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/models"
)

type coordinatorMocks struct {
	schema    *MockSchemaEnsurer
	counter   *MockCurrencyCounter
	refresher *MockCurrencyRefresher
	cursor    *MockDateCursor
	fetcher   *MockSnapshotFetcher
	transform *MockRateTransformer
	loader    *MockRateLoader
	publisher *MockLoadEventPublisher
	observer  *MockRunObserver
}

func newCoordinatorMocks(ctrl *gomock.Controller) *coordinatorMocks {
	return &coordinatorMocks{
		schema:    NewMockSchemaEnsurer(ctrl),
		counter:   NewMockCurrencyCounter(ctrl),
		refresher: NewMockCurrencyRefresher(ctrl),
		cursor:    NewMockDateCursor(ctrl),
		fetcher:   NewMockSnapshotFetcher(ctrl),
		transform: NewMockRateTransformer(ctrl),
		loader:    NewMockRateLoader(ctrl),
		publisher: NewMockLoadEventPublisher(ctrl),
		observer:  NewMockRunObserver(ctrl),
	}
}

func (m *coordinatorMocks) coordinator(cfg CoordinatorConfig, now time.Time) *Coordinator {
	return NewCoordinator(cfg, m.schema, m.counter, m.refresher, m.cursor, m.fetcher,
		m.transform, m.loader, m.publisher, m.observer, func() time.Time { return now })
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPendingDates(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected []time.Time
	}{
		{
			name:     "start_after_end",
			start:    date(2024, 1, 5),
			end:      date(2024, 1, 4),
			expected: nil,
		},
		{
			name:     "single_day",
			start:    date(2024, 1, 4),
			end:      date(2024, 1, 4),
			expected: []time.Time{date(2024, 1, 4)},
		},
		{
			name:     "across_month_end",
			start:    date(2024, 2, 28),
			end:      date(2024, 3, 1),
			expected: []time.Time{date(2024, 2, 28), date(2024, 2, 29), date(2024, 3, 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PendingDates(tt.start, tt.end))
		})
	}
}

func TestCoordinator_DetermineStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := CoordinatorConfig{BaseCurrency: "USD", InitialStartDate: date(1996, 1, 1)}

	t.Run("empty_warehouse_uses_initial_date", func(t *testing.T) {
		m := newCoordinatorMocks(ctrl)
		m.cursor.EXPECT().MaxDate(ctx).Return(nil, nil)

		start, err := m.coordinator(cfg, time.Now()).DetermineStart(ctx)
		require.NoError(t, err)
		assert.Equal(t, date(1996, 1, 1), start)
	})

	t.Run("resumes_after_last_loaded_date", func(t *testing.T) {
		m := newCoordinatorMocks(ctrl)
		last := date(2024, 3, 10)
		m.cursor.EXPECT().MaxDate(ctx).Return(&last, nil)

		start, err := m.coordinator(cfg, time.Now()).DetermineStart(ctx)
		require.NoError(t, err)
		assert.Equal(t, date(2024, 3, 11), start)
	})

	t.Run("cursor_error", func(t *testing.T) {
		m := newCoordinatorMocks(ctrl)
		m.cursor.EXPECT().MaxDate(ctx).Return(nil, apperrors.ErrPersistence)

		_, err := m.coordinator(cfg, time.Now()).DetermineStart(ctx)
		assert.ErrorIs(t, err, apperrors.ErrPersistence)
	})
}

func TestCoordinator_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	cfg := CoordinatorConfig{BaseCurrency: "USD", InitialStartDate: date(1996, 1, 1)}
	now := time.Date(2024, 3, 13, 9, 30, 0, 0, time.UTC)
	snapshot := &models.HistoricalSnapshot{Base: "USD", Rates: json.RawMessage(`{"EUR":0.9}`)}

	t.Run("up_to_date_makes_zero_fetches", func(t *testing.T) {
		m := newCoordinatorMocks(ctrl)
		last := date(2024, 3, 12)

		m.schema.EXPECT().EnsureSchema(ctx).Return(nil)
		m.counter.EXPECT().Count(ctx).Return(int64(150), nil)
		m.cursor.EXPECT().MaxDate(ctx).Return(&last, nil)
		m.observer.EXPECT().ObserveRun(gomock.Any())

		summary, err := m.coordinator(cfg, now).Run(ctx)
		require.NoError(t, err)
		assert.Zero(t, summary.DaysAttempted)
		assert.NotEmpty(t, summary.RunID)
	})

	t.Run("resumes_and_isolates_failed_days", func(t *testing.T) {
		m := newCoordinatorMocks(ctrl)
		last := date(2024, 3, 9)
		d10, d11, d12 := date(2024, 3, 10), date(2024, 3, 11), date(2024, 3, 12)
		rows := []models.RateRow{{CurrencyCode: "EUR", BaseCurrency: "USD", Date: d10}}
		rows12 := []models.RateRow{{CurrencyCode: "EUR", BaseCurrency: "USD", Date: d12}, {CurrencyCode: "XYZ", BaseCurrency: "USD", Date: d12}}

		m.schema.EXPECT().EnsureSchema(ctx).Return(nil)
		m.counter.EXPECT().Count(ctx).Return(int64(0), nil)
		m.refresher.EXPECT().RefreshCurrencies(ctx).Return(150, nil)
		m.cursor.EXPECT().MaxDate(ctx).Return(&last, nil)

		gomock.InOrder(
			m.fetcher.EXPECT().Fetch(ctx, d10).Return(snapshot, nil),
			m.fetcher.EXPECT().Fetch(ctx, d11).Return(nil, apperrors.ErrRemote),
			m.fetcher.EXPECT().Fetch(ctx, d12).Return(snapshot, nil),
		)
		m.transform.EXPECT().Transform(snapshot, d10).Return(rows)
		m.transform.EXPECT().Transform(snapshot, d12).Return(rows12)
		m.loader.EXPECT().Load(ctx, rows).Return(models.LoadResult{DatesInserted: 1, FactsInserted: 1}, nil)
		m.loader.EXPECT().Load(ctx, rows12).Return(models.LoadResult{DatesInserted: 1, FactsInserted: 1, Unmatched: []string{"XYZ"}}, nil)
		m.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(2)
		m.observer.EXPECT().ObserveDay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(3)
		m.observer.EXPECT().ObserveRun(gomock.Any())

		summary, err := m.coordinator(cfg, now).Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, d10, summary.Start)
		assert.Equal(t, d12, summary.End)
		assert.Equal(t, 3, summary.DaysAttempted)
		assert.Equal(t, 1, summary.DaysFailed)
		assert.Equal(t, 2, summary.FactsInserted)
		assert.Equal(t, []string{"XYZ"}, summary.Unmatched)
	})

	t.Run("empty_day_and_load_failure_continue", func(t *testing.T) {
		m := newCoordinatorMocks(ctrl)
		last := date(2024, 3, 10)
		d11, d12 := date(2024, 3, 11), date(2024, 3, 12)
		rows := []models.RateRow{{CurrencyCode: "EUR", BaseCurrency: "USD", Date: d12}}

		m.schema.EXPECT().EnsureSchema(ctx).Return(nil)
		m.counter.EXPECT().Count(ctx).Return(int64(10), nil)
		m.cursor.EXPECT().MaxDate(ctx).Return(&last, nil)
		m.fetcher.EXPECT().Fetch(ctx, d11).Return(&models.HistoricalSnapshot{}, nil)
		m.fetcher.EXPECT().Fetch(ctx, d12).Return(snapshot, nil)
		m.transform.EXPECT().Transform(gomock.Any(), d11).Return(nil)
		m.transform.EXPECT().Transform(snapshot, d12).Return(rows)
		m.loader.EXPECT().Load(ctx, rows).Return(models.LoadResult{}, apperrors.ErrPersistence)
		m.observer.EXPECT().ObserveDay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(2)
		m.observer.EXPECT().ObserveRun(gomock.Any())

		summary, err := m.coordinator(cfg, now).Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, summary.DaysAttempted)
		assert.Equal(t, 1, summary.DaysEmpty)
		assert.Equal(t, 1, summary.DaysFailed)
		assert.Zero(t, summary.FactsInserted)
	})

	t.Run("refresh_failure_does_not_abort", func(t *testing.T) {
		m := newCoordinatorMocks(ctrl)
		last := date(2024, 3, 12)

		m.schema.EXPECT().EnsureSchema(ctx).Return(nil)
		m.refresher.EXPECT().RefreshCurrencies(ctx).Return(0, apperrors.ErrRemote)
		m.cursor.EXPECT().MaxDate(ctx).Return(&last, nil)
		m.observer.EXPECT().ObserveRun(gomock.Any())

		always := cfg
		always.AlwaysRefreshCodes = true
		_, err := m.coordinator(always, now).Run(ctx)
		assert.NoError(t, err)
	})

	t.Run("schema_failure_aborts", func(t *testing.T) {
		m := newCoordinatorMocks(ctrl)
		m.schema.EXPECT().EnsureSchema(ctx).Return(apperrors.ErrPersistence)

		_, err := m.coordinator(cfg, now).Run(ctx)
		assert.ErrorIs(t, err, apperrors.ErrPersistence)
	})

	t.Run("cancellation_stops_before_next_day", func(t *testing.T) {
		m := newCoordinatorMocks(ctrl)
		last := date(2024, 3, 10)
		d11 := date(2024, 3, 11)
		cctx, cancel := context.WithCancel(ctx)
		defer cancel()

		m.schema.EXPECT().EnsureSchema(cctx).Return(nil)
		m.counter.EXPECT().Count(cctx).Return(int64(10), nil)
		m.cursor.EXPECT().MaxDate(cctx).Return(&last, nil)
		m.fetcher.EXPECT().Fetch(cctx, d11).DoAndReturn(func(context.Context, time.Time) (*models.HistoricalSnapshot, error) {
			cancel()
			return nil, errors.New("context canceled")
		})
		m.observer.EXPECT().ObserveDay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
		m.observer.EXPECT().ObserveRun(gomock.Any())

		summary, err := m.coordinator(cfg, now).Run(cctx)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.DaysAttempted)
		assert.Equal(t, 1, summary.DaysFailed)
	})
}

func TestCoordinator_RunPublishesLoadEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	now := time.Date(2020, 1, 2, 6, 0, 0, 0, time.UTC)
	day := date(2020, 1, 1)
	snapshot := &models.HistoricalSnapshot{Base: "USD"}
	rows := []models.RateRow{{CurrencyCode: "EUR", BaseCurrency: "USD", Date: day}}

	m := newCoordinatorMocks(ctrl)
	m.schema.EXPECT().EnsureSchema(ctx).Return(nil)
	m.counter.EXPECT().Count(ctx).Return(int64(1), nil)
	m.cursor.EXPECT().MaxDate(ctx).Return(nil, nil)
	m.fetcher.EXPECT().Fetch(ctx, day).Return(snapshot, nil)
	m.transform.EXPECT().Transform(snapshot, day).Return(rows)
	m.loader.EXPECT().Load(ctx, rows).Return(models.LoadResult{DatesInserted: 1, FactsInserted: 1}, nil)
	m.publisher.EXPECT().Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.LoadEvent) error {
			assert.Equal(t, "2020-01-01", event.Date)
			assert.Equal(t, "USD", event.BaseCurrency)
			assert.Equal(t, 1, event.FactsInserted)
			assert.Equal(t, now.Unix(), event.LoadedAt)
			assert.NotEmpty(t, event.RunID)
			return errors.New("broker down")
		})
	m.observer.EXPECT().ObserveDay(day, models.LoadResult{DatesInserted: 1, FactsInserted: 1}, nil, gomock.Any())
	m.observer.EXPECT().ObserveRun(gomock.Any())

	cfg := CoordinatorConfig{BaseCurrency: "USD", InitialStartDate: day}
	summary, err := m.coordinator(cfg, now).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.FactsInserted)
}
