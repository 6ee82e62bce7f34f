// Package metrics holds the Prometheus collectors of a loader run.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/sbilibin2017/fx-rates-warehouse/internal/logger"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/models"
)

const namespace = "fx_rates_etl"

// Day outcome labels.
const (
	StatusLoaded = "loaded"
	StatusEmpty  = "empty"
	StatusFailed = "failed"
)

// RunMetrics collects the outcome of each day and of the whole run.
type RunMetrics struct {
	registry *prometheus.Registry

	DaysTotal          *prometheus.CounterVec
	DatesInsertedTotal prometheus.Counter
	FactsInsertedTotal prometheus.Counter
	DuplicatesTotal    prometheus.Counter
	UnmatchedTotal     prometheus.Counter
	DayDuration        prometheus.Histogram
	LastLoadedDate     prometheus.Gauge
	LastRunTimestamp   prometheus.Gauge
	LastRunFailedDays  prometheus.Gauge
}

// New creates the collectors and registers them on a private registry.
func New() *RunMetrics {
	m := &RunMetrics{
		registry: prometheus.NewRegistry(),
		DaysTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "days_total",
			Help:      "Days processed, by outcome",
		}, []string{"status"}),
		DatesInsertedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dates_inserted_total",
			Help:      "Rows inserted into dim_date",
		}),
		FactsInsertedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "facts_inserted_total",
			Help:      "Rows inserted into fact_exchange_rate",
		}),
		DuplicatesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "facts_duplicate_total",
			Help:      "Facts skipped because they were already loaded",
		}),
		UnmatchedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unmatched_currencies_total",
			Help:      "Quote currencies excluded for lack of a dim_currency row",
		}),
		DayDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "day_duration_seconds",
			Help:      "Time to fetch, transform and load one day",
			Buckets:   prometheus.DefBuckets,
		}),
		LastLoadedDate: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_loaded_date_seconds",
			Help:      "Unix time of the latest day with inserted facts",
		}),
		LastRunTimestamp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last run finished",
		}),
		LastRunFailedDays: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_failed_days",
			Help:      "Days that failed in the last run",
		}),
	}

	m.registry.MustRegister(
		m.DaysTotal,
		m.DatesInsertedTotal,
		m.FactsInsertedTotal,
		m.DuplicatesTotal,
		m.UnmatchedTotal,
		m.DayDuration,
		m.LastLoadedDate,
		m.LastRunTimestamp,
		m.LastRunFailedDays,
	)
	return m
}

// Registry returns the registry holding the run collectors.
func (m *RunMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveDay records the outcome of one day.
func (m *RunMetrics) ObserveDay(date time.Time, result models.LoadResult, err error, duration time.Duration) {
	m.DayDuration.Observe(duration.Seconds())

	switch {
	case err != nil:
		m.DaysTotal.WithLabelValues(StatusFailed).Inc()
		return
	case result.DatesInserted == 0 && result.FactsInserted == 0 && result.Duplicates == 0:
		m.DaysTotal.WithLabelValues(StatusEmpty).Inc()
		return
	}

	m.DaysTotal.WithLabelValues(StatusLoaded).Inc()
	m.DatesInsertedTotal.Add(float64(result.DatesInserted))
	m.FactsInsertedTotal.Add(float64(result.FactsInserted))
	m.DuplicatesTotal.Add(float64(result.Duplicates))
	m.UnmatchedTotal.Add(float64(len(result.Unmatched)))
	if result.FactsInserted > 0 {
		m.LastLoadedDate.Set(float64(date.Unix()))
	}
}

// ObserveRun records the outcome of a finished run.
func (m *RunMetrics) ObserveRun(summary models.RunSummary) {
	m.LastRunTimestamp.SetToCurrentTime()
	m.LastRunFailedDays.Set(float64(summary.DaysFailed))
}

// Push sends the collected metrics to a Prometheus Pushgateway under job.
// An empty url disables pushing.
func (m *RunMetrics) Push(ctx context.Context, url, job string) error {
	if url == "" {
		return nil
	}

	err := push.New(url, job).
		Gatherer(m.registry).
		PushContext(ctx)

	logger.Log.Infow("metrics pushed",
		"url", url,
		"job", job,
		"error", err,
	)

	return err
}
