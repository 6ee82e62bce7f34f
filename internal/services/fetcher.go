package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sbilibin2017/fx-rates-warehouse/internal/logger"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/models"
)

//go:generate mockgen -source=fetcher.go -destination=fetcher_mock.go -package=services

// HistoricalReader fetches a daily rate snapshot from the upstream API.
type HistoricalReader interface {
	GetHistorical(ctx context.Context, date time.Time, base string) (*models.HistoricalSnapshot, error)
}

// SnapshotCache stores raw daily snapshots.
type SnapshotCache interface {
	GetSnapshot(ctx context.Context, base string, date time.Time) (*models.HistoricalSnapshot, error)
	SetSnapshot(ctx context.Context, base string, date time.Time, snapshot *models.HistoricalSnapshot) error
}

// HistoricalFetcher returns snapshots from the cache when possible and from the API otherwise.
type HistoricalFetcher struct {
	reader HistoricalReader
	cache  SnapshotCache
	base   string
}

// NewHistoricalFetcher creates a fetcher quoting against base. A nil cache disables caching.
func NewHistoricalFetcher(reader HistoricalReader, cache SnapshotCache, base string) *HistoricalFetcher {
	return &HistoricalFetcher{
		reader: reader,
		cache:  cache,
		base:   base,
	}
}

// Fetch returns the snapshot for date.
func (f *HistoricalFetcher) Fetch(ctx context.Context, date time.Time) (*models.HistoricalSnapshot, error) {
	if f.cache != nil {
		snapshot, err := f.cache.GetSnapshot(ctx, f.base, date)
		if err == nil {
			logger.Log.Infow("snapshot served from cache", "date", date.Format(models.DateLayout), "base", f.base)
			return snapshot, nil
		}
		logger.Log.Debugw("snapshot cache miss", "date", date.Format(models.DateLayout), "error", err)
	}

	snapshot, err := f.reader.GetHistorical(ctx, date, f.base)
	if err != nil {
		return nil, err
	}

	// Days the API has not published yet come back empty and must be fetched again later.
	if f.cache != nil && hasRates(snapshot) {
		if err := f.cache.SetSnapshot(ctx, f.base, date, snapshot); err != nil {
			logger.Log.Warnw("failed to cache snapshot", "date", date.Format(models.DateLayout), "error", err)
		}
	}

	return snapshot, nil
}

func hasRates(snapshot *models.HistoricalSnapshot) bool {
	if snapshot == nil {
		return false
	}
	var rates map[string]json.RawMessage
	if err := json.Unmarshal(snapshot.Rates, &rates); err != nil {
		return false
	}
	return len(rates) > 0
}
