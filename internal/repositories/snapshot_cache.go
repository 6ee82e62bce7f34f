package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/fx-rates-warehouse/internal/logger"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/models"
)

// ErrSnapshotNotCached is returned when no snapshot is stored for a base and date.
var ErrSnapshotNotCached = errors.New("snapshot not found in cache")

// SnapshotCacheRepository keeps raw historical snapshots in Redis so a rerun
// of a failed day does not spend another upstream request.
type SnapshotCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewSnapshotCacheRepository(client *redis.Client, expiration time.Duration) *SnapshotCacheRepository {
	return &SnapshotCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func snapshotKey(base string, date time.Time) string {
	return fmt.Sprintf("historical:%s:%s", base, date.Format(models.DateLayout))
}

// GetSnapshot returns the cached snapshot for base and date.
func (r *SnapshotCacheRepository) GetSnapshot(ctx context.Context, base string, date time.Time) (*models.HistoricalSnapshot, error) {
	key := snapshotKey(base, date)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", nil,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, ErrSnapshotNotCached
		}
		return nil, err
	}

	var snapshot models.HistoricalSnapshot
	if err := json.Unmarshal(val, &snapshot); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", string(val),
			"result", nil,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", "hit",
		"error", nil,
	)

	return &snapshot, nil
}

// SetSnapshot stores snapshot under base and date with the repository TTL.
func (r *SnapshotCacheRepository) SetSnapshot(ctx context.Context, base string, date time.Time, snapshot *models.HistoricalSnapshot) error {
	key := snapshotKey(base, date)

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, payload, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"size", len(payload),
		"result", "ok",
		"error", err,
	)

	return err
}
