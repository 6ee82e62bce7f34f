package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/fx-rates-warehouse/internal/apperrors"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/logger"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/models"
)

// DateRepository handles the date dimension.
type DateRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewDateRepository(db *sqlx.DB, txGetter TxGetter) *DateRepository {
	return &DateRepository{db: db, txGetter: txGetter}
}

// MaxDate returns the latest calendar date in dim_date, or nil when the table is empty.
// It is the cursor of the last successfully loaded day.
func (r *DateRepository) MaxDate(ctx context.Context) (*time.Time, error) {
	const query = `SELECT MAX("date") FROM dim_date`

	var maxDate sql.NullTime
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &maxDate, query)

	logger.Log.Infow(
		"query", query,
		"result", maxDate.Time.Format(models.DateLayout),
		"valid", maxDate.Valid,
		"error", err,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: read max date: %w", apperrors.ErrPersistence, err)
	}
	if !maxDate.Valid {
		return nil, nil
	}
	d := models.CalendarDate(maxDate.Time)
	return &d, nil
}

// MaxDateID returns the largest date_id, or 0 when the table is empty.
func (r *DateRepository) MaxDateID(ctx context.Context) (int64, error) {
	const query = `SELECT COALESCE(MAX(date_id), 0) FROM dim_date`

	var maxID int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &maxID, query)

	logger.Log.Infow(
		"query", query,
		"result", maxID,
		"error", err,
	)

	if err != nil {
		return 0, fmt.Errorf("%w: read max date_id: %w", apperrors.ErrPersistence, err)
	}
	return maxID, nil
}

// FindIDsByDates maps each already loaded date (keyed by models.DateLayout) to its date_id.
func (r *DateRepository) FindIDsByDates(ctx context.Context, dates []time.Time) (map[string]int64, error) {
	ids := make(map[string]int64, len(dates))
	if len(dates) == 0 {
		return ids, nil
	}

	ext := executor(ctx, r.db, r.txGetter)
	query, args, err := sqlx.In(`SELECT date_id, "date", "year", "month", "day" FROM dim_date WHERE "date" IN (?)`, dates)
	if err != nil {
		return nil, fmt.Errorf("%w: build date lookup: %w", apperrors.ErrPersistence, err)
	}
	query = ext.Rebind(query)

	var rows []models.DateDim
	err = sqlx.SelectContext(ctx, ext, &rows, query, args...)

	logger.Log.Infow(
		"query", query,
		"args", len(dates),
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: lookup dates: %w", apperrors.ErrPersistence, err)
	}

	for _, row := range rows {
		ids[row.Date.Format(models.DateLayout)] = row.DateID
	}
	return ids, nil
}

// Insert appends rows to dim_date.
func (r *DateRepository) Insert(ctx context.Context, rows []models.DateDim) error {
	if len(rows) == 0 {
		return nil
	}

	const query = `
		INSERT INTO dim_date (date_id, "date", "year", "month", "day")
		VALUES (:date_id, :date, :year, :month, :day)
	`

	res, err := sqlx.NamedExecContext(ctx, executor(ctx, r.db, r.txGetter), query, rows)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", oneLine(query),
		"args", len(rows),
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return fmt.Errorf("%w: insert dates: %w", apperrors.ErrPersistence, err)
	}
	return nil
}
