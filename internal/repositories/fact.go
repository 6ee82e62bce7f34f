package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/fx-rates-warehouse/internal/apperrors"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/logger"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/models"
)

// FactRepository handles the exchange rate fact table.
type FactRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewFactRepository(db *sqlx.DB, txGetter TxGetter) *FactRepository {
	return &FactRepository{db: db, txGetter: txGetter}
}

// MaxFactID returns the largest fact_id, or 0 when the table is empty.
func (r *FactRepository) MaxFactID(ctx context.Context) (int64, error) {
	const query = `SELECT COALESCE(MAX(fact_id), 0) FROM fact_exchange_rate`

	var maxID int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &maxID, query)

	logger.Log.Infow(
		"query", query,
		"result", maxID,
		"error", err,
	)

	if err != nil {
		return 0, fmt.Errorf("%w: read max fact_id: %w", apperrors.ErrPersistence, err)
	}
	return maxID, nil
}

// ExistingKeys returns the natural keys of facts already stored for the given dates.
func (r *FactRepository) ExistingKeys(ctx context.Context, dateIDs []int64) (map[models.FactKey]struct{}, error) {
	keys := make(map[models.FactKey]struct{})
	if len(dateIDs) == 0 {
		return keys, nil
	}

	ext := executor(ctx, r.db, r.txGetter)
	query, args, err := sqlx.In(`SELECT date_id, currency_id, base_currency FROM fact_exchange_rate WHERE date_id IN (?)`, dateIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: build fact lookup: %w", apperrors.ErrPersistence, err)
	}
	query = ext.Rebind(query)

	var rows []models.FactKey
	err = sqlx.SelectContext(ctx, ext, &rows, query, args...)

	logger.Log.Infow(
		"query", query,
		"args", dateIDs,
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: lookup facts: %w", apperrors.ErrPersistence, err)
	}

	for _, k := range rows {
		keys[k] = struct{}{}
	}
	return keys, nil
}

// Insert appends facts to fact_exchange_rate.
func (r *FactRepository) Insert(ctx context.Context, facts []models.ExchangeRateFact) error {
	if len(facts) == 0 {
		return nil
	}

	const query = `
		INSERT INTO fact_exchange_rate (fact_id, date_id, currency_id, rate, base_currency, "timestamp")
		VALUES (:fact_id, :date_id, :currency_id, :rate, :base_currency, :timestamp)
	`

	res, err := sqlx.NamedExecContext(ctx, executor(ctx, r.db, r.txGetter), query, facts)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", oneLine(query),
		"args", len(facts),
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return fmt.Errorf("%w: insert facts: %w", apperrors.ErrPersistence, err)
	}
	return nil
}
