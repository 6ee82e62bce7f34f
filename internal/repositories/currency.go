package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/fx-rates-warehouse/internal/apperrors"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/logger"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/models"
)

// CurrencyRepository reads and replaces rows of the currency dimension.
type CurrencyRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCurrencyRepository(db *sqlx.DB, txGetter TxGetter) *CurrencyRepository {
	return &CurrencyRepository{db: db, txGetter: txGetter}
}

// Count returns the number of rows in dim_currency.
func (r *CurrencyRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM dim_currency`

	var count int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &count, query)

	logger.Log.Infow(
		"query", query,
		"result", count,
		"error", err,
	)

	if err != nil {
		return 0, fmt.Errorf("%w: count currencies: %w", apperrors.ErrPersistence, err)
	}
	return count, nil
}

// FindIDsByShortCodes maps each known short code to its currency_id.
// Codes absent from the dimension are missing from the result.
func (r *CurrencyRepository) FindIDsByShortCodes(ctx context.Context, codes []string) (map[string]int64, error) {
	ids := make(map[string]int64, len(codes))
	if len(codes) == 0 {
		return ids, nil
	}

	ext := executor(ctx, r.db, r.txGetter)
	query, args, err := sqlx.In(`SELECT currency_id, short_code FROM dim_currency WHERE short_code IN (?)`, codes)
	if err != nil {
		return nil, fmt.Errorf("%w: build currency lookup: %w", apperrors.ErrPersistence, err)
	}
	query = ext.Rebind(query)

	var keys []models.CurrencyKey
	err = sqlx.SelectContext(ctx, ext, &keys, query, args...)

	logger.Log.Infow(
		"query", query,
		"args", codes,
		"result", len(keys),
		"error", err,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: lookup currencies: %w", apperrors.ErrPersistence, err)
	}

	for _, k := range keys {
		ids[k.ShortCode] = k.CurrencyID
	}
	return ids, nil
}

// DeleteByIDs removes the dimension rows whose currency_id is in ids.
func (r *CurrencyRepository) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	ext := executor(ctx, r.db, r.txGetter)
	query, args, err := sqlx.In(`DELETE FROM dim_currency WHERE currency_id IN (?)`, ids)
	if err != nil {
		return 0, fmt.Errorf("%w: build currency delete: %w", apperrors.ErrPersistence, err)
	}
	query = ext.Rebind(query)

	res, err := ext.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", len(ids),
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return 0, fmt.Errorf("%w: delete currencies: %w", apperrors.ErrPersistence, err)
	}
	return rowsAffected, nil
}

// Insert writes rows into dim_currency in a single statement. extraColumns lists
// additive columns, already present on the table, whose values come from CurrencyDim.Extra.
func (r *CurrencyRepository) Insert(ctx context.Context, extraColumns []string, rows []models.CurrencyDim) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	columns := append(append([]string{}, models.CurrencyBaseColumns...), extraColumns...)
	quoted := make([]string, len(columns))
	for i, c := range columns {
		if !identifierRe.MatchString(c) {
			return 0, fmt.Errorf("%w: invalid column name %q", apperrors.ErrPersistence, c)
		}
		quoted[i] = pgx.Identifier{c}.Sanitize()
	}

	placeholder := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ") + ")"
	values := make([]string, len(rows))
	args := make([]any, 0, len(rows)*len(columns))
	for i, row := range rows {
		values[i] = placeholder
		args = append(args, row.Values(extraColumns)...)
	}

	ext := executor(ctx, r.db, r.txGetter)
	query := ext.Rebind(fmt.Sprintf("INSERT INTO dim_currency (%s) VALUES %s",
		strings.Join(quoted, ", "), strings.Join(values, ", ")))

	res, err := ext.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", "INSERT INTO dim_currency ("+strings.Join(quoted, ", ")+") VALUES ...",
		"args", len(args),
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return 0, fmt.Errorf("%w: insert currencies: %w", apperrors.ErrPersistence, err)
	}
	return rowsAffected, nil
}
