package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sbilibin2017/fx-rates-warehouse/internal/logger"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/models"
)

//go:generate mockgen -source=currency.go -destination=currency_mock.go -package=services

const currencyTable = "dim_currency"

// CurrencyLister fetches the upstream currency reference list.
type CurrencyLister interface {
	GetCurrencies(ctx context.Context) ([]models.CurrencyRecord, error)
}

// ColumnEnsurer adds missing columns to a warehouse table.
type ColumnEnsurer interface {
	EnsureColumns(ctx context.Context, table string, specs []models.ColumnSpec) error
}

// CurrencyWriter replaces rows of the currency dimension.
type CurrencyWriter interface {
	DeleteByIDs(ctx context.Context, ids []int64) (int64, error)
	Insert(ctx context.Context, extraColumns []string, rows []models.CurrencyDim) (int64, error)
}

// TxRunner runs fn inside a single transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// CurrencyService keeps dim_currency in step with the upstream currency list.
type CurrencyService struct {
	lister  CurrencyLister
	columns ColumnEnsurer
	writer  CurrencyWriter
	tx      TxRunner
}

// NewCurrencyService creates a new service instance
func NewCurrencyService(
	lister CurrencyLister,
	columns ColumnEnsurer,
	writer CurrencyWriter,
	tx TxRunner,
) *CurrencyService {
	return &CurrencyService{
		lister:  lister,
		columns: columns,
		writer:  writer,
		tx:      tx,
	}
}

// RefreshCurrencies reloads dim_currency from upstream and returns the number of rows written.
// Rows sharing an id with an incoming record are deleted first, in the same transaction.
func (svc *CurrencyService) RefreshCurrencies(ctx context.Context) (int, error) {
	records, err := svc.lister.GetCurrencies(ctx)
	if err != nil {
		return 0, fmt.Errorf("refresh currencies: %w", err)
	}
	if len(records) == 0 {
		logger.Log.Warnw("currency list is empty, skipping refresh")
		return 0, nil
	}

	fillMissingAttributes(records)

	extra := extraColumns(records)
	rows, ids := buildCurrencyRows(records, extra)
	if len(rows) == 0 {
		logger.Log.Warnw("no currency records with a usable id, skipping refresh", "records", len(records))
		return 0, nil
	}

	columnNames := make([]string, len(extra))
	specs := make([]models.ColumnSpec, len(extra))
	for i, c := range extra {
		columnNames[i] = c.column
		specs[i] = models.ColumnSpec{Name: c.column}
	}

	var inserted int64
	err = svc.tx.WithTx(ctx, func(ctx context.Context) error {
		if err := svc.columns.EnsureColumns(ctx, currencyTable, specs); err != nil {
			return err
		}
		deleted, err := svc.writer.DeleteByIDs(ctx, ids)
		if err != nil {
			return err
		}
		inserted, err = svc.writer.Insert(ctx, columnNames, rows)
		if err != nil {
			return err
		}
		logger.Log.Infow("currency dimension replaced",
			"deleted", deleted,
			"inserted", inserted,
			"extra_columns", columnNames,
		)
		return nil
	})
	if err != nil {
		logger.Log.Errorw("currency refresh rolled back", "error", err)
		return 0, fmt.Errorf("refresh currencies: %w", err)
	}

	return int(inserted), nil
}

// fillMissingAttributes sets every required attribute a record lacks to nil,
// logging each attribute once.
func fillMissingAttributes(records []models.CurrencyRecord) {
	for _, attr := range models.CurrencyAttributes {
		missing := 0
		for _, r := range records {
			if _, ok := r[attr]; !ok {
				r[attr] = nil
				missing++
			}
		}
		if missing > 0 {
			logger.Log.Warnw("currency attribute missing, filled with null",
				"attribute", attr,
				"records", missing,
			)
		}
	}
}

type extraColumn struct {
	attr   string
	column string
}

// extraColumns maps attributes outside the base set to new column names, ordered by column.
func extraColumns(records []models.CurrencyRecord) []extraColumn {
	reserved := make(map[string]struct{}, len(models.CurrencyAttributes)+len(models.CurrencyBaseColumns))
	for _, a := range models.CurrencyAttributes {
		reserved[a] = struct{}{}
	}
	for _, c := range models.CurrencyBaseColumns {
		reserved[c] = struct{}{}
	}

	attrs := make(map[string]struct{})
	for _, r := range records {
		for attr := range r {
			if _, ok := reserved[attr]; !ok {
				attrs[attr] = struct{}{}
			}
		}
	}
	sorted := make([]string, 0, len(attrs))
	for a := range attrs {
		sorted = append(sorted, a)
	}
	sort.Strings(sorted)

	used := make(map[string]struct{})
	var cols []extraColumn
	for _, attr := range sorted {
		col, ok := models.ColumnName(attr)
		if !ok {
			logger.Log.Warnw("ignoring currency attribute with unusable name", "attribute", attr)
			continue
		}
		if _, taken := reserved[col]; taken {
			logger.Log.Warnw("ignoring currency attribute clashing with a base column", "attribute", attr, "column", col)
			continue
		}
		if _, taken := used[col]; taken {
			logger.Log.Warnw("ignoring currency attribute clashing with another attribute", "attribute", attr, "column", col)
			continue
		}
		used[col] = struct{}{}
		cols = append(cols, extraColumn{attr: attr, column: col})
	}
	sort.Slice(cols, func(i, j int) bool { return cols[i].column < cols[j].column })
	return cols
}

// buildCurrencyRows converts records to dimension rows. Records without a usable id are
// dropped and later duplicates of an id are ignored.
func buildCurrencyRows(records []models.CurrencyRecord, extra []extraColumn) ([]models.CurrencyDim, []int64) {
	rows := make([]models.CurrencyDim, 0, len(records))
	ids := make([]int64, 0, len(records))
	seen := make(map[int64]struct{}, len(records))

	for _, r := range records {
		id, err := r.ExternalID()
		if err != nil {
			logger.Log.Warnw("dropping currency without a usable id",
				"short_code", r["short_code"],
				"error", err,
			)
			continue
		}
		if _, dup := seen[id]; dup {
			logger.Log.Warnw("dropping duplicate currency id", "id", id, "short_code", r["short_code"])
			continue
		}
		seen[id] = struct{}{}

		row := models.CurrencyDim{
			CurrencyID:         id,
			ShortCode:          stringValue(r["short_code"]),
			Code:               stringValue(r["code"]),
			Name:               stringValue(r["name"]),
			Precision:          intValue(r["precision"]),
			Subunit:            intValue(r["subunit"]),
			Symbol:             stringValue(r["symbol"]),
			SymbolFirst:        boolValue(r["symbol_first"]),
			DecimalMark:        stringValue(r["decimal_mark"]),
			ThousandsSeparator: stringValue(r["thousands_separator"]),
		}
		if len(extra) > 0 {
			row.Extra = make(map[string]*string, len(extra))
			for _, c := range extra {
				row.Extra[c.column] = stringValue(r[c.attr])
			}
		}

		rows = append(rows, row)
		ids = append(ids, id)
	}

	return rows, ids
}

func stringValue(v any) *string {
	var s string
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		s = val
	case json.Number:
		s = val.String()
	case bool:
		s = strconv.FormatBool(val)
	case float64:
		s = strconv.FormatFloat(val, 'f', -1, 64)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			s = fmt.Sprint(val)
		} else {
			s = string(b)
		}
	}
	return &s
}

func intValue(v any) *int64 {
	var n int64
	var err error
	switch val := v.(type) {
	case json.Number:
		n, err = val.Int64()
	case float64:
		n = int64(val)
	case int:
		n = int64(val)
	case int64:
		n = val
	case string:
		n, err = strconv.ParseInt(strings.TrimSpace(val), 10, 64)
	default:
		return nil
	}
	if err != nil {
		return nil
	}
	return &n
}

func boolValue(v any) *bool {
	var b bool
	switch val := v.(type) {
	case bool:
		b = val
	case json.Number:
		b = val.String() != "0"
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(val))
		if err != nil {
			return nil
		}
		b = parsed
	default:
		return nil
	}
	return &b
}
