package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// CurrencyAttributes lists the upstream currency attributes every record must carry.
// Missing ones are synthesized as nil before loading.
var CurrencyAttributes = []string{
	"id",
	"name",
	"short_code",
	"code",
	"precision",
	"subunit",
	"symbol",
	"symbol_first",
	"decimal_mark",
	"thousands_separator",
}

// CurrencyRecord is one entry of the upstream currency reference list, keyed by attribute name.
type CurrencyRecord map[string]any

// ExternalID returns the upstream numeric identifier of the currency.
func (r CurrencyRecord) ExternalID() (int64, error) {
	switch v := r["id"].(type) {
	case json.Number:
		return v.Int64()
	case float64:
		if v != float64(int64(v)) {
			return 0, fmt.Errorf("currency id %v is not an integer", v)
		}
		return int64(v), nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	case nil:
		return 0, fmt.Errorf("currency id is missing")
	default:
		return 0, fmt.Errorf("currency id has unexpected type %T", v)
	}
}

// CurrenciesResponse is the body of the upstream currencies endpoint.
type CurrenciesResponse struct {
	Response []CurrencyRecord `json:"response"`
}

// CurrencyKey maps an external short code to the warehouse currency key.
type CurrencyKey struct {
	CurrencyID int64  `db:"currency_id"`
	ShortCode  string `db:"short_code"`
}

// CurrencyDim represents a dim_currency row. Extra holds additive attribute columns
// that arrived from upstream after the base schema was created.
type CurrencyDim struct {
	CurrencyID         int64
	ShortCode          *string
	Code               *string
	Name               *string
	Precision          *int64
	Subunit            *int64
	Symbol             *string
	SymbolFirst        *bool
	DecimalMark        *string
	ThousandsSeparator *string
	Extra              map[string]*string
}

// CurrencyBaseColumns are the dim_currency columns created by the base schema, in insert order.
var CurrencyBaseColumns = []string{
	"currency_id",
	"short_code",
	"code",
	"name",
	"precision",
	"subunit",
	"symbol",
	"symbol_first",
	"decimal_mark",
	"thousands_separator",
}

// Values returns the row values in CurrencyBaseColumns order followed by extraColumns.
func (c CurrencyDim) Values(extraColumns []string) []any {
	vals := []any{
		c.CurrencyID,
		c.ShortCode,
		c.Code,
		c.Name,
		c.Precision,
		c.Subunit,
		c.Symbol,
		c.SymbolFirst,
		c.DecimalMark,
		c.ThousandsSeparator,
	}
	for _, col := range extraColumns {
		vals = append(vals, c.Extra[col])
	}
	return vals
}

// ColumnName maps an upstream attribute name to a warehouse column name:
// lower case, with anything outside [a-z0-9_] replaced by an underscore.
// It reports false when nothing usable remains.
func ColumnName(attr string) (string, bool) {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(attr)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	name := strings.Trim(b.String(), "_")
	if name == "" {
		return "", false
	}
	if name[0] >= '0' && name[0] <= '9' {
		name = "_" + name
	}
	if len(name) > 63 {
		name = name[:63]
	}
	return name, true
}
