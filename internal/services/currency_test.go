package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/fx-rates-warehouse/internal/apperrors"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/models"
)

func passThroughTx(ctrl *gomock.Controller) *MockTxRunner {
	tx := NewMockTxRunner(ctrl)
	tx.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
	return tx
}

func TestCurrencyService_RefreshCurrencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name          string
		mockSetup     func() *CurrencyService
		expectedCount int
		expectedErr   error
	}{
		{
			name: "success_with_extra_attribute",
			mockSetup: func() *CurrencyService {
				lister := NewMockCurrencyLister(ctrl)
				columns := NewMockColumnEnsurer(ctrl)
				writer := NewMockCurrencyWriter(ctrl)

				lister.EXPECT().GetCurrencies(ctx).Return([]models.CurrencyRecord{
					{"id": json.Number("1"), "name": "US Dollar", "short_code": "USD", "precision": json.Number("2"), "symbol_first": true, "Iso Numeric": "840"},
					{"id": json.Number("2"), "name": "Euro", "short_code": "EUR"},
					{"name": "No Id", "short_code": "NOP"},
					{"id": json.Number("1"), "name": "Duplicate", "short_code": "USD"},
				}, nil)

				columns.EXPECT().
					EnsureColumns(gomock.Any(), "dim_currency", []models.ColumnSpec{{Name: "iso_numeric"}}).
					Return(nil)

				writer.EXPECT().DeleteByIDs(gomock.Any(), []int64{1, 2}).Return(int64(0), nil)
				writer.EXPECT().
					Insert(gomock.Any(), []string{"iso_numeric"}, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ []string, rows []models.CurrencyDim) (int64, error) {
						require.Len(t, rows, 2)
						assert.Equal(t, int64(1), rows[0].CurrencyID)
						assert.Equal(t, "USD", *rows[0].ShortCode)
						assert.Equal(t, int64(2), *rows[0].Precision)
						assert.True(t, *rows[0].SymbolFirst)
						assert.Nil(t, rows[0].Subunit)
						assert.Equal(t, "840", *rows[0].Extra["iso_numeric"])
						assert.Nil(t, rows[1].Extra["iso_numeric"])
						assert.Nil(t, rows[1].Code)
						return int64(len(rows)), nil
					})

				return NewCurrencyService(lister, columns, writer, passThroughTx(ctrl))
			},
			expectedCount: 2,
		},
		{
			name: "empty_list_skips_delete",
			mockSetup: func() *CurrencyService {
				lister := NewMockCurrencyLister(ctrl)
				lister.EXPECT().GetCurrencies(ctx).Return(nil, nil)

				return NewCurrencyService(lister, NewMockColumnEnsurer(ctrl), NewMockCurrencyWriter(ctrl), NewMockTxRunner(ctrl))
			},
			expectedCount: 0,
		},
		{
			name: "remote_error",
			mockSetup: func() *CurrencyService {
				lister := NewMockCurrencyLister(ctrl)
				lister.EXPECT().GetCurrencies(ctx).Return(nil, apperrors.ErrRemote)

				return NewCurrencyService(lister, NewMockColumnEnsurer(ctrl), NewMockCurrencyWriter(ctrl), NewMockTxRunner(ctrl))
			},
			expectedErr: apperrors.ErrRemote,
		},
		{
			name: "insert_failure_is_returned",
			mockSetup: func() *CurrencyService {
				lister := NewMockCurrencyLister(ctrl)
				columns := NewMockColumnEnsurer(ctrl)
				writer := NewMockCurrencyWriter(ctrl)

				lister.EXPECT().GetCurrencies(ctx).Return([]models.CurrencyRecord{
					{"id": json.Number("1"), "short_code": "USD"},
				}, nil)
				columns.EXPECT().EnsureColumns(gomock.Any(), "dim_currency", []models.ColumnSpec{}).Return(nil)
				writer.EXPECT().DeleteByIDs(gomock.Any(), []int64{1}).Return(int64(1), nil)
				writer.EXPECT().Insert(gomock.Any(), []string{}, gomock.Any()).
					Return(int64(0), errors.Join(apperrors.ErrPersistence, errors.New("insert failed")))

				return NewCurrencyService(lister, columns, writer, passThroughTx(ctrl))
			},
			expectedErr: apperrors.ErrPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := tt.mockSetup()
			count, err := svc.RefreshCurrencies(ctx)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCount, count)
		})
	}
}

func TestFillMissingAttributes(t *testing.T) {
	records := []models.CurrencyRecord{{"id": json.Number("1"), "short_code": "USD"}}
	fillMissingAttributes(records)

	for _, attr := range models.CurrencyAttributes {
		_, ok := records[0][attr]
		assert.True(t, ok, attr)
	}
	assert.Nil(t, records[0]["symbol"])
	assert.Equal(t, "USD", records[0]["short_code"])
}

func TestExtraColumns(t *testing.T) {
	records := []models.CurrencyRecord{
		{"id": 1, "name": "x", "Currency ID": 7, "countries": []any{"US"}, "!!!": "skip", "iso-numeric": "840", "ISO Numeric": "840"},
	}

	cols := extraColumns(records)
	require.Len(t, cols, 2)
	assert.Equal(t, extraColumn{attr: "countries", column: "countries"}, cols[0])
	assert.Equal(t, "iso_numeric", cols[1].column)
}

func TestValueConversions(t *testing.T) {
	assert.Nil(t, stringValue(nil))
	assert.Equal(t, "2", *stringValue(json.Number("2")))
	assert.Equal(t, `["US"]`, *stringValue([]any{"US"}))
	assert.Equal(t, "true", *stringValue(true))

	assert.Equal(t, int64(3), *intValue(json.Number("3")))
	assert.Equal(t, int64(4), *intValue("4"))
	assert.Nil(t, intValue("x"))
	assert.Nil(t, intValue(nil))

	assert.True(t, *boolValue(true))
	assert.False(t, *boolValue("false"))
	assert.True(t, *boolValue(json.Number("1")))
	assert.Nil(t, boolValue(nil))
}
