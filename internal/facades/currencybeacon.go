package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/sbilibin2017/fx-rates-warehouse/internal/apperrors"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/logger"
	"github.com/sbilibin2017/fx-rates-warehouse/internal/models"
)

const (
	currenciesPath = "/currencies"
	historicalPath = "/historical"
	maxErrorBody   = 256
)

// CurrencyBeaconClient talks to the CurrencyBeacon pricing API over HTTP.
type CurrencyBeaconClient struct {
	client *resty.Client
}

// NewCurrencyBeaconClient creates a client for the API rooted at baseURL.
// The key is sent as the api_key query parameter on every request.
func NewCurrencyBeaconClient(baseURL, apiKey string, timeout time.Duration) *CurrencyBeaconClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetQueryParam("api_key", apiKey)

	return &CurrencyBeaconClient{client: withRequestLogging(client)}
}

// ValidateAPIKey issues a lightweight request to check the key is accepted.
func (f *CurrencyBeaconClient) ValidateAPIKey(ctx context.Context) error {
	resp, err := f.get(ctx, currenciesPath, nil)
	if err != nil {
		return err
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		logger.Log.Errorw("API key rejected", "status", resp.StatusCode())
		return fmt.Errorf("%w: api key rejected with status %d", apperrors.ErrAuthentication, resp.StatusCode())
	}
	if err := statusError(resp, currenciesPath); err != nil {
		return err
	}

	logger.Log.Infow("API key validated successfully")
	return nil
}

// GetCurrencies returns the currency reference list. Numbers are kept as json.Number.
func (f *CurrencyBeaconClient) GetCurrencies(ctx context.Context) ([]models.CurrencyRecord, error) {
	resp, err := f.get(ctx, currenciesPath, nil)
	if err != nil {
		return nil, err
	}
	if err := statusError(resp, currenciesPath); err != nil {
		return nil, err
	}

	var body models.CurrenciesResponse
	if err := decode(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("%w: decode currencies: %w", apperrors.ErrDataShape, err)
	}

	logger.Log.Infow("fetched currencies", "count", len(body.Response))
	return body.Response, nil
}

// GetHistorical returns the raw rate snapshot for date quoted against base.
func (f *CurrencyBeaconClient) GetHistorical(ctx context.Context, date time.Time, base string) (*models.HistoricalSnapshot, error) {
	params := map[string]string{
		"date": date.Format(models.DateLayout),
		"base": base,
	}

	resp, err := f.get(ctx, historicalPath, params)
	if err != nil {
		return nil, err
	}
	if err := statusError(resp, historicalPath); err != nil {
		return nil, err
	}

	var snapshot models.HistoricalSnapshot
	if err := decode(resp.Body(), &snapshot); err != nil {
		return nil, fmt.Errorf("%w: decode historical %s: %w", apperrors.ErrDataShape, params["date"], err)
	}

	logger.Log.Infow("fetched historical rates",
		"date", params["date"],
		"base", base,
		"bytes", len(resp.Body()),
	)
	return &snapshot, nil
}

func (f *CurrencyBeaconClient) get(ctx context.Context, path string, params map[string]string) (*resty.Response, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)
	if err != nil {
		// url.Error carries the full URL, api_key included
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		logger.Log.Errorw("request to currency API failed", "path", path, "error", err)
		return nil, fmt.Errorf("%w: GET %s: %w", apperrors.ErrRemote, path, err)
	}
	return resp, nil
}

func statusError(resp *resty.Response, path string) error {
	if resp.IsSuccess() {
		return nil
	}
	body := resp.Body()
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	logger.Log.Errorw("currency API returned an error status",
		"path", path,
		"status", resp.StatusCode(),
		"body", string(body),
	)
	return fmt.Errorf("%w: unexpected status %d: %s", apperrors.ErrRemote, resp.StatusCode(), bytes.TrimSpace(body))
}

func decode(body []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	return dec.Decode(v)
}
