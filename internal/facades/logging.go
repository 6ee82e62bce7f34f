package facades

import (
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/sbilibin2017/fx-rates-warehouse/internal/logger"
)

const requestIDHeader = "X-Request-ID"

// withRequestLogging tags every outgoing request with a request ID and logs
// the request and its response. The query string is never logged since it carries the API key.
func withRequestLogging(client *resty.Client) *resty.Client {
	return client.
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			r.SetHeader(requestIDHeader, uuid.New().String())
			return nil
		}).
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			reqID := resp.Request.Header.Get(requestIDHeader)
			path := ""
			if resp.RawResponse != nil && resp.RawResponse.Request != nil {
				path = resp.RawResponse.Request.URL.Path
			}

			logger.Log.Infow("request",
				"request_id", reqID,
				"method", resp.Request.Method,
				"path", path,
				"duration", resp.Time(),
			)

			logger.Log.Infow("response",
				"request_id", reqID,
				"status", resp.StatusCode(),
				"response_size", strconv.FormatInt(resp.Size(), 10)+"B",
			)
			return nil
		})
}
