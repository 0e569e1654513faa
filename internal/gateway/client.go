package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/petshopapp/petshop-go/internal/config"
	"github.com/petshopapp/petshop-go/internal/errors"
	"github.com/petshopapp/petshop-go/internal/metrics"
)

// Client is the single REST gateway every controller talks through. It
// is constructed once and injected, never reached via a package global.
// Requests carry a correlation id and are counted and timed; there are
// no retries and no de-duplication of in-flight calls.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.Backend, logger *slog.Logger) *Client {

	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/") + "/",
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body any) ([]byte, error) {

	correlationID := uuid.NewString()

	requestLogger := c.logger.With(
		slog.String("correlation_id", correlationID),
		slog.String("http_method", method),
		slog.String("endpoint", endpoint),
	)

	target := c.baseURL + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reqBody io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errors.InternalError("Failed to encode request body").WithError(err)
		}

		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, errors.InternalError("Failed to build request").WithError(err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", correlationID)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	metrics.RequestStarted()
	defer metrics.RequestFinished()

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveRequest(endpoint, metrics.OutcomeFailure, time.Since(start))
		requestLogger.Error("Request failed", slog.String("error", err.Error()))

		return nil, errors.TransportError("Failed to reach backend").WithError(err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.ObserveRequest(endpoint, metrics.OutcomeFailure, time.Since(start))
		requestLogger.Error("Failed to read response body", slog.String("error", err.Error()))

		return nil, errors.TransportError("Failed to read backend response").WithError(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.ObserveRequest(endpoint, metrics.OutcomeFailure, time.Since(start))
		requestLogger.Warn("Backend returned error status", slog.Int("http_status", resp.StatusCode))

		return nil, errors.BadResponseError(fmt.Sprintf("Backend returned HTTP %d", resp.StatusCode)).
			WithDetail(string(respBody))
	}

	metrics.ObserveRequest(endpoint, metrics.OutcomeSuccess, time.Since(start))
	requestLogger.Debug("Request completed",
		slog.Int("http_status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)))

	return respBody, nil
}

// Get performs a GET against endpoint and decodes the JSON body into T.
func Get[T any](ctx context.Context, c *Client, endpoint string, query url.Values) (T, error) {

	var out T

	data, err := c.do(ctx, http.MethodGet, endpoint, query, nil)
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal(data, &out); err != nil {
		return out, errors.BadResponseError("Failed to decode backend response").WithError(err)
	}

	return out, nil
}

// Post performs a POST with a JSON body and decodes the response into T.
func Post[T any](ctx context.Context, c *Client, endpoint string, query url.Values, body any) (T, error) {

	var out T

	data, err := c.do(ctx, http.MethodPost, endpoint, query, body)
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal(data, &out); err != nil {
		return out, errors.BadResponseError("Failed to decode backend response").WithError(err)
	}

	return out, nil
}
