// Package statsapi is a small client for the public MLB stats API
// transactions endpoint. It handles request construction, retries with a
// growing pause and JSON decoding; classification of the records happens
// elsewhere.
package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"iltracker/internal/logging"
)

// Defaults used when an Options field is left at its zero value. They match
// what the public endpoint is known to tolerate.
const (
	DefaultBaseURL     = "https://statsapi.mlb.com/api/v1/transactions"
	DefaultSportID     = 1
	DefaultTimeout     = 120 * time.Second
	DefaultMaxAttempts = 3
	DefaultRetryPause  = 1500 * time.Millisecond
)

// Options configures a Client.
type Options struct {
	BaseURL     string
	SportID     int
	Timeout     time.Duration
	MaxAttempts int
	RetryPause  time.Duration
}

// Client fetches transaction records over HTTP.
type Client struct {
	baseURL     string
	sportID     int
	maxAttempts int
	retryPause  time.Duration
	httpClient  *http.Client
	logger      logging.Logger
}

// NewClient creates a Client. Zero-valued options fall back to the package
// defaults; a nil logger falls back to the default logger.
func NewClient(opts Options, logger logging.Logger) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.SportID == 0 {
		opts.SportID = DefaultSportID
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxAttempts == 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.RetryPause == 0 {
		opts.RetryPause = DefaultRetryPause
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	return &Client{
		baseURL:     opts.BaseURL,
		sportID:     opts.SportID,
		maxAttempts: opts.MaxAttempts,
		retryPause:  opts.RetryPause,
		httpClient:  &http.Client{Timeout: opts.Timeout},
		logger:      logger,
	}
}

// SetLogger replaces the client's logger.
func (c *Client) SetLogger(logger logging.Logger) {
	if logger != nil {
		c.logger = logger
	}
}

// FetchTransactions returns all transactions with dates in the inclusive
// range startDate..endDate (both "YYYY-MM-DD"). Failed requests are retried
// with a pause that grows linearly per attempt; once every attempt has
// failed the result is a *FetchError wrapping the last cause.
func (c *Client) FetchTransactions(ctx context.Context, startDate, endDate string) ([]Transaction, error) {
	reqURL := c.buildURL(startDate, endDate)

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		transactions, err := c.fetchOnce(ctx, reqURL)
		if err == nil {
			c.logger.Debug("Fetched transactions",
				logging.Field{Key: logging.FieldURL, Value: reqURL},
				logging.Field{Key: logging.FieldCount, Value: len(transactions)})
			return transactions, nil
		}
		lastErr = err
		c.logger.WithError(err).Warn("Transactions request failed",
			logging.Field{Key: logging.FieldURL, Value: reqURL},
			logging.Field{Key: logging.FieldAttempt, Value: attempt})

		if attempt == c.maxAttempts {
			break
		}
		select {
		case <-time.After(time.Duration(attempt) * c.retryPause):
		case <-ctx.Done():
			return nil, NewFetchError(reqURL, attempt, ctx.Err())
		}
	}

	return nil, NewFetchError(reqURL, c.maxAttempts, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, reqURL string) ([]Transaction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload TransactionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return payload.Transactions, nil
}

func (c *Client) buildURL(startDate, endDate string) string {
	params := url.Values{}
	params.Set("startDate", startDate)
	params.Set("endDate", endDate)
	params.Set("sportId", strconv.Itoa(c.sportID))
	return c.baseURL + "?" + params.Encode()
}
