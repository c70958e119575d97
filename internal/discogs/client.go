package discogs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"shellac/internal/logging"
)

// Client provides access to the Discogs API for release lookups.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// New creates a Discogs client.
func New(baseURL, userAgent string, logger *slog.Logger, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("discogs base url required")
	}
	userAgent = strings.TrimSpace(userAgent)
	if userAgent == "" {
		return nil, errors.New("discogs user agent required")
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logging.NewComponentLogger(logger, "discogs"),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// GetRelease fetches the canonical release document for the given external id.
// A nil document with a nil error means the upstream had no data (any non-2xx
// status); callers must not treat that as retryable.
func (c *Client) GetRelease(ctx context.Context, id int64) (*Document, error) {
	if id <= 0 {
		return nil, errors.New("release id must be positive")
	}

	endpoint := fmt.Sprintf("%s/releases/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("upstream returned non-success status",
			logging.Int64(logging.FieldReleaseID, id),
			logging.Int("status", resp.StatusCode),
			logging.String("url", endpoint),
			logging.Any("headers", flattenHeaders(resp.Header)),
			logging.Duration("latency", latency))
		return nil, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var release Release
	if err := json.Unmarshal(raw, &release); err != nil {
		return nil, fmt.Errorf("decode release %d: %w", id, err)
	}

	c.logger.Debug("fetched release from upstream",
		logging.Int64(logging.FieldReleaseID, id),
		logging.Duration("latency", latency))

	return &Document{Release: release, Raw: raw}, nil
}

func flattenHeaders(header http.Header) map[string]string {
	flat := make(map[string]string, len(header))
	for key, values := range header {
		flat[key] = strings.Join(values, ", ")
	}
	return flat
}
