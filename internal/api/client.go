package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://crypto-data-aggregator.vercel.app"

	// APIVersion selects the versioned base path (/api/v2).
	APIVersion = "v2"

	// DefaultTimeout bounds a single request/response exchange.
	DefaultTimeout = 30 * time.Second

	userAgent = "CryptoAPI-SDK-Go/2.0"
)

// RateLimitInfo is the rate-limit snapshot extracted from the most
// recently completed response. ResetAt is in Unix milliseconds, or 0
// when the server sent no reset header.
type RateLimitInfo struct {
	Remaining int
	Limit     int
	ResetAt   int64
}

// Client is the HTTP API client.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu        sync.RWMutex
	apiKey    string
	rateLimit *RateLimitInfo
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithDebugLogging wraps the transport so every round trip is dumped
// through zerolog at debug level.
func WithDebugLogging() Option {
	return func(c *Client) {
		base := c.httpClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		c.httpClient.Transport = &debugTransport{base: base}
	}
}

// New creates an API client. An empty apiKey produces an
// unauthenticated client; the X-API-Key header is then omitted.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SetAPIKey replaces the API key. Takes effect on subsequent requests
// only; in-flight requests keep the key they were issued with.
func (c *Client) SetAPIKey(apiKey string) {
	c.mu.Lock()
	c.apiKey = apiKey
	c.mu.Unlock()
}

// RateLimit returns the last-observed rate-limit snapshot. ok is false
// until a response carrying both the remaining and limit headers has
// completed.
func (c *Client) RateLimit() (RateLimitInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.rateLimit == nil {
		return RateLimitInfo{}, false
	}
	return *c.rateLimit, true
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do issues a single request against {baseURL}/api/{version}{endpoint}
// and returns the decoded JSON response document. body is JSON-encoded
// when non-nil. payment, when non-empty, is sent as the X-PAYMENT
// header for x402 flows.
func (c *Client) Do(ctx context.Context, method, endpoint string, body any, payment string) (map[string]any, error) {
	url := fmt.Sprintf("%s/api/%s%s", c.baseURL, APIVersion, endpoint)

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.mu.RLock()
	apiKey := c.apiKey
	c.mu.RUnlock()
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	if payment != "" {
		req.Header.Set("X-PAYMENT", payment)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err, URL: url}
	}
	defer resp.Body.Close()

	c.captureRateLimit(resp.Header)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err, URL: url}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var result map[string]any
		if len(data) == 0 {
			return map[string]any{}, nil
		}
		if err := json.Unmarshal(data, &result); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		return result, nil
	}

	return nil, parseErrorResponse(resp, data)
}

// captureRateLimit overwrites the snapshot when the response carries
// both the remaining and limit headers. Reset seconds are converted to
// milliseconds; a missing reset header records 0.
func (c *Client) captureRateLimit(header http.Header) {
	remaining := header.Get("X-RateLimit-Remaining")
	limit := header.Get("X-RateLimit-Limit")
	if remaining == "" || limit == "" {
		return
	}

	rem, err := strconv.Atoi(remaining)
	if err != nil {
		return
	}
	lim, err := strconv.Atoi(limit)
	if err != nil {
		return
	}

	var resetAt int64
	if reset := header.Get("X-RateLimit-Reset"); reset != "" {
		if sec, err := strconv.ParseInt(reset, 10, 64); err == nil {
			resetAt = sec * 1000
		}
	}

	c.mu.Lock()
	c.rateLimit = &RateLimitInfo{Remaining: rem, Limit: lim, ResetAt: resetAt}
	c.mu.Unlock()
}

// parseErrorResponse maps a non-2xx response to a typed error. The
// standard error payload is {error, code, details}; bodies that fail to
// decode degrade to a minimal payload built from the status line.
func parseErrorResponse(resp *http.Response, data []byte) error {
	var payload struct {
		Error   string `json:"error"`
		Code    string `json:"code"`
		Details any    `json:"details"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		payload.Error = resp.Status
		payload.Code = ""
		payload.Details = nil
	}

	switch resp.StatusCode {
	case http.StatusPaymentRequired:
		return &PaymentRequiredError{
			PaymentInfo: resp.Header.Get("X-Payment-Required"),
		}
	case http.StatusTooManyRequests:
		retryAfter := 60
		if v := resp.Header.Get("Retry-After"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				retryAfter = n
			}
		}
		return &RateLimitError{RetryAfter: retryAfter}
	}

	apiErr := &APIError{
		Message:    payload.Error,
		Code:       payload.Code,
		StatusCode: resp.StatusCode,
		Details:    payload.Details,
	}
	if apiErr.Message == "" {
		apiErr.Message = "Request failed"
	}
	if apiErr.Code == "" {
		apiErr.Code = "UNKNOWN"
	}
	return apiErr
}
