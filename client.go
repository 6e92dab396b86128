package cryptoapi

import (
	"context"

	"github.com/nirholas/crypto-data-aggregator/internal/api"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = api.DefaultBaseURL

// RateLimitInfo is the rate-limit snapshot from the most recently
// completed request. ResetAt is in Unix milliseconds, 0 when the
// server sent no reset header.
type RateLimitInfo = api.RateLimitInfo

// Client is the Crypto Data Aggregator API client. It is safe for
// concurrent use; note that the rate-limit snapshot reflects whichever
// request completed last, not logical call order.
type Client struct {
	api *api.Client
}

// New creates a client. All options are optional; the zero
// configuration yields an unauthenticated client against the
// production API with a 30-second timeout.
func New(opts ...Option) *Client {
	cfg := &clientConfig{
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiOpts := []api.Option{
		api.WithBaseURL(cfg.baseURL),
	}
	if cfg.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(cfg.httpClient))
	}
	if cfg.timeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}
	if cfg.debug {
		apiOpts = append(apiOpts, api.WithDebugLogging())
	}

	return &Client{
		api: api.New(cfg.apiKey, apiOpts...),
	}
}

// SetAPIKey replaces the API key for all subsequent requests.
// In-flight requests are unaffected.
func (c *Client) SetAPIKey(apiKey string) {
	c.api.SetAPIKey(apiKey)
}

// RateLimit returns the last-observed rate-limit snapshot. ok is
// false until a response carrying rate-limit headers has completed.
func (c *Client) RateLimit() (RateLimitInfo, bool) {
	return c.api.RateLimit()
}

// requestConfig holds per-call request options.
type requestConfig struct {
	payment string
}

// RequestOption configures a single Do call.
type RequestOption func(*requestConfig)

// WithPaymentToken attaches an X-PAYMENT header to the request,
// supplying proof of payment for x402-gated endpoints.
func WithPaymentToken(token string) RequestOption {
	return func(rc *requestConfig) {
		rc.payment = token
	}
}

// Do issues a raw request against any endpoint under /api/v2. It is
// the escape hatch for endpoints without a dedicated method and for
// payment flows. body is JSON-encoded when non-nil.
func (c *Client) Do(ctx context.Context, method, endpoint string, body any, opts ...RequestOption) (map[string]any, error) {
	rc := &requestConfig{}
	for _, opt := range opts {
		opt(rc)
	}
	result, err := c.api.Do(ctx, method, endpoint, body, rc.payment)
	return finish("raw", result, err)
}

// finish records metrics for a completed operation and converts
// internal errors to the public taxonomy.
func finish(endpoint string, result map[string]any, err error) (map[string]any, error) {
	recordRequest(endpoint, err)
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}
