package cryptoapi

import (
	"net/http"
	"time"
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	apiKey     string
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	debug      bool
}

// Option configures the client.
type Option func(*clientConfig)

// WithAPIKey sets the API key sent as the X-API-Key header. Without
// it the client is unauthenticated.
func WithAPIKey(apiKey string) Option {
	return func(c *clientConfig) {
		c.apiKey = apiKey
	}
}

// WithBaseURL overrides the API base URL, e.g. for a self-hosted
// deployment or a test server.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithTimeout sets the per-request timeout. Default: 30 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client. Useful for
// custom transports, proxies, or TLS settings.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithDebugLogging dumps every HTTP round trip through zerolog at
// debug level.
func WithDebugLogging() Option {
	return func(c *clientConfig) {
		c.debug = true
	}
}
