package cryptoapi

import (
	"errors"
	"fmt"

	"github.com/nirholas/crypto-data-aggregator/internal/api"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrPaymentRequired is returned when an endpoint demands an x402
	// payment the request did not carry.
	ErrPaymentRequired = errors.New("payment required")

	// ErrConnection is returned when no HTTP response was received at
	// all (DNS failure, connection refused, timeout).
	ErrConnection = errors.New("connection error")
)

// CryptoAPIError is implemented by all SDK errors.
type CryptoAPIError interface {
	error
	CryptoAPIError() // marker method
}

// APIError represents a non-2xx response other than 402 and 429. It
// carries the server's error payload; Message and Code fall back to
// "Request failed" / "UNKNOWN" when the payload omits them.
type APIError struct {
	Message    string
	Code       string
	StatusCode int
	Details    any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d [%s]: %s", e.StatusCode, e.Code, e.Message)
}

// CryptoAPIError implements the CryptoAPIError interface.
func (e *APIError) CryptoAPIError() {}

// RateLimitError represents a 429 response. RetryAfter is the wait in
// seconds suggested by the Retry-After header (60 when absent).
type RateLimitError struct {
	RetryAfter int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %ds", e.RetryAfter)
}

// CryptoAPIError implements the CryptoAPIError interface.
func (e *RateLimitError) CryptoAPIError() {}

// Is implements errors.Is for sentinel error matching.
func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}

// PaymentRequiredError represents a 402 response. PaymentInfo is the
// verbatim X-Payment-Required header value, if the server sent one.
type PaymentRequiredError struct {
	PaymentInfo string
}

func (e *PaymentRequiredError) Error() string {
	if e.PaymentInfo != "" {
		return fmt.Sprintf("payment required: %s", e.PaymentInfo)
	}
	return "payment required"
}

// CryptoAPIError implements the CryptoAPIError interface.
func (e *PaymentRequiredError) CryptoAPIError() {}

// Is implements errors.Is for sentinel error matching.
func (e *PaymentRequiredError) Is(target error) bool {
	return target == ErrPaymentRequired
}

// ConnectionError represents a transport-level failure; no HTTP status
// is available.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error: %v", e.Err)
}

// Unwrap returns the underlying transport error.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// CryptoAPIError implements the CryptoAPIError interface.
func (e *ConnectionError) CryptoAPIError() {}

// Is implements errors.Is for sentinel error matching.
func (e *ConnectionError) Is(target error) bool {
	return target == ErrConnection
}

// wrapError converts internal API errors to public errors so that
// errors.Is and errors.As work against the exported taxonomy.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var rlErr *api.RateLimitError
	if errors.As(err, &rlErr) {
		return &RateLimitError{RetryAfter: rlErr.RetryAfter}
	}

	var payErr *api.PaymentRequiredError
	if errors.As(err, &payErr) {
		return &PaymentRequiredError{PaymentInfo: payErr.PaymentInfo}
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			Message:    apiErr.Message,
			Code:       apiErr.Code,
			StatusCode: apiErr.StatusCode,
			Details:    apiErr.Details,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &ConnectionError{Err: netErr.Err}
	}

	return err
}
