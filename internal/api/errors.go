package api

import (
	"fmt"
)

// APIError is any non-2xx response other than 402 and 429. Message and
// Code default to "Request failed" / "UNKNOWN" when the error payload
// omits them.
type APIError struct {
	Message    string
	Code       string
	StatusCode int
	Details    any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d [%s]: %s", e.StatusCode, e.Code, e.Message)
}

// RateLimitError is a 429 response. RetryAfter is the server-suggested
// wait in seconds (default 60 when the header is absent or unparsable).
type RateLimitError struct {
	RetryAfter int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %ds", e.RetryAfter)
}

// PaymentRequiredError is a 402 response from the x402 payment flow.
// PaymentInfo is the verbatim X-Payment-Required header value, if any.
type PaymentRequiredError struct {
	PaymentInfo string
}

func (e *PaymentRequiredError) Error() string {
	if e.PaymentInfo != "" {
		return fmt.Sprintf("payment required: %s", e.PaymentInfo)
	}
	return "payment required"
}

// NetworkError is a transport-level failure: no HTTP response was
// received (DNS, connection refused, timeout).
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("connection error: %v", e.Err)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}
