package api

import (
	"errors"
	"strings"
	"testing"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()
	err := &APIError{Message: "invalid coin id", Code: "INVALID_PARAM", StatusCode: 400}
	msg := err.Error()
	for _, want := range []string{"400", "INVALID_PARAM", "invalid coin id"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, want it to contain %q", msg, want)
		}
	}
}

func TestRateLimitError_Error(t *testing.T) {
	t.Parallel()
	err := &RateLimitError{RetryAfter: 45}
	if !strings.Contains(err.Error(), "45") {
		t.Errorf("Error() = %q, want retry-after seconds included", err.Error())
	}
}

func TestPaymentRequiredError_Error(t *testing.T) {
	t.Parallel()
	with := &PaymentRequiredError{PaymentInfo: "pay 0.01 USDC"}
	if !strings.Contains(with.Error(), "pay 0.01 USDC") {
		t.Errorf("Error() = %q, want payment info included", with.Error())
	}

	without := &PaymentRequiredError{}
	if without.Error() != "payment required" {
		t.Errorf("Error() = %q, want plain message without info", without.Error())
	}
}

func TestNetworkError_Unwrap(t *testing.T) {
	t.Parallel()
	cause := errors.New("dial tcp: connection refused")
	err := &NetworkError{Err: cause, URL: "https://example.com/api/v2/coins"}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped transport error")
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Error() = %q, want cause included", err.Error())
	}
}
