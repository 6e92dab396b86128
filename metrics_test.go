package cryptoapi

import (
	"errors"
	"testing"

	"github.com/nirholas/crypto-data-aggregator/internal/api"
)

func TestFailureKind(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		want string
	}{
		{&api.RateLimitError{RetryAfter: 60}, "rate_limited"},
		{&api.PaymentRequiredError{}, "payment_required"},
		{&api.NetworkError{Err: errors.New("refused")}, "connection"},
		{&api.APIError{StatusCode: 500}, "api"},
		{errors.New("something else"), "api"},
	}

	for _, tt := range tests {
		if got := failureKind(tt.err); got != tt.want {
			t.Errorf("failureKind(%T) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
