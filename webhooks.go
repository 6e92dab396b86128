package cryptoapi

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/nirholas/crypto-data-aggregator/internal/api"
)

// CreateWebhookParams describe a webhook subscription. Secret is
// optional; when set, the server signs each delivery with
// HMAC-SHA256 over the payload (see VerifyWebhookSignature).
type CreateWebhookParams struct {
	URL    string
	Events []string
	Secret string
}

// ListWebhooks returns all webhook subscriptions for the API key.
func (c *Client) ListWebhooks(ctx context.Context) (map[string]any, error) {
	result, err := c.api.ListWebhooks(ctx)
	return finish("webhooks", result, err)
}

// CreateWebhook registers a webhook subscription. params must be
// non-nil; there is no default subscription.
func (c *Client) CreateWebhook(ctx context.Context, params *CreateWebhookParams) (map[string]any, error) {
	if params == nil {
		return nil, errors.New("webhook params cannot be nil")
	}
	req := &api.CreateWebhookRequest{
		URL:    params.URL,
		Events: params.Events,
		Secret: params.Secret,
	}
	result, err := c.api.CreateWebhook(ctx, req)
	return finish("webhooks", result, err)
}

// DeleteWebhook removes a webhook subscription by ID.
func (c *Client) DeleteWebhook(ctx context.Context, id string) (map[string]any, error) {
	result, err := c.api.DeleteWebhook(ctx, id)
	return finish("webhooks", result, err)
}

// VerifyWebhookSignature reports whether signature is the
// hex-encoded HMAC-SHA256 of payload under the webhook secret.
// Comparison is constant-time. Use it in webhook receivers to
// authenticate deliveries from subscriptions created with a secret.
func VerifyWebhookSignature(payload []byte, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
