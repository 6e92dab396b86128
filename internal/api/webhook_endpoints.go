package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateWebhookRequest is the POST /webhooks body. Secret is optional
// and enables HMAC signing of deliveries.
type CreateWebhookRequest struct {
	URL    string   `json:"url"`
	Events []string `json:"events"`
	Secret string   `json:"secret,omitempty"`
}

// ListWebhooks returns all webhook subscriptions for the API key.
func (c *Client) ListWebhooks(ctx context.Context) (map[string]any, error) {
	return c.Do(ctx, http.MethodGet, "/webhooks", nil, "")
}

// CreateWebhook registers a new webhook subscription.
func (c *Client) CreateWebhook(ctx context.Context, req *CreateWebhookRequest) (map[string]any, error) {
	return c.Do(ctx, http.MethodPost, "/webhooks", req, "")
}

// DeleteWebhook removes a webhook subscription by ID. The ID travels
// as a query parameter, not a path segment, and is escaped as a
// query-string value so it cannot split or terminate the parameter.
func (c *Client) DeleteWebhook(ctx context.Context, id string) (map[string]any, error) {
	path := fmt.Sprintf("/webhooks?id=%s", url.QueryEscape(id))
	return c.Do(ctx, http.MethodDelete, path, nil, "")
}
