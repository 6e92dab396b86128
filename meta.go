package cryptoapi

import (
	"context"
)

// Health checks API health status.
func (c *Client) Health(ctx context.Context) (map[string]any, error) {
	result, err := c.api.Health(ctx)
	return finish("health", result, err)
}

// Info retrieves API documentation info from the service root.
func (c *Client) Info(ctx context.Context) (map[string]any, error) {
	result, err := c.api.Info(ctx)
	return finish("info", result, err)
}

// OpenAPI retrieves the API's OpenAPI specification document.
func (c *Client) OpenAPI(ctx context.Context) (map[string]any, error) {
	result, err := c.api.OpenAPI(ctx)
	return finish("openapi", result, err)
}
