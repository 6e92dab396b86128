package cryptoapi

import (
	"context"
)

// GetTrending retrieves currently trending cryptocurrencies.
func (c *Client) GetTrending(ctx context.Context) (map[string]any, error) {
	result, err := c.api.GetTrending(ctx)
	return finish("trending", result, err)
}

// Search searches for coins and exchanges matching the query
// (minimum 2 characters, enforced server-side).
func (c *Client) Search(ctx context.Context, query string) (map[string]any, error) {
	result, err := c.api.Search(ctx, query)
	return finish("search", result, err)
}

// GetVolatility retrieves volatility metrics including Sharpe ratio
// and risk levels. ids is a comma-separated list of coin IDs; empty
// means all tracked coins.
func (c *Client) GetVolatility(ctx context.Context, ids string) (map[string]any, error) {
	result, err := c.api.GetVolatility(ctx, ids)
	return finish("volatility", result, err)
}
