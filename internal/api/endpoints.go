package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CoinsParams are the query parameters for the coin listing endpoint.
// IDs is omitted when empty; Sparkline is sent as "true" only when set,
// never as "false".
type CoinsParams struct {
	Page      int
	PerPage   int
	Order     string
	IDs       string
	Sparkline bool
}

// GetCoins lists coins with market data.
func (c *Client) GetCoins(ctx context.Context, p CoinsParams) (map[string]any, error) {
	q := NewQuery().
		AddInt("page", p.Page).
		AddInt("per_page", p.PerPage).
		Add("order", p.Order).
		AddIfSet("ids", p.IDs)
	if p.Sparkline {
		q.Add("sparkline", "true")
	}
	return c.Do(ctx, http.MethodGet, "/coins"+q.Encode(), nil, "")
}

// GetCoin retrieves detailed info for a single coin.
func (c *Client) GetCoin(ctx context.Context, id string) (map[string]any, error) {
	return c.Do(ctx, http.MethodGet, fmt.Sprintf("/coin/%s", url.PathEscape(id)), nil, "")
}

// GetGlobal retrieves global market statistics.
func (c *Client) GetGlobal(ctx context.Context) (map[string]any, error) {
	return c.Do(ctx, http.MethodGet, "/global", nil, "")
}

// GetTicker retrieves real-time ticker data. Both parameters are
// optional; empty values are omitted from the query.
func (c *Client) GetTicker(ctx context.Context, symbol, symbols string) (map[string]any, error) {
	q := NewQuery().
		AddIfSet("symbol", symbol).
		AddIfSet("symbols", symbols)
	return c.Do(ctx, http.MethodGet, "/ticker"+q.Encode(), nil, "")
}

// GetHistorical retrieves historical price data for a coin over the
// given number of days.
func (c *Client) GetHistorical(ctx context.Context, id string, days int) (map[string]any, error) {
	q := NewQuery().AddInt("days", days)
	path := fmt.Sprintf("/historical/%s%s", url.PathEscape(id), q.Encode())
	return c.Do(ctx, http.MethodGet, path, nil, "")
}

// GetDeFi retrieves DeFi protocol data. category is optional.
func (c *Client) GetDeFi(ctx context.Context, limit int, category string) (map[string]any, error) {
	q := NewQuery().
		AddInt("limit", limit).
		AddIfSet("category", category)
	return c.Do(ctx, http.MethodGet, "/defi"+q.Encode(), nil, "")
}

// GetGas retrieves gas prices for the given network.
func (c *Client) GetGas(ctx context.Context, network string) (map[string]any, error) {
	q := NewQuery().Add("network", network)
	return c.Do(ctx, http.MethodGet, "/gas"+q.Encode(), nil, "")
}

// GetTrending retrieves currently trending coins.
func (c *Client) GetTrending(ctx context.Context) (map[string]any, error) {
	return c.Do(ctx, http.MethodGet, "/trending", nil, "")
}

// Search searches coins and exchanges by free-text query. The query
// is escaped as a query-string value, so "&" and "=" in the text are
// encoded rather than splitting the parameter.
func (c *Client) Search(ctx context.Context, query string) (map[string]any, error) {
	path := fmt.Sprintf("/search?q=%s", url.QueryEscape(query))
	return c.Do(ctx, http.MethodGet, path, nil, "")
}

// GetVolatility retrieves volatility metrics. ids is optional.
func (c *Client) GetVolatility(ctx context.Context, ids string) (map[string]any, error) {
	q := NewQuery().AddIfSet("ids", ids)
	return c.Do(ctx, http.MethodGet, "/volatility"+q.Encode(), nil, "")
}

// BatchItem is a single request within a batch call.
type BatchItem struct {
	Endpoint string         `json:"endpoint"`
	Params   map[string]any `json:"params,omitempty"`
}

// Batch executes multiple API calls in one request.
func (c *Client) Batch(ctx context.Context, requests []BatchItem) (map[string]any, error) {
	body := map[string]any{"requests": requests}
	return c.Do(ctx, http.MethodPost, "/batch", body, "")
}

// GraphQL executes a GraphQL query. variables is omitted from the body
// when nil or empty.
func (c *Client) GraphQL(ctx context.Context, query string, variables map[string]any) (map[string]any, error) {
	body := map[string]any{"query": query}
	if len(variables) > 0 {
		body["variables"] = variables
	}
	return c.Do(ctx, http.MethodPost, "/graphql", body, "")
}

// Health checks API health status.
func (c *Client) Health(ctx context.Context) (map[string]any, error) {
	return c.Do(ctx, http.MethodGet, "/health", nil, "")
}

// Info retrieves API documentation info from the service root.
func (c *Client) Info(ctx context.Context) (map[string]any, error) {
	return c.Do(ctx, http.MethodGet, "", nil, "")
}

// OpenAPI retrieves the OpenAPI specification document.
func (c *Client) OpenAPI(ctx context.Context) (map[string]any, error) {
	return c.Do(ctx, http.MethodGet, "/openapi.json", nil, "")
}
