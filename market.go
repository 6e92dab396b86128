package cryptoapi

import (
	"context"

	"github.com/nirholas/crypto-data-aggregator/internal/api"
)

// Default parameter values for the coin listing endpoint.
const (
	DefaultPage    = 1
	DefaultPerPage = 100
	DefaultOrder   = "market_cap_desc"
)

// CoinsParams are the optional parameters for GetCoins. Zero values
// fall back to the documented defaults. IDs filters to a
// comma-separated list of coin IDs and is omitted when empty.
// Sparkline requests 7-day sparkline data; when false the parameter is
// not sent at all.
type CoinsParams struct {
	Page      int
	PerPage   int
	Order     string
	IDs       string
	Sparkline bool
}

// GetCoins lists coins with market data. params may be nil for the
// defaults (page 1, 100 per page, ordered by market cap descending).
func (c *Client) GetCoins(ctx context.Context, params *CoinsParams) (map[string]any, error) {
	p := api.CoinsParams{
		Page:    DefaultPage,
		PerPage: DefaultPerPage,
		Order:   DefaultOrder,
	}
	if params != nil {
		if params.Page > 0 {
			p.Page = params.Page
		}
		if params.PerPage > 0 {
			p.PerPage = params.PerPage
		}
		if params.Order != "" {
			p.Order = params.Order
		}
		p.IDs = params.IDs
		p.Sparkline = params.Sparkline
	}

	result, err := c.api.GetCoins(ctx, p)
	return finish("coins", result, err)
}

// GetCoin retrieves detailed info for a specific coin, e.g. "bitcoin"
// or "ethereum".
func (c *Client) GetCoin(ctx context.Context, id string) (map[string]any, error) {
	result, err := c.api.GetCoin(ctx, id)
	return finish("coin", result, err)
}

// GetGlobal retrieves global market statistics including total market
// cap and dominance.
func (c *Client) GetGlobal(ctx context.Context) (map[string]any, error) {
	result, err := c.api.GetGlobal(ctx)
	return finish("global", result, err)
}

// TickerParams are the optional parameters for GetTicker. Symbol is a
// single symbol ("BTC"); Symbols is a comma-separated list. Empty
// values are omitted.
type TickerParams struct {
	Symbol  string
	Symbols string
}

// GetTicker retrieves real-time ticker data. params may be nil.
func (c *Client) GetTicker(ctx context.Context, params *TickerParams) (map[string]any, error) {
	var symbol, symbols string
	if params != nil {
		symbol = params.Symbol
		symbols = params.Symbols
	}
	result, err := c.api.GetTicker(ctx, symbol, symbols)
	return finish("ticker", result, err)
}

// DefaultHistoricalDays is used when GetHistorical receives days <= 0.
const DefaultHistoricalDays = 30

// GetHistorical retrieves historical prices, market caps, and volumes
// for a coin. Valid day counts are 1, 7, 14, 30, 90, 180 and 365;
// days <= 0 falls back to 30.
func (c *Client) GetHistorical(ctx context.Context, id string, days int) (map[string]any, error) {
	if days <= 0 {
		days = DefaultHistoricalDays
	}
	result, err := c.api.GetHistorical(ctx, id, days)
	return finish("historical", result, err)
}
