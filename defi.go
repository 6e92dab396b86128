package cryptoapi

import (
	"context"
)

// DefaultDeFiLimit is used when DeFiParams.Limit is unset.
const DefaultDeFiLimit = 50

// DeFiParams are the optional parameters for GetDeFi. Category
// filters protocols (e.g. "DEX", "Lending") and is omitted when empty.
type DeFiParams struct {
	Limit    int
	Category string
}

// GetDeFi retrieves DeFi protocols with TVL data. params may be nil.
func (c *Client) GetDeFi(ctx context.Context, params *DeFiParams) (map[string]any, error) {
	limit := DefaultDeFiLimit
	var category string
	if params != nil {
		if params.Limit > 0 {
			limit = params.Limit
		}
		category = params.Category
	}
	result, err := c.api.GetDeFi(ctx, limit, category)
	return finish("defi", result, err)
}

// DefaultGasNetwork is used when GetGas receives an empty network.
const DefaultGasNetwork = "all"

// GetGas retrieves gas prices. network is "all", "ethereum" or
// "bitcoin"; empty falls back to "all".
func (c *Client) GetGas(ctx context.Context, network string) (map[string]any, error) {
	if network == "" {
		network = DefaultGasNetwork
	}
	result, err := c.api.GetGas(ctx, network)
	return finish("gas", result, err)
}
