package cryptoapi

import (
	"context"

	"github.com/nirholas/crypto-data-aggregator/internal/api"
)

// BatchRequest is a single request within a Batch call. Endpoint is
// the bare endpoint name ("coins", "global", "trending"); Params maps
// to that endpoint's query parameters and may be nil.
type BatchRequest struct {
	Endpoint string
	Params   map[string]any
}

// Batch executes multiple API calls in one round trip:
//
//	results, err := client.Batch(ctx, []cryptoapi.BatchRequest{
//	    {Endpoint: "coins", Params: map[string]any{"page": 1}},
//	    {Endpoint: "global"},
//	    {Endpoint: "trending"},
//	})
func (c *Client) Batch(ctx context.Context, requests []BatchRequest) (map[string]any, error) {
	items := make([]api.BatchItem, 0, len(requests))
	for _, r := range requests {
		items = append(items, api.BatchItem{Endpoint: r.Endpoint, Params: r.Params})
	}
	result, err := c.api.Batch(ctx, items)
	return finish("batch", result, err)
}

// GraphQL executes a GraphQL query against the API's graph schema.
// variables may be nil and is then omitted from the request body:
//
//	result, err := client.GraphQL(ctx, `
//	    {
//	        coins(page: 1, perPage: 10) {
//	            coins { id name price marketCap }
//	        }
//	        global { totalMarketCap btcDominance }
//	    }
//	`, nil)
func (c *Client) GraphQL(ctx context.Context, query string, variables map[string]any) (map[string]any, error) {
	result, err := c.api.GraphQL(ctx, query, variables)
	return finish("graphql", result, err)
}
