// Package cryptoapi provides a Go client SDK for the Crypto Data
// Aggregator v2 API: market data, historical series, DeFi protocols,
// gas prices, trending coins, volatility metrics, batch requests,
// GraphQL queries, and webhook management.
//
// Basic usage:
//
//	client := cryptoapi.New(cryptoapi.WithAPIKey("cda_xxx"))
//
//	coins, err := client.GetCoins(ctx, &cryptoapi.CoinsParams{Page: 1, PerPage: 50})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	btc, err := client.GetCoin(ctx, "bitcoin")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// An API key is optional; unauthenticated clients share a lower rate
// limit. The snapshot from the most recent response is available via
// RateLimit:
//
//	if info, ok := client.RateLimit(); ok {
//	    fmt.Printf("%d/%d remaining\n", info.Remaining, info.Limit)
//	}
//
// Failures are typed: use errors.Is with ErrRateLimited,
// ErrPaymentRequired, or ErrConnection, or errors.As with *APIError to
// inspect the server's message, code, and details.
package cryptoapi
