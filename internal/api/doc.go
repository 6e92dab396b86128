// Package api implements the HTTP transport layer for the Crypto Data
// Aggregator v2 API.
//
// It handles request composition (URL, headers, JSON bodies), ordered
// query-string construction, rate-limit header capture, and the mapping
// of HTTP failures to typed errors. The public SDK package wraps this
// layer and should be used by applications instead.
//
// The client is synchronous: one outbound request per call, no retries,
// no caching beyond the diagnostic rate-limit snapshot.
package api
