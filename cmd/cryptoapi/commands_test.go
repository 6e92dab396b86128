package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

// runCommand executes rootCmd against a capturing server and returns
// the query of the last request received.
func runCommand(t *testing.T, args ...string) (url.Values, string) {
	t.Helper()

	var query url.Values
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		path = r.URL.Path
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	}))
	t.Cleanup(server.Close)

	t.Cleanup(func() {
		flagBaseURL = ""
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs(append(args, "--base-url", server.URL))
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute(%v) error = %v", args, err)
	}
	return query, path
}

func TestCoinsCommand_FlagsToQuery(t *testing.T) {
	query, path := runCommand(t, "coins", "--page", "2", "--per-page", "10", "--sparkline")

	if path != "/api/v2/coins" {
		t.Errorf("path = %q, want /api/v2/coins", path)
	}
	if query.Get("page") != "2" || query.Get("per_page") != "10" {
		t.Errorf("query = %v, want page=2 and per_page=10", query)
	}
	if query.Get("sparkline") != "true" {
		t.Errorf("sparkline = %q, want true", query.Get("sparkline"))
	}
	if query.Has("ids") {
		t.Errorf("query = %v, ids should be omitted when not set", query)
	}
}

func TestGasCommand_FlagsToQuery(t *testing.T) {
	query, path := runCommand(t, "gas", "--network", "ethereum")

	if path != "/api/v2/gas" {
		t.Errorf("path = %q, want /api/v2/gas", path)
	}
	if query.Get("network") != "ethereum" {
		t.Errorf("network = %q, want ethereum", query.Get("network"))
	}
}
