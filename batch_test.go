package cryptoapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestBatch(t *testing.T) {
	t.Parallel()
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v2/batch" {
			t.Errorf("request = %s %s, want POST /api/v2/batch", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&body)
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	})

	_, err := client.Batch(context.Background(), []BatchRequest{
		{Endpoint: "coins", Params: map[string]any{"page": 1}},
		{Endpoint: "global"},
		{Endpoint: "trending"},
	})
	if err != nil {
		t.Fatalf("Batch() error = %v", err)
	}

	requests, ok := body["requests"].([]any)
	if !ok {
		t.Fatalf("body = %v, want requests list", body)
	}
	if len(requests) != 3 {
		t.Fatalf("len(requests) = %d, want 3", len(requests))
	}
	first := requests[0].(map[string]any)
	params := first["params"].(map[string]any)
	if first["endpoint"] != "coins" || params["page"] != float64(1) {
		t.Errorf("first request = %v, want coins with page=1", first)
	}
}

func TestGraphQL(t *testing.T) {
	t.Parallel()
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v2/graphql" {
			t.Errorf("request = %s %s, want POST /api/v2/graphql", r.Method, r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&body)
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"coins": nil}})
	})

	query := "{ coins(page: 1) { coins { id name price } } }"
	result, err := client.GraphQL(context.Background(), query, nil)
	if err != nil {
		t.Fatalf("GraphQL() error = %v", err)
	}

	if body["query"] != query {
		t.Errorf("body query = %v, want query passed through", body["query"])
	}
	if _, present := body["variables"]; present {
		t.Error("variables should be omitted when nil")
	}
	if _, ok := result["data"]; !ok {
		t.Errorf("result = %v, want data key", result)
	}
}
