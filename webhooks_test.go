package cryptoapi

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"testing"
)

func TestWebhookLifecycle(t *testing.T) {
	t.Parallel()
	var (
		method string
		path   string
		query  string
		body   map[string]any
	)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		query = r.URL.RawQuery
		body = nil
		json.NewDecoder(r.Body).Decode(&body)
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"id": "wh_1"}})
	}, WithAPIKey("cda_key"))

	ctx := context.Background()

	if _, err := client.ListWebhooks(ctx); err != nil {
		t.Fatalf("ListWebhooks() error = %v", err)
	}
	if method != http.MethodGet || path != "/api/v2/webhooks" {
		t.Errorf("request = %s %s, want GET /api/v2/webhooks", method, path)
	}

	_, err := client.CreateWebhook(ctx, &CreateWebhookParams{
		URL:    "https://example.com/hook",
		Events: []string{"price.alert", "volume.spike"},
		Secret: "whsec_1",
	})
	if err != nil {
		t.Fatalf("CreateWebhook() error = %v", err)
	}
	if method != http.MethodPost {
		t.Errorf("method = %s, want POST", method)
	}
	events, ok := body["events"].([]any)
	if !ok || len(events) != 2 {
		t.Errorf("body events = %v, want 2 events", body["events"])
	}
	if body["secret"] != "whsec_1" {
		t.Errorf("body secret = %v, want whsec_1", body["secret"])
	}

	if _, err := client.DeleteWebhook(ctx, "wh_1"); err != nil {
		t.Fatalf("DeleteWebhook() error = %v", err)
	}
	if method != http.MethodDelete || query != "id=wh_1" {
		t.Errorf("request = %s ?%s, want DELETE ?id=wh_1", method, query)
	}
}

func TestCreateWebhook_NilParams(t *testing.T) {
	t.Parallel()
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		json.NewEncoder(w).Encode(map[string]any{"data": nil})
	})

	result, err := client.CreateWebhook(context.Background(), nil)
	if err == nil {
		t.Fatal("CreateWebhook(nil) should return an error")
	}
	if result != nil {
		t.Errorf("result = %v, want nil", result)
	}
	if called {
		t.Error("no request should be sent for nil params")
	}
}

func TestVerifyWebhookSignature(t *testing.T) {
	t.Parallel()
	payload := []byte(`{"event":"price.alert","coin":"bitcoin","price":65000}`)
	secret := "whsec_test"

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	signature := hex.EncodeToString(mac.Sum(nil))

	if !VerifyWebhookSignature(payload, signature, secret) {
		t.Error("valid signature rejected")
	}
	if VerifyWebhookSignature([]byte(`{"tampered":true}`), signature, secret) {
		t.Error("signature accepted for tampered payload")
	}
	if VerifyWebhookSignature(payload, signature, "wrong-secret") {
		t.Error("signature accepted under wrong secret")
	}
	if VerifyWebhookSignature(payload, "deadbeef", secret) {
		t.Error("bogus signature accepted")
	}
}
