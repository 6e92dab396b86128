package cryptoapi

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPriceFromDocument(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		doc  map[string]any
		want decimal.Decimal
	}{
		{
			name: "price present",
			doc:  map[string]any{"data": map[string]any{"price": 65000.5}},
			want: decimal.NewFromFloat(65000.5),
		},
		{
			name: "price missing",
			doc:  map[string]any{"data": map[string]any{"name": "Bitcoin"}},
			want: decimal.Zero,
		},
		{
			name: "data missing",
			doc:  map[string]any{},
			want: decimal.Zero,
		},
		{
			name: "data wrong shape",
			doc:  map[string]any{"data": []any{}},
			want: decimal.Zero,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := priceFromDocument(tt.doc); !got.Equal(tt.want) {
				t.Errorf("priceFromDocument() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCoinsFromDocument(t *testing.T) {
	t.Parallel()
	doc := map[string]any{
		"data": []any{
			map[string]any{"id": "bitcoin", "price": 65000.0},
			map[string]any{"id": "ethereum", "price": 3200.0},
			"garbage entry",
		},
	}

	coins := coinsFromDocument(doc)
	if len(coins) != 2 {
		t.Fatalf("len(coins) = %d, want 2 (non-map entries dropped)", len(coins))
	}
	if coins[0]["id"] != "bitcoin" || coins[1]["id"] != "ethereum" {
		t.Errorf("coins = %v, want bitcoin and ethereum in order", coins)
	}

	if got := coinsFromDocument(map[string]any{}); got != nil {
		t.Errorf("coinsFromDocument(empty) = %v, want nil", got)
	}
}
