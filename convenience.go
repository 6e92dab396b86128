package cryptoapi

import (
	"context"

	"github.com/shopspring/decimal"
)

// Quick helpers for one-off lookups. Each builds a default
// unauthenticated client, calls a single operation, and extracts one
// field. For anything beyond a single call, construct a Client.

// GetBitcoinPrice returns the current Bitcoin price in USD, or zero
// when the response carries no price field.
func GetBitcoinPrice() (decimal.Decimal, error) {
	return quickPrice("bitcoin")
}

// GetEthereumPrice returns the current Ethereum price in USD, or zero
// when the response carries no price field.
func GetEthereumPrice() (decimal.Decimal, error) {
	return quickPrice("ethereum")
}

func quickPrice(id string) (decimal.Decimal, error) {
	client := New()
	result, err := client.GetCoin(context.Background(), id)
	if err != nil {
		return decimal.Zero, err
	}
	return priceFromDocument(result), nil
}

// GetTopCoins returns the top coins by market cap.
func GetTopCoins(limit int) ([]map[string]any, error) {
	client := New()
	result, err := client.GetCoins(context.Background(), &CoinsParams{PerPage: limit})
	if err != nil {
		return nil, err
	}
	return coinsFromDocument(result), nil
}

// priceFromDocument extracts data.price from a coin detail document,
// zero when absent.
func priceFromDocument(doc map[string]any) decimal.Decimal {
	data, ok := doc["data"].(map[string]any)
	if !ok {
		return decimal.Zero
	}
	price, ok := data["price"].(float64)
	if !ok {
		return decimal.Zero
	}
	return decimal.NewFromFloat(price)
}

// coinsFromDocument extracts the data list from a coin listing
// document, nil when absent.
func coinsFromDocument(doc map[string]any) []map[string]any {
	items, ok := doc["data"].([]any)
	if !ok {
		return nil
	}
	coins := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if coin, ok := item.(map[string]any); ok {
			coins = append(coins, coin)
		}
	}
	return coins
}
