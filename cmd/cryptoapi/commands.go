package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	cryptoapi "github.com/nirholas/crypto-data-aggregator"
)

// printJSON pretty-prints an API response document.
func printJSON(doc map[string]any) error {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// printRateLimit shows the snapshot from the last response, if any.
func printRateLimit(client *cryptoapi.Client) {
	if info, ok := client.RateLimit(); ok {
		color.New(color.Faint).Fprintf(os.Stderr, "rate limit: %d/%d remaining\n", info.Remaining, info.Limit)
	}
}

var coinsCmd = &cobra.Command{
	Use:   "coins",
	Short: "List coins with market data",
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		perPage, _ := cmd.Flags().GetInt("per-page")
		order, _ := cmd.Flags().GetString("order")
		ids, _ := cmd.Flags().GetString("ids")
		sparkline, _ := cmd.Flags().GetBool("sparkline")

		client := newClient()
		result, err := client.GetCoins(context.Background(), &cryptoapi.CoinsParams{
			Page:      page,
			PerPage:   perPage,
			Order:     order,
			IDs:       ids,
			Sparkline: sparkline,
		})
		if err != nil {
			return err
		}
		defer printRateLimit(client)

		coins, ok := result["data"].([]any)
		if !ok {
			return printJSON(result)
		}

		bold := color.New(color.Bold)
		green := color.New(color.FgGreen)
		bold.Printf("%-16s %-24s %16s\n", "ID", "NAME", "PRICE (USD)")
		for _, item := range coins {
			coin, ok := item.(map[string]any)
			if !ok {
				continue
			}
			price := "-"
			if p, ok := coin["price"].(float64); ok {
				price = decimal.NewFromFloat(p).StringFixed(2)
			}
			fmt.Printf("%-16v %-24v ", coin["id"], coin["name"])
			green.Printf("%16s\n", price)
		}
		return nil
	},
}

var coinCmd = &cobra.Command{
	Use:   "coin <id>",
	Short: "Show detailed info for a coin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		result, err := client.GetCoin(context.Background(), args[0])
		if err != nil {
			return err
		}
		defer printRateLimit(client)
		return printJSON(result)
	},
}

var globalCmd = &cobra.Command{
	Use:   "global",
	Short: "Show global market statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := newClient().GetGlobal(context.Background())
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var tickerCmd = &cobra.Command{
	Use:   "ticker",
	Short: "Show real-time ticker data",
	RunE: func(cmd *cobra.Command, args []string) error {
		symbol, _ := cmd.Flags().GetString("symbol")
		symbols, _ := cmd.Flags().GetString("symbols")

		result, err := newClient().GetTicker(context.Background(), &cryptoapi.TickerParams{
			Symbol:  symbol,
			Symbols: symbols,
		})
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history <id>",
	Short: "Show historical price data for a coin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")
		result, err := newClient().GetHistorical(context.Background(), args[0], days)
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var defiCmd = &cobra.Command{
	Use:   "defi",
	Short: "List DeFi protocols with TVL data",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		category, _ := cmd.Flags().GetString("category")

		result, err := newClient().GetDeFi(context.Background(), &cryptoapi.DeFiParams{
			Limit:    limit,
			Category: category,
		})
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var gasCmd = &cobra.Command{
	Use:   "gas",
	Short: "Show gas prices",
	RunE: func(cmd *cobra.Command, args []string) error {
		network, _ := cmd.Flags().GetString("network")
		result, err := newClient().GetGas(context.Background(), network)
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Show trending coins",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := newClient().GetTrending(context.Background())
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search coins and exchanges",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := newClient().Search(context.Background(), args[0])
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var volatilityCmd = &cobra.Command{
	Use:   "volatility",
	Short: "Show volatility metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, _ := cmd.Flags().GetString("ids")
		result, err := newClient().GetVolatility(context.Background(), ids)
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check API health",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := newClient().Health(context.Background())
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var webhooksCmd = &cobra.Command{
	Use:   "webhooks",
	Short: "Manage webhook subscriptions",
}

var webhooksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List webhook subscriptions",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := newClient().ListWebhooks(context.Background())
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var webhooksCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a webhook subscription",
	RunE: func(cmd *cobra.Command, args []string) error {
		url, _ := cmd.Flags().GetString("url")
		events, _ := cmd.Flags().GetStringSlice("events")
		secret, _ := cmd.Flags().GetString("secret")

		if url == "" || len(events) == 0 {
			return fmt.Errorf("--url and --events are required")
		}

		result, err := newClient().CreateWebhook(context.Background(), &cryptoapi.CreateWebhookParams{
			URL:    url,
			Events: events,
			Secret: secret,
		})
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var webhooksDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a webhook subscription",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := newClient().DeleteWebhook(context.Background(), args[0])
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

func init() {
	coinsCmd.Flags().Int("page", 1, "page number")
	coinsCmd.Flags().Int("per-page", 100, "results per page (max 250)")
	coinsCmd.Flags().String("order", "market_cap_desc", "sort order")
	coinsCmd.Flags().String("ids", "", "comma-separated coin IDs to filter")
	coinsCmd.Flags().Bool("sparkline", false, "include 7-day sparkline data")

	tickerCmd.Flags().String("symbol", "", "single symbol, e.g. BTC")
	tickerCmd.Flags().String("symbols", "", "comma-separated symbols")

	historyCmd.Flags().Int("days", 30, "number of days (1, 7, 14, 30, 90, 180, 365)")

	defiCmd.Flags().Int("limit", 50, "number of protocols")
	defiCmd.Flags().String("category", "", "filter by category, e.g. DEX or Lending")

	gasCmd.Flags().String("network", "all", "network (all, ethereum, bitcoin)")

	volatilityCmd.Flags().String("ids", "", "comma-separated coin IDs")

	webhooksCreateCmd.Flags().String("url", "", "webhook delivery URL")
	webhooksCreateCmd.Flags().StringSlice("events", nil, "events to subscribe to")
	webhooksCreateCmd.Flags().String("secret", "", "secret for HMAC signature verification")

	webhooksCmd.AddCommand(webhooksListCmd)
	webhooksCmd.AddCommand(webhooksCreateCmd)
	webhooksCmd.AddCommand(webhooksDeleteCmd)
}
