package main

import (
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	cryptoapi "github.com/nirholas/crypto-data-aggregator"
)

var (
	flagAPIKey  string
	flagBaseURL string
	flagTimeout time.Duration
	flagDebug   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cryptoapi",
	Short: "Query the Crypto Data Aggregator v2 API",
	Long: `cryptoapi is a command-line client for the Crypto Data Aggregator v2 API.

It covers market data, historical series, DeFi protocols, gas prices,
trending coins, volatility metrics, and webhook management.

An API key is optional; set one via --api-key or the CRYPTO_API_KEY
environment variable to get a higher rate limit.

Examples:
  cryptoapi coins --page 1 --per-page 20
  cryptoapi coin bitcoin
  cryptoapi ticker --symbols BTC,ETH
  cryptoapi search solana
  cryptoapi webhooks create --url https://example.com/hook --events price.alert
  cryptoapi health`,
	SilenceUsage: true,
}

// newClient builds an SDK client from the global flags.
func newClient() *cryptoapi.Client {
	apiKey := flagAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("CRYPTO_API_KEY")
	}

	var opts []cryptoapi.Option
	if apiKey != "" {
		opts = append(opts, cryptoapi.WithAPIKey(apiKey))
	}
	if flagBaseURL != "" {
		opts = append(opts, cryptoapi.WithBaseURL(flagBaseURL))
	}
	if flagTimeout > 0 {
		opts = append(opts, cryptoapi.WithTimeout(flagTimeout))
	}
	if flagDebug {
		opts = append(opts, cryptoapi.WithDebugLogging())
	}

	return cryptoapi.New(opts...)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "API key (default: CRYPTO_API_KEY env var)")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "override the API base URL")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "request timeout (default 30s)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "dump HTTP round trips")

	rootCmd.AddCommand(coinsCmd)
	rootCmd.AddCommand(coinCmd)
	rootCmd.AddCommand(globalCmd)
	rootCmd.AddCommand(tickerCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(defiCmd)
	rootCmd.AddCommand(gasCmd)
	rootCmd.AddCommand(trendingCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(volatilityCmd)
	rootCmd.AddCommand(webhooksCmd)
	rootCmd.AddCommand(healthCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}
