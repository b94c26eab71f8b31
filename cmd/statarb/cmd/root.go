package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "statarb",
	Short: "A pairs-trading backtest engine",
	Long: `Statarb backtests statistical-arbitrage pair strategies against
historical daily price data.

It provides tools for:
  - Scanning a price table for cointegrated symbol pairs
  - Simulating z-score entry/exit signals with T+1 settlement
  - Journaling trades and equity curves to CSV or SQLite
  - Exporting portfolio values and an HTML equity chart`,
}

// Execute runs the root command tree.
func Execute() error {
	return rootCmd.Execute()
}
