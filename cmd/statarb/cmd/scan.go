package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/statarb/market"
	"github.com/rustyeddy/statarb/pairs"
)

var scanCmd = &cobra.Command{
	Use:   "scan DATA_FILE",
	Short: "Scan a price table for cointegrated symbol pairs",
	Long: `Scan tests every symbol combination in the price table for
cointegration and prints the hedge ratio and test outcome per pair.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

var scanAll bool

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().BoolVarP(&scanAll, "all", "a", false, "print non-cointegrated pairs too")
}

func runScan(cmd *cobra.Command, args []string) error {
	data, err := market.LoadFile(args[0])
	if err != nil {
		return err
	}

	symbols := data.Symbols()
	if len(symbols) < 2 {
		return fmt.Errorf("need at least 2 symbols for pairs trading, got %d", len(symbols))
	}

	fmt.Printf("Scanning %d symbols over %d days\n\n", len(symbols), data.Len())

	found := 0
	for i := 0; i < len(symbols); i++ {
		for k := i + 1; k < len(symbols); k++ {
			pricesA, _ := data.PriceSeries(symbols[i])
			pricesB, _ := data.PriceSeries(symbols[k])

			pair := pairs.New(symbols[i], symbols[k], pricesA, pricesB)
			if pair.TestCointegration() {
				fmt.Printf("%-6s / %-6s  cointegrated  beta=%.4f\n", symbols[i], symbols[k], pair.Beta())
				found++
			} else if scanAll {
				fmt.Printf("%-6s / %-6s  -\n", symbols[i], symbols[k])
			}
		}
	}

	fmt.Printf("\n%d cointegrated pair(s) found\n", found)
	return nil
}
