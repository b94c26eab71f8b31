package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/statarb/backtest"
	"github.com/rustyeddy/statarb/config"
	"github.com/rustyeddy/statarb/journal"
	"github.com/rustyeddy/statarb/market"
	"github.com/rustyeddy/statarb/report"
)

var runCmd = &cobra.Command{
	Use:   "run DATA_FILE",
	Short: "Run a pairs-trading backtest over a daily price table",
	Long: `Run loads a CSV price table (date column plus one column per symbol),
scans for cointegrated pairs, simulates the z-score strategy against a
shared cash account and exports the portfolio-value series.

Example:
  statarb run prices.csv --capital 1000000 --entry 1.5 --window 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBacktest,
}

var (
	runConfigPath string
	runCapital    float64
	runEntry      float64
	runExit       float64
	runWindow     int
	runImmediate  bool
	runOutput     string
	runChart      string
	runJournalDB  string
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "", "path to YAML/JSON config file")
	runCmd.Flags().Float64Var(&runCapital, "capital", 1_000_000, "initial capital")
	runCmd.Flags().Float64Var(&runEntry, "entry", 1.5, "entry threshold in sigmas")
	runCmd.Flags().Float64Var(&runExit, "exit", 0.0, "exit threshold in sigmas")
	runCmd.Flags().IntVarP(&runWindow, "window", "w", 20, "lookback window in days")
	runCmd.Flags().BoolVar(&runImmediate, "immediate", false, "fill on the signal day instead of T+1")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "results.csv", "output file for Day,PortfolioValue rows")
	runCmd.Flags().StringVar(&runChart, "chart", "", "optional HTML equity-chart output path")
	runCmd.Flags().StringVar(&runJournalDB, "journal-db", "", "optional SQLite journal path")
}

// loadRunConfig merges the config file (when given) with flag
// overrides; explicitly-set flags win.
func loadRunConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.Default()
	if runConfigPath != "" {
		loaded, err := config.LoadFromFile(runConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if len(args) > 0 {
		cfg.Data.File = args[0]
	}
	if cfg.Data.File == "" {
		return nil, fmt.Errorf("missing data file path (argument or data.file in config)")
	}

	flags := cmd.Flags()
	if flags.Changed("capital") {
		cfg.Backtest.Capital = runCapital
	}
	if flags.Changed("entry") {
		cfg.Backtest.EntryThreshold = runEntry
	}
	if flags.Changed("exit") {
		cfg.Backtest.ExitThreshold = runExit
	}
	if flags.Changed("window") {
		cfg.Backtest.LookbackWindow = runWindow
	}
	if flags.Changed("immediate") {
		cfg.Backtest.DelayedExecution = !runImmediate
	}
	if flags.Changed("output") {
		cfg.Output.Results = runOutput
	}
	if flags.Changed("chart") {
		cfg.Output.Chart = runChart
	}
	if flags.Changed("journal-db") {
		cfg.Journal = config.Journal{Type: "sqlite", DBPath: runJournalDB}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openJournal(cfg config.Journal) (journal.Journal, error) {
	switch cfg.Type {
	case "", "none":
		return journal.Noop{}, nil
	case "csv":
		return journal.NewCSV(cfg.TradesFile, cfg.EquityFile)
	case "sqlite":
		return journal.NewSQLite(cfg.DBPath)
	default:
		return nil, fmt.Errorf("unknown journal type %q", cfg.Type)
	}
}

func runBacktest(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig(cmd, args)
	if err != nil {
		return err
	}

	logger := log.New(os.Stderr, "", 0)

	fmt.Printf("Loading market data from %s\n", cfg.Data.File)
	data, err := market.LoadFile(cfg.Data.File)
	if err != nil {
		return err
	}
	if data.Len() == 0 {
		return fmt.Errorf("no rows in %s", cfg.Data.File)
	}
	fmt.Printf("Loaded %d days of data for %d symbols\n", data.Len(), len(data.Symbols()))

	j, err := openJournal(cfg.Journal)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	engine := backtest.New(data, backtest.WithJournal(j), backtest.WithLogger(logger))

	added := addPairs(engine, data, cfg.Data.Pairs, logger)
	fmt.Printf("Retained %d cointegrated pair(s)\n\n", added)

	execution := "T+1"
	if !cfg.Backtest.DelayedExecution {
		execution = "same day"
	}
	fmt.Println("Running backtest with parameters:")
	fmt.Printf("  Initial Capital: $%.2f\n", cfg.Backtest.Capital)
	fmt.Printf("  Entry Threshold: %.2f sigma\n", cfg.Backtest.EntryThreshold)
	fmt.Printf("  Exit Threshold:  %.2f sigma\n", cfg.Backtest.ExitThreshold)
	fmt.Printf("  Lookback Window: %d days\n", cfg.Backtest.LookbackWindow)
	fmt.Printf("  Execution:       %s\n\n", execution)

	result, err := engine.Run(backtest.RunConfig{
		Capital:          cfg.Backtest.Capital,
		EntryThreshold:   cfg.Backtest.EntryThreshold,
		ExitThreshold:    cfg.Backtest.ExitThreshold,
		LookbackWindow:   cfg.Backtest.LookbackWindow,
		DelayedExecution: cfg.Backtest.DelayedExecution,
	})
	if err != nil {
		return err
	}

	fmt.Println(result.Metrics)

	fmt.Printf("\nExporting results to %s\n", cfg.Output.Results)
	if err := engine.ExportResults(cfg.Output.Results); err != nil {
		return err
	}

	if cfg.Output.Chart != "" {
		fmt.Printf("Writing equity chart to %s\n", cfg.Output.Chart)
		if err := report.WriteEquityChart(cfg.Output.Chart, "Pairs Backtest Equity", result.Values); err != nil {
			return err
		}
	}

	return nil
}

// addPairs feeds either the configured pairs or every symbol
// combination to the engine. Lookup failures are logged and skipped.
func addPairs(engine *backtest.Engine, data *market.Data, configured []config.Pair, logger *log.Logger) int {
	added := 0

	if len(configured) > 0 {
		for _, p := range configured {
			ok, err := engine.AddPair(p.A, p.B)
			if err != nil {
				logger.Printf("skipping pair %s/%s: %v", p.A, p.B, err)
				continue
			}
			if ok {
				added++
			}
		}
		return added
	}

	symbols := data.Symbols()
	for i := 0; i < len(symbols); i++ {
		for k := i + 1; k < len(symbols); k++ {
			ok, err := engine.AddPair(symbols[i], symbols[k])
			if err != nil {
				logger.Printf("skipping pair %s/%s: %v", symbols[i], symbols[k], err)
				continue
			}
			if ok {
				added++
			}
		}
	}
	return added
}
